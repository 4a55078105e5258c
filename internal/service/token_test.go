package service

import (
	"fmt"
	"testing"

	"sixcities/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestTokenService_Restore(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		ensureError   error
		mockToken     string
		mockError     error
		expectedToken string
		expectedError bool
		expectGet     bool
	}{
		{
			name:          "stored token",
			userID:        123,
			mockToken:     "token",
			expectedToken: "token",
			expectGet:     true,
		},
		{
			name:          "new user",
			userID:        456,
			mockToken:     "",
			expectedToken: "",
			expectGet:     true,
		},
		{
			name:          "ensure error",
			userID:        789,
			ensureError:   fmt.Errorf("db error"),
			expectedError: true,
		},
		{
			name:          "get error",
			userID:        789,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
			expectGet:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockSessionRepository)
			mockRepo.On("EnsureUserExists", tt.userID).Return(tt.ensureError)
			if tt.expectGet {
				mockRepo.On("GetToken", tt.userID).Return(tt.mockToken, tt.mockError)
			}

			service := NewTokenService(mockRepo)

			token, err := service.Restore(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTokenService_Remember(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		expectSave bool
	}{
		{name: "save token", token: "token", expectSave: true},
		{name: "empty token forgets", token: "", expectSave: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockSessionRepository)
			if tt.expectSave {
				mockRepo.On("SaveToken", int64(123), tt.token).Return(nil)
			} else {
				mockRepo.On("DeleteToken", int64(123)).Return(nil)
			}

			service := NewTokenService(mockRepo)

			err := service.Remember(123, tt.token)

			assert.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTokenService_Forget(t *testing.T) {
	mockRepo := new(testutil.MockSessionRepository)
	mockRepo.On("DeleteToken", int64(123)).Return(fmt.Errorf("db error"))

	service := NewTokenService(mockRepo)

	err := service.Forget(123)

	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
