package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

type mockChecker struct {
	mock.Mock
}

func (m *mockChecker) IsAuthorized(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

// fakeContext records what the middleware sends
type fakeContext struct {
	tele.Context
	sender *tele.User
	sent   []interface{}
}

func (c *fakeContext) Sender() *tele.User { return c.sender }
func (c *fakeContext) Callback() *tele.Callback { return nil }
func (c *fakeContext) Send(what interface{}, _ ...interface{}) error {
	c.sent = append(c.sent, what)
	return nil
}

func TestAuthRequired(t *testing.T) {
	tests := []struct {
		name         string
		authorized   bool
		checkErr     error
		expectNext   bool
		expectedSent string
	}{
		{
			name:       "authorized user passes",
			authorized: true,
			expectNext: true,
		},
		{
			name:         "anonymous user stopped",
			authorized:   false,
			expectedSent: "Please sign in first: /login",
		},
		{
			name:         "check error",
			checkErr:     errors.New("db error"),
			expectedSent: "Something went wrong. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := new(mockChecker)
			checker.On("IsAuthorized", int64(123)).Return(tt.authorized, tt.checkErr)

			var called bool
			next := func(c tele.Context) error {
				called = true
				return nil
			}

			c := &fakeContext{sender: &tele.User{ID: 123}}
			err := AuthRequired(checker, zap.NewNop())(next)(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectNext, called)
			if tt.expectedSent != "" {
				assert.Equal(t, []interface{}{tt.expectedSent}, c.sent)
			} else {
				assert.Empty(t, c.sent)
			}
			checker.AssertExpectations(t)
		})
	}
}
