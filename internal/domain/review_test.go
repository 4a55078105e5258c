package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReview_DisplayDate(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "specific date",
			date:     time.Date(2019, 4, 24, 0, 0, 0, 0, time.UTC),
			expected: "April 2019",
		},
		{
			name:     "zero date",
			date:     time.Time{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review := Review{Date: tt.date}
			assert.Equal(t, tt.expected, review.DisplayDate())
		})
	}
}

func TestReviewForm_Validate(t *testing.T) {
	validComment := strings.Repeat("a", MinCommentLength)

	tests := []struct {
		name          string
		form          ReviewForm
		expectedError bool
	}{
		{
			name:          "valid form",
			form:          ReviewForm{Rating: 4, Comment: validComment},
			expectedError: false,
		},
		{
			name:          "rating too low",
			form:          ReviewForm{Rating: 0, Comment: validComment},
			expectedError: true,
		},
		{
			name:          "rating too high",
			form:          ReviewForm{Rating: 6, Comment: validComment},
			expectedError: true,
		},
		{
			name:          "comment too short",
			form:          ReviewForm{Rating: 5, Comment: "short"},
			expectedError: true,
		},
		{
			name:          "comment too long",
			form:          ReviewForm{Rating: 5, Comment: strings.Repeat("a", MaxCommentLength+1)},
			expectedError: true,
		},
		{
			name:          "multibyte comment counted in runes",
			form:          ReviewForm{Rating: 3, Comment: strings.Repeat("ж", MinCommentLength)},
			expectedError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
