package domain

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Review represents a user review of an offer
type Review struct {
	ID      int
	Author  User
	Rating  float64
	Comment string
	Date    time.Time
}

// DisplayDate returns user-friendly review date, e.g. "April 2019"
func (r Review) DisplayDate() string {
	if r.Date.IsZero() {
		return ""
	}
	return r.Date.Format("January 2006")
}

// Review form limits
const (
	MinReviewRating = 1
	MaxReviewRating = 5

	MinCommentLength = 50
	MaxCommentLength = 300
)

// ReviewForm is the editing state of the review form
type ReviewForm struct {
	Rating       int
	Comment      string
	IsSubmitting bool
}

// Validate checks the form against the server limits
func (f ReviewForm) Validate() error {
	if f.Rating < MinReviewRating || f.Rating > MaxReviewRating {
		return fmt.Errorf("rating must be between %d and %d", MinReviewRating, MaxReviewRating)
	}

	n := utf8.RuneCountInString(f.Comment)
	if n < MinCommentLength || n > MaxCommentLength {
		return fmt.Errorf("review must be from %d to %d characters, got %d", MinCommentLength, MaxCommentLength, n)
	}

	return nil
}
