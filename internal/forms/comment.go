// Package forms holds the comment submission form and its text validation.
package forms

import (
	"strings"
)

// BadWords are forbidden in comment text. Matching is a case-sensitive
// substring check: a forbidden word buried inside a longer word still counts.
var BadWords = []string{"редиска", "негодяй"}

// Warning is shown next to the text field whenever validation fails. It is
// the same for every forbidden word and never reveals which one matched.
const Warning = "Не ругайтесь!"

// ForbiddenWordError is returned by ValidateCommentText when the text
// contains a forbidden word.
type ForbiddenWordError struct{}

func (e *ForbiddenWordError) Error() string {
	return Warning
}

// CommentForm binds the comment text field on create and edit.
type CommentForm struct {
	Text string `form:"text" binding:"required"`
}

// ValidateCommentText rejects text containing any of BadWords. Nothing else
// is checked here; emptiness is a form binding concern.
func ValidateCommentText(text string) error {
	for _, word := range BadWords {
		if strings.Contains(text, word) {
			return &ForbiddenWordError{}
		}
	}
	return nil
}
