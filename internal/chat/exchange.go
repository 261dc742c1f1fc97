// Package chat keeps the conversation of one chat view.
package chat

import (
	"errors"
	"time"

	"github.com/at-ishikawa/translatechat/internal/language"
)

var (
	ErrEmptyText       = errors.New("text is empty")
	ErrNotFound        = errors.New("exchange not found")
	ErrAlreadyResolved = errors.New("exchange is already translated")
	ErrDuplicateID     = errors.New("exchange id already exists")
)

// Exchange is one submitted text and, once resolved, its translation.
type Exchange struct {
	ID             string
	OriginalText   string
	TranslatedText string
	// IsTranslated is false until TranslatedText is set.
	IsTranslated   bool
	SourceLanguage language.Code
	TargetLanguage language.Code
	CreatedAt      time.Time
	IsUserAuthored bool
}

// Translation returns the translated text if it is available.
func (e Exchange) Translation() (string, bool) {
	return e.TranslatedText, e.IsTranslated
}
