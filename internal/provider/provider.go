// Package provider forwards translation requests to a machine translation service.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/at-ishikawa/translatechat/internal/language"
)

//go:generate mockgen -source=provider.go -destination=../mocks/provider/mock_provider.go -package=mock_provider Provider

var ErrMissingAPIKey = errors.New("provider API key is not configured")

// Request is a text to translate. Source is empty or auto when the provider should detect it.
type Request struct {
	Text   string
	Source language.Code
	Target language.Code
}

// DetectSource reports whether the provider has to detect the source language.
func (r Request) DetectSource() bool {
	return r.Source == "" || r.Source == language.Auto
}

type Provider interface {
	Name() string
	// HasCredentials is false when a request would fail with ErrMissingAPIKey.
	HasCredentials() bool
	Translate(ctx context.Context, request Request) (string, error)
}

// Error is a non-2xx answer from a provider.
// Payload is the provider's error object, or nil when it did not send one.
type Error struct {
	StatusCode int
	Payload    json.RawMessage
}

func (e *Error) Error() string {
	if len(e.Payload) == 0 {
		return fmt.Sprintf("provider responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("provider responded with status %d: %s", e.StatusCode, e.Payload)
}
