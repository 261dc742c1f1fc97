// Package cache stores provider translations so the proxy does not ask twice for the same text.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/at-ishikawa/translatechat/internal/language"
)

//go:generate mockgen -source=cache.go -destination=../mocks/cache/mock_cache.go -package=mock_cache Cache

// Key identifies a cached translation. An empty Source means the provider detected it.
type Key struct {
	Source language.Code
	Target language.Code
	Text   string
}

// Hash is a stable file and row name for the key.
func (k Key) Hash() string {
	sum := sha256.Sum256([]byte(string(k.Source) + "\x00" + string(k.Target) + "\x00" + k.Text))
	return hex.EncodeToString(sum[:])
}

// Entry is a cached translation.
type Entry struct {
	Source         language.Code `json:"source"`
	Target         language.Code `json:"target"`
	Text           string        `json:"text"`
	TranslatedText string        `json:"translatedText"`
	CreatedAt      time.Time     `json:"createdAt"`
}

type Cache interface {
	// Get returns false when nothing is cached for the key.
	Get(ctx context.Context, key Key) (string, bool, error)
	Set(ctx context.Context, key Key, translatedText string) error
}

// ReadThrough returns the cached translation for key, or calls fetch and caches its result.
// Cache failures are logged and never returned. Errors from fetch are returned as they are.
func ReadThrough(ctx context.Context, c Cache, key Key, fetch func(ctx context.Context) (string, error)) (string, error) {
	if c == nil {
		return fetch(ctx)
	}

	translated, ok, err := c.Get(ctx, key)
	if err != nil {
		slog.Default().Warn("failed to read a cached translation",
			"key", key.Hash(),
			"error", err,
		)
	} else if ok {
		slog.Default().Debug("cached translation found", "key", key.Hash())
		return translated, nil
	}

	translated, err = fetch(ctx)
	if err != nil {
		return "", err
	}
	if translated == "" {
		return translated, nil
	}
	if err := c.Set(ctx, key, translated); err != nil {
		slog.Default().Warn("failed to cache a translation",
			"key", key.Hash(),
			"error", err,
		)
	}
	return translated, nil
}
