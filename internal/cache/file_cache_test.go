package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCache_filePath(t *testing.T) {
	cache := NewFileCache("translations")
	key := Key{Source: "en", Target: "es", Text: "hello"}
	assert.Equal(t, filepath.Join("translations", key.Hash()+".json"), cache.filePath(key))
}

func TestFileCache_GetSet(t *testing.T) {
	tempDir := t.TempDir()
	cache := NewFileCache(filepath.Join(tempDir, "nested", "cache"))
	cache.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()
	key := Key{Source: "en", Target: "es", Text: "good morning"}

	_, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, key, "buenos días"))

	got, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "buenos días", got)

	contents, err := cache.read(key)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"source": "en",
		"target": "es",
		"text": "good morning",
		"translatedText": "buenos días",
		"createdAt": "2025-01-01T00:00:00Z"
	}`, string(contents))

	_, ok, err = cache.Get(ctx, Key{Source: "en", Target: "fr", Text: "good morning"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileCache_GetCorruptedFile(t *testing.T) {
	cache := NewFileCache(t.TempDir())
	key := Key{Source: "en", Target: "es", Text: "hello"}
	require.NoError(t, os.WriteFile(cache.filePath(key), []byte("{not json"), 0644))

	_, ok, err := cache.Get(context.Background(), key)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestFileCache_read(t *testing.T) {
	cache := NewFileCache(t.TempDir())
	_, err := cache.read(Key{Text: "missing"})
	assert.Error(t, err)
}
