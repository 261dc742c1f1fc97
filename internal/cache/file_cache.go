package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// FileCache keeps one JSON file per key under a directory.
type FileCache struct {
	rootDir string
	now     func() time.Time
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
		now:     time.Now,
	}
}

func (cache *FileCache) filePath(key Key) string {
	return filepath.Join(cache.rootDir, key.Hash()+".json")
}

func (cache *FileCache) Get(_ context.Context, key Key) (string, bool, error) {
	if _, err := os.Stat(cache.filePath(key)); err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("os.Stat > %w", err)
	}

	contents, err := cache.read(key)
	if err != nil {
		return "", false, fmt.Errorf("cache.read > %w", err)
	}
	var entry Entry
	if err := json.Unmarshal(contents, &entry); err != nil {
		return "", false, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return entry.TranslatedText, true, nil
}

func (cache *FileCache) Set(_ context.Context, key Key, translatedText string) error {
	contents, err := json.Marshal(Entry{
		Source:         key.Source,
		Target:         key.Target,
		Text:           key.Text,
		TranslatedText: translatedText,
		CreatedAt:      cache.now(),
	})
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}

	if err := os.MkdirAll(cache.rootDir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	file, err := os.Create(cache.filePath(key))
	if err != nil {
		return fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return fmt.Errorf("file.Write > %w", err)
	}
	return nil
}

func (cache *FileCache) read(key Key) ([]byte, error) {
	file, err := os.Open(cache.filePath(key))
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}
