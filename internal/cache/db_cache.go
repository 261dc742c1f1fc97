package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DBCache implements Cache using the translation_cache table in MySQL.
type DBCache struct {
	db *sqlx.DB
}

func NewDBCache(db *sqlx.DB) *DBCache {
	return &DBCache{db: db}
}

func (c *DBCache) Get(ctx context.Context, key Key) (string, bool, error) {
	var translated string
	err := c.db.GetContext(ctx, &translated, "SELECT translated_text FROM translation_cache WHERE cache_key = ?", key.Hash())
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("db.GetContext(translation_cache) > %w", err)
	}
	return translated, true, nil
}

// Set inserts or updates a cached translation.
func (c *DBCache) Set(ctx context.Context, key Key, translatedText string) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO translation_cache (cache_key, source_language, target_language, source_text, translated_text)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE translated_text = VALUES(translated_text)`,
		key.Hash(), string(key.Source), string(key.Target), key.Text, translatedText)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert translation_cache) > %w", err)
	}
	return nil
}
