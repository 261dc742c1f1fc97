package cache

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBCache_Get(t *testing.T) {
	key := Key{Source: "en", Target: "es", Text: "hello"}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      string
		wantOK    bool
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT translated_text FROM translation_cache WHERE cache_key = \\?").
					WithArgs(key.Hash()).
					WillReturnRows(sqlmock.NewRows([]string{"translated_text"}).AddRow("hola"))
			},
			want:   "hola",
			wantOK: true,
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT translated_text FROM translation_cache WHERE cache_key = \\?").
					WithArgs(key.Hash()).
					WillReturnError(sql.ErrNoRows)
			},
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT translated_text FROM translation_cache WHERE cache_key = \\?").
					WithArgs(key.Hash()).
					WillReturnError(errors.New("connection error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setupMock(mock)
			cache := NewDBCache(sqlx.NewDb(db, "mysql"))

			got, ok, err := cache.Get(context.Background(), key)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.wantOK, ok)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBCache_Set(t *testing.T) {
	key := Key{Source: "en", Target: "es", Text: "hello"}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "upsert",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO translation_cache").
					WithArgs(key.Hash(), "en", "es", "hello", "hola").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO translation_cache").
					WillReturnError(errors.New("connection error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setupMock(mock)
			cache := NewDBCache(sqlx.NewDb(db, "mysql"))

			err = cache.Set(context.Background(), key, "hola")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
