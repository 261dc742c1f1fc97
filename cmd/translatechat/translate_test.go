package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/translatechat/internal/testutil"
)

func TestNewTranslateCommand(t *testing.T) {
	cmd := findCommand(t, "translate")

	assert.Equal(t, "translate", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("from"))
	assert.NotNil(t, cmd.Flags().Lookup("to"))
}

func TestNewTranslateCommand_RunE(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"translatedText":"bonjour le monde"}`))
	}))
	defer srv.Close()

	cfgPath := testutil.SetupTestConfig(t, t.TempDir(), srv.URL)

	got, err := executeCommand(t, "--config", cfgPath, "translate", "--from", "auto", "--to", "fr", "hello", "world")
	require.NoError(t, err)
	assert.Equal(t, "bonjour le monde\n", got)
	assert.Equal(t, map[string]string{"text": "hello world", "target": "fr"}, gotBody)
}

func TestNewTranslateCommand_RunE_Fallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfgPath := testutil.SetupTestConfig(t, t.TempDir(), srv.URL)

	got, err := executeCommand(t, "--config", cfgPath, "translate", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "hola\n", got)
}

func TestNewTranslateCommand_RunE_Errors(t *testing.T) {
	tests := []struct {
		name         string
		args         func(cfgPath string) []string
		brokenConfig bool
		wantErr      string
	}{
		{
			name: "invalid configuration",
			args: func(cfgPath string) []string {
				return []string{"--config", cfgPath, "translate", "hello"}
			},
			brokenConfig: true,
			wantErr:      "configuration",
		},
		{
			name: "auto target",
			args: func(cfgPath string) []string {
				return []string{"--config", cfgPath, "translate", "--to", "auto", "hello"}
			},
			wantErr: "the target language must not be auto",
		},
		{
			name: "unsupported language",
			args: func(cfgPath string) []string {
				return []string{"--config", cfgPath, "translate", "--to", "xx", "hello"}
			},
			wantErr: "invalid language: xx",
		},
		{
			name: "no text",
			args: func(cfgPath string) []string {
				return []string{"--config", cfgPath, "translate"}
			},
			wantErr: "requires at least 1 arg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgPath := testutil.SetupTestConfig(t, t.TempDir(), "http://127.0.0.1:1/translate")
			if tt.brokenConfig {
				cfgPath = testutil.SetupBrokenConfig(t, t.TempDir())
			}

			_, err := executeCommand(t, tt.args(cfgPath)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
