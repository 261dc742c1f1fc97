package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/translatechat/internal/testutil"
)

func TestNewChatCommand(t *testing.T) {
	cmd := findCommand(t, "chat")

	assert.Equal(t, "chat", cmd.Name())
	from := cmd.Flags().Lookup("from")
	require.NotNil(t, from)
	assert.Equal(t, "language", from.Value.Type())
	assert.NotNil(t, cmd.Flags().Lookup("to"))
}

func TestNewChatCommand_RunE_Errors(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		brokenConfig bool
		wantErr      string
	}{
		{
			name:         "invalid configuration",
			brokenConfig: true,
			wantErr:      "configuration",
		},
		{
			name:    "auto source",
			args:    []string{"--from", "auto"},
			wantErr: "the chat needs a source language, got auto",
		},
		{
			name:    "auto target",
			args:    []string{"--to", "auto"},
			wantErr: "the chat needs a target language, got auto",
		},
		{
			name:    "same source and target",
			args:    []string{"--from", "es", "--to", "es"},
			wantErr: "the chat cannot translate Spanish into itself",
		},
		{
			name:    "target flag equal to the configured source",
			args:    []string{"--to", "en"},
			wantErr: "the chat cannot translate English into itself",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgPath := testutil.SetupTestConfig(t, t.TempDir(), "http://127.0.0.1:1/translate")
			if tt.brokenConfig {
				cfgPath = testutil.SetupBrokenConfig(t, t.TempDir())
			}

			args := append([]string{"--config", cfgPath, "chat"}, tt.args...)
			_, err := executeCommand(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
