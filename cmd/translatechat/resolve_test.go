package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolveCommand_RunE(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "default languages",
			args: []string{"resolve", "Hello"},
			want: "hola\n",
		},
		{
			name: "multiple arguments are one text",
			args: []string{"resolve", "--to", "fr", "thank", "you"},
			want: "merci\n",
		},
		{
			name: "show step",
			args: []string{"resolve", "--from", "es", "--to", "en", "--show-step", "gracias"},
			want: "exact\tthank you\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := executeCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewResolveCommand_RunE_List(t *testing.T) {
	got, err := executeCommand(t, "resolve", "--list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "hi guys how are you doing\thola chicos, ¿cómo les va?", lines[0])
	assert.Contains(t, lines, "hello\thola")
}

func TestNewResolveCommand_RunE_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "pair without entries",
			args:    []string{"resolve", "--list", "--from", "ja", "--to", "ko"},
			wantErr: "no dictionary entries from ja to ko",
		},
		{
			name:    "list with text",
			args:    []string{"resolve", "--list", "hello"},
			wantErr: "unknown command",
		},
		{
			name:    "no text",
			args:    []string{"resolve"},
			wantErr: "requires at least 1 arg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
