package google

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/translatechat/internal/provider"
)

func TestClient_Translate(t *testing.T) {
	tests := []struct {
		name              string
		request           provider.Request
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		want         string
		wantProvider *provider.Error
		wantErr      bool
	}{
		{
			name:    "forwards text, target and source",
			request: provider.Request{Text: "hello", Source: "en", Target: "es"},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/language/translate/v2", r.URL.Path)
				assert.Equal(t, "test-key", r.URL.Query().Get("key"))
				assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")

				require.NoError(t, r.ParseForm())
				assert.Equal(t, "hello", r.PostForm.Get("q"))
				assert.Equal(t, "es", r.PostForm.Get("target"))
				assert.Equal(t, "text", r.PostForm.Get("format"))
				assert.Equal(t, "en", r.PostForm.Get("source"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"hola"}]}}`))
			},
			want: "hola",
		},
		{
			name:    "auto source is not forwarded",
			request: provider.Request{Text: "bonjour", Source: "auto", Target: "en"},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				require.NoError(t, r.ParseForm())
				_, ok := r.PostForm["source"]
				assert.False(t, ok)

				_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"hello","detectedSourceLanguage":"fr"}]}}`))
			},
			want: "hello",
		},
		{
			name:    "empty source is not forwarded",
			request: provider.Request{Text: "bonjour", Target: "en"},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				require.NoError(t, r.ParseForm())
				_, ok := r.PostForm["source"]
				assert.False(t, ok)

				_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"hello"}]}}`))
			},
			want: "hello",
		},
		{
			name:    "missing translation is empty",
			request: provider.Request{Text: "hello", Target: "es"},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data":{"translations":[]}}`))
			},
			want: "",
		},
		{
			name:    "error payload is forwarded",
			request: provider.Request{Text: "hello", Target: "xx"},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"code":400,"message":"Invalid Value"}}`))
			},
			wantProvider: &provider.Error{
				StatusCode: http.StatusBadRequest,
				Payload:    json.RawMessage(`{"code":400,"message":"Invalid Value"}`),
			},
		},
		{
			name:    "error without payload",
			request: provider.Request{Text: "hello", Target: "es"},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{}`))
			},
			wantProvider: &provider.Error{StatusCode: http.StatusForbidden},
		},
		{
			name:    "non JSON response",
			request: provider.Request{Text: "hello", Target: "es"},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(`<html>bad gateway</html>`))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
			got, err := client.Translate(context.Background(), tt.request)

			if tt.wantProvider != nil {
				var providerErr *provider.Error
				require.True(t, errors.As(err, &providerErr))
				assert.Equal(t, tt.wantProvider, providerErr)
				return
			}
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_MissingAPIKey(t *testing.T) {
	client := NewClient(Config{})
	assert.False(t, client.HasCredentials())
	assert.Equal(t, "google", client.Name())

	_, err := client.Translate(context.Background(), provider.Request{Text: "hello", Target: "es"})
	assert.ErrorIs(t, err, provider.ErrMissingAPIKey)
}
