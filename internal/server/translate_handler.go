// Package server serves the translation proxy that the chat client calls.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/at-ishikawa/translatechat/internal/cache"
	"github.com/at-ishikawa/translatechat/internal/language"
	"github.com/at-ishikawa/translatechat/internal/provider"
)

const maxRequestBytes = 1 << 20

// translateRequest accepts any JSON value for its fields, the way a form parameter would
// carry it. See formValue.
type translateRequest struct {
	Text   any `json:"text"`
	Source any `json:"source"`
	Target any `json:"target"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

type errorResponse struct {
	Error any `json:"error"`
}

// TranslateHandler validates a translation request and forwards it to a provider.
// A nil cache disables caching.
type TranslateHandler struct {
	provider provider.Provider
	cache    cache.Cache
}

func NewTranslateHandler(p provider.Provider, c cache.Cache) *TranslateHandler {
	return &TranslateHandler{
		provider: p,
		cache:    c,
	}
}

func (h *TranslateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
		return
	}

	var req translateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	text, source, target := formValue(req.Text), formValue(req.Source), formValue(req.Target)
	if text == "" || target == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing 'text' or 'target'"})
		return
	}
	if !h.provider.HasCredentials() {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Server missing API key"})
		return
	}

	request := provider.Request{
		Text:   text,
		Source: language.Code(source),
		Target: language.Code(target),
	}
	key := cache.Key{
		Target: request.Target,
		Text:   request.Text,
	}
	if !request.DetectSource() {
		key.Source = request.Source
	}

	translated, err := cache.ReadThrough(r.Context(), h.cache, key, func(ctx context.Context) (string, error) {
		return h.provider.Translate(ctx, request)
	})
	if err != nil {
		h.writeProviderError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, translateResponse{TranslatedText: translated})
}

func (h *TranslateHandler) writeProviderError(w http.ResponseWriter, err error) {
	var providerErr *provider.Error
	switch {
	case errors.As(err, &providerErr):
		slog.Default().Warn("provider rejected a translation",
			"provider", h.provider.Name(),
			"status", providerErr.StatusCode,
		)
		var payload any = "Translation failed"
		if len(providerErr.Payload) > 0 {
			payload = providerErr.Payload
		}
		writeJSON(w, providerErr.StatusCode, errorResponse{Error: payload})
	case errors.Is(err, provider.ErrMissingAPIKey):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Server missing API key"})
	default:
		slog.Default().Error("failed to translate",
			"provider", h.provider.Name(),
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

// formValue stringifies a decoded JSON value. null, false, 0 and "" count as missing.
func formValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
		return strconv.FormatBool(v)
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("failed to write a response", "error", err)
	}
}
