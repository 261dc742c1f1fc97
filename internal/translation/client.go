// Package translation calls the translation endpoint and falls back to the
// dictionary resolver whenever the endpoint cannot produce a translation.
package translation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"resty.dev/v3"

	"github.com/at-ishikawa/translatechat/internal/language"
	"github.com/at-ishikawa/translatechat/internal/resolver"
)

//go:generate mockgen -source=client.go -destination=../mocks/translation/mock_translator.go -package=mock_translation Translator

// Translator always produces some translation; failures are absorbed.
type Translator interface {
	Translate(ctx context.Context, text string, source, target language.Code) string
}

const (
	DefaultFallbackDelay  = 800 * time.Millisecond
	DefaultFallbackJitter = 400 * time.Millisecond
)

// responsePaths are checked in order for the translated text.
var responsePaths = []string{
	"translatedText",
	"data.translations.0.translatedText",
	"translation",
	"result",
}

var errEmptyTranslation = errors.New("no translated text in response")

// Request is the JSON body sent to the endpoint.
type Request struct {
	Text   string        `json:"text"`
	Source language.Code `json:"source,omitempty"`
	Target language.Code `json:"target"`
}

type Config struct {
	Endpoint string
	// FallbackDelay and FallbackJitter pad the fallback path so it takes about as
	// long as a real translation. Zero disables the wait.
	FallbackDelay  time.Duration
	FallbackJitter time.Duration
}

type Client struct {
	httpClient *resty.Client
	endpoint   string
	resolver   *resolver.Resolver

	fallbackDelay  time.Duration
	fallbackJitter time.Duration
	jitter         func(n int64) int64
	sleep          func(ctx context.Context, d time.Duration)
}

type Option func(*Client)

// WithJitter replaces the random source of the fallback jitter.
func WithJitter(jitter func(n int64) int64) Option {
	return func(c *Client) {
		c.jitter = jitter
	}
}

// WithSleep replaces how the client waits on the fallback path.
func WithSleep(sleep func(ctx context.Context, d time.Duration)) Option {
	return func(c *Client) {
		c.sleep = sleep
	}
}

func NewClient(config Config, r *resolver.Resolver, opts ...Option) *Client {
	httpClient := resty.New()
	httpClient.SetHeader("Content-Type", "application/json")
	httpClient.SetHeader("Accept", "application/json")

	client := &Client{
		httpClient:     httpClient,
		endpoint:       config.Endpoint,
		resolver:       r,
		fallbackDelay:  config.FallbackDelay,
		fallbackJitter: config.FallbackJitter,
		jitter:         rand.Int64N,
		sleep:          sleepContext,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

// Translate asks the endpoint once and otherwise resolves text with the dictionary.
func (c *Client) Translate(ctx context.Context, text string, source, target language.Code) string {
	text = strings.TrimSpace(text)

	translated, err := c.requestTranslation(ctx, text, source, target)
	if err == nil {
		slog.Default().Debug("remote translation succeeded",
			"source", source,
			"target", target,
			"translation", translated,
		)
		return translated
	}

	slog.Default().Warn("remote translation failed, using the dictionary",
		"source", source,
		"target", target,
		"error", err,
	)
	c.sleep(ctx, c.fallbackWait())
	return c.resolver.Resolve(text, source, target)
}

func (c *Client) requestTranslation(ctx context.Context, text string, source, target language.Code) (string, error) {
	body := Request{
		Text:   text,
		Target: target,
	}
	if source != language.Auto {
		body.Source = source
	}

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		Post(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if !response.IsSuccess() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	contentType := response.Header().Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return "", fmt.Errorf("unexpected content type %q", contentType)
	}
	return ExtractTranslation(response.String())
}

// ExtractTranslation finds the first non-empty translated string in a response body.
func ExtractTranslation(body string) (string, error) {
	for _, path := range responsePaths {
		result := gjson.Get(body, path)
		if result.Type != gjson.String {
			continue
		}
		if strings.TrimSpace(result.Str) == "" {
			continue
		}
		return result.Str, nil
	}
	return "", errEmptyTranslation
}

func (c *Client) fallbackWait() time.Duration {
	wait := c.fallbackDelay
	if c.fallbackJitter > 0 {
		wait += time.Duration(c.jitter(int64(c.fallbackJitter)))
	}
	return wait
}

// sleepContext waits for d, returning early if ctx is done.
func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
