// Package google translates through the Google Cloud Translation v2 REST API.
package google

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/at-ishikawa/translatechat/internal/provider"
)

const (
	DefaultBaseURL = "https://translation.googleapis.com"

	translatePath = "/language/translate/v2"
)

type Config struct {
	APIKey  string
	BaseURL string
}

type Client struct {
	config     Config
	httpClient *resty.Client
}

func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	return &Client{
		config:     config,
		httpClient: resty.New().SetBaseURL(config.BaseURL),
	}
}

func (c *Client) Name() string {
	return "google"
}

func (c *Client) HasCredentials() bool {
	return c.config.APIKey != ""
}

// Translate sends one form encoded request. The source is left out so Google detects it
// when the request asks for auto.
func (c *Client) Translate(ctx context.Context, request provider.Request) (string, error) {
	if !c.HasCredentials() {
		return "", provider.ErrMissingAPIKey
	}

	form := map[string]string{
		"q":      request.Text,
		"target": string(request.Target),
		"format": "text",
	}
	if !request.DetectSource() {
		form["source"] = string(request.Source)
	}

	res, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.config.APIKey).
		SetFormData(form).
		Post(translatePath)
	if err != nil {
		return "", fmt.Errorf("client.R.Post > %w", err)
	}

	body := res.Body()
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("invalid JSON response, status code: %d, body: %s", res.StatusCode(), string(body))
	}
	if res.StatusCode() < http.StatusOK || res.StatusCode() >= http.StatusMultipleChoices {
		providerErr := &provider.Error{StatusCode: res.StatusCode()}
		if payload := gjson.GetBytes(body, "error"); payload.Exists() && payload.Type != gjson.Null {
			providerErr.Payload = []byte(payload.Raw)
		}
		return "", providerErr
	}

	translated := gjson.GetBytes(body, "data.translations.0.translatedText").String()
	slog.Default().Debug("google translation",
		"target", request.Target,
		"detectedSource", gjson.GetBytes(body, "data.translations.0.detectedSourceLanguage").String(),
	)
	return translated, nil
}
