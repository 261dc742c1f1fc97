// Package openai translates with the OpenAI chat completions API.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tidwall/gjson"
	"resty.dev/v3"

	"github.com/at-ishikawa/translatechat/internal/language"
	"github.com/at-ishikawa/translatechat/internal/provider"
)

const DefaultBaseURL = "https://api.openai.com/v1"

type Client struct {
	httpClient *resty.Client
	apiKey     string
	model      string
}

func NewClient(apiKey, model, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: client,
		apiKey:     apiKey,
		model:      model,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

func (client *Client) Name() string {
	return "openai"
}

func (client *Client) HasCredentials() bool {
	return client.apiKey != ""
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

func (client *Client) getRequestBody(request provider.Request) ChatCompletionRequest {
	from := "the detected language"
	if !request.DetectSource() {
		from = language.Name(request.Source)
	}
	systemPrompt := fmt.Sprintf(`You are a translation engine. Translate the user's message from %s to %s.

Reply with the translation only. Do not add quotes, notes, explanations or the original text.
Keep the tone, punctuation and line breaks of the original.`, from, language.Name(request.Target))

	return ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.1,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: request.Text},
		},
	}
}

// Translate asks the model once and returns its answer without surrounding whitespace.
func (client *Client) Translate(ctx context.Context, request provider.Request) (string, error) {
	if !client.HasCredentials() {
		return "", provider.ErrMissingAPIKey
	}

	requestBody := client.getRequestBody(request)
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		providerErr := &provider.Error{StatusCode: response.StatusCode()}
		if payload := gjson.Get(response.String(), "error"); payload.Exists() && payload.Type != gjson.Null {
			providerErr.Payload = []byte(payload.Raw)
		}
		return "", providerErr
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return "", fmt.Errorf("empty response body or choices: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"model", responseBody.Model,
		"finishReason", responseBody.Choices[0].FinishReason,
	)
	return strings.TrimSpace(responseBody.Choices[0].Message.Content), nil
}
