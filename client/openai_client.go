package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"earnings/customerrors"
	"earnings/model"

	"github.com/go-resty/resty/v2"
)

const (
	openAIBaseURL      = "https://api.openai.com/v1"
	DefaultOpenAIModel = "gpt-4o-mini"
)

type OpenAIClient struct {
	client    *resty.Client
	model     string
	maxTokens int
}

func NewOpenAIClient(apiKey, modelName string, timeout time.Duration) *OpenAIClient {
	return NewOpenAIClientWithBaseURL(openAIBaseURL, apiKey, modelName, timeout)
}

func NewOpenAIClientWithBaseURL(baseURL, apiKey, modelName string, timeout time.Duration) *OpenAIClient {
	if modelName == "" {
		modelName = DefaultOpenAIModel
	}
	c := newRestyClient(baseURL, timeout).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")

	return &OpenAIClient{client: c, model: modelName, maxTokens: 200}
}

func (o *OpenAIClient) Name() string { return "openai" }

// Generate runs a single chat completion and returns the first choice.
func (o *OpenAIClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	body := model.ChatCompletionRequest{
		Model: o.model,
		Messages: []model.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   o.maxTokens,
		Temperature: 0.7,
	}

	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if !resp.IsSuccess() {
		detail := resp.String()
		var apiErr model.OpenAIError
		if json.Unmarshal(resp.Body(), &apiErr) == nil && apiErr.Error.Message != "" {
			detail = apiErr.Error.Message
		}
		return "", &customerrors.UpstreamError{Provider: "openai", StatusCode: resp.StatusCode(), Body: detail}
	}

	var completion model.ChatCompletionResponse
	if err := json.Unmarshal(resp.Body(), &completion); err != nil {
		return "", fmt.Errorf("openai decode error: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", customerrors.ErrEmptyCompletion
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return "", customerrors.ErrEmptyCompletion
	}
	return text, nil
}
