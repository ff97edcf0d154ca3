package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"smart_travel/internal/adapters/observability"
)

const DefaultOpenAIModel = "gpt-4o-mini"

type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAI{client: openai.NewClient(apiKey), model: model}
}

// NewOpenAIWithBaseURL targets an OpenAI-compatible endpoint.
func NewOpenAIWithBaseURL(apiKey, model, baseURL string) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	o := NewOpenAI(apiKey, model)
	o.client = openai.NewClientWithConfig(cfg)
	return o
}

func (o *OpenAI) Name() string { return o.model }

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a travel planning assistant. Reply with JSON only.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.4,
	})
	status := 200
	if err != nil {
		status = 0
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			status = apiErr.HTTPStatusCode
		}
	}
	observability.ObserveExternal("openai", o.model, status, time.Since(start))
	if err != nil {
		return "", fmt.Errorf("openai %s: %w", o.model, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmpty
	}
	return resp.Choices[0].Message.Content, nil
}
