package agent

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

const openAIMaxTokens = 1500

type openAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) Client {
	return &openAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// NewOpenAIClientWithBaseURL targets an OpenAI-compatible endpoint, mainly
// for tests against a local server.
func NewOpenAIClientWithBaseURL(apiKey, model, baseURL string) Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &openAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *openAIClient) Invoke(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: float32(temperature),
		MaxTokens:   openAIMaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", &ProviderError{Provider: "openai", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: "openai", Err: errors.New("completion returned no choices")}
	}
	return resp.Choices[0].Message.Content, nil
}
