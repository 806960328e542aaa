package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"coindash/src/config"
	"coindash/src/utils/requests"
)

type OpenAIServiceClientI interface {
	CreateChatCompletion(ctx context.Context, messages []ChatMessage) (string, error)
}

type OpenAIServiceClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
	APIKey  string
	Model   string
}

// NewClient creates a new instance of OpenAIServiceClient
func NewClient(cfg *config.Config) *OpenAIServiceClient {
	api := requests.NewExternalAPIService()
	return &OpenAIServiceClient{
		API:     api,
		BaseURL: cfg.ExternalClients.OpenAI.BaseURL,
		APIKey:  cfg.ExternalClients.OpenAI.APIKey,
		Model:   cfg.ExternalClients.OpenAI.Model,
	}
}

// CreateChatCompletion sends the messages to the chat completions endpoint
// and returns the first choice's content.
func (c *OpenAIServiceClient) CreateChatCompletion(ctx context.Context, messages []ChatMessage) (string, error) {
	endpoint := fmt.Sprintf("%s/chat/completions", c.BaseURL)

	body := ChatCompletionRequest{
		Model:       c.Model,
		Messages:    messages,
		MaxTokens:   300,
		Temperature: 0.4,
	}

	headers := map[string]string{"Authorization": "Bearer " + c.APIKey}
	resp, err := c.API.Post(ctx, endpoint, nil, body, headers)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai returned status %d", resp.StatusCode)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var completion ChatCompletionResponse
	if err := json.Unmarshal(responseBody, &completion); err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
