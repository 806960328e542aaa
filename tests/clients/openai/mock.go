package openai_test

import (
	"context"

	"coindash/src/clients/openai"
)

// MockClient returns a fixed completion and records prompts.
type MockClient struct {
	Summary string
	Err     error
	Prompts []string
}

func NewMockClient() *MockClient {
	return &MockClient{Summary: "Your portfolio is up 4.2% today, led by Bitcoin."}
}

func (m *MockClient) CreateChatCompletion(_ context.Context, messages []openai.ChatMessage) (string, error) {
	for _, msg := range messages {
		if msg.Role == "user" {
			m.Prompts = append(m.Prompts, msg.Content)
		}
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Summary, nil
}
