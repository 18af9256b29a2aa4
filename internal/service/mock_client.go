package service

import (
	"context"

	"ailiteracy/internal/model"
)

// MockLLMClient returns canned strict-JSON turns for local development.
// It suggests a placeholder question id, which the assessor's override
// resolves to the first remaining candidate in bank order.
type MockLLMClient struct{}

// NewMockLLMClient creates the mock client
func NewMockLLMClient() *MockLLMClient {
	return &MockLLMClient{}
}

// ChatCompletion ignores the transcript and returns a fixed turn
func (c *MockLLMClient) ChatCompletion(_ context.Context, _ []model.ChatMessage, _ float64, _ int) (string, error) {
	return `{
  "assistant_text": "Thanks, noted. Let's move on.",
  "next_question_id": "MOCK_NEXT",
  "scores": {"A": 1},
  "evidence": ["SAFE_PRACTICE"],
  "done": false,
  "report": null
}`, nil
}
