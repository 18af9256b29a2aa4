package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ailiteracy/internal/config"
	"ailiteracy/internal/model"
)

// LLMClient is the boundary to the external text-generation API. The
// assessor treats it as text in, text out and validates the result itself.
type LLMClient interface {
	ChatCompletion(ctx context.Context, messages []model.ChatMessage, temperature float64, maxTokens int) (string, error)
}

// AzureOpenAIClient calls the Azure OpenAI chat completions REST API
type AzureOpenAIClient struct {
	config *config.AIConfig
	client *http.Client
}

// NewAzureOpenAIClient creates a client bound to the configured deployment
func NewAzureOpenAIClient(cfg *config.AIConfig) *AzureOpenAIClient {
	return &AzureOpenAIClient{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

type chatCompletionRequest struct {
	Messages    []model.ChatMessage `json:"messages"`
	Temperature float64             `json:"temperature"`
	MaxTokens   int                 `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatCompletion sends the transcript and returns the generated text
func (c *AzureOpenAIClient) ChatCompletion(ctx context.Context, messages []model.ChatMessage, temperature float64, maxTokens int) (string, error) {
	jsonBody, err := json.Marshal(chatCompletionRequest{
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.ChatCompletionsURL(), bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion status %d: %s", resp.StatusCode, truncateForLog(string(body), 200))
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode chat completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	return parsed.Choices[0].Message.Content, nil
}

// truncateForLog shortens a string for inclusion in error/log output
func truncateForLog(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
