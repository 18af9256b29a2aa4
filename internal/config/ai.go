package config

import (
	"fmt"
	"os"
	"strings"
)

// AIConfig holds the Azure OpenAI connection settings for the assessor model
type AIConfig struct {
	APIKey     string `json:"-"` // Never serialize
	Endpoint   string `json:"endpoint"`
	Deployment string `json:"deployment"`
	APIVersion string `json:"apiVersion"`
	TimeoutMS  int    `json:"timeoutMs"`

	// UseMock selects the canned local client instead of the remote API.
	// Intended for development only; it is never a silent fallback.
	UseMock bool `json:"useMock"`
}

// LoadAIConfig reads the AI configuration from the environment
func LoadAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:     os.Getenv("AZURE_OPENAI_API_KEY"),
		Endpoint:   strings.TrimRight(os.Getenv("AZURE_OPENAI_ENDPOINT"), "/"),
		Deployment: os.Getenv("AZURE_OPENAI_DEPLOYMENT"),
		APIVersion: getEnvOrDefault("AZURE_OPENAI_API_VERSION", "2024-06-01"),
		TimeoutMS:  getEnvInt("AZURE_OPENAI_TIMEOUT_MS", 60000),
		UseMock:    getEnvBool("AI_USE_MOCK", false),
	}
}

// Validate ensures the remote model is reachable before the server starts.
// Missing credentials are a fatal configuration error unless mock mode is on.
func (c *AIConfig) Validate() error {
	if c.UseMock {
		return nil
	}
	if c.Endpoint == "" || c.APIKey == "" || c.Deployment == "" {
		return fmt.Errorf("missing AZURE_OPENAI_ENDPOINT / AZURE_OPENAI_API_KEY / AZURE_OPENAI_DEPLOYMENT")
	}
	return nil
}

// ChatCompletionsURL returns the full endpoint for the configured deployment
func (c *AIConfig) ChatCompletionsURL() string {
	return fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.Endpoint, c.Deployment, c.APIVersion)
}
