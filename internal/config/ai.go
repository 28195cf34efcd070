package config

import "os"

// AIConfig holds the configuration for the external text-generation
// capability (an OpenAI-compatible chat completion API).
type AIConfig struct {
	APIKey    string `json:"-"` // Never serialize
	BaseURL   string `json:"baseUrl,omitempty"`
	Model     string `json:"model"`
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultAIConfig returns the default generator configuration, read from
// the environment.
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:    os.Getenv("OPENAI_API_KEY"),
		BaseURL:   os.Getenv("OPENAI_BASE_URL"),
		Model:     getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		TimeoutMS: 15000,
	}
}

// IsEnabled returns true if the generator API is configured. Without a key
// the service falls back to the deterministic offline generator.
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
