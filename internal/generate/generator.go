package generate

import (
	"context"
	"time"

	"aiquiz/internal/question"
)

// Default request settings for the chat completion call.
const (
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultModel       = "gpt-3.5-turbo"
	DefaultAPIKeyEnv   = "OPENAI_API_KEY"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 700
)

// Generator produces a question set or reports why it could not.
type Generator interface {
	Generate(ctx context.Context) ([]question.Question, error)
}

// Settings configures the chat completion request.
type Settings struct {
	BaseURL     string
	Model       string
	APIKeyEnv   string
	Temperature float64
	MaxTokens   int
	// Timeout bounds the whole request; zero means no client timeout.
	Timeout time.Duration
}

// DefaultSettings returns the fixed request parameters.
func DefaultSettings() Settings {
	return Settings{
		BaseURL:     DefaultBaseURL,
		Model:       DefaultModel,
		APIKeyEnv:   DefaultAPIKeyEnv,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

// withDefaults fills zero-valued fields from DefaultSettings. A zero
// Timeout is kept.
func (s Settings) withDefaults() Settings {
	defaults := DefaultSettings()
	if s.BaseURL == "" {
		s.BaseURL = defaults.BaseURL
	}
	if s.Model == "" {
		s.Model = defaults.Model
	}
	if s.APIKeyEnv == "" {
		s.APIKeyEnv = defaults.APIKeyEnv
	}
	if s.Temperature == 0 {
		s.Temperature = defaults.Temperature
	}
	if s.MaxTokens == 0 {
		s.MaxTokens = defaults.MaxTokens
	}
	return s
}
