package config

import "time"

// Config is the optional .aiquiz/config.yml file.
type Config struct {
	Version  int      `yaml:"version"`
	Provider Provider `yaml:"provider"`
	UI       UI       `yaml:"ui"`
}

// Provider configures the chat completion endpoint used for generation.
type Provider struct {
	BaseURL     string        `yaml:"base_url"`
	Model       string        `yaml:"model"`
	APIKeyEnv   string        `yaml:"api_key_env"`
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"`
}

// UI configures terminal output.
type UI struct {
	Color string `yaml:"color"`
}

// Color modes accepted by ui.color and --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
