package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config for correctness.
func Validate(cfg Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if parsed, err := url.Parse(cfg.Provider.BaseURL); err != nil || parsed.Host == "" {
		add("provider.base_url", fmt.Sprintf("invalid url %q", cfg.Provider.BaseURL))
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		add("provider.base_url", fmt.Sprintf("unsupported scheme %q", parsed.Scheme))
	}
	if strings.ContainsAny(cfg.Provider.APIKeyEnv, " =") {
		add("provider.api_key_env", fmt.Sprintf("invalid variable name %q", cfg.Provider.APIKeyEnv))
	}
	if cfg.Provider.Temperature < 0 || cfg.Provider.Temperature > 2 {
		add("provider.temperature", "must be between 0 and 2")
	}
	if cfg.Provider.MaxTokens < 0 {
		add("provider.max_tokens", "must be >= 0")
	}
	if cfg.Provider.Timeout < 0 {
		add("provider.timeout", "must be >= 0")
	}

	switch cfg.UI.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		add("ui.color", fmt.Sprintf("invalid mode %q (expected auto|always|never)", cfg.UI.Color))
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
