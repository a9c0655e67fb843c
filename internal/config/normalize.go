package config

import "strings"

// Normalize trims values and fills unset fields from Default.
func Normalize(cfg *Config) {
	defaults := Default()
	provider := &cfg.Provider
	provider.BaseURL = strings.TrimRight(strings.TrimSpace(provider.BaseURL), "/")
	provider.Model = strings.TrimSpace(provider.Model)
	provider.APIKeyEnv = strings.TrimSpace(provider.APIKeyEnv)
	if provider.BaseURL == "" {
		provider.BaseURL = defaults.Provider.BaseURL
	}
	if provider.Model == "" {
		provider.Model = defaults.Provider.Model
	}
	if provider.APIKeyEnv == "" {
		provider.APIKeyEnv = defaults.Provider.APIKeyEnv
	}
	if provider.Temperature == 0 {
		provider.Temperature = defaults.Provider.Temperature
	}
	if provider.MaxTokens == 0 {
		provider.MaxTokens = defaults.Provider.MaxTokens
	}
	cfg.UI.Color = strings.ToLower(strings.TrimSpace(cfg.UI.Color))
	if cfg.UI.Color == "" {
		cfg.UI.Color = ColorAuto
	}
}
