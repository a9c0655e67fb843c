package config

import "aiquiz/internal/generate"

// Default returns the configuration used when no config file exists.
func Default() Config {
	settings := generate.DefaultSettings()
	return Config{
		Version: 1,
		Provider: Provider{
			BaseURL:     settings.BaseURL,
			Model:       settings.Model,
			APIKeyEnv:   settings.APIKeyEnv,
			Temperature: settings.Temperature,
			MaxTokens:   settings.MaxTokens,
			Timeout:     settings.Timeout,
		},
		UI: UI{Color: ColorAuto},
	}
}

// Settings converts the provider section into generation settings.
func (cfg Config) Settings() generate.Settings {
	return generate.Settings{
		BaseURL:     cfg.Provider.BaseURL,
		Model:       cfg.Provider.Model,
		APIKeyEnv:   cfg.Provider.APIKeyEnv,
		Temperature: cfg.Provider.Temperature,
		MaxTokens:   cfg.Provider.MaxTokens,
		Timeout:     cfg.Provider.Timeout,
	}
}
