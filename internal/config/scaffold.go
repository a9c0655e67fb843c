package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const scaffoldHeader = `# aiquiz configuration.
# The API key is read from the environment variable named by
# provider.api_key_env (a .env file in the working directory also works).
# Without it the quiz uses its built-in questions.
`

// Render encodes a config as commented YAML.
func Render(cfg Config) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return append([]byte(scaffoldHeader), body...), nil
}

// Scaffold writes cfg to path, refusing to overwrite an existing file.
func Scaffold(path string, cfg Config) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	Normalize(&cfg)
	if err := Validate(cfg); err != nil {
		return err
	}
	data, err := Render(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
