package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aiquiz/internal/config"
)

func TestInitCommandPromptsAndWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".aiquiz", "config.yml")
	withInput(t, "y\ngpt-4o-mini\n\nQUIZ_KEY\nnever\n")

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", path}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Wrote "+path) {
		t.Fatalf("expected write message, got %q", out.String())
	}
	cfg, loadErr := config.Load(path)
	if loadErr != nil {
		t.Fatalf("load written config: %v", loadErr)
	}
	if cfg.Provider.Model != "gpt-4o-mini" || cfg.Provider.APIKeyEnv != "QUIZ_KEY" || cfg.UI.Color != config.ColorNever {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Provider.BaseURL != config.Default().Provider.BaseURL {
		t.Fatalf("expected default base url, got %q", cfg.Provider.BaseURL)
	}
}

func TestInitCommandAssumeYes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", path, "--yes"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("expected config file: %v", statErr)
	}
}

func TestInitCommandCancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	withInput(t, "n\n")
	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", path}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "cancelled") {
		t.Fatalf("expected cancel message, got %q", err.String())
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("expected no config file, got %v", statErr)
	}
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	path := writeTestConfig(t, "version: 1\n")
	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", path, "--yes"}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "already exists") {
		t.Fatalf("expected overwrite warning, got %q", err.String())
	}
}
