package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aiquiz/internal/generate"
)

// withInput replaces stdin for a test.
func withInput(t *testing.T, input string) {
	t.Helper()
	original := stdinReader
	stdinReader = strings.NewReader(input)
	t.Cleanup(func() { stdinReader = original })
}

// withEnv replaces the credential lookup for a test.
func withEnv(t *testing.T, values map[string]string) {
	t.Helper()
	original := lookupEnv
	lookupEnv = func(name string) string { return values[name] }
	t.Cleanup(func() { lookupEnv = original })
}

// withHTTPClient replaces the generation HTTP client for a test.
func withHTTPClient(t *testing.T, client generate.HTTPDoer) {
	t.Helper()
	original := httpClient
	httpClient = client
	t.Cleanup(func() { httpClient = original })
}

// withTerminal forces the TTY check for a test.
func withTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = original })
}

// writeTestConfig writes a config file and returns its path.
func writeTestConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// chdir changes the working directory for a test and restores it afterwards.
func chdir(t *testing.T, dir string) {
	t.Helper()
	original, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(original); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
