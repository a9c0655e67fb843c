package cli

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"

	"aiquiz/internal/question"
)

func TestQuestionsCommandOffline(t *testing.T) {
	path := writeTestConfig(t, "version: 1\n")
	var out, err bytes.Buffer
	code := Run([]string{"questions", "--config", path, "--offline"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	var decoded []question.Question
	if decodeErr := yaml.Unmarshal(out.Bytes(), &decoded); decodeErr != nil {
		t.Fatalf("decode output: %v", decodeErr)
	}
	if err := question.Validate(decoded); err != nil {
		t.Fatalf("printed set invalid: %v", err)
	}
	if decoded[2].Text != question.Fallback()[2].Text {
		t.Fatalf("unexpected questions %+v", decoded)
	}
}

func TestQuestionsCommandFallbackDiagnostic(t *testing.T) {
	withEnv(t, nil)
	path := writeTestConfig(t, "version: 1\n")
	var out, err bytes.Buffer
	code := Run([]string{"questions", "--config", path}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if err.Len() == 0 {
		t.Fatalf("expected fallback diagnostic on stderr")
	}
}
