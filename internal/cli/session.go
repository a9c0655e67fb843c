package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"aiquiz/internal/config"
	"aiquiz/internal/generate"
	"aiquiz/internal/question"
	"aiquiz/internal/quiz"
)

// stdinReader allows tests to override stdin for answers and init prompts.
var stdinReader io.Reader = os.Stdin

// lookupEnv reads the credential variable; tests replace it.
var lookupEnv = os.Getenv

// httpClient overrides the generation HTTP client when set.
var httpClient generate.HTTPDoer

// sourceOptions controls how the question set is selected.
type sourceOptions struct {
	offline bool
	verbose bool
}

// loadDotEnv merges a .env file from the working directory into the
// environment without overriding variables that are already set. A missing
// file is not an error.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// buildGenerator resolves the credential and returns the chat client used
// for the single generation attempt.
func buildGenerator(cfg config.Config, opts sourceOptions, stderr io.Writer) (generate.Generator, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	client, err := generate.FromEnv(lookupEnv, cfg.Settings(), httpClient)
	if err != nil {
		return nil, err
	}
	if opts.verbose {
		client.Verbose = stderr
	}
	return client, nil
}

// newSource builds the question source. Offline sources have no generator
// and no diagnostics writer, so they serve the built-in set silently.
func newSource(cfg config.Config, opts sourceOptions, stderr io.Writer) quiz.Source {
	if opts.offline {
		return quiz.Source{}
	}
	return quiz.Source{
		Generate: func(ctx context.Context) ([]question.Question, error) {
			gen, err := buildGenerator(cfg, opts, stderr)
			if err != nil {
				return nil, err
			}
			return gen.Generate(ctx)
		},
		Diagnostics: stderr,
	}
}
