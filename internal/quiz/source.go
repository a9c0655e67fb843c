package quiz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"aiquiz/internal/question"
)

// GenerateFunc attempts to produce a question set.
type GenerateFunc func(ctx context.Context) ([]question.Question, error)

// errNoGenerator is reported when no generation capability was wired.
var errNoGenerator = errors.New("no question generator configured")

// Source selects the question set for one quiz.
type Source struct {
	Generate    GenerateFunc
	Diagnostics io.Writer
}

// Questions attempts generation exactly once and falls back to the built-in
// set on any failure. A failure writes one line to Diagnostics and never
// reaches the caller.
func (s Source) Questions(ctx context.Context) []question.Question {
	err := errNoGenerator
	if s.Generate != nil {
		var questions []question.Question
		questions, err = s.Generate(ctx)
		if err == nil {
			err = question.Validate(questions)
		}
		if err == nil {
			return questions
		}
	}
	if s.Diagnostics != nil {
		reason := strings.Join(strings.Fields(err.Error()), " ")
		fmt.Fprintf(s.Diagnostics, "warning: could not generate questions: %s; using the built-in set\n", reason)
	}
	return question.Fallback()
}
