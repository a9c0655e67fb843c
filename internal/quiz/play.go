package quiz

import (
	"context"
	"fmt"
)

// Play selects the questions, runs the quiz, and reports the result.
func Play(ctx context.Context, source Source, runner *Runner) (Result, error) {
	questions := source.Questions(ctx)
	fmt.Fprintln(runner.Out, Banner)
	fmt.Fprintln(runner.Out)
	result, err := runner.Run(questions)
	if err != nil {
		return result, err
	}
	Report(runner.Out, result, runner.NoColor)
	return result, nil
}
