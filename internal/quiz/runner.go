package quiz

import (
	"bufio"
	"fmt"
	"io"

	"aiquiz/internal/question"
)

// Banner introduces the quiz on stdout.
const Banner = "Quiz time! 3 questions, answer each with 1-4."

// FeedbackFunc reacts to a scored answer for the question at index.
type FeedbackFunc func(out io.Writer, index int, q question.Question)

// Result is the outcome of one quiz.
type Result struct {
	Score int
	Total int
}

// Runner asks each question in order and tallies the score.
type Runner struct {
	In      *bufio.Reader
	Out     io.Writer
	NoColor bool

	OnCorrect   FeedbackFunc
	OnIncorrect FeedbackFunc
}

// NewRunner builds a runner with the default feedback actions.
func NewRunner(in io.Reader, out io.Writer, noColor bool) *Runner {
	r := &Runner{
		In:      bufio.NewReader(in),
		Out:     out,
		NoColor: noColor,
	}
	r.OnCorrect = r.correctFeedback
	r.OnIncorrect = r.incorrectFeedback
	return r
}

// Run asks every question and returns the number answered correctly.
func (r *Runner) Run(questions []question.Question) (Result, error) {
	result := Result{Total: len(questions)}
	for i, q := range questions {
		choice, err := AskQuestion(r.In, r.Out, i, q, r.NoColor)
		if err != nil {
			return result, fmt.Errorf("question %d: %w", i+1, err)
		}
		if choice == q.Answer {
			result.Score++
			if r.OnCorrect != nil {
				r.OnCorrect(r.Out, i, q)
			}
		} else if r.OnIncorrect != nil {
			r.OnIncorrect(r.Out, i, q)
		}
		fmt.Fprintln(r.Out)
	}
	return result, nil
}

func (r *Runner) correctFeedback(out io.Writer, _ int, _ question.Question) {
	fmt.Fprintln(out, stylize("  -> Correct! +1 point", r.NoColor, colorCorrect))
}

func (r *Runner) incorrectFeedback(out io.Writer, _ int, q question.Question) {
	line := fmt.Sprintf("  -> Incorrect. The answer is %q.", q.CorrectChoice())
	fmt.Fprintln(out, stylize(line, r.NoColor, colorIncorrect))
}
