package quiz

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"aiquiz/internal/question"
)

func runWithInput(t *testing.T, input string, questions []question.Question) (Result, string) {
	t.Helper()
	var out bytes.Buffer
	runner := NewRunner(strings.NewReader(input), &out, true)
	result, err := runner.Run(questions)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return result, out.String()
}

func TestRunScoresFallbackAnswers(t *testing.T) {
	cases := []struct {
		name  string
		input string
		score int
	}{
		{name: "all first choice", input: "1\n1\n1\n", score: 1},
		{name: "answer key", input: "1\n2\n2\n", score: 3},
		{name: "all wrong", input: "2\n1\n4\n", score: 0},
		{name: "two right", input: "1\n2\n3\n", score: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, _ := runWithInput(t, tc.input, question.Fallback())
			if result.Score != tc.score || result.Total != 3 {
				t.Fatalf("expected %d / 3, got %d / %d", tc.score, result.Score, result.Total)
			}
		})
	}
}

func TestRunPrintsQuestionsInOrder(t *testing.T) {
	questions := question.Fallback()
	_, output := runWithInput(t, "1\n1\n1\n", questions)

	last := -1
	for i, q := range questions {
		idx := strings.Index(output, fmt.Sprintf("Q%d. %s", i+1, q.Text))
		if idx <= last {
			t.Fatalf("question %d out of order in %q", i+1, output)
		}
		last = idx
	}
	if !strings.Contains(output, "   1: func\n   2: def\n   3: fn\n   4: function\n") {
		t.Fatalf("expected enumerated choices, got %q", output)
	}
}

func TestRunFeedback(t *testing.T) {
	questions := question.Fallback()
	_, output := runWithInput(t, "1\n1\n1\n", questions)

	if strings.Count(output, "Correct! +1 point") != 1 {
		t.Fatalf("expected one correct feedback, got %q", output)
	}
	want := `The answer is "` + questions[1].CorrectChoice() + `".`
	if !strings.Contains(output, want) {
		t.Fatalf("expected %q in %q", want, output)
	}
	if strings.Count(output, "Incorrect.") != 2 {
		t.Fatalf("expected two incorrect feedback lines, got %q", output)
	}
	if !strings.HasSuffix(output, "\n\n") {
		t.Fatalf("expected blank separator after last question, got %q", output)
	}
}

func TestRunCustomFeedbackHooks(t *testing.T) {
	var correct, incorrect []int
	runner := NewRunner(strings.NewReader("1\n1\n1\n"), io.Discard, true)
	runner.OnCorrect = func(_ io.Writer, index int, _ question.Question) { correct = append(correct, index) }
	runner.OnIncorrect = func(_ io.Writer, index int, _ question.Question) { incorrect = append(incorrect, index) }
	if _, err := runner.Run(question.Fallback()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(correct) != 1 || correct[0] != 0 {
		t.Fatalf("unexpected correct indices %v", correct)
	}
	if len(incorrect) != 2 || incorrect[0] != 1 || incorrect[1] != 2 {
		t.Fatalf("unexpected incorrect indices %v", incorrect)
	}
}

func TestRunScoreInRange(t *testing.T) {
	inputs := []string{"1", "2", "3", "4"}
	for _, a := range inputs {
		for _, b := range inputs {
			for _, c := range inputs {
				result, _ := runWithInput(t, a+"\n"+b+"\n"+c+"\n", question.Fallback())
				if result.Score < 0 || result.Score > 3 {
					t.Fatalf("score %d out of range for %s%s%s", result.Score, a, b, c)
				}
			}
		}
	}
}

func TestRunStopsOnClosedInput(t *testing.T) {
	runner := NewRunner(strings.NewReader("1\n"), io.Discard, true)
	result, err := runner.Run(question.Fallback())
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
	if result.Score != 1 {
		t.Fatalf("expected partial score 1, got %d", result.Score)
	}
}
