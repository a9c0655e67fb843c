package quiz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"aiquiz/internal/question"
)

// ErrNoInput indicates input ended before a valid choice was entered.
var ErrNoInput = errors.New("input closed before a choice was entered")

const (
	answerPrompt   = "Your answer (1-4): "
	answerGuidance = "Please enter a number from 1 to 4."
)

// ReadLine reads a line from the reader, trimming line endings. A final
// unterminated line is returned together with io.EOF.
func ReadLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimRight(line, "\r\n"), io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// parseChoice maps the literal tokens "1".."4" to a 0-based index.
func parseChoice(line string) (int, bool) {
	switch line {
	case "1", "2", "3", "4":
		return int(line[0] - '1'), true
	default:
		return 0, false
	}
}

// AskChoice prompts until a valid choice is entered and returns it 0-based.
// Invalid input re-prompts without limit.
func AskChoice(reader *bufio.Reader, out io.Writer, noColor bool) (int, error) {
	for {
		fmt.Fprint(out, stylize(answerPrompt, noColor, colorPrompt))
		line, err := ReadLine(reader)
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("read answer: %w", err)
		}
		if choice, ok := parseChoice(strings.TrimSpace(line)); ok {
			return choice, nil
		}
		if err == io.EOF {
			fmt.Fprintln(out)
			return 0, ErrNoInput
		}
		fmt.Fprintln(out, answerGuidance)
	}
}

// printQuestion shows the 1-based question number, its text, and choices.
func printQuestion(out io.Writer, index int, q question.Question, noColor bool) {
	fmt.Fprintln(out, stylizeBold(fmt.Sprintf("Q%d. %s", index+1, q.Text), noColor, colorResult))
	for i, choice := range q.Choices {
		fmt.Fprintf(out, "   %d: %s\n", i+1, choice)
	}
}

// AskQuestion displays a question with its choices and returns the
// validated 0-based choice.
func AskQuestion(reader *bufio.Reader, out io.Writer, index int, q question.Question, noColor bool) (int, error) {
	printQuestion(out, index, q, noColor)
	return AskChoice(reader, out, noColor)
}
