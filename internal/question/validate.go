package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question set.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question set validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks that a set holds exactly SetSize well-formed questions.
func Validate(questions []Question) error {
	collector := &issueCollector{}
	if len(questions) != SetSize {
		collector.add("questions", fmt.Sprintf("expected %d entries, got %d", SetSize, len(questions)))
	}
	for i, q := range questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if strings.TrimSpace(q.Text) == "" {
			collector.add(prefix+".text", "is required")
		}
		if len(q.Choices) != ChoiceCount {
			collector.add(prefix+".choices", fmt.Sprintf("expected %d entries, got %d", ChoiceCount, len(q.Choices)))
		}
		for choiceIndex, choice := range q.Choices {
			if strings.TrimSpace(choice) == "" {
				collector.add(fmt.Sprintf("%s.choices[%d]", prefix, choiceIndex), "is required")
			}
		}
		if q.Answer < 0 || q.Answer >= ChoiceCount || q.Answer >= len(q.Choices) {
			collector.add(prefix+".answer", fmt.Sprintf("index %d out of range", q.Answer))
		}
	}
	return collector.result()
}
