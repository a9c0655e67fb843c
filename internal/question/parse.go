package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEmptyContent indicates the generated content was blank.
var ErrEmptyContent = errors.New("empty question content")

// ParseSet decodes generated JSON content into a validated question set.
// The content must be exactly one JSON array matching the question shape.
func ParseSet(content string) ([]Question, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrEmptyContent
	}
	var raw any
	if err := decodeSingle([]byte(trimmed), &raw, false); err != nil {
		return nil, err
	}
	if err := setSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	var questions []Question
	if err := decodeSingle([]byte(trimmed), &questions, true); err != nil {
		return nil, err
	}
	if err := Validate(questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func decodeSingle(data []byte, target any, strict bool) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if strict {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse json: multiple documents are not supported")
		}
		return fmt.Errorf("parse json: %w", err)
	}
	return nil
}
