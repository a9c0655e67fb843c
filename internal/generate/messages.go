package generate

import "fmt"

// questionPrompt asks for the exact wire shape question.ParseSet accepts.
const questionPrompt = "Write exactly 3 four-choice quiz questions about basic Go syntax. " +
	"Respond with JSON only, in this form: " +
	`[{"text": "...", "choices": ["...", "...", "...", "..."], "answer": 0}, ...]. ` +
	"answer is the 0-based index of the correct choice. " +
	"Do not include explanations, markdown, or any other text."

// chatRequest is the JSON payload sent to the completion endpoint.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// chatMessage is a single chat message.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse holds the fields read from a completion response.
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func buildChatRequest(settings Settings) chatRequest {
	return chatRequest{
		Model: settings.Model,
		Messages: []chatMessage{{
			Role:    "user",
			Content: questionPrompt,
		}},
		Temperature: settings.Temperature,
		MaxTokens:   settings.MaxTokens,
	}
}

// primaryContent returns the first choice's message text.
func (r chatResponse) primaryContent() (string, error) {
	if r.Error != nil && r.Error.Message != "" {
		return "", fmt.Errorf("api error: %s", r.Error.Message)
	}
	if len(r.Choices) == 0 {
		return "", fmt.Errorf("response has no choices")
	}
	return r.Choices[0].Message.Content, nil
}
