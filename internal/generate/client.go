package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"aiquiz/internal/question"
)

// ErrMissingAPIKey indicates the credential variable is unset or blank.
var ErrMissingAPIKey = errors.New("api key is not set")

// HTTPDoer abstracts HTTP clients used by the chat client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ChatClient generates questions through a chat completion endpoint.
type ChatClient struct {
	APIKey   string
	Settings Settings
	Client   HTTPDoer
	Verbose  io.Writer
}

var _ Generator = (*ChatClient)(nil)

// FromEnv reads the credential once through lookup and builds a client.
// It returns ErrMissingAPIKey without touching the network when unset.
func FromEnv(lookup func(string) string, settings Settings, client HTTPDoer) (*ChatClient, error) {
	settings = settings.withDefaults()
	if lookup == nil {
		return nil, fmt.Errorf("%s: %w", settings.APIKeyEnv, ErrMissingAPIKey)
	}
	apiKey := strings.TrimSpace(lookup(settings.APIKeyEnv))
	if apiKey == "" {
		return nil, fmt.Errorf("%s: %w", settings.APIKeyEnv, ErrMissingAPIKey)
	}
	return NewChatClient(settings, apiKey, client)
}

// NewChatClient constructs a client with an explicit credential.
func NewChatClient(settings Settings, apiKey string, client HTTPDoer) (*ChatClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	settings = settings.withDefaults()
	settings.BaseURL = strings.TrimRight(settings.BaseURL, "/")
	if client == nil {
		client = &http.Client{Timeout: settings.Timeout}
	}
	return &ChatClient{
		APIKey:   apiKey,
		Settings: settings,
		Client:   client,
	}, nil
}

// Generate sends one completion request and parses its content as a
// question set. There is no retry.
func (c *ChatClient) Generate(ctx context.Context) ([]question.Question, error) {
	payload, err := json.Marshal(buildChatRequest(c.Settings))
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := c.Settings.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	c.logVerbose("request %s model=%s endpoint=%s", requestID, c.Settings.Model, endpoint)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	c.logVerbose("response %s status=%d bytes=%d", requestID, resp.StatusCode, len(body))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("completion error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded chatResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	content, err := decoded.primaryContent()
	if err != nil {
		return nil, err
	}
	questions, err := question.ParseSet(content)
	if err != nil {
		c.logVerbose("unparseable content:\n%s", truncateContent(content))
		return nil, fmt.Errorf("parse questions: %w", err)
	}
	return questions, nil
}
