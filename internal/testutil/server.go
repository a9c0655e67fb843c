package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// CompletionServerConfig scripts a fake chat completion endpoint.
type CompletionServerConfig struct {
	// Content is returned as the first choice's message content.
	Content string
	// Status overrides the response status; RawBody replaces the payload.
	Status  int
	RawBody string
}

// ServerInstance represents a running HTTP test server.
type ServerInstance struct {
	BaseURL string
	Client  *http.Client

	mu       sync.Mutex
	requests []*http.Request
	bodies   [][]byte
}

// Requests returns the number of requests served so far.
func (s *ServerInstance) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// LastRequest returns the most recent request and its body.
func (s *ServerInstance) LastRequest() (*http.Request, []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return nil, nil
	}
	last := len(s.requests) - 1
	return s.requests[last], s.bodies[last]
}

// StartCompletionServer launches a /chat/completions endpoint that replies
// with cfg on every request. It is closed when the test ends.
func StartCompletionServer(t *testing.T, cfg CompletionServerConfig) *ServerInstance {
	t.Helper()
	body := []byte(cfg.RawBody)
	if cfg.RawBody == "" {
		payload, err := json.Marshal(map[string]any{
			"choices": []map[string]any{{
				"message": map[string]string{"role": "assistant", "content": cfg.Content},
			}},
		})
		if err != nil {
			t.Fatalf("marshal completion: %v", err)
		}
		body = payload
	}
	status := cfg.Status
	if status == 0 {
		status = http.StatusOK
	}

	instance := &ServerInstance{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		instance.mu.Lock()
		instance.requests = append(instance.requests, r.Clone(r.Context()))
		instance.bodies = append(instance.bodies, data)
		instance.mu.Unlock()

		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)
	instance.BaseURL = server.URL
	instance.Client = server.Client()
	return instance
}
