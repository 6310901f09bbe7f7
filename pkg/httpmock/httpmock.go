// Package httpmock provides a mock HTTP server and health-check assertions
// for service tests.
package httpmock

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// Server is a stub HTTP server with per-route handlers and request capture.
// Unmatched requests answer 404 with a JSON error body.
type Server struct {
	*httptest.Server
	t *testing.T

	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	seen     []RecordedRequest
}

// RecordedRequest captures one request the server received.
type RecordedRequest struct {
	Method string
	Path   string
	Body   []byte
}

// NewServer starts a mock server and shuts it down with the test.
func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		t:        t,
		handlers: make(map[string]http.HandlerFunc),
	}

	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		s.mu.Lock()
		s.seen = append(s.seen, RecordedRequest{Method: r.Method, Path: r.URL.Path, Body: body})
		handler, ok := s.handlers[r.Method+" "+r.URL.Path]
		s.mu.Unlock()

		if ok {
			handler(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
	}))
	t.Cleanup(s.Server.Close)

	return s
}

// On registers a handler for a method and path.
func (s *Server) On(method, path string, handler http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[method+" "+path] = handler
}

// OnJSON registers a handler that answers with a JSON body and status code.
func (s *Server) OnJSON(method, path string, statusCode int, response any) {
	s.On(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_ = json.NewEncoder(w).Encode(response)
	})
}

// OnHealth registers a conventional GET /health endpoint answering
// {"status":"ok"}.
func (s *Server) OnHealth() {
	s.OnJSON(http.MethodGet, "/health", http.StatusOK, map[string]string{"status": "ok"})
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.seen))
	copy(out, s.seen)
	return out
}

// AssertReceived fails the test unless at least one request matched the
// method and path.
func (s *Server) AssertReceived(method, path string) {
	s.t.Helper()
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			return
		}
	}
	s.t.Errorf("no %s %s request received", method, path)
}

// AssertHealthy fails the test unless url answers HTTP 200 with a JSON body
// whose "status" field is "ok" within the timeout. The endpoint is polled,
// so a service still starting up gets a grace period.
func AssertHealthy(t *testing.T, url string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	var lastErr error
	for time.Now().Before(deadline) {
		if lastErr = checkHealth(url); lastErr == nil {
			return
		}
		time.Sleep(25 * time.Millisecond)
	}
	t.Fatalf("health check on %s did not pass within %s: %v", url, timeout, lastErr)
}

func checkHealth(url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode health body: %w", err)
	}
	if body.Status != "ok" {
		return fmt.Errorf("unexpected health status %q", body.Status)
	}
	return nil
}
