package httpmock

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnJSONRoute(t *testing.T) {
	s := NewServer(t)
	s.OnJSON(http.MethodGet, "/users", http.StatusOK, map[string]string{"name": "alice"})

	resp, err := http.Get(s.URL + "/users")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	s.AssertReceived(http.MethodGet, "/users")
}

func TestUnmatchedRouteAnswers404(t *testing.T) {
	s := NewServer(t)

	resp, err := http.Get(s.URL + "/missing")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRequestCapture(t *testing.T) {
	s := NewServer(t)
	s.OnJSON(http.MethodPost, "/users", http.StatusCreated, map[string]string{"id": "1"})

	resp, err := http.Post(s.URL+"/users", "application/json", strings.NewReader(`{"name":"bob"}`))
	require.NoError(t, err)
	_ = resp.Body.Close()

	requests := s.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPost, requests[0].Method)
	assert.Equal(t, "/users", requests[0].Path)
	assert.JSONEq(t, `{"name":"bob"}`, string(requests[0].Body))
}

func TestAssertHealthy(t *testing.T) {
	s := NewServer(t)
	s.OnHealth()

	AssertHealthy(t, s.URL+"/health", time.Second)
}
