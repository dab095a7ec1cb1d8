package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockServer creates an httptest.Server with common test patterns.
// It provides a fluent API for setting up expected request verification
// and response configuration.
type mockServer struct {
	t           *testing.T
	handler     http.HandlerFunc
	expectPath  string
	expectQuery url.Values
}

// newMockServer creates a new mock server builder.
// Call .Build() to create the actual httptest.Server.
func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	return &mockServer{t: t}
}

// ExpectPath sets the expected request path and verifies it in the handler.
func (m *mockServer) ExpectPath(path string) *mockServer {
	m.expectPath = path
	return m
}

// ExpectQuery verifies the request carries exactly these query parameters.
func (m *mockServer) ExpectQuery(q url.Values) *mockServer {
	m.expectQuery = q
	return m
}

// Handler sets a custom handler function. The function receives the writer
// and request after path verification has passed.
func (m *mockServer) Handler(h func(w http.ResponseWriter, r *http.Request)) *mockServer {
	m.handler = h
	return m
}

// RespondJSON sets up a handler that responds with JSON-encoded data.
func (m *mockServer) RespondJSON(v any) *mockServer {
	m.handler = func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(m.t, w, http.StatusOK, v)
	}
	return m
}

// RespondAPIError sets up a handler that responds like the server's error writer.
func (m *mockServer) RespondAPIError(status int, code, message string) *mockServer {
	m.handler = func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(m.t, w, status, map[string]string{"error": message, "code": code})
	}
	return m
}

// RespondError sets up a handler that responds with an error status and plain message.
func (m *mockServer) RespondError(code int, message string) *mockServer {
	m.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
		_, _ = w.Write([]byte(message))
	}
	return m
}

// Build creates and returns the httptest.Server, closed on test cleanup.
func (m *mockServer) Build() *httptest.Server {
	m.t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(m.t, http.MethodGet, r.Method, "unexpected request method")
		if m.expectPath != "" {
			assert.Equal(m.t, m.expectPath, r.URL.Path, "unexpected request path")
		}
		if m.expectQuery != nil {
			assert.Equal(m.t, m.expectQuery, r.URL.Query(), "unexpected query")
		}
		if m.handler != nil {
			m.handler(w, r)
		}
	})

	srv := httptest.NewServer(handler)
	m.t.Cleanup(srv.Close)
	return srv
}

// respondJSON writes a JSON response with proper content-type header.
func respondJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode JSON response: %v", err)
	}
}

// runCLI executes the root command with args and returns its stdout.
// Global flag state is restored afterwards.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		serverURL = "http://localhost:8585"
		jsonOutput = false
		configPath = ""
		_ = pairsListCmd.Flags().Set("actor", "")
		_ = pairsListCmd.Flags().Set("limit", "0")
		_ = pairsPrecomputeCmd.Flags().Set("popular", "false")
		_ = pairsPrecomputeCmd.Flags().Set("pages", "0")
		_ = configInitCmd.Flags().Set("force", "false")
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func strPtr(s string) *string { return &s }
