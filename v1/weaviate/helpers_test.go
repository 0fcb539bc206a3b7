package weaviate

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

// fakeServer answers every request with the handler and records it.
type fakeServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, body string)) *fakeServer {
	t.Helper()
	fs := &fakeServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		fs.mu.Lock()
		fs.requests = append(fs.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   string(raw),
		})
		fs.mu.Unlock()
		handler(w, r, string(raw))
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeServer) Requests() []recordedRequest {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]recordedRequest(nil), fs.requests...)
}

func (fs *fakeServer) Last(t *testing.T) recordedRequest {
	t.Helper()
	reqs := fs.Requests()
	require.NotEmpty(t, reqs, "no request recorded")
	return reqs[len(reqs)-1]
}

func (fs *fakeServer) config() Config {
	return Config{
		Scheme:           "http",
		Host:             strings.TrimPrefix(fs.URL, "http://"),
		SkipVersionCheck: true,
	}
}

// newTestClient starts a fake server answering status and body to every
// request and returns a client pointed at it.
func newTestClient(t *testing.T, status int, body string) (*Client, *fakeServer) {
	t.Helper()
	return newTestClientWithHandler(t, func(w http.ResponseWriter, r *http.Request, _ string) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

func newTestClientWithHandler(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, body string)) (*Client, *fakeServer) {
	t.Helper()
	fs := newFakeServer(t, handler)
	client, err := NewClient(fs.config())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, fs
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

const (
	testID1 = "00000000-0000-0000-0000-000000000001"
	testID2 = "00000000-0000-0000-0000-000000000002"
)
