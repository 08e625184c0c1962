package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/imobiliaria/portal-locacao/internal/backend"
)

// FakeBackend is an httptest server standing in for the REST backend.
// Routes are matched on "METHOD /path" (query string excluded).
type FakeBackend struct {
	Server *httptest.Server

	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	calls  map[string]int
}

// NewFakeBackend starts a fake backend that is closed when the test ends.
// Unknown routes answer 404.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	fb := &FakeBackend{
		routes: make(map[string]http.HandlerFunc),
		calls:  make(map[string]int),
	}
	fb.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		fb.mu.Lock()
		fb.calls[key]++
		h, ok := fb.routes[key]
		fb.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
	t.Cleanup(fb.Server.Close)
	return fb
}

// Handle registers a handler for "METHOD /path".
func (fb *FakeBackend) Handle(route string, h http.HandlerFunc) *FakeBackend {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.routes[route] = h
	return fb
}

// Calls returns how many requests hit route.
func (fb *FakeBackend) Calls(route string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.calls[route]
}

// JSON registers a route answering 200 with the given raw JSON body.
func (fb *FakeBackend) JSON(route string, body []byte) *FakeBackend {
	return fb.Handle(route, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(body) //nolint:errcheck // test server
	})
}

// Status registers a route answering with an empty body and the given status.
func (fb *FakeBackend) Status(route string, status int) *FakeBackend {
	return fb.Handle(route, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
}

// Client returns a backend client pointed at the fake server.
func (fb *FakeBackend) Client() *backend.HTTPClient {
	return backend.NewHTTPClient(fb.Server.URL, "", 5*time.Second, zap.NewNop())
}
