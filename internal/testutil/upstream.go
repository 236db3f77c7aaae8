package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/JOR4M0519/Frontend-Erudia-sub001/internal/rpc"
)

// RecordedRequest is a request seen by a FakeUpstream.
type RecordedRequest struct {
	Method string
	Path   string
	Body   string
}

// FakeUpstream is an httptest server standing in for the school API.
// Unrouted requests answer 404.
type FakeUpstream struct {
	Server *httptest.Server

	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	calls    map[string]int
	requests []RecordedRequest
}

// NewFakeUpstream starts a fake API that is closed when the test completes.
func NewFakeUpstream(t *testing.T) *FakeUpstream {
	t.Helper()
	f := &FakeUpstream{
		routes: make(map[string]http.HandlerFunc),
		calls:  make(map[string]int),
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

func routeKey(method, path string) string {
	return method + " /" + strings.TrimLeft(path, "/")
}

func (f *FakeUpstream) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	key := routeKey(r.Method, r.URL.Path)

	f.mu.Lock()
	f.calls[key]++
	f.requests = append(f.requests, RecordedRequest{Method: r.Method, Path: r.URL.Path, Body: string(body)})
	h := f.routes[key]
	f.mu.Unlock()

	if h == nil {
		http.Error(w, "no route for "+key, http.StatusNotFound)
		return
	}
	r.Body = io.NopCloser(strings.NewReader(string(body)))
	h(w, r)
}

// Handle routes method+path to h, replacing any earlier handler.
func (f *FakeUpstream) Handle(method, path string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[routeKey(method, path)] = h
}

// JSON routes method+path to a fixed JSON answer.
func (f *FakeUpstream) JSON(method, path string, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	f.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(data)
	})
}

// Fail routes method+path to an error status.
func (f *FakeUpstream) Fail(method, path string, status int) {
	f.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "injected failure", status)
	})
}

// Delay routes method+path to a JSON answer sent after d.
func (f *FakeUpstream) Delay(method, path string, d time.Duration, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	f.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(d):
		case <-r.Context().Done():
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})
}

// Calls returns how many times method+path was requested.
func (f *FakeUpstream) Calls(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[routeKey(method, path)]
}

// TotalCalls returns how many requests the fake served.
func (f *FakeUpstream) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// Requests returns a copy of every recorded request.
func (f *FakeUpstream) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// Config returns a transport config aimed at the fake with retries off.
func (f *FakeUpstream) Config() rpc.Config {
	cfg := rpc.DefaultConfig()
	cfg.BaseURL = f.Server.URL
	cfg.MaxRetries = 0
	cfg.TimeoutMs = 2000
	return cfg
}

// Client returns a transport client aimed at the fake.
func (f *FakeUpstream) Client() rpc.Client {
	return rpc.NewHTTPClient(f.Config(), rpc.NoopObserver{})
}
