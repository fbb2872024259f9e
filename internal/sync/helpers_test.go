// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package sync

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Shashivarun2464480/Project-fe/internal/backend"
	"github.com/Shashivarun2464480/Project-fe/internal/config"
)

// fakeBackend is an httptest server that answers canned bodies and records
// every call as "METHOD /path" with the /api prefix removed.
type fakeBackend struct {
	mu     sync.Mutex
	routes map[string]fakeRoute
	calls  []string
	bodies map[string][]string
}

type fakeRoute struct {
	status int
	body   string
}

func newFakeBackend(t *testing.T) (*fakeBackend, *backend.Client) {
	t.Helper()
	f := &fakeBackend{routes: map[string]fakeRoute{}, bodies: map[string][]string{}}
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(srv.Close)

	cfg := config.BackendConfig{
		BaseURL: srv.URL + "/api",
		Timeout: 5 * time.Second,
		Breaker: config.BreakerConfig{
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      time.Minute,
			MinRequests:  1000,
			FailureRatio: 0.9,
		},
	}
	return f, backend.New(cfg, backend.TokenFunc(func() string { return "test-token" }))
}

func (f *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api")
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.bodies[key] = append(f.bodies[key], string(body))
	route, ok := f.routes[key]
	f.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(route.status)
	_, _ = w.Write([]byte(route.body))
}

// on registers a reply for "METHOD /path".
func (f *fakeBackend) on(key string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[key] = fakeRoute{status: status, body: body}
}

func (f *fakeBackend) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == key {
			n++
		}
	}
	return n
}

func (f *fakeBackend) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeBackend) lastBody(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.bodies[key]
	if len(b) == 0 {
		return ""
	}
	return b[len(b)-1]
}

func (f *fakeBackend) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
	f.bodies = map[string][]string{}
}

// publishCounter counts publishes on a store.
type publishCounter struct {
	mu sync.Mutex
	n  int
}

func (p *publishCounter) inc() {
	p.mu.Lock()
	p.n++
	p.mu.Unlock()
}

func (p *publishCounter) get() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.n
}

func checkCalls(t *testing.T, f *fakeBackend, key string, want int) {
	t.Helper()
	if got := f.count(key); got != want {
		t.Errorf("%s: expected %d calls, got %d", key, want, got)
	}
}

func checkNoCalls(t *testing.T, f *fakeBackend) {
	t.Helper()
	if n := f.total(); n != 0 {
		t.Errorf("expected no backend calls, got %d", n)
	}
}

func checkStringEqual(t *testing.T, fieldName, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: expected %q, got %q", fieldName, want, got)
	}
}

func checkIntEqual(t *testing.T, fieldName string, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("%s: expected %d, got %d", fieldName, want, got)
	}
}
