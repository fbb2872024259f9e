// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	stdsync "sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/Shashivarun2464480/Project-fe/internal/authz"
	"github.com/Shashivarun2464480/Project-fe/internal/backend"
	"github.com/Shashivarun2464480/Project-fe/internal/config"
	"github.com/Shashivarun2464480/Project-fe/internal/logging"
	"github.com/Shashivarun2464480/Project-fe/internal/session"
	"github.com/Shashivarun2464480/Project-fe/internal/sync"
	"github.com/Shashivarun2464480/Project-fe/internal/validation"
	"github.com/Shashivarun2464480/Project-fe/internal/websocket"
)

//nolint:gochecknoinits // keep handler logging out of test output
func init() {
	logging.Init(logging.Config{Level: "info", Format: "console", Output: io.Discard})
}

// fakeBackend answers canned bodies keyed by "METHOD /path" with the /api
// prefix removed.
type fakeBackend struct {
	mu     stdsync.Mutex
	routes map[string]fakeRoute
	calls  map[string]int
}

type fakeRoute struct {
	status int
	body   string
}

func (f *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + strings.TrimPrefix(r.URL.Path, "/api")
	f.mu.Lock()
	f.calls[key]++
	route, ok := f.routes[key]
	f.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(route.status)
	_, _ = w.Write([]byte(route.body))
}

func (f *fakeBackend) on(key string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[key] = fakeRoute{status: status, body: body}
}

func (f *fakeBackend) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

type testEnv struct {
	fake    *fakeBackend
	holder  *session.Holder
	svcs    *sync.Services
	handler http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	fake := &fakeBackend{routes: map[string]fakeRoute{}, calls: map[string]int{}}
	srv := httptest.NewServer(http.HandlerFunc(fake.serve))
	t.Cleanup(srv.Close)

	var holder *session.Holder
	client := backend.New(config.BackendConfig{
		BaseURL: srv.URL + "/api",
		Timeout: 5 * time.Second,
		Breaker: config.BreakerConfig{
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      time.Minute,
			MinRequests:  1000,
			FailureRatio: 0.9,
		},
	}, backend.TokenFunc(func() string { return holder.Token() }))
	holder = session.NewHolder(client.Auth, session.NewMemoryTokenStore())

	nav, err := authz.NewNavigator(config.AuthzConfig{})
	if err != nil {
		t.Fatalf("NewNavigator: %v", err)
	}
	svcs := sync.NewServices(client, holder, time.Minute)
	router := NewRouter(config.ServerConfig{}, Deps{
		Session:      holder,
		Services:     svcs,
		Navigator:    nav,
		Hub:          websocket.NewHub(),
		BreakerState: client.BreakerState,
	})
	return &testEnv{fake: fake, holder: holder, svcs: svcs, handler: router.Handler()}
}

// signIn logs in through the holder as a user with role.
func (e *testEnv) signIn(t *testing.T, role string) {
	t.Helper()
	e.fake.on("POST /auth/login", 200,
		`{"token": "opaque-token", "user": {"userId": "u1", "name": "Eve", "email": "eve@corp.test", "role": "`+role+`"}}`)
	if _, err := e.holder.Login(context.Background(), validation.LoginForm{Email: "eve@corp.test", Password: "secret1"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
}

func (e *testEnv) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)

	var resp APIResponse
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode %s: %v", rec.Body.String(), err)
		}
	}
	return rec, resp
}

// data re-decodes the envelope payload into dst.
func data(t *testing.T, resp APIResponse, dst any) {
	t.Helper()
	raw, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		t.Fatalf("decode data %s: %v", raw, err)
	}
}

func checkStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status: expected %d, got %d (%s)", want, rec.Code, rec.Body.String())
	}
}

func checkErrorCode(t *testing.T, resp APIResponse, want string) {
	t.Helper()
	if resp.Error == nil {
		t.Fatalf("expected error %s, got success", want)
	}
	if resp.Error.Code != want {
		t.Errorf("error code: expected %s, got %s", want, resp.Error.Code)
	}
}

func checkCalls(t *testing.T, f *fakeBackend, key string, want int) {
	t.Helper()
	if got := f.count(key); got != want {
		t.Errorf("%s: expected %d calls, got %d", key, want, got)
	}
}
