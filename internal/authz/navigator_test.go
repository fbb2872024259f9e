// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package authz

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Shashivarun2464480/Project-fe/internal/config"
	"github.com/Shashivarun2464480/Project-fe/internal/models"
)

func newTestNavigator(t *testing.T) *Navigator {
	t.Helper()
	n, err := NewNavigator(config.AuthzConfig{})
	if err != nil {
		t.Fatalf("NewNavigator: %v", err)
	}
	return n
}

func TestHomeRoute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role models.Role
		want string
	}{
		{models.RoleAdmin, "/admin/dashboard"},
		{models.RoleManager, "/manager/dashboard"},
		{models.RoleEmployee, "/employee/dashboard"},
		{"", "/employee/dashboard"},
	}
	for _, tt := range tests {
		if got := HomeRoute(tt.role); got != tt.want {
			t.Errorf("HomeRoute(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestHomeRouteIsNavigable(t *testing.T) {
	t.Parallel()

	n := newTestNavigator(t)
	for _, role := range []models.Role{models.RoleAdmin, models.RoleManager, models.RoleEmployee} {
		if !n.CanNavigate(role, HomeRoute(role)) {
			t.Errorf("%s cannot open its own home route", role)
		}
	}
}

func TestCan(t *testing.T) {
	t.Parallel()

	n := newTestNavigator(t)
	tests := []struct {
		name   string
		role   models.Role
		path   string
		action string
		want   bool
	}{
		{"admin pages", models.RoleAdmin, "/admin/users", ActionRead, true},
		{"employee blocked from admin", models.RoleEmployee, "/admin/users", ActionRead, false},
		{"manager blocked from employee pages", models.RoleManager, "/employee/dashboard", ActionRead, false},
		{"shared notifications page", models.RoleManager, "/notifications", ActionRead, true},
		{"everyone lists ideas", models.RoleAdmin, "/api/v1/ideas", ActionRead, true},
		{"employee submits", models.RoleEmployee, "/api/v1/ideas", ActionWrite, true},
		{"manager cannot submit", models.RoleManager, "/api/v1/ideas", ActionWrite, false},
		{"employee downvotes", models.RoleEmployee, "/api/v1/ideas/42/downvote", ActionWrite, true},
		{"manager changes status", models.RoleManager, "/api/v1/ideas/42/status", ActionWrite, true},
		{"employee cannot change status", models.RoleEmployee, "/api/v1/ideas/42/status", ActionWrite, false},
		{"admin lists users", models.RoleAdmin, "/api/v1/users", ActionRead, true},
		{"manager cannot list users", models.RoleManager, "/api/v1/users", ActionRead, false},
		{"mark read", models.RoleEmployee, "/api/v1/notifications/7/read", ActionWrite, true},
		{"unknown role", "guest", "/api/v1/ideas", ActionRead, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := n.Can(tt.role, tt.path, tt.action); got != tt.want {
				t.Errorf("Can(%s, %s, %s) = %v, want %v", tt.role, tt.path, tt.action, got, tt.want)
			}
		})
	}
}

func TestPolicyFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	policy := filepath.Join(dir, "policy.csv")
	if err := os.WriteFile(policy, []byte("p, employee, /api/v1/users, read\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	n, err := NewNavigator(config.AuthzConfig{PolicyPath: policy})
	if err != nil {
		t.Fatalf("NewNavigator: %v", err)
	}
	if !n.Can(models.RoleEmployee, "/api/v1/users", ActionRead) {
		t.Error("file policy should grant employee user listing")
	}
	if n.Can(models.RoleAdmin, "/api/v1/users", ActionRead) {
		t.Error("file policy replaces the embedded one")
	}
}

func TestLoadEmbeddedPolicyRejectsMalformedLines(t *testing.T) {
	t.Parallel()

	n := newTestNavigator(t)
	if err := loadEmbeddedPolicy(n.enforcer, "p, admin, /x\n"); err == nil {
		t.Error("expected malformed policy error")
	}
}

func TestActionForMethod(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		http.MethodGet:     ActionRead,
		http.MethodHead:    ActionRead,
		http.MethodPost:    ActionWrite,
		http.MethodPut:     ActionWrite,
		http.MethodPatch:   ActionWrite,
		http.MethodDelete:  ActionDelete,
		http.MethodOptions: ActionRead,
	}
	for method, want := range tests {
		if got := ActionForMethod(method); got != want {
			t.Errorf("ActionForMethod(%s) = %s, want %s", method, got, want)
		}
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	n := newTestNavigator(t)
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	tests := []struct {
		name     string
		role     models.Role
		signedIn bool
		method   string
		path     string
		want     int
	}{
		{"signed out", "", false, http.MethodGet, "/api/v1/ideas", http.StatusUnauthorized},
		{"allowed", models.RoleEmployee, true, http.MethodPost, "/api/v1/ideas/3/upvote", http.StatusNoContent},
		{"denied", models.RoleEmployee, true, http.MethodPut, "/api/v1/ideas/3/status", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := n.Middleware(func(*http.Request) (models.Role, bool) { return tt.role, tt.signedIn })(ok)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
