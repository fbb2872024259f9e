// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package authz

import (
	"net/http"

	"github.com/Shashivarun2464480/Project-fe/internal/logging"
	"github.com/Shashivarun2464480/Project-fe/internal/models"
)

// RoleFunc returns the role of the signed-in user, or false when nobody is
// signed in.
type RoleFunc func(r *http.Request) (models.Role, bool)

// Middleware authorizes each request by its path and method. Requests
// without a session get 401; denied requests get 403.
func (n *Navigator) Middleware(roleOf RoleFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := roleOf(r)
			if !ok {
				http.Error(w, "Unauthorized: sign in first", http.StatusUnauthorized)
				return
			}

			action := ActionForMethod(r.Method)
			if !n.Can(role, r.URL.Path, action) {
				logging.Ctx(r.Context()).Debug().
					Str("role", string(role)).
					Str("path", r.URL.Path).
					Str("action", action).
					Msg("Request denied")
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
