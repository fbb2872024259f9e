// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package api

import (
	"net/http"
	"time"

	"github.com/Shashivarun2464480/Project-fe/internal/authz"
	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/validation"
)

// SessionResponse describes the signed-in user. The token is never exposed.
type SessionResponse struct {
	User      models.User `json:"user"`
	Home      string      `json:"home"`
	ExpiresAt *time.Time  `json:"expiresAt,omitempty"`
}

// Login signs in and returns the landing route for the user's role.
func (rt *Router) Login(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var form validation.LoginForm
	if err := decodeBody(w, r, &form); err != nil {
		rw.BadRequest("Invalid request body")
		return
	}
	if _, err := rt.deps.Session.Login(r.Context(), form); err != nil {
		rw.Fail(err)
		return
	}
	rw.Success(rt.sessionResponse())
}

// Logout signs out. The poller and caches react through the session
// subscription.
func (rt *Router) Logout(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if err := rt.deps.Session.Logout(r.Context()); err != nil {
		rw.Fail(err)
		return
	}
	rw.Success(map[string]string{"home": "/login"})
}

// Session returns the current session.
func (rt *Router) Session(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	resp := rt.sessionResponse()
	if resp == nil {
		rw.Unauthorized("Unauthorized: sign in first")
		return
	}
	rw.Success(resp)
}

func (rt *Router) sessionResponse() *SessionResponse {
	s := rt.deps.Session.Current()
	if s == nil {
		return nil
	}
	resp := &SessionResponse{User: s.User, Home: authz.HomeRoute(s.User.Role)}
	if !s.ExpiresAt.IsZero() {
		exp := s.ExpiresAt
		resp.ExpiresAt = &exp
	}
	return resp
}
