// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package api

import (
	"net/http"

	"github.com/Shashivarun2464480/Project-fe/internal/backend"
	"github.com/Shashivarun2464480/Project-fe/internal/logging"
	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/views"
)

// UserListResponse is the admin user directory.
type UserListResponse struct {
	Users  []models.User    `json:"users"`
	Filter views.UserFilter `json:"filter"`

	// SearchError is set when a server search failed and the list was
	// filtered locally instead.
	SearchError string `json:"searchError,omitempty"`
}

// ListUsers applies role, status and search filters to the user directory.
// The cache is loaded on first use or on refresh.
func (rt *Router) ListUsers(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	q := r.URL.Query()
	users := rt.deps.Services.Users

	if queryBool(q.Get("refresh")) || len(users.Users().Get()) == 0 {
		if _, err := users.Load(r.Context()); err != nil {
			rw.Fail(err)
			return
		}
	}

	var role models.Role
	if v := q.Get("role"); v != "" {
		role = models.ParseRole(v)
	}
	var status models.UserStatus
	if v := q.Get("status"); v != "" {
		status = models.ParseUserStatus(v)
	}
	list := rt.directory.SetFilter(role, status)

	resp := UserListResponse{}
	if q.Has("q") {
		found, err := rt.directory.Search(r.Context(), q.Get("q"))
		list = found
		if err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Serving locally filtered users")
			resp.SearchError = backend.UserMessage(err)
		}
	}
	resp.Users = list
	resp.Filter = rt.directory.Filter()
	rw.Success(resp)
}
