// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shashivarun2464480/Project-fe/internal/models"
)

// NotificationListResponse is the notification panel.
type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}

// ListNotifications serves the cache, reloading it first on refresh.
func (rt *Router) ListNotifications(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	svc := rt.deps.Services.Notifications
	if queryBool(r.URL.Query().Get("refresh")) {
		if _, err := svc.Load(r.Context()); err != nil {
			rw.Fail(err)
			return
		}
	}
	rt.writeNotifications(rw)
}

// MarkRead marks one notification read. The cache keeps the change even if
// the server rejects it; the error is still reported.
func (rt *Router) MarkRead(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if err := rt.deps.Services.Notifications.MarkAsRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		rw.Fail(err)
		return
	}
	rt.writeNotifications(rw)
}

// MarkAllRead marks every notification read, with the same failure
// behaviour as MarkRead.
func (rt *Router) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if err := rt.deps.Services.Notifications.MarkAllAsRead(r.Context()); err != nil {
		rw.Fail(err)
		return
	}
	rt.writeNotifications(rw)
}

func (rt *Router) writeNotifications(rw *ResponseWriter) {
	svc := rt.deps.Services.Notifications
	rw.Success(NotificationListResponse{
		Notifications: svc.Notifications().Get(),
		UnreadCount:   svc.UnreadCount(),
	})
}
