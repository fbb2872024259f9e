// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package backend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/translate"
)

// NotificationAPI covers /notification for the authenticated user.
type NotificationAPI struct{ c *Client }

// List returns the current user's notifications.
func (a *NotificationAPI) List(ctx context.Context) ([]models.Notification, error) {
	list, err := a.c.getList(ctx, "notification", "/notification")
	if err != nil {
		return nil, err
	}
	return translate.ToNotifications(list), nil
}

// MarkRead marks one notification read.
func (a *NotificationAPI) MarkRead(ctx context.Context, id string) error {
	_, err := a.c.write(ctx, "notification", http.MethodPut, "/notification/"+seg(id)+"/read", struct{}{})
	return err
}

// MarkAllRead marks every notification read.
func (a *NotificationAPI) MarkAllRead(ctx context.Context) error {
	_, err := a.c.write(ctx, "notification", http.MethodPut, "/notification/read-all", struct{}{})
	return err
}

// UnreadCount returns the server-side unread count. The backend answers
// with either a bare number or {"count": n}.
func (a *NotificationAPI) UnreadCount(ctx context.Context) (int, error) {
	data, err := a.c.do(ctx, "notification", http.MethodGet, "/notification/unread-count", nil)
	if err != nil {
		return 0, err
	}
	text := strings.TrimSpace(string(data))
	if n, convErr := strconv.Atoi(text); convErr == nil {
		return n, nil
	}
	r, err := translate.Decode(data)
	if err != nil {
		return 0, fmt.Errorf("GET /notification/unread-count: %w", err)
	}
	return r.Int("count", "unreadCount"), nil
}

// Delete removes a notification.
func (a *NotificationAPI) Delete(ctx context.Context, id string) error {
	_, err := a.c.do(ctx, "notification", http.MethodDelete, "/notification/"+seg(id), nil)
	return err
}
