// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package sync

import (
	"context"
	"fmt"
	"slices"

	"github.com/Shashivarun2464480/Project-fe/internal/logging"
	"github.com/Shashivarun2464480/Project-fe/internal/metrics"
	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/store"
)

// NotificationSource is the notification part of the backend.
type NotificationSource interface {
	List(ctx context.Context) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	UnreadCount(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}

// NotificationService owns the signed-in user's notifications.
//
// Marking read is optimistic: the cache changes first and is not reverted
// when the server refuses. The next poll replaces the cache with the
// server's view.
type NotificationService struct {
	source NotificationSource
	cache  *store.Store[[]models.Notification]
}

// NewNotificationService returns a service with an empty cache.
func NewNotificationService(source NotificationSource) *NotificationService {
	s := &NotificationService{
		source: source,
		cache:  store.New[[]models.Notification]("notifications", []models.Notification{}),
	}
	s.cache.Subscribe(func(list []models.Notification) {
		metrics.UnreadNotifications.Set(float64(countUnread(list)))
	})
	return s
}

// Notifications returns the observable notification collection.
func (s *NotificationService) Notifications() *store.Store[[]models.Notification] {
	return s.cache
}

// Load fetches notifications and publishes them newest first. The cache is
// kept on failure so a flaky poll does not blank the list.
func (s *NotificationService) Load(ctx context.Context) ([]models.Notification, error) {
	list, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	sorted := append([]models.Notification{}, list...)
	slices.SortStableFunc(sorted, func(a, b models.Notification) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	s.cache.Set(sorted)
	logging.Ctx(ctx).Debug().Int("count", len(sorted)).Int("unread", countUnread(sorted)).Msg("Notifications loaded")
	return append([]models.Notification(nil), sorted...), nil
}

// MarkAsRead marks one notification read locally, then on the server.
func (s *NotificationService) MarkAsRead(ctx context.Context, id string) error {
	s.cache.UpdateIf(func(cur []models.Notification) ([]models.Notification, bool) {
		at := slices.IndexFunc(cur, func(n models.Notification) bool { return n.ID == id })
		if at < 0 || !cur[at].Unread() {
			return cur, false
		}
		out := slices.Clone(cur)
		out[at].Status = models.NotificationRead
		return out, true
	})

	err := s.source.MarkRead(ctx, id)
	metrics.RecordOptimisticUpdate("mark_read", err)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("notification_id", id).Msg("Server refused mark-as-read; cache kept")
		return err
	}
	return nil
}

// MarkAllAsRead marks every notification read locally, then on the server.
// When nothing is unread the cache is left alone and nothing is published.
func (s *NotificationService) MarkAllAsRead(ctx context.Context) error {
	s.cache.UpdateIf(func(cur []models.Notification) ([]models.Notification, bool) {
		if countUnread(cur) == 0 {
			return cur, false
		}
		out := slices.Clone(cur)
		for n := range out {
			out[n].Status = models.NotificationRead
		}
		return out, true
	})

	err := s.source.MarkAllRead(ctx)
	metrics.RecordOptimisticUpdate("mark_all_read", err)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Server refused mark-all-as-read; cache kept")
		return err
	}
	return nil
}

// UnreadCount counts unread notifications in the cache.
func (s *NotificationService) UnreadCount() int {
	return countUnread(s.cache.Get())
}

// FetchUnreadCount asks the server for the unread count.
func (s *NotificationService) FetchUnreadCount(ctx context.Context) (int, error) {
	return s.source.UnreadCount(ctx)
}

// Delete removes a notification on the server, then from the cache.
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	if err := s.source.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.UpdateIf(func(cur []models.Notification) ([]models.Notification, bool) {
		at := slices.IndexFunc(cur, func(n models.Notification) bool { return n.ID == id })
		if at < 0 {
			return cur, false
		}
		return slices.Delete(slices.Clone(cur), at, at+1), true
	})
	return nil
}

// Clear empties the cache. Called on sign-out.
func (s *NotificationService) Clear() {
	s.cache.Set([]models.Notification{})
}

func countUnread(list []models.Notification) int {
	n := 0
	for i := range list {
		if list[i].Unread() {
			n++
		}
	}
	return n
}
