// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package services

import (
	"context"

	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/session"
	"github.com/Shashivarun2464480/Project-fe/internal/sync"
	"github.com/Shashivarun2464480/Project-fe/internal/websocket"
)

// UnreadCount is the payload of unread_count messages.
type UnreadCount struct {
	Unread int `json:"unread"`
}

// SessionState is the payload of session messages. It never carries the
// token.
type SessionState struct {
	SignedIn bool         `json:"signedIn"`
	User     *models.User `json:"user,omitempty"`
}

// CacheBridge pushes every cache publish to websocket clients and seeds new
// clients with the current caches.
type CacheBridge struct {
	hub      *websocket.Hub
	services *sync.Services
	session  *session.Holder
}

// NewCacheBridge returns a bridge. Subscriptions exist only while served.
func NewCacheBridge(hub *websocket.Hub, svcs *sync.Services, holder *session.Holder) *CacheBridge {
	return &CacheBridge{hub: hub, services: svcs, session: holder}
}

// Serve subscribes to the caches until ctx is cancelled.
func (b *CacheBridge) Serve(ctx context.Context) error {
	unsubscribers := []func(){
		websocket.Forward(b.hub, b.services.Ideas.Ideas(), websocket.MessageTypeIdeas, nil),
		websocket.Forward(b.hub, b.services.Users.Users(), websocket.MessageTypeUsers, nil),
		websocket.Forward(b.hub, b.services.Notifications.Notifications(), websocket.MessageTypeNotifications, nil),
		websocket.Forward(b.hub, b.services.Notifications.Notifications(), websocket.MessageTypeUnreadCount,
			func(list []models.Notification) any { return unreadOf(list) }),
		b.session.Subscribe(func(s *session.Session) {
			b.hub.BroadcastJSON(websocket.MessageTypeSession, sessionState(s))
		}),
	}
	defer func() {
		for _, unsubscribe := range unsubscribers {
			unsubscribe()
		}
	}()

	// Installed last so a seeded client never misses a publish.
	b.hub.SetSnapshot(b.snapshot)
	defer b.hub.SetSnapshot(nil)

	<-ctx.Done()
	return ctx.Err()
}

func (b *CacheBridge) snapshot() []websocket.Message {
	return []websocket.Message{
		{Type: websocket.MessageTypeSession, Data: sessionState(b.session.Current())},
		{Type: websocket.MessageTypeIdeas, Data: b.services.Ideas.Ideas().Get()},
		{Type: websocket.MessageTypeNotifications, Data: b.services.Notifications.Notifications().Get()},
		{Type: websocket.MessageTypeUnreadCount, Data: b.unread()},
	}
}

func (b *CacheBridge) unread() UnreadCount {
	return UnreadCount{Unread: b.services.Notifications.UnreadCount()}
}

func unreadOf(list []models.Notification) UnreadCount {
	n := 0
	for _, item := range list {
		if item.Unread() {
			n++
		}
	}
	return UnreadCount{Unread: n}
}

func sessionState(s *session.Session) SessionState {
	if s == nil {
		return SessionState{}
	}
	u := s.User
	return SessionState{SignedIn: true, User: &u}
}

func (b *CacheBridge) String() string {
	return "cache-bridge"
}
