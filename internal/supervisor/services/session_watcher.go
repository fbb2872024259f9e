// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package services

import (
	"context"

	"github.com/Shashivarun2464480/Project-fe/internal/logging"
	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/session"
	"github.com/Shashivarun2464480/Project-fe/internal/sync"
)

// SessionSource is satisfied by *session.Holder.
type SessionSource interface {
	Active() bool
	Subscribe(fn func(*session.Session)) (unsubscribe func())
}

// Poller is satisfied by *sync.NotificationPoller.
type Poller interface {
	Start(ctx context.Context)
	Stop()
	State() sync.PollerState
	SessionEnded() <-chan struct{}
}

// NotificationCache is satisfied by *sync.NotificationService.
type NotificationCache interface {
	Load(ctx context.Context) ([]models.Notification, error)
	Clear()
}

// SessionWatcher ties notification polling to the session: polling starts
// when a user signs in and stops, with the notification cache cleared, when
// the session ends. A token that expires publishes nothing, so the poller's
// SessionEnded signal is watched as well.
type SessionWatcher struct {
	session       SessionSource
	poller        Poller
	notifications NotificationCache
}

// NewSessionWatcher returns a watcher. It does nothing until served.
func NewSessionWatcher(s SessionSource, p Poller, n NotificationCache) *SessionWatcher {
	return &SessionWatcher{session: s, poller: p, notifications: n}
}

// Serve reacts to session changes until ctx is cancelled. The subscription
// callback runs on the signing-in goroutine, so it only signals.
func (w *SessionWatcher) Serve(ctx context.Context) error {
	changed := make(chan struct{}, 1)
	unsubscribe := w.session.Subscribe(func(*session.Session) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()
	defer w.poller.Stop()

	w.apply(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changed:
			w.apply(ctx)
		case <-w.poller.SessionEnded():
			w.apply(ctx)
		}
	}
}

func (w *SessionWatcher) apply(ctx context.Context) {
	if !w.session.Active() {
		if w.poller.State() == sync.PollerPolling {
			logging.Info().Msg("Session ended; notification polling stopped")
		}
		w.poller.Stop()
		w.notifications.Clear()
		return
	}
	if w.poller.State() == sync.PollerPolling {
		return
	}

	// The poller waits a full interval before its first tick; the bell
	// shows the current list right away.
	if _, err := w.notifications.Load(ctx); err != nil {
		logging.Warn().Err(err).Msg("Initial notification load failed")
	}
	w.poller.Start(ctx)
	logging.Info().Msg("Notification polling started")
}

func (w *SessionWatcher) String() string {
	return "session-watcher"
}
