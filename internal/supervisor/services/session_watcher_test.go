// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package services

import (
	"context"
	stdsync "sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/session"
	"github.com/Shashivarun2464480/Project-fe/internal/store"
	"github.com/Shashivarun2464480/Project-fe/internal/sync"
)

type fakeSession struct {
	state   *store.Store[*session.Session]
	expired atomic.Bool
}

func newFakeSession() *fakeSession {
	return &fakeSession{state: store.New[*session.Session]("session", nil)}
}

func (f *fakeSession) Active() bool { return f.state.Get() != nil && !f.expired.Load() }

func (f *fakeSession) Subscribe(fn func(*session.Session)) func() { return f.state.Subscribe(fn) }

type fakePoller struct {
	mu     stdsync.Mutex
	state  sync.PollerState
	starts int
	stops  int
	ended  chan struct{}
}

func (p *fakePoller) Start(context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.starts++
	p.state = sync.PollerPolling
}

func (p *fakePoller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stops++
	p.state = sync.PollerStopped
}

func (p *fakePoller) State() sync.PollerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *fakePoller) SessionEnded() <-chan struct{} { return p.ended }

// stopSelf behaves like a tick that found the session gone.
func (p *fakePoller) stopSelf() {
	p.mu.Lock()
	p.state = sync.PollerStopped
	p.mu.Unlock()
	p.ended <- struct{}{}
}

func (p *fakePoller) counts() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.starts, p.stops
}

type fakeNotifications struct {
	mu     stdsync.Mutex
	loads  int
	clears int
}

func (n *fakeNotifications) Load(context.Context) ([]models.Notification, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.loads++
	return nil, nil
}

func (n *fakeNotifications) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.clears++
}

func (n *fakeNotifications) counts() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.loads, n.clears
}

func eventually(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSessionWatcherFollowsSession(t *testing.T) {
	t.Parallel()

	sess := newFakeSession()
	poller := &fakePoller{}
	notes := &fakeNotifications{}
	w := NewSessionWatcher(sess, poller, notes)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Serve(ctx) }()

	// Signed out at start: nothing polls and the cache is cleared.
	eventually(t, "initial clear", func() bool { _, clears := notes.counts(); return clears == 1 })

	sess.state.Set(&session.Session{Token: "t", User: models.User{ID: "u1"}})
	eventually(t, "poller start", func() bool { return poller.State() == sync.PollerPolling })
	if loads, _ := notes.counts(); loads != 1 {
		t.Errorf("initial loads = %d, want 1", loads)
	}

	// A second publish while polling does not restart the poller.
	sess.state.Set(&session.Session{Token: "t2", User: models.User{ID: "u1"}})
	time.Sleep(20 * time.Millisecond)
	if starts, _ := poller.counts(); starts != 1 {
		t.Errorf("starts = %d, want 1", starts)
	}

	sess.state.Set(nil)
	eventually(t, "poller stop", func() bool { return poller.State() == sync.PollerStopped })
	eventually(t, "clear on sign-out", func() bool { _, clears := notes.counts(); return clears == 2 })

	cancel()
	<-done
	if sess.state.Subscribers() != 0 {
		t.Error("watcher should unsubscribe when stopped")
	}
}

func TestSessionWatcherClearsWhenTokenExpires(t *testing.T) {
	t.Parallel()

	sess := newFakeSession()
	poller := &fakePoller{ended: make(chan struct{}, 1)}
	notes := &fakeNotifications{}
	w := NewSessionWatcher(sess, poller, notes)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Serve(ctx) }()

	sess.state.Set(&session.Session{Token: "t", User: models.User{ID: "u1"}})
	eventually(t, "poller start", func() bool { return poller.State() == sync.PollerPolling })
	_, clearsBefore := notes.counts()

	// The token expires without the holder publishing anything.
	sess.expired.Store(true)
	poller.stopSelf()

	eventually(t, "clear after expiry", func() bool { _, clears := notes.counts(); return clears == clearsBefore+1 })
	if starts, _ := poller.counts(); starts != 1 {
		t.Errorf("starts = %d, want 1", starts)
	}
}
