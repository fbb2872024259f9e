// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package sync

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Shashivarun2464480/Project-fe/internal/logging"
	"github.com/Shashivarun2464480/Project-fe/internal/metrics"
	"github.com/Shashivarun2464480/Project-fe/internal/models"
)

// DefaultPollInterval is the notification refresh period.
const DefaultPollInterval = 10 * time.Second

// SessionChecker reports whether someone is signed in.
type SessionChecker interface {
	Active() bool
}

// NotificationLoader refreshes the notification cache.
type NotificationLoader interface {
	Load(ctx context.Context) ([]models.Notification, error)
}

// PollerState is Stopped or Polling.
type PollerState int

const (
	PollerStopped PollerState = iota
	PollerPolling
)

// String returns the state name.
func (s PollerState) String() string {
	if s == PollerPolling {
		return "polling"
	}
	return "stopped"
}

// NotificationPoller reloads notifications on a fixed period while a
// session is active.
//
// There is no load when polling starts. Each tick first checks the session;
// if it has ended the poller stops itself and signals SessionEnded,
// otherwise it loads. Start while already polling replaces the running
// timer, so at most one is ever live.
type NotificationPoller struct {
	loader   NotificationLoader
	session  SessionChecker
	clock    clockwork.Clock
	interval time.Duration

	// startMu serializes Start and Stop. The poll loop only takes mu.
	startMu sync.Mutex

	mu         sync.Mutex
	state      PollerState
	generation uint64
	cancel     context.CancelFunc
	done       chan struct{}

	ended chan struct{}
}

// PollerOption configures a NotificationPoller.
type PollerOption func(*NotificationPoller)

// WithPollerClock replaces the time source.
func WithPollerClock(c clockwork.Clock) PollerOption {
	return func(p *NotificationPoller) { p.clock = c }
}

// NewNotificationPoller returns a stopped poller. A non-positive interval
// selects DefaultPollInterval.
func NewNotificationPoller(loader NotificationLoader, session SessionChecker, interval time.Duration, opts ...PollerOption) *NotificationPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	p := &NotificationPoller{
		loader:   loader,
		session:  session,
		clock:    clockwork.NewRealClock(),
		interval: interval,
		ended:    make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the current state.
func (p *NotificationPoller) State() PollerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// SessionEnded receives a value each time a tick finds the session gone and
// the poller stops itself. Stop and context cancellation do not signal it.
func (p *NotificationPoller) SessionEnded() <-chan struct{} {
	return p.ended
}

// Interval returns the polling period.
func (p *NotificationPoller) Interval() time.Duration {
	return p.interval
}

// Start begins polling. A running loop is stopped first. The loop ends when
// ctx is cancelled, Stop is called, or a tick finds no active session.
func (p *NotificationPoller) Start(ctx context.Context) {
	p.startMu.Lock()
	defer p.startMu.Unlock()

	p.halt()

	ticker := p.clock.NewTicker(p.interval)
	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.state = PollerPolling
	p.cancel = cancel
	p.done = done
	p.mu.Unlock()

	metrics.NotificationPollerRunning.Set(1)
	logging.Ctx(ctx).Debug().Dur("interval", p.interval).Msg("Notification polling started")

	go p.loop(loopCtx, gen, ticker, done)
}

// Stop ends polling and waits for the loop to exit. It is safe to call when
// already stopped.
func (p *NotificationPoller) Stop() {
	p.startMu.Lock()
	defer p.startMu.Unlock()

	if p.halt() {
		logging.Debug().Msg("Notification polling stopped")
	}
}

// halt cancels the live loop, if any, and waits for it. Callers hold startMu.
func (p *NotificationPoller) halt() bool {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	wasPolling := p.state == PollerPolling
	p.cancel, p.done = nil, nil
	p.state = PollerStopped
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
	metrics.NotificationPollerRunning.Set(0)
	return wasPolling
}

func (p *NotificationPoller) loop(ctx context.Context, gen uint64, ticker clockwork.Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if !p.tick(ctx, gen) {
				return
			}
		}
	}
}

// tick runs one poll and reports whether the loop should continue.
func (p *NotificationPoller) tick(ctx context.Context, gen uint64) bool {
	if !p.session.Active() {
		metrics.NotificationPollTicks.WithLabelValues("session_ended").Inc()
		var cancel context.CancelFunc
		current := false
		p.mu.Lock()
		if p.generation == gen {
			current = true
			cancel = p.cancel
			p.state = PollerStopped
			p.cancel, p.done = nil, nil
			metrics.NotificationPollerRunning.Set(0)
		}
		p.mu.Unlock()
		if cancel != nil {
			defer cancel()
		}
		if current {
			select {
			case p.ended <- struct{}{}:
			default:
			}
		}
		logging.Ctx(ctx).Info().Msg("Session ended; notification polling stopped")
		return false
	}

	if _, err := p.loader.Load(ctx); err != nil {
		if ctx.Err() != nil {
			return false
		}
		metrics.NotificationPollTicks.WithLabelValues("failed").Inc()
		logging.Ctx(ctx).Warn().Err(err).Msg("Notification poll failed")
		return true
	}
	metrics.NotificationPollTicks.WithLabelValues("loaded").Inc()
	return true
}
