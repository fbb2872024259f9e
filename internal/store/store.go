// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

// Package store provides Store, the observable cache every sync service
// publishes into.
//
// A Store holds the latest value and notifies subscribers synchronously, in
// subscription order, on every replacement. Subscribers run on the
// publishing goroutine after the value lock has been released, so a
// subscriber may call Get. Publishes are delivered one at a time in the
// order the values were written; a subscriber must not write to the store
// it is subscribed to.
package store

import (
	"sync"

	"github.com/Shashivarun2464480/Project-fe/internal/metrics"
)

// Store is a value holder with publish/subscribe.
type Store[T any] struct {
	name string

	// pubMu is taken before mu and held until every subscriber has run.
	pubMu sync.Mutex

	mu     sync.RWMutex
	value  T
	subs   map[uint64]func(T)
	order  []uint64
	nextID uint64
}

// New returns a store named for metrics, holding initial.
func New[T any](name string, initial T) *Store[T] {
	return &Store[T]{
		name:  name,
		value: initial,
		subs:  make(map[uint64]func(T)),
	}
}

// Name returns the store name.
func (s *Store[T]) Name() string {
	return s.name
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the value and notifies subscribers.
func (s *Store[T]) Set(v T) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	s.value = v
	subs := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(v, subs)
}

// Update replaces the value with fn(current) atomically with respect to
// other Set and Update calls, then notifies subscribers.
func (s *Store[T]) Update(fn func(T) T) T {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	v := fn(s.value)
	s.value = v
	subs := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(v, subs)
	return v
}

// UpdateIf is Update for functions that may decide nothing changed. When fn
// reports false the value is kept and no subscriber is called.
func (s *Store[T]) UpdateIf(fn func(T) (T, bool)) (T, bool) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	v, changed := fn(s.value)
	if !changed {
		cur := s.value
		s.mu.Unlock()
		return cur, false
	}
	s.value = v
	subs := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(v, subs)
	return v, true
}

// Subscribe registers fn for future publishes. fn is not called with the
// current value. The returned function removes the subscription and is
// safe to call more than once.
func (s *Store[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			for n, sid := range s.order {
				if sid == id {
					s.order = append(s.order[:n], s.order[n+1:]...)
					break
				}
			}
		})
	}
}

// Subscribers returns the number of active subscriptions.
func (s *Store[T]) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

func (s *Store[T]) snapshotLocked() []func(T) {
	out := make([]func(T), 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.subs[id])
	}
	return out
}

func (s *Store[T]) publish(v T, subs []func(T)) {
	metrics.CachePublishes.WithLabelValues(s.name).Inc()
	for _, fn := range subs {
		fn(v)
	}
}
