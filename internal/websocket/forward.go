// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package websocket

import "github.com/Shashivarun2464480/Project-fe/internal/store"

// Forward broadcasts every value published by s as messageType. transform
// may reshape the value first; nil sends it unchanged.
func Forward[T any](h *Hub, s *store.Store[T], messageType string, transform func(T) any) (unsubscribe func()) {
	return s.Subscribe(func(v T) {
		if transform != nil {
			h.BroadcastJSON(messageType, transform(v))
			return
		}
		h.BroadcastJSON(messageType, v)
	})
}
