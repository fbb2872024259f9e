// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package websocket

import (
	"net/http"
	"slices"

	"github.com/gorilla/websocket"

	"github.com/Shashivarun2464480/Project-fe/internal/logging"
)

// Handler upgrades requests to websocket clients of hub. Browser requests
// are accepted only from allowedOrigins; requests without an Origin header
// (curl, tests) are always accepted.
func Handler(hub *Hub, allowedOrigins []string) http.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("websocket upgrade failed")
			return
		}
		client := NewClient(hub, conn)
		select {
		case hub.Register <- client:
		case <-r.Context().Done():
			_ = conn.Close()
			return
		case <-hub.stopped:
			_ = conn.Close()
			return
		}
		client.Start()
	}
}
