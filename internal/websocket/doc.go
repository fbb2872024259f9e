// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

/*
Package websocket pushes cache changes to browser tabs attached to the local
API.

Every observable store that matters to a page is forwarded to the Hub with
Forward. The Hub fans each message out to connected clients; a new client
first receives the snapshot messages so it can render without polling.

Message types:

  - ideas: the idea collection
  - notifications: the notification list
  - unread_count: {"count": n}
  - users: the admin user directory
  - session: the signed-in user, or null after sign-out
  - ping / pong: client keepalive

Slow clients whose send buffer fills are dropped rather than blocking the
hub.
*/
package websocket
