// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

/*
Package supervisor runs the long-lived parts of the client under a suture
tree.

	ideaboard (root)
	├── sync-layer
	│   ├── session-watcher   starts and stops notification polling
	│   └── cache-bridge      forwards cache publishes to websocket clients
	└── api-layer
	    ├── websocket-hub
	    └── http-server       optional local API

A panic or error in one layer restarts that service with backoff without
touching the other layer. Supervisor events are logged through sutureslog
into the zerolog logger.
*/
package supervisor
