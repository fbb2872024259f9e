// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

/*
Package api serves the local HTTP surface of the synchronization layer.

A thin UI, or curl, drives the same services the desktop pages use:

	GET  /healthz
	GET  /metrics
	GET  /api/v1/session
	POST /api/v1/session/login
	POST /api/v1/session/logout
	GET  /api/v1/ideas                    ?scope=all|mine|review&status=&category=&q=&refresh=
	POST /api/v1/ideas
	POST /api/v1/ideas/{id}/upvote
	POST /api/v1/ideas/{id}/downvote
	PUT  /api/v1/ideas/{id}/status
	GET  /api/v1/notifications            ?refresh=
	POST /api/v1/notifications/{id}/read
	POST /api/v1/notifications/read-all
	GET  /api/v1/users                    ?role=&status=&q=&refresh=
	GET  /ws

Every /api/v1 route except login, and /ws, is gated by the casbin navigator
on the signed-in role. Responses use the APIResponse envelope; error
messages come from backend.UserMessage so they read the same as the toasts
of the desktop pages.
*/
package api
