// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

/*
Package sync keeps the client-side caches of the idea board in step with the
backend.

Each resource has a service that owns one or more observable stores
(internal/store) and applies a per-operation policy after a successful
mutation:

  - Patch: the cache entry is modified in place and no re-fetch happens.
    Used for idea status changes made by a manager.
  - Reload: the affected collection is fetched again. Used for votes,
    comments, user management and categories, where server-side counters
    or derived fields change.
  - Optimistic: the cache changes before the server confirms and is never
    reverted. Used for marking notifications read; the next poll repairs any
    divergence.

Failed mutations leave the caches untouched. Failed loads of ideas and users
publish an empty collection and return the error so views do not keep
showing data for a previous user.

Key Components:

  - IdeaService: idea collections by scope (all, mine, review queue, status)
  - ReviewService: manager decisions and review threads
  - CommentService: comment threads per idea
  - VoteService: upvotes and downvotes (a downvote requires a comment)
  - UserService: admin user directory and statistics
  - NotificationService: per-user notifications and unread count
  - NotificationPoller: periodic notification refresh bound to the session
  - CategoryService: admin category catalogue

Concurrency:

Services are safe for concurrent use. Mutations run on the caller's
goroutine; no ordering is imposed between concurrent loads, so the last one
to complete wins. The poller goroutine is the only background activity.
*/
package sync
