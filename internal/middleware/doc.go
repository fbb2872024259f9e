// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

/*
Package middleware provides the infrastructure middleware of the local API.

  - RequestID: assigns an X-Request-ID and seeds the logging context
  - PrometheusMetrics: request counts and latency labelled by chi route pattern

Both are chi-style func(http.Handler) http.Handler values:

	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)

Metrics are labelled by route pattern ("/api/v1/ideas/{id}/upvote") rather
than raw path so idea IDs never become label values.
*/
package middleware
