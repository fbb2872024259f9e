// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

// Package metrics registers the Prometheus collectors for the
// synchronization layer: backend calls, circuit breaker state, cache
// publishes, notification polling and the local API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Backend client
	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ideaboard_backend_requests_total",
			Help: "Total requests sent to the idea-management backend",
		},
		[]string{"resource", "method", "status"}, // status "0" for transport failures
	)

	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ideaboard_backend_request_duration_seconds",
			Help:    "Backend request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource", "method"},
	)

	// Circuit breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ideaboard_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ideaboard_circuit_breaker_requests_total",
			Help: "Requests through the circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ideaboard_circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ideaboard_circuit_breaker_state_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Caches
	CachePublishes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ideaboard_cache_publishes_total",
			Help: "Values published into observable caches",
		},
		[]string{"store"},
	)

	OptimisticUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ideaboard_optimistic_updates_total",
			Help: "Optimistic cache changes by server confirmation outcome",
		},
		[]string{"operation", "result"}, // confirmed, diverged
	)

	// Notification polling
	NotificationPollTicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ideaboard_notification_poll_ticks_total",
			Help: "Notification poll ticks by outcome",
		},
		[]string{"outcome"}, // loaded, failed, session_ended
	)

	NotificationPollerRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ideaboard_notification_poller_running",
			Help: "1 while the notification poller is in the Polling state",
		},
	)

	UnreadNotifications = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ideaboard_unread_notifications",
			Help: "Unread notifications in the local cache",
		},
	)

	// Local API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ideaboard_api_requests_total",
			Help: "Requests served by the local API",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ideaboard_api_request_duration_seconds",
			Help:    "Local API latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ideaboard_websocket_connections",
			Help: "Open websocket connections to the local API",
		},
	)
)

// RecordBackendRequest records one backend call. status 0 means no HTTP
// response was received.
func RecordBackendRequest(resource, method string, status int, duration time.Duration) {
	BackendRequestsTotal.WithLabelValues(resource, method, strconv.Itoa(status)).Inc()
	BackendRequestDuration.WithLabelValues(resource, method).Observe(duration.Seconds())
}

// RecordAPIRequest records one local API request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordOptimisticUpdate records whether the server confirmed an optimistic
// cache change.
func RecordOptimisticUpdate(operation string, err error) {
	result := "confirmed"
	if err != nil {
		result = "diverged"
	}
	OptimisticUpdates.WithLabelValues(operation, result).Inc()
}
