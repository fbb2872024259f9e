// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

// Package config loads Ideaboard configuration from built-in defaults, an
// optional YAML file and environment variables, in that order of precedence.
package config

import "time"

// Config is the root configuration.
type Config struct {
	Backend       BackendConfig       `koanf:"backend"`
	Session       SessionConfig       `koanf:"session"`
	Notifications NotificationsConfig `koanf:"notifications"`
	Server        ServerConfig        `koanf:"server"`
	Authz         AuthzConfig         `koanf:"authz"`
	Logging       LoggingConfig       `koanf:"logging"`
}

// BackendConfig describes the remote idea-management REST service.
type BackendConfig struct {
	BaseURL   string        `koanf:"base_url"`
	Timeout   time.Duration `koanf:"timeout"`
	RateLimit float64       `koanf:"rate_limit"` // requests per second, 0 disables
	RateBurst int           `koanf:"rate_burst"`

	// InsecureSkipVerify allows the self-signed development certificate the
	// backend ships with on localhost.
	InsecureSkipVerify bool `koanf:"insecure_skip_verify"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig tunes the circuit breaker in front of the backend.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// Session store kinds.
const (
	SessionStoreMemory = "memory"
	SessionStoreBadger = "badger"
)

// SessionConfig selects where the bearer token and user are persisted.
type SessionConfig struct {
	Store string `koanf:"store"`
	Path  string `koanf:"path"`
}

// NotificationsConfig controls background notification polling.
type NotificationsConfig struct {
	PollInterval time.Duration `koanf:"poll_interval"`
}

// ServerConfig is the optional local HTTP API.
type ServerConfig struct {
	Enabled     bool          `koanf:"enabled"`
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	CORSOrigins []string      `koanf:"cors_origins"`
	RateLimit   int           `koanf:"rate_limit"` // requests per minute per client IP
	ReadTimeout time.Duration `koanf:"read_timeout"`
}

// AuthzConfig optionally overrides the embedded casbin model and policy.
type AuthzConfig struct {
	ModelPath  string `koanf:"model_path"`
	PolicyPath string `koanf:"policy_path"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}
