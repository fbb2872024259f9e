// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := c.validateBackend(); err != nil {
		return err
	}
	if err := c.validateSession(); err != nil {
		return err
	}
	if c.Notifications.PollInterval <= 0 {
		return fmt.Errorf("NOTIFICATION_POLL_INTERVAL must be positive, got %s", c.Notifications.PollInterval)
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateBackend() error {
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("API_BASE_URL must be an absolute http(s) URL, got %q", c.Backend.BaseURL)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive, got %s", c.Backend.Timeout)
	}
	if c.Backend.RateLimit < 0 {
		return fmt.Errorf("API_RATE_LIMIT must not be negative, got %v", c.Backend.RateLimit)
	}
	if c.Backend.RateLimit > 0 && c.Backend.RateBurst < 1 {
		return fmt.Errorf("API_RATE_BURST must be at least 1 when rate limiting is enabled, got %d", c.Backend.RateBurst)
	}
	r := c.Backend.Breaker.FailureRatio
	if r <= 0 || r > 1 {
		return fmt.Errorf("API_BREAKER_FAILURE_RATIO must be in (0, 1], got %v", r)
	}
	return nil
}

func (c *Config) validateSession() error {
	switch c.Session.Store {
	case SessionStoreMemory:
		return nil
	case SessionStoreBadger:
		if strings.TrimSpace(c.Session.Path) == "" {
			return fmt.Errorf("SESSION_STORE_PATH is required when SESSION_STORE=%s", SessionStoreBadger)
		}
		return nil
	default:
		return fmt.Errorf("SESSION_STORE must be %q or %q, got %q", SessionStoreMemory, SessionStoreBadger, c.Session.Store)
	}
}

func (c *Config) validateServer() error {
	if !c.Server.Enabled {
		return nil
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("HTTP_RATE_LIMIT must not be negative, got %d", c.Server.RateLimit)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled", "off":
		return nil
	default:
		return fmt.Errorf("LOG_LEVEL %q is not a known level", c.Logging.Level)
	}
}
