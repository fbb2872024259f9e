// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

// Package backend is the REST client for the remote idea-management
// service. It owns transport concerns only: request construction, bearer
// authentication, rate limiting, the circuit breaker and error
// classification. Cache policy lives in the sync package.
package backend

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/Shashivarun2464480/Project-fe/internal/config"
	"github.com/Shashivarun2464480/Project-fe/internal/logging"
	"github.com/Shashivarun2464480/Project-fe/internal/metrics"
	"github.com/Shashivarun2464480/Project-fe/internal/translate"
)

// TokenSource supplies the bearer token for outgoing requests. An empty
// token means the request is sent without an Authorization header.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

// Token implements TokenSource.
func (f TokenFunc) Token() string { return f() }

// Client talks to the backend. Per-resource APIs hang off it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	limiter    *rate.Limiter
	breaker    *breaker

	Auth          *AuthAPI
	Ideas         *IdeaAPI
	Reviews       *ReviewAPI
	Comments      *CommentAPI
	Votes         *VoteAPI
	Notifications *NotificationAPI
	Users         *UserAPI
	Categories    *CategoryAPI
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for cfg.BaseURL. tokens may be nil for
// unauthenticated use.
func New(cfg config.BackendConfig, tokens TokenSource, opts ...Option) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for the self-signed dev backend
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout, Transport: transport},
		tokens:     tokens,
		breaker:    newBreaker("ideaboard-backend", cfg.Breaker),
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthAPI{c: c}
	c.Ideas = &IdeaAPI{c: c}
	c.Reviews = &ReviewAPI{c: c}
	c.Comments = &CommentAPI{c: c}
	c.Votes = &VoteAPI{c: c}
	c.Notifications = &NotificationAPI{c: c}
	c.Users = &UserAPI{c: c}
	c.Categories = &CategoryAPI{c: c}
	return c
}

// BreakerState reports the circuit breaker state for health output.
func (c *Client) BreakerState() string {
	return c.breaker.State()
}

// do sends one request and returns the raw response body of a 2xx reply.
func (c *Client) do(ctx context.Context, resource, method, path string, body any) ([]byte, error) {
	op := method + " " + path

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &Error{Op: op, Kind: KindTransport, Err: err}
		}
	}

	return c.breaker.execute(op, func() ([]byte, error) {
		return c.send(ctx, resource, method, path, body)
	})
}

func (c *Client) send(ctx context.Context, resource, method, path string, body any) ([]byte, error) {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode body: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := logging.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = logging.GenerateRequestID()
	}
	req.Header.Set("X-Request-ID", requestID)

	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordBackendRequest(resource, method, 0, time.Since(start))
		logging.Ctx(ctx).Debug().Str("op", op).Err(err).Msg("Backend unreachable")
		return nil, &Error{Op: op, Kind: KindTransport, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	metrics.RecordBackendRequest(resource, method, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, &Error{Op: op, Kind: KindTransport, Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		be := newStatusError(op, resp.StatusCode, data)
		logging.Ctx(ctx).Debug().Str("op", op).Int("status", resp.StatusCode).Str("kind", be.Kind.String()).Msg("Backend returned error")
		return nil, be
	}
	return data, nil
}

func (c *Client) getList(ctx context.Context, resource, path string) ([]translate.Record, error) {
	data, err := c.do(ctx, resource, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	list, err := translate.DecodeList(data)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	return list, nil
}

func (c *Client) getRecord(ctx context.Context, resource, path string) (translate.Record, error) {
	data, err := c.do(ctx, resource, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeOptional(http.MethodGet, path, data)
}

// write sends a mutation. The reply may be empty; callers that need the
// created entity get a nil Record when the backend returned nothing.
func (c *Client) write(ctx context.Context, resource, method, path string, body any) (translate.Record, error) {
	data, err := c.do(ctx, resource, method, path, body)
	if err != nil {
		return nil, err
	}
	return decodeOptional(method, path, data)
}

func decodeOptional(method, path string, data []byte) (translate.Record, error) {
	trimmed := bytes.TrimSpace(data)
	// Some mutations answer with nothing or a bare string such as
	// "Status updated".
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, nil
	}
	r, err := translate.Decode(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return r, nil
}

// seg escapes one path segment.
func seg(s string) string {
	return url.PathEscape(s)
}
