// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

// Package session holds the signed-in user and bearer token.
//
// The Holder publishes every change through an observable store so the
// composition root can start notification polling on login and stop it on
// logout. Tokens are opaque to the client except for the JWT exp claim,
// which is read without verification to detect an expired session early.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"

	"github.com/Shashivarun2464480/Project-fe/internal/backend"
	"github.com/Shashivarun2464480/Project-fe/internal/logging"
	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/store"
	"github.com/Shashivarun2464480/Project-fe/internal/validation"
)

// ErrNotAuthenticated is returned by operations that need a session.
var ErrNotAuthenticated = errors.New("not signed in")

// Session is the signed-in state. A zero ExpiresAt never expires.
type Session struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt,omitempty"`
}

// Authenticator exchanges credentials for a token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (backend.LoginResult, error)
}

// Holder owns the current session.
type Holder struct {
	auth   Authenticator
	tokens TokenStore
	clock  clockwork.Clock
	state  *store.Store[*Session]
}

// Option configures a Holder.
type Option func(*Holder)

// WithClock replaces the clock used for expiry checks.
func WithClock(c clockwork.Clock) Option {
	return func(h *Holder) { h.clock = c }
}

// NewHolder returns a signed-out holder.
func NewHolder(auth Authenticator, tokens TokenStore, opts ...Option) *Holder {
	h := &Holder{
		auth:   auth,
		tokens: tokens,
		clock:  clockwork.NewRealClock(),
		state:  store.New[*Session]("session", nil),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Login validates the form, signs in and persists the session.
func (h *Holder) Login(ctx context.Context, form validation.LoginForm) (models.User, error) {
	if err := validation.ValidateStruct(&form); err != nil {
		return models.User{}, err
	}

	res, err := h.auth.Login(ctx, form.Email, form.Password)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Sign-in failed")
		return models.User{}, err
	}

	s := &Session{Token: res.Token, User: res.User, ExpiresAt: tokenExpiry(res.Token)}
	if err := h.tokens.Save(ctx, s); err != nil {
		return models.User{}, fmt.Errorf("persist session: %w", err)
	}
	h.state.Set(s)

	logging.Ctx(ctx).Info().Str("user_id", s.User.ID).Str("role", string(s.User.Role)).Msg("Signed in")
	return s.User, nil
}

// Logout clears the session locally and in persisted storage. The backend
// holds no server-side session, so nothing is sent.
func (h *Holder) Logout(ctx context.Context) error {
	err := h.tokens.Clear(ctx)
	h.state.Set(nil)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	logging.Ctx(ctx).Info().Msg("Signed out")
	return nil
}

// Restore loads a persisted session. It reports false when nothing usable
// was stored; an expired session is removed.
func (h *Holder) Restore(ctx context.Context) (bool, error) {
	s, err := h.tokens.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("restore session: %w", err)
	}
	if s == nil || s.Token == "" {
		return false, nil
	}
	if h.expired(s) {
		logging.Ctx(ctx).Info().Str("user_id", s.User.ID).Msg("Stored session expired")
		if err := h.tokens.Clear(ctx); err != nil {
			return false, fmt.Errorf("clear expired session: %w", err)
		}
		return false, nil
	}
	h.state.Set(s)
	return true, nil
}

// Current returns a copy of the session, or nil when signed out.
func (h *Holder) Current() *Session {
	s := h.state.Get()
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}

// User returns the signed-in user.
func (h *Holder) User() (models.User, bool) {
	s := h.state.Get()
	if s == nil {
		return models.User{}, false
	}
	return s.User, true
}

// Token implements backend.TokenSource. It returns "" when signed out or
// expired so requests go out unauthenticated rather than with a dead token.
func (h *Holder) Token() string {
	s := h.state.Get()
	if s == nil || h.expired(s) {
		return ""
	}
	return s.Token
}

// Active reports whether a non-expired session exists.
func (h *Holder) Active() bool {
	return h.Token() != ""
}

// Subscribe observes sign-in and sign-out. fn receives nil on sign-out.
func (h *Holder) Subscribe(fn func(*Session)) (unsubscribe func()) {
	return h.state.Subscribe(fn)
}

func (h *Holder) expired(s *Session) bool {
	return !s.ExpiresAt.IsZero() && !h.clock.Now().Before(s.ExpiresAt)
}

// tokenExpiry reads exp from a JWT without verifying it. Tokens that are
// not JWTs, or carry no exp, never expire client-side.
func tokenExpiry(token string) time.Time {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

var _ backend.TokenSource = (*Holder)(nil)
