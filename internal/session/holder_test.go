// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"

	"github.com/Shashivarun2464480/Project-fe/internal/backend"
	"github.com/Shashivarun2464480/Project-fe/internal/config"
	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/validation"
)

type fakeAuth struct {
	result backend.LoginResult
	err    error
	calls  int
}

func (f *fakeAuth) Login(_ context.Context, _, _ string) (backend.LoginResult, error) {
	f.calls++
	return f.result, f.err
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

var validForm = validation.LoginForm{Email: "ana@corp.test", Password: "secret1"}

func TestLoginPublishesSession(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	token := signedToken(t, clock.Now().Add(time.Hour))
	auth := &fakeAuth{result: backend.LoginResult{Token: token, User: models.User{ID: "u1", Role: models.RoleManager}}}
	tokens := NewMemoryTokenStore()
	h := NewHolder(auth, tokens, WithClock(clock))

	var published []*Session
	h.Subscribe(func(s *Session) { published = append(published, s) })

	user, err := h.Login(context.Background(), validForm)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Role != models.RoleManager {
		t.Errorf("Role = %q", user.Role)
	}
	if !h.Active() || h.Token() != token {
		t.Error("holder should be active with the issued token")
	}
	if len(published) != 1 || published[0] == nil {
		t.Fatalf("published = %v", published)
	}
	if stored, _ := tokens.Load(context.Background()); stored == nil || stored.Token != token {
		t.Error("session was not persisted")
	}

	clock.Advance(2 * time.Hour)
	if h.Active() || h.Token() != "" {
		t.Error("expired token must not be served")
	}
}

func TestLoginValidatesBeforeNetwork(t *testing.T) {
	t.Parallel()

	auth := &fakeAuth{}
	h := NewHolder(auth, NewMemoryTokenStore())

	_, err := h.Login(context.Background(), validation.LoginForm{Email: "ana", Password: "123"})
	var ve *validation.RequestValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if auth.calls != 0 {
		t.Errorf("authenticator called %d times", auth.calls)
	}
}

func TestLoginFailureLeavesSignedOut(t *testing.T) {
	t.Parallel()

	auth := &fakeAuth{err: &backend.Error{Op: "POST /auth/login", Kind: backend.KindAuth, Status: 401}}
	h := NewHolder(auth, NewMemoryTokenStore())

	_, err := h.Login(context.Background(), validForm)
	if backend.UserMessage(err) != backend.MsgInvalidCredentials {
		t.Errorf("UserMessage = %q", backend.UserMessage(err))
	}
	if h.Active() || h.Current() != nil {
		t.Error("failed login must not create a session")
	}
}

func TestLogoutPublishesNil(t *testing.T) {
	t.Parallel()

	auth := &fakeAuth{result: backend.LoginResult{Token: "opaque-token", User: models.User{ID: "u1"}}}
	tokens := NewMemoryTokenStore()
	h := NewHolder(auth, tokens)
	if _, err := h.Login(context.Background(), validForm); err != nil {
		t.Fatalf("Login: %v", err)
	}

	last := &Session{}
	h.Subscribe(func(s *Session) { last = s })
	if err := h.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if last != nil {
		t.Error("logout should publish nil")
	}
	if stored, _ := tokens.Load(context.Background()); stored != nil {
		t.Error("persisted session should be cleared")
	}
}

func TestOpaqueTokenNeverExpires(t *testing.T) {
	t.Parallel()

	if !tokenExpiry("not-a-jwt").IsZero() {
		t.Error("opaque tokens should have no expiry")
	}
}

func TestRestore(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	tests := []struct {
		name    string
		stored  *Session
		want    bool
		cleared bool
	}{
		{"nothing stored", nil, false, false},
		{"valid", &Session{Token: "t", User: models.User{ID: "u1"}, ExpiresAt: clock.Now().Add(time.Hour)}, true, false},
		{"expired", &Session{Token: "t", ExpiresAt: clock.Now().Add(-time.Minute)}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tokens := NewMemoryTokenStore()
			if tt.stored != nil {
				_ = tokens.Save(context.Background(), tt.stored)
			}
			h := NewHolder(&fakeAuth{}, tokens, WithClock(clock))

			ok, err := h.Restore(context.Background())
			if err != nil {
				t.Fatalf("Restore: %v", err)
			}
			if ok != tt.want || h.Active() != tt.want {
				t.Errorf("restored = %v, active = %v, want %v", ok, h.Active(), tt.want)
			}
			if tt.cleared {
				if s, _ := tokens.Load(context.Background()); s != nil {
					t.Error("expired session should be removed")
				}
			}
		})
	}
}

func TestBadgerTokenStoreRoundTrip(t *testing.T) {
	t.Parallel()

	st, err := OpenBadgerTokenStore("")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	ctx := context.Background()

	if s, err := st.Load(ctx); err != nil || s != nil {
		t.Fatalf("empty Load = %v, %v", s, err)
	}
	want := &Session{Token: "tok", User: models.User{ID: "u1", Name: "Ana", Role: models.RoleAdmin}}
	if err := st.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := st.Load(ctx)
	if err != nil || got == nil || got.Token != "tok" || got.User.Role != models.RoleAdmin {
		t.Fatalf("Load = %+v, %v", got, err)
	}
	if err := st.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := st.Clear(ctx); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
	if s, _ := st.Load(ctx); s != nil {
		t.Error("session still present after Clear")
	}
}

func TestNewTokenStore(t *testing.T) {
	t.Parallel()

	st, err := NewTokenStore(config.SessionConfig{Store: config.SessionStoreMemory})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := st.(*MemoryTokenStore); !ok {
		t.Errorf("got %T, want *MemoryTokenStore", st)
	}

	disk, err := NewTokenStore(config.SessionConfig{Store: config.SessionStoreBadger, Path: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = disk.Close() })
	if _, ok := disk.(*BadgerTokenStore); !ok {
		t.Errorf("got %T, want *BadgerTokenStore", disk)
	}

	if _, err := NewTokenStore(config.SessionConfig{Store: "redis"}); err == nil {
		t.Error("unknown store should fail")
	}
}
