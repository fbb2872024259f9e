// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package sync

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shashivarun2464480/Project-fe/internal/backend"
	"github.com/Shashivarun2464480/Project-fe/internal/logging"
	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/store"
)

// UserSource is the user management part of the backend.
type UserSource interface {
	All(ctx context.Context) ([]models.User, error)
	ByRole(ctx context.Context, role models.Role) ([]models.User, error)
	ByStatus(ctx context.Context, status models.UserStatus) ([]models.User, error)
	Search(ctx context.Context, term string) ([]models.User, error)
	Get(ctx context.Context, id string) (models.UserDetails, error)
	ByEmail(ctx context.Context, email string) (models.User, error)
	Statistics(ctx context.Context) (models.UserStatistics, error)
	SetStatus(ctx context.Context, id string, status models.UserStatus) error
	Activate(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
	SetRole(ctx context.Context, id string, role models.Role) error
}

// UserService owns the admin user directory and its statistics. Mutations
// always reload both, never patch.
type UserService struct {
	users UserSource
	cache *store.Store[[]models.User]
	stats *store.Store[models.UserStatistics]
}

// NewUserService returns a service with empty caches.
func NewUserService(users UserSource) *UserService {
	return &UserService{
		users: users,
		cache: store.New[[]models.User]("users", []models.User{}),
		stats: store.New("user_statistics", models.UserStatistics{}),
	}
}

// Users returns the observable user collection.
func (s *UserService) Users() *store.Store[[]models.User] {
	return s.cache
}

// Stats returns the observable statistics summary.
func (s *UserService) Stats() *store.Store[models.UserStatistics] {
	return s.stats
}

// Load fetches every user. On failure an empty collection is published.
func (s *UserService) Load(ctx context.Context) ([]models.User, error) {
	list, err := s.users.All(ctx)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Failed to load users")
		s.cache.Set([]models.User{})
		return nil, fmt.Errorf("load users: %w", err)
	}
	if list == nil {
		list = []models.User{}
	}
	s.cache.Set(append([]models.User(nil), list...))
	logging.Ctx(ctx).Debug().Int("count", len(list)).Msg("Users loaded")
	return list, nil
}

// Statistics fetches and publishes the user summary.
func (s *UserService) Statistics(ctx context.Context) (models.UserStatistics, error) {
	st, err := s.users.Statistics(ctx)
	if err != nil {
		return models.UserStatistics{}, fmt.Errorf("load user statistics: %w", err)
	}
	s.stats.Set(st)
	return st, nil
}

// ByRole queries users with role. The cache is not touched.
func (s *UserService) ByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	return s.users.ByRole(ctx, role)
}

// ByStatus queries users with status. The cache is not touched.
func (s *UserService) ByStatus(ctx context.Context, status models.UserStatus) ([]models.User, error) {
	return s.users.ByStatus(ctx, status)
}

// ByID returns a user with activity counters.
func (s *UserService) ByID(ctx context.Context, id string) (models.UserDetails, error) {
	return s.users.Get(ctx, id)
}

// ByEmail looks a user up by address.
func (s *UserService) ByEmail(ctx context.Context, email string) (models.User, error) {
	return s.users.ByEmail(ctx, strings.TrimSpace(email))
}

// Search runs a server-side search. The cache is not touched.
func (s *UserService) Search(ctx context.Context, term string) ([]models.User, error) {
	return s.users.Search(ctx, strings.TrimSpace(term))
}

// SetStatus changes a user's status.
func (s *UserService) SetStatus(ctx context.Context, id string, status models.UserStatus) error {
	return s.mutate(ctx, "set_status", id, func() error { return s.users.SetStatus(ctx, id, status) })
}

// Activate marks a user active.
func (s *UserService) Activate(ctx context.Context, id string) error {
	return s.mutate(ctx, "activate", id, func() error { return s.users.Activate(ctx, id) })
}

// Deactivate marks a user inactive. The backend refuses to deactivate the
// caller; see backend.IsSelfDeactivation.
func (s *UserService) Deactivate(ctx context.Context, id string) error {
	return s.mutate(ctx, "deactivate", id, func() error { return s.users.Deactivate(ctx, id) })
}

// SetRole changes a user's role.
func (s *UserService) SetRole(ctx context.Context, id string, role models.Role) error {
	return s.mutate(ctx, "set_role", id, func() error { return s.users.SetRole(ctx, id, role) })
}

func (s *UserService) mutate(ctx context.Context, op, id string, call func() error) error {
	if err := call(); err != nil {
		ev := logging.Ctx(ctx).Warn().Err(err).Str("op", op).Str("user_id", id)
		if backend.IsSelfDeactivation(err) {
			ev = ev.Bool("self", true)
		}
		ev.Msg("User update rejected")
		return err
	}
	if _, err := s.Load(ctx); err != nil {
		return err
	}
	_, err := s.Statistics(ctx)
	return err
}

// Get looks a user up in the cache.
func (s *UserService) Get(id string) (models.User, bool) {
	for _, u := range s.cache.Get() {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// ByDepartment filters the cache by department.
func (s *UserService) ByDepartment(department string) []models.User {
	out := []models.User{}
	for _, u := range s.cache.Get() {
		if strings.EqualFold(u.Department, department) {
			out = append(out, u)
		}
	}
	return out
}

// EmailExists reports whether a cached user other than excludeID has email.
func (s *UserService) EmailExists(email, excludeID string) bool {
	email = strings.TrimSpace(email)
	for _, u := range s.cache.Get() {
		if u.ID != excludeID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
