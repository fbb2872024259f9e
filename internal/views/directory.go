// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package views

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/Shashivarun2464480/Project-fe/internal/logging"
	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/store"
)

// SearchThreshold is the shortest trimmed term, in characters, that is sent
// to the server. Shorter terms filter the cache.
const SearchThreshold = 2

// UserSearcher is the part of the user service the directory needs.
type UserSearcher interface {
	Users() *store.Store[[]models.User]
	Search(ctx context.Context, term string) ([]models.User, error)
}

// UserDirectory is the admin user list with role, status and search
// filters.
type UserDirectory struct {
	users UserSearcher

	mu     sync.Mutex
	filter UserFilter
	// server holds the last server search result; nil means the view is
	// computed from the cache.
	server []models.User
}

// NewUserDirectory returns a directory showing every cached user.
func NewUserDirectory(users UserSearcher) *UserDirectory {
	return &UserDirectory{users: users}
}

// Filter returns the active filter.
func (d *UserDirectory) Filter() UserFilter {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filter
}

// SetFilter changes the role and status filters and returns to the local
// view.
func (d *UserDirectory) SetFilter(role models.Role, status models.UserStatus) []models.User {
	d.mu.Lock()
	d.filter.Role = role
	d.filter.Status = status
	d.server = nil
	d.mu.Unlock()
	return d.Filtered()
}

// Filtered returns the current view: the last server search result if one
// is showing, otherwise the cache filtered locally.
func (d *UserDirectory) Filtered() []models.User {
	d.mu.Lock()
	server, filter := d.server, d.filter
	d.mu.Unlock()

	if server != nil {
		return append([]models.User(nil), server...)
	}
	return FilterUsers(d.users.Users().Get(), filter)
}

// Search applies term. Below SearchThreshold it filters the cache without a
// request. Otherwise it issues one server search and the view becomes
// exactly the response; if the search fails the view falls back to local
// filtering and the error is returned with it.
func (d *UserDirectory) Search(ctx context.Context, term string) ([]models.User, error) {
	d.mu.Lock()
	d.filter.Term = term
	d.server = nil
	d.mu.Unlock()

	trimmed := strings.TrimSpace(term)
	if utf8.RuneCountInString(trimmed) < SearchThreshold {
		return d.Filtered(), nil
	}

	found, err := d.users.Search(ctx, trimmed)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("User search failed; filtering locally")
		return d.Filtered(), err
	}
	if found == nil {
		found = []models.User{}
	}

	d.mu.Lock()
	if d.filter.Term == term {
		d.server = append([]models.User(nil), found...)
	}
	d.mu.Unlock()
	return append([]models.User(nil), found...), nil
}
