// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package backend

import (
	"context"
	"net/http"

	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/translate"
)

const userBase = "/usermanagement"

// UserAPI covers /usermanagement. Admin only.
type UserAPI struct{ c *Client }

func (a *UserAPI) list(ctx context.Context, path string) ([]models.User, error) {
	list, err := a.c.getList(ctx, "user", path)
	if err != nil {
		return nil, err
	}
	return translate.ToUsers(list), nil
}

// All returns every user.
func (a *UserAPI) All(ctx context.Context) ([]models.User, error) {
	return a.list(ctx, userBase+"/users")
}

// ByRole returns users with role.
func (a *UserAPI) ByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	return a.list(ctx, userBase+"/users/role/"+seg(string(role)))
}

// ByStatus returns users with status.
func (a *UserAPI) ByStatus(ctx context.Context, status models.UserStatus) ([]models.User, error) {
	return a.list(ctx, userBase+"/users/status/"+seg(string(status)))
}

// Search runs the backend's name and email search.
func (a *UserAPI) Search(ctx context.Context, term string) ([]models.User, error) {
	return a.list(ctx, userBase+"/search/"+seg(term))
}

// Get returns a user with activity counters.
func (a *UserAPI) Get(ctx context.Context, id string) (models.UserDetails, error) {
	r, err := a.c.getRecord(ctx, "user", userBase+"/"+seg(id))
	if err != nil {
		return models.UserDetails{}, err
	}
	return translate.ToUserDetails(r), nil
}

// ByEmail looks a user up by email address.
func (a *UserAPI) ByEmail(ctx context.Context, email string) (models.User, error) {
	r, err := a.c.getRecord(ctx, "user", userBase+"/email/"+seg(email))
	if err != nil {
		return models.User{}, err
	}
	return translate.ToUser(r), nil
}

// Statistics returns the user summary.
func (a *UserAPI) Statistics(ctx context.Context) (models.UserStatistics, error) {
	r, err := a.c.getRecord(ctx, "user", userBase+"/statistics/summary")
	if err != nil {
		return models.UserStatistics{}, err
	}
	return translate.ToStatistics(r), nil
}

// SetStatus sets a user's status.
func (a *UserAPI) SetStatus(ctx context.Context, id string, status models.UserStatus) error {
	_, err := a.c.write(ctx, "user", http.MethodPut, userBase+"/"+seg(id)+"/status",
		map[string]string{"status": string(status)})
	return err
}

// Activate reactivates a user.
func (a *UserAPI) Activate(ctx context.Context, id string) error {
	_, err := a.c.write(ctx, "user", http.MethodPut, userBase+"/"+seg(id)+"/activate", struct{}{})
	return err
}

// Deactivate deactivates a user. The backend refuses self-deactivation
// with a 400; see IsSelfDeactivation.
func (a *UserAPI) Deactivate(ctx context.Context, id string) error {
	_, err := a.c.write(ctx, "user", http.MethodPut, userBase+"/"+seg(id)+"/deactivate", struct{}{})
	return err
}

// SetRole changes a user's role.
func (a *UserAPI) SetRole(ctx context.Context, id string, role models.Role) error {
	_, err := a.c.write(ctx, "user", http.MethodPut, userBase+"/"+seg(id)+"/role",
		map[string]string{"role": string(role)})
	return err
}
