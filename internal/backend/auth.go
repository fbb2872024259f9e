// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/translate"
)

// AuthAPI covers /auth.
type AuthAPI struct{ c *Client }

// LoginResult is a successful sign-in.
type LoginResult struct {
	Token string
	User  models.User
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token. The user may be nested
// under "user" or flattened next to the token.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (LoginResult, error) {
	r, err := a.c.write(ctx, "auth", http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return LoginResult{}, err
	}
	token := r.String("token", "accessToken", "jwt")
	if token == "" {
		return LoginResult{}, fmt.Errorf("POST /auth/login: response carries no token")
	}
	userRec := r.Record("user")
	if userRec == nil {
		userRec = r
	}
	return LoginResult{Token: token, User: translate.ToUser(userRec)}, nil
}
