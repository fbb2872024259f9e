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

// CategoryAPI covers /category.
type CategoryAPI struct{ c *Client }

// CategoryRequest is the create and update body.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// All returns every category.
func (a *CategoryAPI) All(ctx context.Context) ([]models.Category, error) {
	list, err := a.c.getList(ctx, "category", "/category")
	if err != nil {
		return nil, err
	}
	return translate.ToCategories(list), nil
}

// Get returns one category.
func (a *CategoryAPI) Get(ctx context.Context, id string) (models.Category, error) {
	r, err := a.c.getRecord(ctx, "category", "/category/"+seg(id))
	if err != nil {
		return models.Category{}, err
	}
	return translate.ToCategory(r), nil
}

// Create adds a category.
func (a *CategoryAPI) Create(ctx context.Context, req CategoryRequest) error {
	_, err := a.c.write(ctx, "category", http.MethodPost, "/category", req)
	return err
}

// Update rewrites a category.
func (a *CategoryAPI) Update(ctx context.Context, id string, req CategoryRequest) error {
	_, err := a.c.write(ctx, "category", http.MethodPut, "/category/"+seg(id), req)
	return err
}
