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
	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/store"
	"github.com/Shashivarun2464480/Project-fe/internal/validation"
)

// CategorySource is the category part of the backend.
type CategorySource interface {
	All(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id string) (models.Category, error)
	Create(ctx context.Context, req backend.CategoryRequest) error
	Update(ctx context.Context, id string, req backend.CategoryRequest) error
}

// CategoryService owns the category catalogue.
type CategoryService struct {
	source CategorySource
	cache  *store.Store[[]models.Category]
}

// NewCategoryService returns a service with an empty cache.
func NewCategoryService(source CategorySource) *CategoryService {
	return &CategoryService{
		source: source,
		cache:  store.New[[]models.Category]("categories", []models.Category{}),
	}
}

// Categories returns the observable category collection.
func (s *CategoryService) Categories() *store.Store[[]models.Category] {
	return s.cache
}

// Load fetches and publishes every category.
func (s *CategoryService) Load(ctx context.Context) ([]models.Category, error) {
	list, err := s.source.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if list == nil {
		list = []models.Category{}
	}
	s.cache.Set(append([]models.Category(nil), list...))
	return list, nil
}

// Get looks a category up in the cache.
func (s *CategoryService) Get(id string) (models.Category, bool) {
	for _, c := range s.cache.Get() {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// Active returns the cached categories that accept new ideas.
func (s *CategoryService) Active() []models.Category {
	out := []models.Category{}
	for _, c := range s.cache.Get() {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

// Create adds a category and reloads the catalogue.
func (s *CategoryService) Create(ctx context.Context, form validation.CategoryForm) error {
	req, err := categoryRequest(form)
	if err != nil {
		return err
	}
	if err := s.source.Create(ctx, req); err != nil {
		return err
	}
	_, err = s.Load(ctx)
	return err
}

// Update rewrites a category and reloads the catalogue.
func (s *CategoryService) Update(ctx context.Context, id string, form validation.CategoryForm) error {
	req, err := categoryRequest(form)
	if err != nil {
		return err
	}
	if err := s.source.Update(ctx, id, req); err != nil {
		return err
	}
	_, err = s.Load(ctx)
	return err
}

func categoryRequest(form validation.CategoryForm) (backend.CategoryRequest, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Description = strings.TrimSpace(form.Description)
	if err := validation.ValidateStruct(&form); err != nil {
		return backend.CategoryRequest{}, err
	}
	return backend.CategoryRequest{Name: form.Name, Description: form.Description, IsActive: form.IsActive}, nil
}
