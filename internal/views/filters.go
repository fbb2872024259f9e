// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

// Package views derives display state from the synchronization caches.
// Every view is recomputed on read; nothing here is cached.
package views

import (
	"strings"

	"github.com/Shashivarun2464480/Project-fe/internal/models"
)

// IdeaFilter narrows an idea list. Zero fields match everything.
type IdeaFilter struct {
	Status     models.IdeaStatus `json:"status,omitempty"`
	CategoryID string            `json:"categoryId,omitempty"`
	Term       string            `json:"q,omitempty"`
}

// FilterIdeas returns the ideas matching f in their original order. Term
// matches title, description, author and category name without regard to
// case.
func FilterIdeas(ideas []models.Idea, f IdeaFilter) []models.Idea {
	term := normalize(f.Term)
	out := make([]models.Idea, 0, len(ideas))
	for _, idea := range ideas {
		if f.Status != "" && idea.Status != f.Status {
			continue
		}
		if f.CategoryID != "" && idea.CategoryID != f.CategoryID {
			continue
		}
		if term != "" && !containsAny(term, idea.Title, idea.Description, idea.AuthorName, idea.CategoryName) {
			continue
		}
		out = append(out, idea.Clone())
	}
	return out
}

// UserFilter narrows a user list. Zero fields match everything.
type UserFilter struct {
	Role   models.Role       `json:"role,omitempty"`
	Status models.UserStatus `json:"status,omitempty"`
	Term   string            `json:"q,omitempty"`
}

// FilterUsers returns the users matching f. Term matches name and email.
func FilterUsers(users []models.User, f UserFilter) []models.User {
	term := normalize(f.Term)
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.Status != "" && u.Status != f.Status {
			continue
		}
		if term != "" && !containsAny(term, u.Name, u.Email) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsAny(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
