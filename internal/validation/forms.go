// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package validation

// LoginForm is the sign-in form.
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// IdeaSubmission is the new-idea form.
type IdeaSubmission struct {
	Title       string `json:"title" validate:"notblank,max=200"`
	Description string `json:"description" validate:"max=5000"`
	CategoryID  string `json:"categoryId" validate:"notblank"`
}

// CategoryForm is the admin category editor.
type CategoryForm struct {
	Name        string `json:"name" validate:"notblank,max=100"`
	Description string `json:"description" validate:"max=500"`
	IsActive    bool   `json:"isActive"`
}

// StatusChange is a manager's approve or reject decision.
type StatusChange struct {
	Status        string `json:"status" validate:"required,oneof=UnderReview Approved Rejected"`
	ReviewComment string `json:"reviewComment" validate:"max=2000"`
}
