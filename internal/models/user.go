// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

// Package models holds the normalized entities the synchronization layer
// publishes. Every ID is a string regardless of how the backend encodes it.
package models

import "strings"

// Role is a user's role. Wire values are lowercase.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// ParseRole normalizes a backend role string. Unknown values map to
// employee, the least privileged role.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case "manager":
		return RoleManager
	default:
		return RoleEmployee
	}
}

// UserStatus is Active or Inactive.
type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserInactive UserStatus = "Inactive"
)

// ParseUserStatus maps backend spellings onto UserStatus. Anything but an
// explicit inactive value counts as active.
func ParseUserStatus(s string) UserStatus {
	if strings.EqualFold(strings.TrimSpace(s), string(UserInactive)) {
		return UserInactive
	}
	return UserActive
}

// DefaultDepartment is used when the backend omits a department.
const DefaultDepartment = "Other"

// Departments lists the departments offered by registration and admin forms.
var Departments = []string{
	"Engineering",
	"Marketing",
	"Sales",
	"HR",
	"Finance",
	"Operations",
	"Customer Support",
	"Product",
	"Executive",
	DefaultDepartment,
}

// User is an account known to the backend.
type User struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	Department string     `json:"department"`
	Status     UserStatus `json:"status"`
}

// UserDetails is a user with activity counters.
type UserDetails struct {
	User
	IdeasSubmitted   int `json:"ideasSubmitted"`
	CommentsPosted   int `json:"commentsPosted"`
	VotesCast        int `json:"votesCast"`
	ReviewsSubmitted int `json:"reviewsSubmitted"`
}

// RoleBreakdown counts users per role.
type RoleBreakdown struct {
	Employees int `json:"employees"`
	Managers  int `json:"managers"`
	Admins    int `json:"admins"`
}

// UserStatistics is the admin dashboard summary.
type UserStatistics struct {
	TotalUsers    int           `json:"totalUsers"`
	ActiveUsers   int           `json:"activeUsers"`
	InactiveUsers int           `json:"inactiveUsers"`
	RoleBreakdown RoleBreakdown `json:"roleBreakdown"`
}
