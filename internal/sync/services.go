// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package sync

import (
	"time"

	"github.com/Shashivarun2464480/Project-fe/internal/backend"
)

// Services bundles every synchronization service over one backend client.
type Services struct {
	Ideas         *IdeaService
	Reviews       *ReviewService
	Comments      *CommentService
	Votes         *VoteService
	Users         *UserService
	Notifications *NotificationService
	Categories    *CategoryService
	Poller        *NotificationPoller
}

// NewServices wires the services to c. The poller checks session before
// every tick.
func NewServices(c *backend.Client, session SessionChecker, pollInterval time.Duration, opts ...PollerOption) *Services {
	ideas := NewIdeaService(c.Ideas, c.Reviews)
	notifications := NewNotificationService(c.Notifications)
	return &Services{
		Ideas:         ideas,
		Reviews:       NewReviewService(c.Reviews, ideas),
		Comments:      NewCommentService(c.Comments, ideas),
		Votes:         NewVoteService(c.Votes, ideas),
		Users:         NewUserService(c.Users),
		Notifications: notifications,
		Categories:    NewCategoryService(c.Categories),
		Poller:        NewNotificationPoller(notifications, session, pollInterval, opts...),
	}
}
