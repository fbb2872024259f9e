// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package models

import (
	"strings"
	"time"
)

// NotificationType classifies a notification.
type NotificationType string

const (
	NotificationNewIdea        NotificationType = "NewIdea"
	NotificationReviewDecision NotificationType = "ReviewDecision"
	NotificationNewComment     NotificationType = "NewComment"
)

// NotificationStatus is Unread or Read.
type NotificationStatus string

const (
	NotificationUnread NotificationStatus = "Unread"
	NotificationRead   NotificationStatus = "Read"
)

// ParseNotificationStatus treats anything but "read" as unread.
func ParseNotificationStatus(s string) NotificationStatus {
	if strings.EqualFold(strings.TrimSpace(s), string(NotificationRead)) {
		return NotificationRead
	}
	return NotificationUnread
}

// Notification is a per-user message about ideas and reviews.
type Notification struct {
	ID           string             `json:"id"`
	UserID       string             `json:"userId"`
	Type         NotificationType   `json:"type"`
	Message      string             `json:"message"`
	Status       NotificationStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
	IdeaID       string             `json:"ideaId,omitempty"`
	IdeaTitle    string             `json:"ideaTitle,omitempty"`
	ReviewerID   string             `json:"reviewerId,omitempty"`
	ReviewerName string             `json:"reviewerName,omitempty"`
}

// Unread reports whether n has not been read.
func (n Notification) Unread() bool {
	return n.Status != NotificationRead
}
