// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package models

import (
	"strings"
	"time"
)

// IdeaStatus is the review state of an idea.
type IdeaStatus string

const (
	StatusUnderReview IdeaStatus = "UnderReview"
	StatusApproved    IdeaStatus = "Approved"
	StatusRejected    IdeaStatus = "Rejected"
)

// ParseIdeaStatus accepts backend spellings such as "Under Review" and
// "underreview". Empty or unknown input yields StatusUnderReview.
func ParseIdeaStatus(s string) IdeaStatus {
	if status, ok := LookupIdeaStatus(s); ok {
		return status
	}
	return StatusUnderReview
}

// LookupIdeaStatus is the strict form of ParseIdeaStatus: it reports false
// for anything that is not one of the three statuses.
func LookupIdeaStatus(s string) (IdeaStatus, bool) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "")) {
	case "underreview":
		return StatusUnderReview, true
	case "approved":
		return StatusApproved, true
	case "rejected":
		return StatusRejected, true
	default:
		return "", false
	}
}

// Valid reports whether s is one of the three known statuses.
func (s IdeaStatus) Valid() bool {
	return s == StatusUnderReview || s == StatusApproved || s == StatusRejected
}

// Idea is a submitted improvement proposal.
type Idea struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CategoryID   string     `json:"categoryId"`
	CategoryName string     `json:"categoryName,omitempty"`
	AuthorID     string     `json:"authorId"`
	AuthorName   string     `json:"authorName"`
	SubmittedAt  time.Time  `json:"submittedAt"`
	Status       IdeaStatus `json:"status"`
	Upvotes      int        `json:"upvotes"`
	Downvotes    int        `json:"downvotes"`

	Comments []Comment `json:"comments,omitempty"`
	Reviews  []Review  `json:"reviews,omitempty"`

	HasVoted     bool     `json:"hasVoted,omitempty"`
	UserVoteType VoteType `json:"userVoteType,omitempty"`

	ReviewedByID   string `json:"reviewedById,omitempty"`
	ReviewedByName string `json:"reviewedByName,omitempty"`
	ReviewComment  string `json:"reviewComment,omitempty"`
}

// Clone returns a copy that shares no slices with i.
func (i Idea) Clone() Idea {
	c := i
	if i.Comments != nil {
		c.Comments = append([]Comment(nil), i.Comments...)
	}
	if i.Reviews != nil {
		c.Reviews = append([]Review(nil), i.Reviews...)
	}
	return c
}

// CloneIdeas deep-copies a slice of ideas.
func CloneIdeas(ideas []Idea) []Idea {
	if ideas == nil {
		return nil
	}
	out := make([]Idea, len(ideas))
	for n := range ideas {
		out[n] = ideas[n].Clone()
	}
	return out
}

// ReviewDecision is a manager's verdict attached to a review.
type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "Approve"
	DecisionReject  ReviewDecision = "Reject"
)

// Review is manager feedback on an idea.
type Review struct {
	ID           string         `json:"id"`
	IdeaID       string         `json:"ideaId"`
	ReviewerID   string         `json:"reviewerId"`
	ReviewerName string         `json:"reviewerName"`
	Feedback     string         `json:"feedback"`
	Decision     ReviewDecision `json:"decision,omitempty"`
	ReviewedAt   time.Time      `json:"reviewedAt"`
}

// Comment is a remark on an idea. Downvotes create one with
// IsDownvoteComment set.
type Comment struct {
	ID                string    `json:"id"`
	IdeaID            string    `json:"ideaId"`
	AuthorID          string    `json:"authorId"`
	AuthorName        string    `json:"authorName"`
	Text              string    `json:"text"`
	CreatedAt         time.Time `json:"createdAt"`
	IsDownvoteComment bool      `json:"isDownvoteComment,omitempty"`
}

// VoteType is Upvote or Downvote.
type VoteType string

const (
	VoteUp   VoteType = "Upvote"
	VoteDown VoteType = "Downvote"
)

// ParseVoteType returns "" for anything that is not a known vote type.
func ParseVoteType(s string) VoteType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upvote", "up":
		return VoteUp
	case "downvote", "down":
		return VoteDown
	default:
		return ""
	}
}

// Vote is one user's vote on an idea.
type Vote struct {
	ID     string   `json:"id"`
	IdeaID string   `json:"ideaId"`
	UserID string   `json:"userId"`
	Type   VoteType `json:"voteType"`
}

// UserVote is the current user's vote on one idea.
type UserVote struct {
	HasVoted bool     `json:"hasVoted"`
	Type     VoteType `json:"voteType,omitempty"`
}

// Category groups ideas.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}
