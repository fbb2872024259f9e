// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package views

import (
	"sync"

	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/store"
)

// IdeaLister exposes the idea cache.
type IdeaLister interface {
	Ideas() *store.Store[[]models.Idea]
}

// StatusCounts tallies ideas by status.
type StatusCounts struct {
	Total       int `json:"total"`
	UnderReview int `json:"underReview"`
	Approved    int `json:"approved"`
	Rejected    int `json:"rejected"`
}

// IdeaBoard is a filtered view over the idea cache, used for the "my ideas"
// and review queue pages.
type IdeaBoard struct {
	ideas IdeaLister

	mu     sync.Mutex
	filter IdeaFilter
}

// NewIdeaBoard returns an unfiltered board.
func NewIdeaBoard(ideas IdeaLister) *IdeaBoard {
	return &IdeaBoard{ideas: ideas}
}

// SetFilter replaces the filter.
func (b *IdeaBoard) SetFilter(f IdeaFilter) {
	b.mu.Lock()
	b.filter = f
	b.mu.Unlock()
}

// SetStatus filters by status only. An empty status shows all.
func (b *IdeaBoard) SetStatus(status models.IdeaStatus) {
	b.mu.Lock()
	b.filter.Status = status
	b.mu.Unlock()
}

// Filter returns the active filter.
func (b *IdeaBoard) Filter() IdeaFilter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filter
}

// View returns the cached ideas matching the filter.
func (b *IdeaBoard) View() []models.Idea {
	return FilterIdeas(b.ideas.Ideas().Get(), b.Filter())
}

// Counts tallies the whole cache, ignoring the filter.
func (b *IdeaBoard) Counts() StatusCounts {
	return CountByStatus(b.ideas.Ideas().Get())
}

// CountByStatus tallies ideas by status.
func CountByStatus(ideas []models.Idea) StatusCounts {
	c := StatusCounts{Total: len(ideas)}
	for _, idea := range ideas {
		switch idea.Status {
		case models.StatusApproved:
			c.Approved++
		case models.StatusRejected:
			c.Rejected++
		default:
			c.UnderReview++
		}
	}
	return c
}
