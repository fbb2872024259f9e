// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package sync

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shashivarun2464480/Project-fe/internal/logging"
	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/store"
)

// CommentSource is the comment part of the backend.
type CommentSource interface {
	ForIdea(ctx context.Context, ideaID string) ([]models.Comment, error)
	Add(ctx context.Context, ideaID, text string) error
	Update(ctx context.Context, commentID, text string) error
	Delete(ctx context.Context, commentID string) error
}

// CommentThread is the comment list of the idea last opened.
type CommentThread struct {
	IdeaID   string           `json:"ideaId"`
	Comments []models.Comment `json:"comments"`
}

// CommentService keeps the open comment thread current. Every successful
// change reloads the thread and the idea cache, since comment counts and
// downvote comments are computed by the server.
type CommentService struct {
	comments CommentSource
	ideas    *IdeaService
	thread   *store.Store[CommentThread]
}

// NewCommentService returns a comment service.
func NewCommentService(comments CommentSource, ideas *IdeaService) *CommentService {
	return &CommentService{
		comments: comments,
		ideas:    ideas,
		thread:   store.New("comment_thread", CommentThread{Comments: []models.Comment{}}),
	}
}

// Thread returns the observable comment thread.
func (s *CommentService) Thread() *store.Store[CommentThread] {
	return s.thread
}

// ForIdea fetches and publishes an idea's comments.
func (s *CommentService) ForIdea(ctx context.Context, ideaID string) ([]models.Comment, error) {
	list, err := s.comments.ForIdea(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("load comments for idea %s: %w", ideaID, err)
	}
	if list == nil {
		list = []models.Comment{}
	}
	s.thread.Set(CommentThread{IdeaID: ideaID, Comments: append([]models.Comment(nil), list...)})
	return list, nil
}

// Add posts a comment on ideaID.
func (s *CommentService) Add(ctx context.Context, ideaID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrCommentRequired
	}
	if err := s.comments.Add(ctx, ideaID, text); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("idea_id", ideaID).Msg("Failed to add comment")
		return err
	}
	return s.refresh(ctx, ideaID)
}

// Update edits a comment in the open thread.
func (s *CommentService) Update(ctx context.Context, commentID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrCommentRequired
	}
	if err := s.comments.Update(ctx, commentID, text); err != nil {
		return err
	}
	return s.refresh(ctx, s.thread.Get().IdeaID)
}

// Delete removes a comment from the open thread.
func (s *CommentService) Delete(ctx context.Context, commentID string) error {
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}
	return s.refresh(ctx, s.thread.Get().IdeaID)
}

func (s *CommentService) refresh(ctx context.Context, ideaID string) error {
	if ideaID != "" {
		if _, err := s.ForIdea(ctx, ideaID); err != nil {
			return err
		}
	}
	return s.ideas.Reload(ctx)
}
