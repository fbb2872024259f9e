// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package sync

import (
	"context"
	"strings"

	"github.com/Shashivarun2464480/Project-fe/internal/logging"
	"github.com/Shashivarun2464480/Project-fe/internal/models"
)

// VoteSource is the vote part of the backend.
type VoteSource interface {
	Upvote(ctx context.Context, ideaID string) error
	Downvote(ctx context.Context, ideaID, comment string) error
	Remove(ctx context.Context, ideaID string) error
	ForIdea(ctx context.Context, ideaID string) ([]models.Vote, error)
	CurrentUserVote(ctx context.Context, ideaID string) (models.UserVote, error)
}

// VoteService casts votes. Vote counts are owned by the server, so every
// successful vote reloads the idea cache.
type VoteService struct {
	votes VoteSource
	ideas *IdeaService
}

// NewVoteService returns a vote service.
func NewVoteService(votes VoteSource, ideas *IdeaService) *VoteService {
	return &VoteService{votes: votes, ideas: ideas}
}

// Upvote votes for ideaID.
func (s *VoteService) Upvote(ctx context.Context, ideaID string) error {
	if err := s.votes.Upvote(ctx, ideaID); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("idea_id", ideaID).Msg("Upvote failed")
		return err
	}
	return s.ideas.Reload(ctx)
}

// Downvote votes against ideaID. The backend stores comment as a downvote
// comment on the idea, so a blank one is refused before any request.
func (s *VoteService) Downvote(ctx context.Context, ideaID, comment string) error {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return ErrDownvoteCommentRequired
	}
	if err := s.votes.Downvote(ctx, ideaID, comment); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("idea_id", ideaID).Msg("Downvote failed")
		return err
	}
	return s.ideas.Reload(ctx)
}

// Remove withdraws the signed-in user's vote.
func (s *VoteService) Remove(ctx context.Context, ideaID string) error {
	if err := s.votes.Remove(ctx, ideaID); err != nil {
		return err
	}
	return s.ideas.Reload(ctx)
}

// ForIdea lists the votes on an idea.
func (s *VoteService) ForIdea(ctx context.Context, ideaID string) ([]models.Vote, error) {
	return s.votes.ForIdea(ctx, ideaID)
}

// CurrentUserVote reports whether the signed-in user has voted on ideaID.
func (s *VoteService) CurrentUserVote(ctx context.Context, ideaID string) (models.UserVote, error) {
	return s.votes.CurrentUserVote(ctx, ideaID)
}
