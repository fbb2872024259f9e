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

// ReviewSource is the review part of the backend.
type ReviewSource interface {
	Get(ctx context.Context, reviewID string) (models.Review, error)
	ForIdea(ctx context.Context, ideaID string) ([]models.Review, error)
	Mine(ctx context.Context) ([]models.Review, error)
	SubmitFeedback(ctx context.Context, ideaID, feedback string) error
	UpdateIdeaStatus(ctx context.Context, ideaID string, status models.IdeaStatus, reviewComment string) error
	Update(ctx context.Context, reviewID, feedback string, decision models.ReviewDecision) error
	Delete(ctx context.Context, reviewID string) error
}

// ReviewThread is the review list of the idea last opened.
type ReviewThread struct {
	IdeaID  string          `json:"ideaId"`
	Reviews []models.Review `json:"reviews"`
}

// ReviewService applies manager decisions.
type ReviewService struct {
	reviews ReviewSource
	ideas   *IdeaService
	thread  *store.Store[ReviewThread]
}

// NewReviewService returns a review service that patches ideas' cache.
func NewReviewService(reviews ReviewSource, ideas *IdeaService) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		ideas:   ideas,
		thread:  store.New("review_thread", ReviewThread{Reviews: []models.Review{}}),
	}
}

// Thread returns the observable review thread.
func (s *ReviewService) Thread() *store.Store[ReviewThread] {
	return s.thread
}

// ChangeIdeaStatus records a decision. Rejecting requires a non-blank
// comment; without one nothing is sent. On success the cached idea's status
// is patched in place.
func (s *ReviewService) ChangeIdeaStatus(ctx context.Context, ideaID string, status models.IdeaStatus, reviewComment string) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	reviewComment = strings.TrimSpace(reviewComment)
	if status == models.StatusRejected && reviewComment == "" {
		return ErrReviewCommentRequired
	}
	if status != models.StatusRejected {
		reviewComment = ""
	}

	if err := s.reviews.UpdateIdeaStatus(ctx, ideaID, status, reviewComment); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("idea_id", ideaID).Str("status", string(status)).Msg("Failed to change idea status")
		return err
	}

	patched := s.ideas.PatchStatus(ideaID, status)
	logging.Ctx(ctx).Info().
		Str("idea_id", ideaID).
		Str("status", string(status)).
		Bool("cached", patched).
		Msg("Idea status changed")
	return nil
}

// Approve is ChangeIdeaStatus with StatusApproved.
func (s *ReviewService) Approve(ctx context.Context, ideaID string) error {
	return s.ChangeIdeaStatus(ctx, ideaID, models.StatusApproved, "")
}

// Reject is ChangeIdeaStatus with StatusRejected.
func (s *ReviewService) Reject(ctx context.Context, ideaID, reviewComment string) error {
	return s.ChangeIdeaStatus(ctx, ideaID, models.StatusRejected, reviewComment)
}

// SubmitFeedback posts manager feedback and reloads that idea's thread.
func (s *ReviewService) SubmitFeedback(ctx context.Context, ideaID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrFeedbackRequired
	}
	if err := s.reviews.SubmitFeedback(ctx, ideaID, text); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("idea_id", ideaID).Msg("Failed to submit feedback")
		return err
	}
	_, err := s.ForIdea(ctx, ideaID)
	return err
}

// ForIdea fetches an idea's reviews and publishes them as the thread.
func (s *ReviewService) ForIdea(ctx context.Context, ideaID string) ([]models.Review, error) {
	list, err := s.reviews.ForIdea(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("load reviews for idea %s: %w", ideaID, err)
	}
	if list == nil {
		list = []models.Review{}
	}
	s.thread.Set(ReviewThread{IdeaID: ideaID, Reviews: append([]models.Review(nil), list...)})
	return list, nil
}

// Mine returns the reviews written by the signed-in manager.
func (s *ReviewService) Mine(ctx context.Context) ([]models.Review, error) {
	return s.reviews.Mine(ctx)
}

// ByID returns one review.
func (s *ReviewService) ByID(ctx context.Context, reviewID string) (models.Review, error) {
	return s.reviews.Get(ctx, reviewID)
}

// UpdateReview edits a review through the legacy endpoint.
func (s *ReviewService) UpdateReview(ctx context.Context, reviewID, feedback string, decision models.ReviewDecision) error {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return ErrFeedbackRequired
	}
	if err := s.reviews.Update(ctx, reviewID, feedback, decision); err != nil {
		return err
	}
	return s.reloadThread(ctx)
}

// DeleteReview removes a review through the legacy endpoint.
func (s *ReviewService) DeleteReview(ctx context.Context, reviewID string) error {
	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}
	return s.reloadThread(ctx)
}

func (s *ReviewService) reloadThread(ctx context.Context) error {
	ideaID := s.thread.Get().IdeaID
	if ideaID == "" {
		return nil
	}
	_, err := s.ForIdea(ctx, ideaID)
	return err
}
