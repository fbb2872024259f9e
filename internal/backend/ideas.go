// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package backend

import (
	"context"
	"net/http"

	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/translate"
)

// IdeaAPI covers /Idea.
type IdeaAPI struct{ c *Client }

// SubmitIdeaRequest is the POST /Idea/submit body.
type SubmitIdeaRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CategoryID  string `json:"categoryId"`
}

// All returns every idea.
func (a *IdeaAPI) All(ctx context.Context) ([]models.Idea, error) {
	list, err := a.c.getList(ctx, "idea", "/Idea/all")
	if err != nil {
		return nil, err
	}
	return translate.ToIdeas(list), nil
}

// Mine returns the current user's ideas.
func (a *IdeaAPI) Mine(ctx context.Context) ([]models.Idea, error) {
	list, err := a.c.getList(ctx, "idea", "/Idea/my-ideas")
	if err != nil {
		return nil, err
	}
	return translate.ToIdeas(list), nil
}

// Get returns one idea.
func (a *IdeaAPI) Get(ctx context.Context, id string) (models.Idea, error) {
	r, err := a.c.getRecord(ctx, "idea", "/Idea/"+seg(id))
	if err != nil {
		return models.Idea{}, err
	}
	return translate.ToIdea(r), nil
}

// Submit creates an idea. When the backend echoes nothing back the
// returned idea is built from req and carries no ID.
func (a *IdeaAPI) Submit(ctx context.Context, req SubmitIdeaRequest) (models.Idea, error) {
	r, err := a.c.write(ctx, "idea", http.MethodPost, "/Idea/submit", req)
	if err != nil {
		return models.Idea{}, err
	}
	idea := translate.ToIdea(r)
	if idea.Title == "" {
		idea.Title = req.Title
	}
	if idea.Description == "" {
		idea.Description = req.Description
	}
	if idea.CategoryID == "" {
		idea.CategoryID = req.CategoryID
	}
	return idea, nil
}

// ReviewAPI covers /review. Most endpoints require the manager role.
type ReviewAPI struct{ c *Client }

// Ideas returns the ideas visible to reviewers.
func (a *ReviewAPI) Ideas(ctx context.Context) ([]models.Idea, error) {
	list, err := a.c.getList(ctx, "review", "/review/ideas")
	if err != nil {
		return nil, err
	}
	return translate.ToIdeas(list), nil
}

// IdeasByStatus returns reviewer-visible ideas in one status.
func (a *ReviewAPI) IdeasByStatus(ctx context.Context, status models.IdeaStatus) ([]models.Idea, error) {
	list, err := a.c.getList(ctx, "review", "/review/ideas/status/"+seg(string(status)))
	if err != nil {
		return nil, err
	}
	return translate.ToIdeas(list), nil
}

// IdeaDetail returns an idea with its comments and reviews embedded.
func (a *ReviewAPI) IdeaDetail(ctx context.Context, ideaID string) (models.Idea, error) {
	r, err := a.c.getRecord(ctx, "review", "/review/ideas/"+seg(ideaID))
	if err != nil {
		return models.Idea{}, err
	}
	return translate.ToIdea(r), nil
}

// Get returns one review.
func (a *ReviewAPI) Get(ctx context.Context, reviewID string) (models.Review, error) {
	r, err := a.c.getRecord(ctx, "review", "/review/"+seg(reviewID))
	if err != nil {
		return models.Review{}, err
	}
	return translate.ToReview(r), nil
}

// ForIdea returns the reviews of one idea.
func (a *ReviewAPI) ForIdea(ctx context.Context, ideaID string) ([]models.Review, error) {
	list, err := a.c.getList(ctx, "review", "/review/idea/"+seg(ideaID))
	if err != nil {
		return nil, err
	}
	return translate.ToReviews(list), nil
}

// Mine returns the reviews written by the current manager.
func (a *ReviewAPI) Mine(ctx context.Context) ([]models.Review, error) {
	list, err := a.c.getList(ctx, "review", "/review/manager/my-reviews")
	if err != nil {
		return nil, err
	}
	return translate.ToReviews(list), nil
}

// SubmitFeedback posts reviewer feedback without changing the idea status.
func (a *ReviewAPI) SubmitFeedback(ctx context.Context, ideaID, feedback string) error {
	_, err := a.c.write(ctx, "review", http.MethodPost, "/review/feedback/"+seg(ideaID),
		map[string]string{"feedback": feedback})
	return err
}

// UpdateIdeaStatus changes an idea's status. reviewComment is sent only
// when rejecting.
func (a *ReviewAPI) UpdateIdeaStatus(ctx context.Context, ideaID string, status models.IdeaStatus, reviewComment string) error {
	body := map[string]string{"status": string(status)}
	if status == models.StatusRejected && reviewComment != "" {
		body["reviewComment"] = reviewComment
	}
	_, err := a.c.write(ctx, "review", http.MethodPut, "/review/ideas/"+seg(ideaID)+"/status", body)
	return err
}

// Update rewrites a review. Kept for older backends that store the
// decision on the review itself.
func (a *ReviewAPI) Update(ctx context.Context, reviewID, feedback string, decision models.ReviewDecision) error {
	_, err := a.c.write(ctx, "review", http.MethodPut, "/review/"+seg(reviewID),
		map[string]string{"feedback": feedback, "decision": string(decision)})
	return err
}

// Delete removes a review.
func (a *ReviewAPI) Delete(ctx context.Context, reviewID string) error {
	_, err := a.c.do(ctx, "review", http.MethodDelete, "/review/"+seg(reviewID), nil)
	return err
}

// CommentAPI covers /comment.
type CommentAPI struct{ c *Client }

// ForIdea lists an idea's comments.
func (a *CommentAPI) ForIdea(ctx context.Context, ideaID string) ([]models.Comment, error) {
	list, err := a.c.getList(ctx, "comment", "/comment/"+seg(ideaID))
	if err != nil {
		return nil, err
	}
	return translate.ToComments(list, ideaID), nil
}

// Add posts a comment on an idea.
func (a *CommentAPI) Add(ctx context.Context, ideaID, text string) error {
	_, err := a.c.write(ctx, "comment", http.MethodPost, "/comment/"+seg(ideaID),
		map[string]string{"text": text})
	return err
}

// Update edits a comment.
func (a *CommentAPI) Update(ctx context.Context, commentID, text string) error {
	_, err := a.c.write(ctx, "comment", http.MethodPut, "/comment/"+seg(commentID),
		map[string]string{"text": text})
	return err
}

// Delete removes a comment.
func (a *CommentAPI) Delete(ctx context.Context, commentID string) error {
	_, err := a.c.do(ctx, "comment", http.MethodDelete, "/comment/"+seg(commentID), nil)
	return err
}
