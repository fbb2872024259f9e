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

// VoteAPI covers /vote.
type VoteAPI struct{ c *Client }

type downvoteRequest struct {
	VoteType    models.VoteType `json:"voteType"`
	CommentText string          `json:"commentText"`
}

// Upvote casts an upvote.
func (a *VoteAPI) Upvote(ctx context.Context, ideaID string) error {
	_, err := a.c.write(ctx, "vote", http.MethodPost, "/vote/"+seg(ideaID)+"/upvote", struct{}{})
	return err
}

// Downvote casts a downvote. The backend records comment as a downvote
// comment on the idea.
func (a *VoteAPI) Downvote(ctx context.Context, ideaID, comment string) error {
	_, err := a.c.write(ctx, "vote", http.MethodPost, "/vote/"+seg(ideaID)+"/downvote",
		downvoteRequest{VoteType: models.VoteDown, CommentText: comment})
	return err
}

// Remove withdraws the current user's vote.
func (a *VoteAPI) Remove(ctx context.Context, ideaID string) error {
	_, err := a.c.do(ctx, "vote", http.MethodDelete, "/vote/"+seg(ideaID), nil)
	return err
}

// ForIdea lists the votes on an idea.
func (a *VoteAPI) ForIdea(ctx context.Context, ideaID string) ([]models.Vote, error) {
	list, err := a.c.getList(ctx, "vote", "/vote/"+seg(ideaID))
	if err != nil {
		return nil, err
	}
	return translate.ToVotes(list), nil
}

// CurrentUserVote reports whether and how the current user voted.
func (a *VoteAPI) CurrentUserVote(ctx context.Context, ideaID string) (models.UserVote, error) {
	r, err := a.c.getRecord(ctx, "vote", "/vote/"+seg(ideaID)+"/user-vote")
	if err != nil {
		if IsNotFound(err) {
			return models.UserVote{}, nil
		}
		return models.UserVote{}, err
	}
	return translate.ToUserVote(r), nil
}
