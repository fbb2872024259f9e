// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/sync"
	"github.com/Shashivarun2464480/Project-fe/internal/validation"
	"github.com/Shashivarun2464480/Project-fe/internal/views"
)

// IdeaListResponse is a filtered board.
type IdeaListResponse struct {
	Ideas  []models.Idea      `json:"ideas"`
	Counts views.StatusCounts `json:"counts"`
	Filter views.IdeaFilter   `json:"filter"`
}

type downvoteRequest struct {
	Comment string `json:"comment"`
}

// ListIdeas filters the idea cache. scope or refresh reloads it first;
// otherwise the cache is served as is.
func (rt *Router) ListIdeas(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	q := r.URL.Query()

	query, ok := ideaQuery(q.Get("scope"))
	if !ok {
		rw.BadRequest("scope must be all, mine or review")
		return
	}
	var status models.IdeaStatus
	if raw := q.Get("status"); raw != "" {
		if status, ok = models.LookupIdeaStatus(raw); !ok {
			rw.BadRequest("status must be UnderReview, Approved or Rejected")
			return
		}
	}
	ideas := rt.deps.Services.Ideas
	if q.Has("scope") || queryBool(q.Get("refresh")) {
		if _, err := ideas.Load(r.Context(), query); err != nil {
			rw.Fail(err)
			return
		}
	}

	rt.board.SetFilter(views.IdeaFilter{
		Status:     status,
		CategoryID: q.Get("category"),
		Term:       q.Get("q"),
	})

	rw.Success(IdeaListResponse{
		Ideas:  rt.board.View(),
		Counts: rt.board.Counts(),
		Filter: rt.board.Filter(),
	})
}

// SubmitIdea submits a new idea. It enters the cache under review.
func (rt *Router) SubmitIdea(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var form validation.IdeaSubmission
	if err := decodeBody(w, r, &form); err != nil {
		rw.BadRequest("Invalid request body")
		return
	}
	idea, err := rt.deps.Services.Ideas.Submit(r.Context(), form)
	if err != nil {
		rw.Fail(err)
		return
	}
	rw.Created(idea)
}

// Upvote records an upvote and returns the reloaded idea.
func (rt *Router) Upvote(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id := chi.URLParam(r, "id")
	if err := rt.deps.Services.Votes.Upvote(r.Context(), id); err != nil {
		rw.Fail(err)
		return
	}
	rt.writeIdea(rw, id)
}

// Downvote records a downvote. A comment is mandatory.
func (rt *Router) Downvote(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id := chi.URLParam(r, "id")

	var req downvoteRequest
	if err := decodeBody(w, r, &req); err != nil {
		rw.BadRequest("Invalid request body")
		return
	}
	if err := rt.deps.Services.Votes.Downvote(r.Context(), id, req.Comment); err != nil {
		rw.Fail(err)
		return
	}
	rt.writeIdea(rw, id)
}

// ChangeStatus is the manager review decision. Rejections need a comment.
func (rt *Router) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id := chi.URLParam(r, "id")

	var form validation.StatusChange
	if err := decodeBody(w, r, &form); err != nil {
		rw.BadRequest("Invalid request body")
		return
	}
	if err := validation.ValidateStruct(&form); err != nil {
		rw.Fail(err)
		return
	}
	status := models.IdeaStatus(form.Status)
	if err := rt.deps.Services.Reviews.ChangeIdeaStatus(r.Context(), id, status, form.ReviewComment); err != nil {
		rw.Fail(err)
		return
	}
	rt.writeIdea(rw, id)
}

// writeIdea answers with the cached idea, or just the ID when the cache
// does not hold it (for example under a scope that excludes it).
func (rt *Router) writeIdea(rw *ResponseWriter, id string) {
	if idea, ok := rt.deps.Services.Ideas.Get(id); ok {
		rw.Success(idea)
		return
	}
	rw.Success(map[string]string{"id": id})
}

func ideaQuery(scope string) (sync.IdeaQuery, bool) {
	switch scope {
	case "", "all":
		return sync.AllIdeas, true
	case "mine":
		return sync.IdeaQuery{Scope: sync.ScopeMine}, true
	case "review":
		return sync.IdeaQuery{Scope: sync.ScopeForReview}, true
	default:
		return sync.IdeaQuery{}, false
	}
}

func queryBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
