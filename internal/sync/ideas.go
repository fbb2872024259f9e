// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package sync

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Shashivarun2464480/Project-fe/internal/backend"
	"github.com/Shashivarun2464480/Project-fe/internal/logging"
	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/store"
	"github.com/Shashivarun2464480/Project-fe/internal/validation"
)

// IdeaSource is the idea part of the backend.
type IdeaSource interface {
	All(ctx context.Context) ([]models.Idea, error)
	Mine(ctx context.Context) ([]models.Idea, error)
	Get(ctx context.Context, id string) (models.Idea, error)
	Submit(ctx context.Context, req backend.SubmitIdeaRequest) (models.Idea, error)
}

// ReviewQueue lists ideas from the manager's point of view.
type ReviewQueue interface {
	Ideas(ctx context.Context) ([]models.Idea, error)
	IdeasByStatus(ctx context.Context, status models.IdeaStatus) ([]models.Idea, error)
	IdeaDetail(ctx context.Context, ideaID string) (models.Idea, error)
}

// Scope selects which ideas a load fetches.
type Scope int

const (
	ScopeAll Scope = iota
	ScopeMine
	ScopeForReview
	ScopeByStatus
)

// String returns the scope name used in logs.
func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeMine:
		return "mine"
	case ScopeForReview:
		return "for_review"
	case ScopeByStatus:
		return "by_status"
	default:
		return "unknown"
	}
}

// IdeaQuery is the last thing the idea cache was loaded with. Status is only
// read for ScopeByStatus.
type IdeaQuery struct {
	Scope  Scope
	Status models.IdeaStatus
}

// AllIdeas is the default query.
var AllIdeas = IdeaQuery{Scope: ScopeAll}

// IdeaService owns the idea cache.
type IdeaService struct {
	ideas IdeaSource
	queue ReviewQueue
	cache *store.Store[[]models.Idea]

	mu   sync.Mutex
	last IdeaQuery
}

// NewIdeaService returns a service with an empty cache.
func NewIdeaService(ideas IdeaSource, queue ReviewQueue) *IdeaService {
	return &IdeaService{
		ideas: ideas,
		queue: queue,
		cache: store.New[[]models.Idea]("ideas", []models.Idea{}),
		last:  AllIdeas,
	}
}

// Ideas returns the observable idea collection.
func (s *IdeaService) Ideas() *store.Store[[]models.Idea] {
	return s.cache
}

// LastQuery returns the query Reload will rerun.
func (s *IdeaService) LastQuery() IdeaQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Load fetches ideas for q and publishes them. On failure an empty
// collection is published and the error returned.
func (s *IdeaService) Load(ctx context.Context, q IdeaQuery) ([]models.Idea, error) {
	s.mu.Lock()
	s.last = q
	s.mu.Unlock()

	list, err := s.fetch(ctx, q)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("scope", q.Scope.String()).Msg("Failed to load ideas")
		s.cache.Set([]models.Idea{})
		return nil, fmt.Errorf("load ideas (%s): %w", q.Scope, err)
	}
	if list == nil {
		list = []models.Idea{}
	}

	s.cache.Set(models.CloneIdeas(list))
	logging.Ctx(ctx).Debug().Str("scope", q.Scope.String()).Int("count", len(list)).Msg("Ideas loaded")
	return list, nil
}

// Reload reruns the last query.
func (s *IdeaService) Reload(ctx context.Context) error {
	_, err := s.Load(ctx, s.LastQuery())
	return err
}

func (s *IdeaService) fetch(ctx context.Context, q IdeaQuery) ([]models.Idea, error) {
	switch q.Scope {
	case ScopeAll:
		return s.ideas.All(ctx)
	case ScopeMine:
		return s.ideas.Mine(ctx)
	case ScopeForReview:
		return s.queue.Ideas(ctx)
	case ScopeByStatus:
		if !q.Status.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, q.Status)
		}
		return s.queue.IdeasByStatus(ctx, q.Status)
	default:
		return nil, fmt.Errorf("unknown idea scope %d", q.Scope)
	}
}

// Get looks an idea up in the cache.
func (s *IdeaService) Get(id string) (models.Idea, bool) {
	for _, idea := range s.cache.Get() {
		if idea.ID == id {
			return idea.Clone(), true
		}
	}
	return models.Idea{}, false
}

// Fetch reads a single idea from the backend without touching the cache.
func (s *IdeaService) Fetch(ctx context.Context, id string) (models.Idea, error) {
	return s.ideas.Get(ctx, id)
}

// Detail returns an idea with its comments and reviews embedded. The result
// is not cached.
func (s *IdeaService) Detail(ctx context.Context, id string) (models.Idea, error) {
	return s.queue.IdeaDetail(ctx, id)
}

// Submit validates the form, posts it and prepends the new idea to the
// cache. A new idea is always under review with no votes.
func (s *IdeaService) Submit(ctx context.Context, form validation.IdeaSubmission) (models.Idea, error) {
	form.Title = strings.TrimSpace(form.Title)
	form.Description = strings.TrimSpace(form.Description)
	form.CategoryID = strings.TrimSpace(form.CategoryID)
	if err := validation.ValidateStruct(&form); err != nil {
		return models.Idea{}, err
	}

	idea, err := s.ideas.Submit(ctx, backend.SubmitIdeaRequest{
		Title:       form.Title,
		Description: form.Description,
		CategoryID:  form.CategoryID,
	})
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Failed to submit idea")
		return models.Idea{}, err
	}
	idea.Status = models.StatusUnderReview
	idea.Upvotes, idea.Downvotes = 0, 0

	s.cache.Update(func(cur []models.Idea) []models.Idea {
		out := make([]models.Idea, 0, len(cur)+1)
		out = append(out, idea.Clone())
		return append(out, models.CloneIdeas(cur)...)
	})
	logging.Ctx(ctx).Info().Str("idea_id", idea.ID).Msg("Idea submitted")
	return idea, nil
}

// PatchStatus sets the status of a cached idea without re-fetching. It
// reports whether the idea was cached; nothing is published otherwise.
func (s *IdeaService) PatchStatus(id string, status models.IdeaStatus) bool {
	_, changed := s.cache.UpdateIf(func(cur []models.Idea) ([]models.Idea, bool) {
		at := -1
		for n := range cur {
			if cur[n].ID == id {
				at = n
				break
			}
		}
		if at < 0 {
			return cur, false
		}
		out := models.CloneIdeas(cur)
		out[at].Status = status
		return out, true
	})
	return changed
}
