// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Shashivarun2464480/Project-fe/internal/authz"
	"github.com/Shashivarun2464480/Project-fe/internal/config"
	"github.com/Shashivarun2464480/Project-fe/internal/middleware"
	"github.com/Shashivarun2464480/Project-fe/internal/models"
	"github.com/Shashivarun2464480/Project-fe/internal/session"
	"github.com/Shashivarun2464480/Project-fe/internal/sync"
	"github.com/Shashivarun2464480/Project-fe/internal/views"
	"github.com/Shashivarun2464480/Project-fe/internal/websocket"
)

// Deps are the collaborators the handlers drive.
type Deps struct {
	Session   *session.Holder
	Services  *sync.Services
	Navigator *authz.Navigator
	Hub       *websocket.Hub

	// BreakerState reports the backend circuit breaker for /healthz.
	BreakerState func() string
}

// Router owns the handlers and the view state of the signed-in user. Like
// the desktop pages, list filters are sticky between requests.
type Router struct {
	deps       Deps
	cfg        config.ServerConfig
	middleware *ChiMiddleware
	board      *views.IdeaBoard
	directory  *views.UserDirectory
}

// NewRouter builds the handlers for deps.
func NewRouter(cfg config.ServerConfig, deps Deps) *Router {
	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.CORSAllowedOrigins = cfg.CORSOrigins
	mwCfg.RateLimitRequests = cfg.RateLimit
	return &Router{
		deps:       deps,
		cfg:        cfg,
		middleware: NewChiMiddleware(mwCfg),
		board:      views.NewIdeaBoard(deps.Services.Ideas),
		directory:  views.NewUserDirectory(deps.Services.Users),
	}
}

// Handler returns the routed handler.
func (rt *Router) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(rt.middleware.CORS())
	r.Use(middleware.PrometheusMetrics)

	r.Get("/healthz", rt.Health)
	r.Handle("/metrics", promhttp.Handler())

	gate := rt.deps.Navigator.Middleware(rt.roleOf)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rt.middleware.RateLimit())
		r.Use(APISecurityHeaders())

		r.With(rt.middleware.RateLimitLogin()).Post("/session/login", rt.Login)

		r.Group(func(r chi.Router) {
			r.Use(gate)

			r.Get("/session", rt.Session)
			r.Post("/session/logout", rt.Logout)

			r.Get("/ideas", rt.ListIdeas)
			r.Post("/ideas", rt.SubmitIdea)
			r.Post("/ideas/{id}/upvote", rt.Upvote)
			r.Post("/ideas/{id}/downvote", rt.Downvote)
			r.Put("/ideas/{id}/status", rt.ChangeStatus)

			r.Get("/notifications", rt.ListNotifications)
			r.Post("/notifications/read-all", rt.MarkAllRead)
			r.Post("/notifications/{id}/read", rt.MarkRead)

			r.Get("/users", rt.ListUsers)
		})
	})

	r.With(gate).Get("/ws", websocket.Handler(rt.deps.Hub, rt.cfg.CORSOrigins))

	return r
}

// roleOf reports the role of a live session.
func (rt *Router) roleOf(*http.Request) (models.Role, bool) {
	if !rt.deps.Session.Active() {
		return "", false
	}
	u, ok := rt.deps.Session.User()
	return u.Role, ok
}

// Server wraps the handler in an http.Server with the configured timeouts.
func (rt *Router) Server(addr string) *http.Server {
	readTimeout := rt.cfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 15 * time.Second
	}
	return &http.Server{
		Addr:              addr,
		Handler:           rt.Handler(),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}
