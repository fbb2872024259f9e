// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

// Package main runs the Ideaboard client process.
//
// The process keeps an observable cache of the idea-management backend
// (ideas, reviews, votes, comments, users, categories and notifications)
// and serves it to a local UI.
//
// Startup order:
//
//  1. Configuration (koanf: defaults, config.yaml, environment)
//  2. Session token store (memory or badger) and session restore
//  3. Backend client with rate limiter and circuit breaker
//  4. Synchronization services and the notification poller
//  5. Role navigator (casbin)
//  6. Supervisor tree: session watcher, cache bridge, websocket hub and the
//     optional local API
//
// SIGINT and SIGTERM cancel the tree; every service stops within the
// shutdown timeout and the token store is closed last.
//
// Example:
//
//	export API_BASE_URL=https://localhost:7175/api
//	export API_INSECURE_SKIP_VERIFY=true
//	export HTTP_ENABLED=true
//	./ideaboard
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Shashivarun2464480/Project-fe/internal/api"
	"github.com/Shashivarun2464480/Project-fe/internal/authz"
	"github.com/Shashivarun2464480/Project-fe/internal/backend"
	"github.com/Shashivarun2464480/Project-fe/internal/config"
	"github.com/Shashivarun2464480/Project-fe/internal/logging"
	"github.com/Shashivarun2464480/Project-fe/internal/session"
	"github.com/Shashivarun2464480/Project-fe/internal/supervisor"
	"github.com/Shashivarun2464480/Project-fe/internal/supervisor/services"
	"github.com/Shashivarun2464480/Project-fe/internal/sync"
	ws "github.com/Shashivarun2464480/Project-fe/internal/websocket"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Ideaboard stopped with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Service:   "ideaboard",
	})
	logging.Info().
		Str("backend", cfg.Backend.BaseURL).
		Str("session_store", cfg.Session.Store).
		Dur("poll_interval", cfg.Notifications.PollInterval).
		Bool("local_api", cfg.Server.Enabled).
		Msg("Starting Ideaboard")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tokens, err := session.NewTokenStore(cfg.Session)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer func() {
		if err := tokens.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}()

	// The client reads the token through the holder, which signs in
	// through the client.
	var holder *session.Holder
	client := backend.New(cfg.Backend, backend.TokenFunc(func() string { return holder.Token() }))
	holder = session.NewHolder(client.Auth, tokens)

	restored, err := holder.Restore(ctx)
	if err != nil {
		logging.Warn().Err(err).Msg("Could not restore session; starting signed out")
	} else if restored {
		u, _ := holder.User()
		logging.Info().Str("user_id", u.ID).Str("home", authz.HomeRoute(u.Role)).Msg("Session restored")
	}

	svcs := sync.NewServices(client, holder, cfg.Notifications.PollInterval)

	navigator, err := authz.NewNavigator(cfg.Authz)
	if err != nil {
		return fmt.Errorf("load authorization policy: %w", err)
	}

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: shutdownTimeout,
	})

	hub := ws.NewHub()
	tree.AddSyncService(services.NewSessionWatcher(holder, svcs.Poller, svcs.Notifications))
	tree.AddSyncService(services.NewCacheBridge(hub, svcs, holder))
	tree.AddAPIService(services.NewWebSocketHubService(hub))

	if cfg.Server.Enabled {
		addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
		router := api.NewRouter(cfg.Server, api.Deps{
			Session:      holder,
			Services:     svcs,
			Navigator:    navigator,
			Hub:          hub,
			BreakerState: client.BreakerState,
		})
		tree.AddAPIService(services.NewHTTPServerService(router.Server(addr), addr, shutdownTimeout))
	}

	treeErr := awaitTree(tree.ServeBackground(ctx))

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	if treeErr != nil {
		return fmt.Errorf("supervisor tree: %w", treeErr)
	}
	logging.Info().Msg("Ideaboard stopped")
	return nil
}

// awaitTree waits for the tree's single result. suture sends it once and
// never closes the channel. Cancellation is a clean stop.
func awaitTree(errCh <-chan error) error {
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
