// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package api

import "net/http"

// HealthResponse summarises the client process.
type HealthResponse struct {
	Status           string `json:"status"`
	SignedIn         bool   `json:"signedIn"`
	Poller           string `json:"poller"`
	Breaker          string `json:"breaker,omitempty"`
	WebsocketClients int    `json:"websocketClients"`
}

// Health always answers 200; an open breaker is reported as degraded.
func (rt *Router) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:           "ok",
		SignedIn:         rt.deps.Session.Active(),
		Poller:           rt.deps.Services.Poller.State().String(),
		WebsocketClients: rt.deps.Hub.GetClientCount(),
	}
	if rt.deps.BreakerState != nil {
		resp.Breaker = rt.deps.BreakerState()
		if resp.Breaker == "open" {
			resp.Status = "degraded"
		}
	}
	NewResponseWriter(w, r).Success(resp)
}
