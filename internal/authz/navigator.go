// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

// Package authz gates navigation and local API routes by role using Casbin.
//
// The model and policy are embedded; config may point at replacements on
// disk. Pages and API routes share one policy so the UI never links to a
// route the API would refuse.
package authz

import (
	_ "embed"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"

	"github.com/Shashivarun2464480/Project-fe/internal/config"
	"github.com/Shashivarun2464480/Project-fe/internal/logging"
	"github.com/Shashivarun2464480/Project-fe/internal/models"
)

//go:embed model.conf
var embeddedModel string

//go:embed policy.csv
var embeddedPolicy string

// Actions.
const (
	ActionRead   = "read"
	ActionWrite  = "write"
	ActionDelete = "delete"
)

// Landing pages per role.
const (
	AdminHome    = "/admin/dashboard"
	ManagerHome  = "/manager/dashboard"
	EmployeeHome = "/employee/dashboard"
)

// HomeRoute returns the landing page for role. Unknown roles land on the
// employee dashboard.
func HomeRoute(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return AdminHome
	case models.RoleManager:
		return ManagerHome
	default:
		return EmployeeHome
	}
}

// Navigator answers role permission questions.
type Navigator struct {
	enforcer *casbin.SyncedEnforcer
}

// NewNavigator loads the model and policy named in cfg, falling back to the
// embedded ones when a path is empty or missing.
func NewNavigator(cfg config.AuthzConfig) (*Navigator, error) {
	var m model.Model
	var err error
	if cfg.ModelPath != "" && fileExists(cfg.ModelPath) {
		m, err = model.NewModelFromFile(cfg.ModelPath)
	} else {
		m, err = model.NewModelFromString(embeddedModel)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}

	var enforcer *casbin.SyncedEnforcer
	if cfg.PolicyPath != "" && fileExists(cfg.PolicyPath) {
		enforcer, err = casbin.NewSyncedEnforcer(m, fileadapter.NewAdapter(cfg.PolicyPath))
	} else {
		enforcer, err = casbin.NewSyncedEnforcer(m)
		if err == nil {
			err = loadEmbeddedPolicy(enforcer, embeddedPolicy)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}
	return &Navigator{enforcer: enforcer}, nil
}

// loadEmbeddedPolicy parses the embedded policy CSV.
func loadEmbeddedPolicy(enforcer *casbin.SyncedEnforcer, policy string) error {
	for _, line := range strings.Split(policy, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		switch parts[0] {
		case "p":
			if len(parts) != 4 {
				return fmt.Errorf("malformed policy line %q", line)
			}
			if _, err := enforcer.AddPolicy(parts[1], parts[2], parts[3]); err != nil {
				return fmt.Errorf("failed to add policy %v: %w", parts[1:], err)
			}
		case "g":
			if len(parts) != 3 {
				return fmt.Errorf("malformed grouping line %q", line)
			}
			if _, err := enforcer.AddGroupingPolicy(parts[1], parts[2]); err != nil {
				return fmt.Errorf("failed to add grouping policy %v: %w", parts[1:], err)
			}
		}
	}
	return nil
}

// Can reports whether role may perform action on path. Enforcement errors
// deny.
func (n *Navigator) Can(role models.Role, path, action string) bool {
	allowed, err := n.enforcer.Enforce(string(role), path, action)
	if err != nil {
		logging.Error().Err(err).Str("role", string(role)).Str("path", path).Msg("Authorization error")
		return false
	}
	return allowed
}

// CanNavigate reports whether role may open the page at path.
func (n *Navigator) CanNavigate(role models.Role, path string) bool {
	return n.Can(role, path, ActionRead)
}

// ActionForMethod maps an HTTP method to an action.
func ActionForMethod(method string) string {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return ActionWrite
	case http.MethodDelete:
		return ActionDelete
	default:
		return ActionRead
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
