// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package sync

import (
	"context"
	"testing"

	"github.com/Shashivarun2464480/Project-fe/internal/backend"
	"github.com/Shashivarun2464480/Project-fe/internal/models"
)

const threeUsers = `[
	{"userId": "u1", "name": "Ana", "email": "ana@corp.test", "role": "Admin", "department": "IT", "status": "Active"},
	{"userID": "u2", "name": "Ben", "email": "ben@corp.test", "role": "Manager", "department": "HR", "status": "Active"},
	{"id": "u3", "name": "Cy", "email": "cy@corp.test", "role": "Employee", "status": "Inactive"}
]`

const userStats = `{"totalUsers": 3, "activeUsers": 2, "inactiveUsers": 1,
	"roleBreakdown": {"employees": 1, "managers": 1, "admins": 1}}`

func newUserFixture(t *testing.T) (*fakeBackend, *UserService) {
	t.Helper()
	fake, client := newFakeBackend(t)
	fake.on("GET /usermanagement/users", 200, threeUsers)
	fake.on("GET /usermanagement/statistics/summary", 200, userStats)
	return fake, NewUserService(client.Users)
}

func TestUserLoadAndStatistics(t *testing.T) {
	t.Parallel()

	_, svc := newUserFixture(t)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Statistics(context.Background()); err != nil {
		t.Fatal(err)
	}

	checkIntEqual(t, "users", len(svc.Users().Get()), 3)
	st := svc.Stats().Get()
	checkIntEqual(t, "total", st.TotalUsers, 3)
	checkIntEqual(t, "admins", st.RoleBreakdown.Admins, 1)

	u, ok := svc.Get("u3")
	if !ok {
		t.Fatal("u3 should be cached")
	}
	checkStringEqual(t, "department default", u.Department, models.DefaultDepartment)
	checkStringEqual(t, "role", string(u.Role), string(models.RoleEmployee))
}

func TestUserLoadFailurePublishesEmpty(t *testing.T) {
	t.Parallel()

	fake, svc := newUserFixture(t)
	_, _ = svc.Load(context.Background())

	fake.on("GET /usermanagement/users", 503, ``)
	if _, err := svc.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	checkIntEqual(t, "users after failure", len(svc.Users().Get()), 0)
}

func TestUserMutationsReloadUsersAndStatistics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		call func(*UserService) error
	}{
		{"set status", "PUT /usermanagement/u2/status", func(s *UserService) error {
			return s.SetStatus(context.Background(), "u2", models.UserInactive)
		}},
		{"activate", "PUT /usermanagement/u3/activate", func(s *UserService) error {
			return s.Activate(context.Background(), "u3")
		}},
		{"deactivate", "PUT /usermanagement/u2/deactivate", func(s *UserService) error {
			return s.Deactivate(context.Background(), "u2")
		}},
		{"set role", "PUT /usermanagement/u3/role", func(s *UserService) error {
			return s.SetRole(context.Background(), "u3", models.RoleManager)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fake, svc := newUserFixture(t)
			fake.on(tt.key, 200, `{"message":"ok"}`)

			if err := tt.call(svc); err != nil {
				t.Fatalf("mutation: %v", err)
			}
			checkCalls(t, fake, tt.key, 1)
			checkCalls(t, fake, "GET /usermanagement/users", 1)
			checkCalls(t, fake, "GET /usermanagement/statistics/summary", 1)
		})
	}
}

func TestSelfDeactivationIsReported(t *testing.T) {
	t.Parallel()

	fake, svc := newUserFixture(t)
	fake.on("PUT /usermanagement/u1/deactivate", 400, `"You cannot deactivate your own account."`)

	err := svc.Deactivate(context.Background(), "u1")
	if !backend.IsSelfDeactivation(err) {
		t.Fatalf("expected self-deactivation, got %v", err)
	}
	checkStringEqual(t, "message", backend.UserMessage(err), backend.MsgSelfDeactivation)
	checkCalls(t, fake, "GET /usermanagement/users", 0)
}

func TestUserCacheHelpers(t *testing.T) {
	t.Parallel()

	_, svc := newUserFixture(t)
	_, _ = svc.Load(context.Background())

	checkIntEqual(t, "IT users", len(svc.ByDepartment("it")), 1)
	checkIntEqual(t, "Other users", len(svc.ByDepartment(models.DefaultDepartment)), 1)

	if !svc.EmailExists(" BEN@corp.test", "") {
		t.Error("email should exist case-insensitively")
	}
	if svc.EmailExists("ben@corp.test", "u2") {
		t.Error("excluded user should not count")
	}
	if svc.EmailExists("zoe@corp.test", "") {
		t.Error("unknown email should not exist")
	}
}

func TestUserQueriesDoNotTouchCache(t *testing.T) {
	t.Parallel()

	fake, svc := newUserFixture(t)
	fake.on("GET /usermanagement/search/ana", 200, `[{"userId": "u1", "name": "Ana"}]`)
	fake.on("GET /usermanagement/users/role/manager", 200, `[{"userId": "u2"}]`)

	var publishes publishCounter
	svc.Users().Subscribe(func([]models.User) { publishes.inc() })

	found, err := svc.Search(context.Background(), " ana ")
	if err != nil || len(found) != 1 {
		t.Fatalf("Search = %v, %v", found, err)
	}
	if _, err := svc.ByRole(context.Background(), models.RoleManager); err != nil {
		t.Fatal(err)
	}
	checkIntEqual(t, "publishes", publishes.get(), 0)
}
