// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package sync

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Shashivarun2464480/Project-fe/internal/validation"
)

const twoCategories = `[
	{"categoryId": 1, "name": "Process", "description": "Ways of working"},
	{"categoryID": 2, "name": "Facilities", "isActive": false}
]`

func TestCategoryLoadAndActive(t *testing.T) {
	t.Parallel()

	fake, client := newFakeBackend(t)
	fake.on("GET /category", 200, twoCategories)
	svc := NewCategoryService(client.Categories)

	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if c, ok := svc.Get("2"); !ok || c.Name != "Facilities" {
		t.Errorf("Get(2) = %+v, %v", c, ok)
	}
	active := svc.Active()
	if len(active) != 1 || active[0].ID != "1" {
		t.Errorf("Active = %+v", active)
	}
}

func TestCategoryCreateValidatesAndReloads(t *testing.T) {
	t.Parallel()

	fake, client := newFakeBackend(t)
	fake.on("GET /category", 200, twoCategories)
	fake.on("POST /category", 201, `{"categoryId": 3}`)
	svc := NewCategoryService(client.Categories)

	err := svc.Create(context.Background(), validation.CategoryForm{Name: "  "})
	var ve *validation.RequestValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	checkNoCalls(t, fake)

	if err := svc.Create(context.Background(), validation.CategoryForm{Name: " Safety ", IsActive: true}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.Contains(fake.lastBody("POST /category"), `"name":"Safety"`) {
		t.Errorf("body = %s", fake.lastBody("POST /category"))
	}
	checkCalls(t, fake, "GET /category", 1)
}

func TestCategoryUpdateFailureSkipsReload(t *testing.T) {
	t.Parallel()

	fake, client := newFakeBackend(t)
	fake.on("PUT /category/1", 400, `{"message":"Name already in use"}`)
	svc := NewCategoryService(client.Categories)

	if err := svc.Update(context.Background(), "1", validation.CategoryForm{Name: "Process"}); err == nil {
		t.Fatal("expected failure")
	}
	checkCalls(t, fake, "GET /category", 0)
}
