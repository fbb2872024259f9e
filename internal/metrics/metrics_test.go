// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordBackendRequest(t *testing.T) {
	before := testutil.ToFloat64(BackendRequestsTotal.WithLabelValues("idea", "GET", "200"))
	RecordBackendRequest("idea", "GET", 200, 15*time.Millisecond)
	after := testutil.ToFloat64(BackendRequestsTotal.WithLabelValues("idea", "GET", "200"))

	if after-before != 1 {
		t.Errorf("counter delta = %v, want 1", after-before)
	}
}

func TestRecordOptimisticUpdate(t *testing.T) {
	confirmed := OptimisticUpdates.WithLabelValues("mark_read", "confirmed")
	diverged := OptimisticUpdates.WithLabelValues("mark_read", "diverged")
	c0, d0 := testutil.ToFloat64(confirmed), testutil.ToFloat64(diverged)

	RecordOptimisticUpdate("mark_read", nil)
	RecordOptimisticUpdate("mark_read", errors.New("offline"))

	if testutil.ToFloat64(confirmed)-c0 != 1 {
		t.Error("confirmed counter not incremented")
	}
	if testutil.ToFloat64(diverged)-d0 != 1 {
		t.Error("diverged counter not incremented")
	}
}
