// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package sync

import (
	"context"
	"testing"

	"github.com/Shashivarun2464480/Project-fe/internal/models"
)

const threeNotifications = `[
	{"notificationId": 1, "type": "NewIdea", "message": "old", "status": "Read", "createdDate": "2026-03-01T09:00:00Z"},
	{"notificationId": 2, "type": "ReviewDecision", "message": "newest", "status": "Unread", "createdDate": "2026-03-03T09:00:00Z"},
	{"notificationId": 3, "type": "NewComment", "message": "middle", "status": "Unread", "createdDate": "2026-03-02T09:00:00Z"}
]`

func newNotificationFixture(t *testing.T) (*fakeBackend, *NotificationService) {
	t.Helper()
	fake, client := newFakeBackend(t)
	fake.on("GET /notification", 200, threeNotifications)
	svc := NewNotificationService(client.Notifications)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	fake.reset()
	return fake, svc
}

func messages(list []models.Notification) []string {
	out := make([]string, 0, len(list))
	for _, n := range list {
		out = append(out, n.Message)
	}
	return out
}

func TestNotificationLoadNewestFirst(t *testing.T) {
	t.Parallel()

	_, svc := newNotificationFixture(t)
	got := messages(svc.Notifications().Get())
	want := []string{"newest", "middle", "old"}
	for n := range want {
		if n >= len(got) || got[n] != want[n] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	checkIntEqual(t, "unread", svc.UnreadCount(), 2)
}

func TestNotificationLoadFailureKeepsCache(t *testing.T) {
	t.Parallel()

	fake, svc := newNotificationFixture(t)
	fake.on("GET /notification", 500, ``)
	if _, err := svc.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	checkIntEqual(t, "cached", len(svc.Notifications().Get()), 3)
}

func TestMarkAsReadIsOptimisticWithoutRollback(t *testing.T) {
	t.Parallel()

	fake, svc := newNotificationFixture(t)
	fake.on("PUT /notification/2/read", 500, `{"message":"db down"}`)

	var states []int
	svc.Notifications().Subscribe(func(list []models.Notification) { states = append(states, countUnread(list)) })

	if err := svc.MarkAsRead(context.Background(), "2"); err == nil {
		t.Fatal("server failure should be returned")
	}
	checkCalls(t, fake, "PUT /notification/2/read", 1)
	checkIntEqual(t, "unread after failure", svc.UnreadCount(), 1)
	if len(states) != 1 || states[0] != 1 {
		t.Errorf("published unread counts = %v, want [1]", states)
	}
}

func TestMarkAsReadAlreadyReadDoesNotPublish(t *testing.T) {
	t.Parallel()

	fake, svc := newNotificationFixture(t)
	fake.on("PUT /notification/1/read", 200, ``)

	var publishes publishCounter
	svc.Notifications().Subscribe(func([]models.Notification) { publishes.inc() })

	if err := svc.MarkAsRead(context.Background(), "1"); err != nil {
		t.Fatal(err)
	}
	checkIntEqual(t, "publishes", publishes.get(), 0)
}

func TestMarkAllAsReadTwice(t *testing.T) {
	t.Parallel()

	fake, svc := newNotificationFixture(t)
	fake.on("PUT /notification/read-all", 200, `{"message":"All notifications marked as read"}`)

	var publishes publishCounter
	svc.Notifications().Subscribe(func([]models.Notification) { publishes.inc() })

	if err := svc.MarkAllAsRead(context.Background()); err != nil {
		t.Fatal(err)
	}
	checkIntEqual(t, "unread", svc.UnreadCount(), 0)
	checkIntEqual(t, "publishes after first", publishes.get(), 1)

	if err := svc.MarkAllAsRead(context.Background()); err != nil {
		t.Fatal(err)
	}
	checkIntEqual(t, "publishes after second", publishes.get(), 1)
	checkCalls(t, fake, "PUT /notification/read-all", 2)
}

func TestNotificationDelete(t *testing.T) {
	t.Parallel()

	fake, svc := newNotificationFixture(t)
	fake.on("DELETE /notification/3", 204, ``)
	fake.on("DELETE /notification/1", 500, ``)

	if err := svc.Delete(context.Background(), "1"); err == nil {
		t.Fatal("expected failure")
	}
	checkIntEqual(t, "after failed delete", len(svc.Notifications().Get()), 3)

	if err := svc.Delete(context.Background(), "3"); err != nil {
		t.Fatal(err)
	}
	got := messages(svc.Notifications().Get())
	if len(got) != 2 || got[0] != "newest" || got[1] != "old" {
		t.Errorf("after delete = %v", got)
	}
}

func TestFetchUnreadCountAndClear(t *testing.T) {
	t.Parallel()

	fake, svc := newNotificationFixture(t)
	fake.on("GET /notification/unread-count", 200, `{"unreadCount": 7}`)

	n, err := svc.FetchUnreadCount(context.Background())
	if err != nil || n != 7 {
		t.Errorf("FetchUnreadCount = %d, %v", n, err)
	}

	svc.Clear()
	checkIntEqual(t, "after clear", len(svc.Notifications().Get()), 0)
	checkIntEqual(t, "unread after clear", svc.UnreadCount(), 0)
}
