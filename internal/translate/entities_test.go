// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package translate

import (
	"testing"
	"time"

	"github.com/Shashivarun2464480/Project-fe/internal/models"
)

func mustDecode(t *testing.T, s string) Record {
	t.Helper()
	r, err := Decode([]byte(s))
	if err != nil {
		t.Fatalf("Decode(%s): %v", s, err)
	}
	return r
}

func TestToIdeaAliasVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    string
		wantID     string
		wantAuthor string
	}{
		{"camel id", `{"ideaId":"a1","submittedByUserId":"u1"}`, "a1", "u1"},
		{"upper id", `{"ideaID":"a2","userId":"u2"}`, "a2", "u2"},
		{"numeric id", `{"ideaID":42,"userID":7}`, "42", "7"},
		{"first non-empty wins", `{"ideaId":"","ideaID":"a3","submittedByUserId":"","userId":"u3"}`, "a3", "u3"},
		{"precedence", `{"ideaId":"first","ideaID":"second"}`, "first", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			idea := ToIdea(mustDecode(t, tt.payload))
			if idea.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", idea.ID, tt.wantID)
			}
			if idea.AuthorID != tt.wantAuthor {
				t.Errorf("AuthorID = %q, want %q", idea.AuthorID, tt.wantAuthor)
			}
		})
	}
}

func TestToIdeaDefaults(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	idea := toIdeaAt(mustDecode(t, `{"ideaId":"1","title":"Bike racks"}`), now)

	if idea.Status != models.StatusUnderReview {
		t.Errorf("Status = %q, want UnderReview", idea.Status)
	}
	if idea.Upvotes != 0 || idea.Downvotes != 0 {
		t.Errorf("votes = %d/%d, want 0/0", idea.Upvotes, idea.Downvotes)
	}
	if !idea.SubmittedAt.Equal(now) {
		t.Errorf("SubmittedAt = %v, want translation time", idea.SubmittedAt)
	}
	if idea.AuthorName != "" {
		t.Errorf("AuthorName = %q, want empty", idea.AuthorName)
	}
}

func TestToIdeaFullPayload(t *testing.T) {
	t.Parallel()

	payload := `{
		"ideaID": "9f1c",
		"title": "Quiet room",
		"description": "A room without meetings",
		"categoryID": 3,
		"category": "Workplace",
		"userName": "Priya",
		"submittedDate": "2026-01-15T10:30:00",
		"status": "Approved",
		"upvotes": 5,
		"downvotes": 1,
		"reviewedByID": "m1",
		"reviewedByName": "Maya",
		"comments": [{"commentID": 11, "text": "Yes", "userID": "u2"}],
		"reviews": [{"reviewID": 21, "feedback": "Good", "decision": "Approve", "reviewDate": "2026-01-16T08:00:00Z"}]
	}`
	idea := ToIdea(mustDecode(t, payload))

	if idea.CategoryID != "3" || idea.CategoryName != "Workplace" {
		t.Errorf("category = %q/%q", idea.CategoryID, idea.CategoryName)
	}
	if idea.AuthorName != "Priya" {
		t.Errorf("AuthorName = %q", idea.AuthorName)
	}
	want := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	if !idea.SubmittedAt.Equal(want) {
		t.Errorf("SubmittedAt = %v, want %v", idea.SubmittedAt, want)
	}
	if idea.Status != models.StatusApproved || idea.Upvotes != 5 || idea.Downvotes != 1 {
		t.Errorf("status/votes = %s %d %d", idea.Status, idea.Upvotes, idea.Downvotes)
	}
	if idea.ReviewedByID != "m1" || idea.ReviewedByName != "Maya" {
		t.Errorf("reviewer = %q/%q", idea.ReviewedByID, idea.ReviewedByName)
	}
	if len(idea.Comments) != 1 || idea.Comments[0].ID != "11" || idea.Comments[0].IdeaID != "9f1c" {
		t.Errorf("comments = %+v", idea.Comments)
	}
	if len(idea.Reviews) != 1 || idea.Reviews[0].Decision != models.DecisionApprove {
		t.Errorf("reviews = %+v", idea.Reviews)
	}
}

func TestToUserDefaults(t *testing.T) {
	t.Parallel()

	u := ToUser(mustDecode(t, `{"userId":"u1","name":"Ana","email":"ana@corp.test","role":"Manager"}`))
	if u.ID != "u1" || u.Role != models.RoleManager {
		t.Errorf("user = %+v", u)
	}
	if u.Department != models.DefaultDepartment {
		t.Errorf("Department = %q, want Other", u.Department)
	}
	if u.Status != models.UserActive {
		t.Errorf("Status = %q, want Active", u.Status)
	}

	d := ToUserDetails(mustDecode(t, `{"userId":"u1","ideasSubmitted":4,"votesCasted":9,"status":"Inactive"}`))
	if d.IdeasSubmitted != 4 || d.VotesCast != 9 || d.CommentsPosted != 0 {
		t.Errorf("details = %+v", d)
	}
	if d.Status != models.UserInactive {
		t.Errorf("Status = %q, want Inactive", d.Status)
	}
}

func TestToStatistics(t *testing.T) {
	t.Parallel()

	s := ToStatistics(mustDecode(t, `{"totalUsers":10,"activeUsers":8,"inactiveUsers":2,"roleBreakdown":{"employees":7,"managers":2,"admins":1}}`))
	if s.TotalUsers != 10 || s.ActiveUsers != 8 || s.InactiveUsers != 2 {
		t.Errorf("stats = %+v", s)
	}
	if s.RoleBreakdown != (models.RoleBreakdown{Employees: 7, Managers: 2, Admins: 1}) {
		t.Errorf("breakdown = %+v", s.RoleBreakdown)
	}

	empty := ToStatistics(mustDecode(t, `{}`))
	if empty != (models.UserStatistics{}) {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestToNotificationAliases(t *testing.T) {
	t.Parallel()

	n := ToNotification(mustDecode(t, `{"notificationID":"n1","userID":"u1","type":"ReviewDecision","status":"Read","relatedIdeaID":"i1","relatedUserName":"Maya","createdDate":"2026-02-01T09:00:00Z"}`))
	if n.ID != "n1" || n.IdeaID != "i1" || n.ReviewerName != "Maya" {
		t.Errorf("notification = %+v", n)
	}
	if n.Unread() {
		t.Error("notification should be read")
	}

	unread := ToNotification(mustDecode(t, `{"notificationId":"n2","status":"whatever"}`))
	if !unread.Unread() {
		t.Error("unknown status should count as unread")
	}
}

func TestToCommentFallsBackToRequestedIdea(t *testing.T) {
	t.Parallel()

	c := ToComment(mustDecode(t, `{"commentID":5,"text":"Nice","isDownvoteComment":true}`), "idea-7")
	if c.IdeaID != "idea-7" || c.ID != "5" || !c.IsDownvoteComment {
		t.Errorf("comment = %+v", c)
	}
}

func TestToCategoryDefaultsActive(t *testing.T) {
	t.Parallel()

	c := ToCategory(mustDecode(t, `{"categoryID":1,"name":"Process"}`))
	if !c.IsActive || c.ID != "1" {
		t.Errorf("category = %+v", c)
	}
	off := ToCategory(mustDecode(t, `{"categoryId":"2","name":"Old","isActive":false}`))
	if off.IsActive {
		t.Error("explicit isActive=false must be kept")
	}
}

func TestDecodeList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		want    int
		wantErr bool
	}{
		{"array", `[{"id":1},{"id":2}]`, 2, false},
		{"data wrapper", `{"data":[{"id":1}]}`, 1, false},
		{"dotnet wrapper", `{"$values":[{"id":1},{"id":2},{"id":3}]}`, 3, false},
		{"null", `null`, 0, false},
		{"object without list", `{"message":"nope"}`, 0, true},
		{"scalar", `5`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeList([]byte(tt.payload))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeList: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}
