// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package translate

import (
	"time"

	"github.com/Shashivarun2464480/Project-fe/internal/models"
)

// Alias lists. Order matters: the first non-empty candidate wins.
var (
	ideaIDAliases       = []string{"ideaId", "ideaID", "id"}
	categoryIDAliases   = []string{"categoryId", "categoryID"}
	authorIDAliases     = []string{"submittedByUserId", "userId", "userID"}
	authorNameAliases   = []string{"submittedByUserName", "authorName", "userName"}
	categoryNameAliases = []string{"categoryName", "category"}
	reviewerIDAliases   = []string{"reviewedByUserId", "reviewedByID"}
	reviewerNameAliases = []string{"reviewedByUserName", "reviewedByName"}

	reviewIDAliases   = []string{"reviewId", "reviewID", "id"}
	commentIDAliases  = []string{"commentId", "commentID", "id"}
	userIDAliases     = []string{"userId", "userID", "id"}
	notifIDAliases    = []string{"notificationId", "notificationID", "id"}
	categoryIDOrID    = []string{"categoryId", "categoryID", "id"}
	voteIDAliases     = []string{"voteId", "voteID", "id"}
	plainIdeaIDAlias  = []string{"ideaId", "ideaID"}
	plainUserIDAlias  = []string{"userId", "userID"}
	reviewerIDPlain   = []string{"reviewerId", "reviewerID"}
	createdDateAlias  = []string{"createdDate", "createdAt"}
	commentUserAlias  = []string{"userName", "authorName"}
	notifIdeaIDAlias  = []string{"ideaId", "ideaID", "relatedIdeaID"}
	notifReviewerName = []string{"reviewerName", "relatedUserName"}
)

// ToIdea normalizes an idea record. A missing submission date becomes the
// translation time.
func ToIdea(r Record) models.Idea {
	return toIdeaAt(r, time.Now().UTC())
}

func toIdeaAt(r Record, now time.Time) models.Idea {
	id := r.String(ideaIDAliases...)
	idea := models.Idea{
		ID:             id,
		Title:          r.String("title"),
		Description:    r.String("description"),
		CategoryID:     r.String(categoryIDAliases...),
		CategoryName:   r.String(categoryNameAliases...),
		AuthorID:       r.String(authorIDAliases...),
		AuthorName:     r.String(authorNameAliases...),
		Status:         models.ParseIdeaStatus(r.String("status")),
		Upvotes:        r.Int("upvotes", "upvoteCount"),
		Downvotes:      r.Int("downvotes", "downvoteCount"),
		HasVoted:       r.BoolOr(false, "hasVoted"),
		UserVoteType:   models.ParseVoteType(r.String("userVoteType")),
		ReviewedByID:   r.String(reviewerIDAliases...),
		ReviewedByName: r.String(reviewerNameAliases...),
		ReviewComment:  r.String("reviewComment"),
	}
	if ts, ok := r.Time("submittedDate", "createdDate"); ok {
		idea.SubmittedAt = ts
	} else {
		idea.SubmittedAt = now
	}
	if list := r.Records("comments"); list != nil {
		idea.Comments = ToComments(list, id)
	}
	if list := r.Records("reviews"); list != nil {
		idea.Reviews = ToReviews(list)
	}
	return idea
}

// ToIdeas translates a list of idea records.
func ToIdeas(list []Record) []models.Idea {
	out := make([]models.Idea, 0, len(list))
	for _, r := range list {
		out = append(out, ToIdea(r))
	}
	return out
}

// ToReview normalizes a review record.
func ToReview(r Record) models.Review {
	rv := models.Review{
		ID:           r.String(reviewIDAliases...),
		IdeaID:       r.String(plainIdeaIDAlias...),
		ReviewerID:   r.String(reviewerIDPlain...),
		ReviewerName: r.String("reviewerName"),
		Feedback:     r.String("feedback"),
	}
	switch d := r.String("decision"); d {
	case string(models.DecisionApprove), string(models.DecisionReject):
		rv.Decision = models.ReviewDecision(d)
	}
	if ts, ok := r.Time("reviewDate", "createdDate"); ok {
		rv.ReviewedAt = ts
	}
	return rv
}

// ToReviews translates a list of review records.
func ToReviews(list []Record) []models.Review {
	out := make([]models.Review, 0, len(list))
	for _, r := range list {
		out = append(out, ToReview(r))
	}
	return out
}

// ToComment normalizes a comment record. ideaID is used when the record
// does not name its idea, which happens on per-idea comment listings.
func ToComment(r Record, ideaID string) models.Comment {
	c := models.Comment{
		ID:                r.String(commentIDAliases...),
		IdeaID:            r.StringOr(ideaID, plainIdeaIDAlias...),
		AuthorID:          r.String(plainUserIDAlias...),
		AuthorName:        r.String(commentUserAlias...),
		Text:              r.String("text", "commentText"),
		IsDownvoteComment: r.BoolOr(false, "isDownvoteComment"),
	}
	if ts, ok := r.Time(createdDateAlias...); ok {
		c.CreatedAt = ts
	}
	return c
}

// ToComments translates a list of comment records.
func ToComments(list []Record, ideaID string) []models.Comment {
	out := make([]models.Comment, 0, len(list))
	for _, r := range list {
		out = append(out, ToComment(r, ideaID))
	}
	return out
}

// ToUser normalizes a user record.
func ToUser(r Record) models.User {
	return models.User{
		ID:         r.String(userIDAliases...),
		Name:       r.String("name", "userName"),
		Email:      r.String("email"),
		Role:       models.ParseRole(r.String("role")),
		Department: r.StringOr(models.DefaultDepartment, "department"),
		Status:     models.ParseUserStatus(r.String("status")),
	}
}

// ToUsers translates a list of user records.
func ToUsers(list []Record) []models.User {
	out := make([]models.User, 0, len(list))
	for _, r := range list {
		out = append(out, ToUser(r))
	}
	return out
}

// ToUserDetails normalizes a user record with activity counters.
func ToUserDetails(r Record) models.UserDetails {
	return models.UserDetails{
		User:             ToUser(r),
		IdeasSubmitted:   r.Int("ideasSubmitted"),
		CommentsPosted:   r.Int("commentsPosted"),
		VotesCast:        r.Int("votesCasted", "votesCast"),
		ReviewsSubmitted: r.Int("reviewsSubmitted"),
	}
}

// ToStatistics normalizes the user statistics summary.
func ToStatistics(r Record) models.UserStatistics {
	rb := r.Record("roleBreakdown")
	return models.UserStatistics{
		TotalUsers:    r.Int("totalUsers"),
		ActiveUsers:   r.Int("activeUsers"),
		InactiveUsers: r.Int("inactiveUsers"),
		RoleBreakdown: models.RoleBreakdown{
			Employees: rb.Int("employees"),
			Managers:  rb.Int("managers"),
			Admins:    rb.Int("admins"),
		},
	}
}

// ToNotification normalizes a notification record.
func ToNotification(r Record) models.Notification {
	n := models.Notification{
		ID:           r.String(notifIDAliases...),
		UserID:       r.String(plainUserIDAlias...),
		Type:         models.NotificationType(r.String("type")),
		Message:      r.String("message"),
		Status:       models.ParseNotificationStatus(r.String("status")),
		IdeaID:       r.String(notifIdeaIDAlias...),
		IdeaTitle:    r.String("ideaTitle"),
		ReviewerID:   r.String(reviewerIDPlain...),
		ReviewerName: r.String(notifReviewerName...),
	}
	if ts, ok := r.Time(createdDateAlias...); ok {
		n.CreatedAt = ts
	}
	return n
}

// ToNotifications translates a list of notification records.
func ToNotifications(list []Record) []models.Notification {
	out := make([]models.Notification, 0, len(list))
	for _, r := range list {
		out = append(out, ToNotification(r))
	}
	return out
}

// ToCategory normalizes a category record. Categories are active unless
// the backend says otherwise.
func ToCategory(r Record) models.Category {
	return models.Category{
		ID:          r.String(categoryIDOrID...),
		Name:        r.String("name", "categoryName"),
		Description: r.String("description"),
		IsActive:    r.BoolOr(true, "isActive", "active"),
	}
}

// ToCategories translates a list of category records.
func ToCategories(list []Record) []models.Category {
	out := make([]models.Category, 0, len(list))
	for _, r := range list {
		out = append(out, ToCategory(r))
	}
	return out
}

// ToVote normalizes a vote record.
func ToVote(r Record) models.Vote {
	return models.Vote{
		ID:     r.String(voteIDAliases...),
		IdeaID: r.String(plainIdeaIDAlias...),
		UserID: r.String(plainUserIDAlias...),
		Type:   models.ParseVoteType(r.String("voteType", "type")),
	}
}

// ToVotes translates a list of vote records.
func ToVotes(list []Record) []models.Vote {
	out := make([]models.Vote, 0, len(list))
	for _, r := range list {
		out = append(out, ToVote(r))
	}
	return out
}

// ToUserVote normalizes the current user's vote on an idea.
func ToUserVote(r Record) models.UserVote {
	t := models.ParseVoteType(r.String("voteType", "type"))
	return models.UserVote{
		HasVoted: r.BoolOr(t != "", "hasVoted"),
		Type:     t,
	}
}
