// Ideaboard - Idea Management Client
// Copyright 2026 Shashivarun2464480
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Shashivarun2464480/Project-fe

package sync

import "errors"

// Local rejections. None of these are sent to the backend.
var (
	ErrDownvoteCommentRequired = errors.New("please provide a comment explaining your downvote")
	ErrReviewCommentRequired   = errors.New("a review comment is required when rejecting an idea")
	ErrCommentRequired         = errors.New("comment text is required")
	ErrFeedbackRequired        = errors.New("feedback text is required")
	ErrInvalidStatus           = errors.New("invalid idea status")
)
