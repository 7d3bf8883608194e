// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/hearsay-social/hearsay/votes/models"
)

// VoteRepository defines the interface for vote-specific database
// operations.
type VoteRepository interface {
	// FindByUserAndPost retrieves the vote a user cast on a post, or
	// ErrVoteNotFound.
	FindByUserAndPost(ctx context.Context, userID, postID uuid.UUID) (*models.Vote, error)

	// Insert records a brand-new vote.
	Insert(ctx context.Context, vote *models.Vote) error

	// UpdateValue flips the stored value of an existing vote.
	UpdateValue(ctx context.Context, userID, postID uuid.UUID, value int) error

	// ValuesForPosts bulk retrieves one user's vote values for a set of
	// posts, keyed by post id. Posts without a vote are absent.
	ValuesForPosts(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]int, error)
}
