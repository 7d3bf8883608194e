// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"

	uuid "github.com/gofrs/uuid"

	posterrors "github.com/hearsay-social/hearsay/posts/errors"
	postRepository "github.com/hearsay-social/hearsay/posts/repository"
	voteerrors "github.com/hearsay-social/hearsay/votes/errors"
	"github.com/hearsay-social/hearsay/votes/models"
	voteRepository "github.com/hearsay-social/hearsay/votes/repository"
)

// VoteService defines the voting operations exposed through the API.
type VoteService interface {
	// Vote records or flips a user's vote on a post, keeping the
	// post's points in sync. Repeating the same vote is a no-op.
	Vote(ctx context.Context, userID, postID uuid.UUID, value int) error
}

type voteService struct {
	voteRepo voteRepository.VoteRepository
	postRepo postRepository.PostRepository
}

// NewVoteService creates a new instance of the vote service.
func NewVoteService(voteRepo voteRepository.VoteRepository, postRepo postRepository.PostRepository) VoteService {
	return &voteService{voteRepo: voteRepo, postRepo: postRepo}
}

// Vote applies the value inside one transaction so the vote row and the
// post's denormalized points never diverge. Points only ever move by
// relative deltas: value for a first vote, 2*value for a flip.
func (s *voteService) Vote(ctx context.Context, userID, postID uuid.UUID, value int) error {
	if !models.IsValidValue(value) {
		return voteerrors.ErrInvalidVoteValue
	}

	return s.postRepo.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.voteRepo.FindByUserAndPost(txCtx, userID, postID)
		if err != nil && !errors.Is(err, voteerrors.ErrVoteNotFound) {
			return err
		}

		if existing != nil {
			if existing.Value == value {
				// Same direction again changes nothing.
				return nil
			}
			if err := s.voteRepo.UpdateValue(txCtx, userID, postID, value); err != nil {
				return err
			}
			// A flip undoes the old vote and applies the new one.
			return s.postRepo.IncrementPoints(txCtx, postID, 2*value)
		}

		vote := &models.Vote{
			UserID: userID,
			PostID: postID,
			Value:  value,
		}
		if err := s.voteRepo.Insert(txCtx, vote); err != nil {
			if voteRepository.IsForeignKeyViolation(err) {
				return posterrors.ErrPostNotFound
			}
			return err
		}
		return s.postRepo.IncrementPoints(txCtx, postID, value)
	})
}
