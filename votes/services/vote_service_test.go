// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"testing"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	posterrors "github.com/hearsay-social/hearsay/posts/errors"
	voteerrors "github.com/hearsay-social/hearsay/votes/errors"
	"github.com/hearsay-social/hearsay/votes/models"
)

func TestVoteService_Vote(t *testing.T) {
	ctx := context.Background()
	postID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	txExpectation := func(mockPostRepo *MockPostRepositoryForVotes) {
		mockPostRepo.On("WithTransaction", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	}

	t.Run("New Vote - Up", func(t *testing.T) {
		mockVoteRepo := new(MockVoteRepository)
		mockPostRepo := new(MockPostRepositoryForVotes)
		service := NewVoteService(mockVoteRepo, mockPostRepo)

		txExpectation(mockPostRepo)
		mockVoteRepo.On("FindByUserAndPost", mock.Anything, userID, postID).Return(nil, voteerrors.ErrVoteNotFound)
		mockVoteRepo.On("Insert", mock.Anything, mock.MatchedBy(func(v *models.Vote) bool {
			return v.UserID == userID && v.PostID == postID && v.Value == models.ValueUp
		})).Return(nil)
		mockPostRepo.On("IncrementPoints", mock.Anything, postID, 1).Return(nil)

		err := service.Vote(ctx, userID, postID, models.ValueUp)

		assert.NoError(t, err)
		mockVoteRepo.AssertExpectations(t)
		mockPostRepo.AssertExpectations(t)
	})

	t.Run("New Vote - Down", func(t *testing.T) {
		mockVoteRepo := new(MockVoteRepository)
		mockPostRepo := new(MockPostRepositoryForVotes)
		service := NewVoteService(mockVoteRepo, mockPostRepo)

		txExpectation(mockPostRepo)
		mockVoteRepo.On("FindByUserAndPost", mock.Anything, userID, postID).Return(nil, voteerrors.ErrVoteNotFound)
		mockVoteRepo.On("Insert", mock.Anything, mock.MatchedBy(func(v *models.Vote) bool {
			return v.Value == models.ValueDown
		})).Return(nil)
		mockPostRepo.On("IncrementPoints", mock.Anything, postID, -1).Return(nil)

		err := service.Vote(ctx, userID, postID, models.ValueDown)

		assert.NoError(t, err)
		mockVoteRepo.AssertExpectations(t)
		mockPostRepo.AssertExpectations(t)
	})

	t.Run("Same Direction Is A No-Op", func(t *testing.T) {
		mockVoteRepo := new(MockVoteRepository)
		mockPostRepo := new(MockPostRepositoryForVotes)
		service := NewVoteService(mockVoteRepo, mockPostRepo)

		existing := &models.Vote{
			UserID:    userID,
			PostID:    postID,
			Value:     models.ValueUp,
			CreatedAt: time.Now(),
		}

		txExpectation(mockPostRepo)
		mockVoteRepo.On("FindByUserAndPost", mock.Anything, userID, postID).Return(existing, nil)

		err := service.Vote(ctx, userID, postID, models.ValueUp)

		assert.NoError(t, err)
		mockVoteRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		mockVoteRepo.AssertNotCalled(t, "UpdateValue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockPostRepo.AssertNotCalled(t, "IncrementPoints", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Flip Down To Up - Double Delta", func(t *testing.T) {
		mockVoteRepo := new(MockVoteRepository)
		mockPostRepo := new(MockPostRepositoryForVotes)
		service := NewVoteService(mockVoteRepo, mockPostRepo)

		existing := &models.Vote{
			UserID: userID,
			PostID: postID,
			Value:  models.ValueDown,
		}

		txExpectation(mockPostRepo)
		mockVoteRepo.On("FindByUserAndPost", mock.Anything, userID, postID).Return(existing, nil)
		mockVoteRepo.On("UpdateValue", mock.Anything, userID, postID, models.ValueUp).Return(nil)
		mockPostRepo.On("IncrementPoints", mock.Anything, postID, 2).Return(nil)

		err := service.Vote(ctx, userID, postID, models.ValueUp)

		assert.NoError(t, err)
		mockVoteRepo.AssertExpectations(t)
		mockPostRepo.AssertExpectations(t)
	})

	t.Run("Flip Up To Down - Double Delta", func(t *testing.T) {
		mockVoteRepo := new(MockVoteRepository)
		mockPostRepo := new(MockPostRepositoryForVotes)
		service := NewVoteService(mockVoteRepo, mockPostRepo)

		existing := &models.Vote{
			UserID: userID,
			PostID: postID,
			Value:  models.ValueUp,
		}

		txExpectation(mockPostRepo)
		mockVoteRepo.On("FindByUserAndPost", mock.Anything, userID, postID).Return(existing, nil)
		mockVoteRepo.On("UpdateValue", mock.Anything, userID, postID, models.ValueDown).Return(nil)
		mockPostRepo.On("IncrementPoints", mock.Anything, postID, -2).Return(nil)

		err := service.Vote(ctx, userID, postID, models.ValueDown)

		assert.NoError(t, err)
		mockVoteRepo.AssertExpectations(t)
		mockPostRepo.AssertExpectations(t)
	})

	t.Run("Invalid Value Rejected Before Any I/O", func(t *testing.T) {
		mockVoteRepo := new(MockVoteRepository)
		mockPostRepo := new(MockPostRepositoryForVotes)
		service := NewVoteService(mockVoteRepo, mockPostRepo)

		err := service.Vote(ctx, userID, postID, 5)

		assert.ErrorIs(t, err, voteerrors.ErrInvalidVoteValue)
		mockPostRepo.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Post Yields Not Found", func(t *testing.T) {
		mockVoteRepo := new(MockVoteRepository)
		mockPostRepo := new(MockPostRepositoryForVotes)
		service := NewVoteService(mockVoteRepo, mockPostRepo)

		fkViolation := &pq.Error{Code: "23503"}

		txExpectation(mockPostRepo)
		mockVoteRepo.On("FindByUserAndPost", mock.Anything, userID, postID).Return(nil, voteerrors.ErrVoteNotFound)
		mockVoteRepo.On("Insert", mock.Anything, mock.Anything).Return(fkViolation)

		err := service.Vote(ctx, userID, postID, models.ValueUp)

		assert.ErrorIs(t, err, posterrors.ErrPostNotFound)
		mockPostRepo.AssertNotCalled(t, "IncrementPoints", mock.Anything, mock.Anything, mock.Anything)
	})
}
