// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/hearsay-social/hearsay/votes/models"
	voteRepository "github.com/hearsay-social/hearsay/votes/repository"
)

// MockVoteRepository is a mock implementation of VoteRepository for testing
type MockVoteRepository struct {
	mock.Mock
}

// Ensure MockVoteRepository implements VoteRepository
var _ voteRepository.VoteRepository = (*MockVoteRepository)(nil)

// FindByUserAndPost mocks the FindByUserAndPost method
func (m *MockVoteRepository) FindByUserAndPost(ctx context.Context, userID, postID uuid.UUID) (*models.Vote, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vote), args.Error(1)
}

// Insert mocks the Insert method
func (m *MockVoteRepository) Insert(ctx context.Context, vote *models.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

// UpdateValue mocks the UpdateValue method
func (m *MockVoteRepository) UpdateValue(ctx context.Context, userID, postID uuid.UUID, value int) error {
	args := m.Called(ctx, userID, postID, value)
	return args.Error(0)
}

// ValuesForPosts mocks the ValuesForPosts method
func (m *MockVoteRepository) ValuesForPosts(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	args := m.Called(ctx, userID, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int), args.Error(1)
}
