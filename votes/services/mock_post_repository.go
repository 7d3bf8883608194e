// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"

	postModels "github.com/hearsay-social/hearsay/posts/models"
	postRepository "github.com/hearsay-social/hearsay/posts/repository"
)

// MockPostRepositoryForVotes is a mock implementation of the post
// repository used by the vote service in tests.
type MockPostRepositoryForVotes struct {
	mock.Mock
}

// Ensure MockPostRepositoryForVotes implements PostRepository
var _ postRepository.PostRepository = (*MockPostRepositoryForVotes)(nil)

// Create mocks the Create method
func (m *MockPostRepositoryForVotes) Create(ctx context.Context, post *postModels.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

// FindByID mocks the FindByID method
func (m *MockPostRepositoryForVotes) FindByID(ctx context.Context, id uuid.UUID) (*postModels.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postModels.Post), args.Error(1)
}

// List mocks the List method
func (m *MockPostRepositoryForVotes) List(ctx context.Context, limit int, before *time.Time) ([]postModels.Post, error) {
	args := m.Called(ctx, limit, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]postModels.Post), args.Error(1)
}

// Update mocks the Update method
func (m *MockPostRepositoryForVotes) Update(ctx context.Context, id, creatorID uuid.UUID, title, text string) (*postModels.Post, error) {
	args := m.Called(ctx, id, creatorID, title, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postModels.Post), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockPostRepositoryForVotes) Delete(ctx context.Context, id, creatorID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, creatorID)
	return args.Bool(0), args.Error(1)
}

// IncrementPoints mocks the IncrementPoints method
func (m *MockPostRepositoryForVotes) IncrementPoints(ctx context.Context, id uuid.UUID, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

// WithTransaction mocks the WithTransaction method. It executes fn
// against the bare context and propagates its error, so tests exercise
// the real commit/rollback decision.
func (m *MockPostRepositoryForVotes) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	m.Called(ctx, fn)
	return fn(ctx)
}
