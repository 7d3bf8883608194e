// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"

	posterrors "github.com/hearsay-social/hearsay/posts/errors"
	"github.com/hearsay-social/hearsay/posts/models"
	"github.com/hearsay-social/hearsay/posts/repository"
)

// maxPageSize caps a single page of the feed regardless of what the
// client asks for.
const maxPageSize = 30

// PostService defines the post operations exposed through the API.
type PostService interface {
	// Create persists a new post owned by creatorID.
	Create(ctx context.Context, creatorID uuid.UUID, input models.PostInput) (*models.Post, error)

	// Get retrieves a single post, or ErrPostNotFound.
	Get(ctx context.Context, id uuid.UUID) (*models.Post, error)

	// List returns a page of the feed, newest first. cursor is the
	// opaque created_at cursor from a previous page, or nil for the
	// first page. hasMore reports whether older posts remain.
	List(ctx context.Context, limit int, cursor *string) (posts []models.Post, hasMore bool, err error)

	// Update rewrites a post's title and text if creatorID owns it.
	// Missing or foreign posts yield ErrPostNotFound.
	Update(ctx context.Context, id, creatorID uuid.UUID, title, text string) (*models.Post, error)

	// Delete removes a post if creatorID owns it and reports whether
	// anything was deleted.
	Delete(ctx context.Context, id, creatorID uuid.UUID) (bool, error)
}

type postService struct {
	repo repository.PostRepository
}

// NewPostService creates a new instance of the post service.
func NewPostService(repo repository.PostRepository) PostService {
	return &postService{repo: repo}
}

func (s *postService) Create(ctx context.Context, creatorID uuid.UUID, input models.PostInput) (*models.Post, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate post id: %w", err)
	}

	post := &models.Post{
		ID:        id,
		Title:     input.Title,
		Text:      input.Text,
		CreatorID: creatorID,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Get(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *postService) List(ctx context.Context, limit int, cursor *string) ([]models.Post, bool, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	var before *time.Time
	if cursor != nil && *cursor != "" {
		t, err := models.DecodeCursor(*cursor)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %q", posterrors.ErrInvalidCursor, *cursor)
		}
		before = &t
	}

	// Over-fetch by one row to learn whether another page exists.
	rows, err := s.repo.List(ctx, limit+1, before)
	if err != nil {
		return nil, false, err
	}

	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}
	return rows, hasMore, nil
}

func (s *postService) Update(ctx context.Context, id, creatorID uuid.UUID, title, text string) (*models.Post, error) {
	return s.repo.Update(ctx, id, creatorID, title, text)
}

func (s *postService) Delete(ctx context.Context, id, creatorID uuid.UUID) (bool, error) {
	return s.repo.Delete(ctx, id, creatorID)
}
