// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	posterrors "github.com/hearsay-social/hearsay/posts/errors"
	"github.com/hearsay-social/hearsay/posts/models"
)

func makePosts(n int) []models.Post {
	posts := make([]models.Post, n)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := range posts {
		posts[i] = models.Post{
			ID:        uuid.Must(uuid.NewV4()),
			Title:     "title",
			Text:      "text",
			CreatorID: uuid.Must(uuid.NewV4()),
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return posts
}

func TestPostService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Has More Page", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo)

		// 11 rows back for a limit of 10 means another page exists.
		mockRepo.On("List", ctx, 11, (*time.Time)(nil)).Return(makePosts(11), nil)

		posts, hasMore, err := service.List(ctx, 10, nil)

		require.NoError(t, err)
		assert.Len(t, posts, 10)
		assert.True(t, hasMore)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Last Page", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo)

		mockRepo.On("List", ctx, 11, (*time.Time)(nil)).Return(makePosts(4), nil)

		posts, hasMore, err := service.List(ctx, 10, nil)

		require.NoError(t, err)
		assert.Len(t, posts, 4)
		assert.False(t, hasMore)
	})

	t.Run("Limit Capped At 30", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo)

		mockRepo.On("List", ctx, 31, (*time.Time)(nil)).Return(makePosts(31), nil)

		posts, hasMore, err := service.List(ctx, 100, nil)

		require.NoError(t, err)
		assert.Len(t, posts, 30)
		assert.True(t, hasMore)
	})

	t.Run("Cursor Filters Older Rows", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo)

		at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		cursor := models.EncodeCursor(at)

		mockRepo.On("List", ctx, 11, mock.MatchedBy(func(before *time.Time) bool {
			return before != nil && before.Equal(at)
		})).Return(makePosts(2), nil)

		posts, hasMore, err := service.List(ctx, 10, &cursor)

		require.NoError(t, err)
		assert.Len(t, posts, 2)
		assert.False(t, hasMore)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Invalid Cursor", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo)

		cursor := "not-a-timestamp"
		_, _, err := service.List(ctx, 10, &cursor)

		assert.ErrorIs(t, err, posterrors.ErrInvalidCursor)
		mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Repository Error", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo)

		mockRepo.On("List", ctx, 11, (*time.Time)(nil)).Return(nil, errors.New("connection refused"))

		_, _, err := service.List(ctx, 10, nil)

		assert.Error(t, err)
	})
}

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()
	creatorID := uuid.Must(uuid.NewV4())

	mockRepo := new(MockPostRepository)
	service := NewPostService(mockRepo)

	mockRepo.On("Create", ctx, mock.MatchedBy(func(p *models.Post) bool {
		return p.Title == "hello" && p.Text == "world" && p.CreatorID == creatorID && p.ID != uuid.Nil
	})).Return(nil)

	post, err := service.Create(ctx, creatorID, models.PostInput{Title: "hello", Text: "world"})

	require.NoError(t, err)
	assert.Equal(t, "hello", post.Title)
	assert.Equal(t, creatorID, post.CreatorID)
	mockRepo.AssertExpectations(t)
}

func TestPostService_UpdateAndDelete_OwnerScoped(t *testing.T) {
	ctx := context.Background()
	postID := uuid.Must(uuid.NewV4())
	ownerID := uuid.Must(uuid.NewV4())
	strangerID := uuid.Must(uuid.NewV4())

	t.Run("Update By Stranger Yields Not Found", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo)

		mockRepo.On("Update", ctx, postID, strangerID, "new", "body").Return(nil, posterrors.ErrPostNotFound)

		post, err := service.Update(ctx, postID, strangerID, "new", "body")

		assert.ErrorIs(t, err, posterrors.ErrPostNotFound)
		assert.Nil(t, post)
	})

	t.Run("Delete By Stranger Is False", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo)

		mockRepo.On("Delete", ctx, postID, strangerID).Return(false, nil)

		deleted, err := service.Delete(ctx, postID, strangerID)

		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("Delete By Owner", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		service := NewPostService(mockRepo)

		mockRepo.On("Delete", ctx, postID, ownerID).Return(true, nil)

		deleted, err := service.Delete(ctx, postID, ownerID)

		require.NoError(t, err)
		assert.True(t, deleted)
	})
}

func TestPost_TextSnippet(t *testing.T) {
	t.Run("Short Body Unchanged", func(t *testing.T) {
		p := models.Post{Text: "short body"}
		assert.Equal(t, "short body", p.TextSnippet())
	})

	t.Run("Long Body Truncated With Ellipsis", func(t *testing.T) {
		long := ""
		for i := 0; i < 250; i++ {
			long += "x"
		}
		p := models.Post{Text: long}
		snippet := p.TextSnippet()
		assert.Len(t, snippet, 203)
		assert.Equal(t, "...", snippet[200:])
	})
}

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)
	cursor := models.EncodeCursor(at)
	decoded, err := models.DecodeCursor(cursor)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(at))
}
