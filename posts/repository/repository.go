// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"time"

	uuid "github.com/gofrs/uuid"

	"github.com/hearsay-social/hearsay/posts/models"
)

// PostRepository defines the interface for post-specific database
// operations.
type PostRepository interface {
	// Create inserts a new post row.
	Create(ctx context.Context, post *models.Post) error

	// FindByID retrieves a post by primary key, or ErrPostNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error)

	// List returns up to limit posts ordered by created_at descending,
	// restricted to rows older than before when it is non-nil.
	List(ctx context.Context, limit int, before *time.Time) ([]models.Post, error)

	// Update replaces title and text of a post owned by creatorID and
	// returns the updated row. A missing or foreign post yields
	// ErrPostNotFound.
	Update(ctx context.Context, id, creatorID uuid.UUID, title, text string) (*models.Post, error)

	// Delete removes a post owned by creatorID. It reports whether a
	// row was actually deleted.
	Delete(ctx context.Context, id, creatorID uuid.UUID) (bool, error)

	// IncrementPoints applies a relative delta to a post's points.
	// A missing post yields ErrPostNotFound.
	IncrementPoints(ctx context.Context, id uuid.UUID, delta int) error

	// WithTransaction executes fn within a database transaction. The
	// transaction is committed when fn returns nil and rolled back
	// otherwise.
	WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}
