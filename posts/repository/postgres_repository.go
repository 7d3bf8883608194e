// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hearsay-social/hearsay/internal/database/postgres"
	posterrors "github.com/hearsay-social/hearsay/posts/errors"
	"github.com/hearsay-social/hearsay/posts/models"
)

// postgresPostRepository implements PostRepository using raw SQL queries
type postgresPostRepository struct {
	client *postgres.Client
}

// NewPostgresPostRepository creates a new PostgreSQL repository for posts
func NewPostgresPostRepository(client *postgres.Client) PostRepository {
	return &postgresPostRepository{client: client}
}

// getExecutor returns either the transaction from context or the DB connection
func (r *postgresPostRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if txVal := ctx.Value("tx"); txVal != nil {
		if tx, ok := txVal.(*sqlx.Tx); ok {
			return tx
		}
	}
	return r.client.DB()
}

func (r *postgresPostRepository) Create(ctx context.Context, post *models.Post) error {
	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	query := `
		INSERT INTO posts (id, title, text, points, creator_id, created_at, updated_at)
		VALUES (:id, :title, :text, :points, :creator_id, :created_at, :updated_at)
	`

	if _, err := sqlx.NamedExecContext(ctx, r.getExecutor(ctx), query, post); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

func (r *postgresPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	query := `
		SELECT id, title, text, points, creator_id, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	var post models.Post
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &post, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, posterrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return &post, nil
}

func (r *postgresPostRepository) List(ctx context.Context, limit int, before *time.Time) ([]models.Post, error) {
	var (
		posts []models.Post
		err   error
	)
	if before != nil {
		query := `
			SELECT id, title, text, points, creator_id, created_at, updated_at
			FROM posts
			WHERE created_at < $1
			ORDER BY created_at DESC
			LIMIT $2
		`
		err = sqlx.SelectContext(ctx, r.getExecutor(ctx), &posts, query, *before, limit)
	} else {
		query := `
			SELECT id, title, text, points, creator_id, created_at, updated_at
			FROM posts
			ORDER BY created_at DESC
			LIMIT $1
		`
		err = sqlx.SelectContext(ctx, r.getExecutor(ctx), &posts, query, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *postgresPostRepository) Update(ctx context.Context, id, creatorID uuid.UUID, title, text string) (*models.Post, error) {
	query := `
		UPDATE posts
		SET title = $1, text = $2, updated_at = NOW()
		WHERE id = $3 AND creator_id = $4
		RETURNING id, title, text, points, creator_id, created_at, updated_at
	`

	var post models.Post
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &post, query, title, text, id, creatorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, posterrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return &post, nil
}

func (r *postgresPostRepository) Delete(ctx context.Context, id, creatorID uuid.UUID) (bool, error) {
	query := `DELETE FROM posts WHERE id = $1 AND creator_id = $2`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, id, creatorID)
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

func (r *postgresPostRepository) IncrementPoints(ctx context.Context, id uuid.UUID, delta int) error {
	query := `UPDATE posts SET points = points + $1, updated_at = NOW() WHERE id = $2`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("failed to update points: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return posterrors.ErrPostNotFound
	}
	return nil
}

// WithTransaction executes a function within a database transaction
func (r *postgresPostRepository) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	tx, err := r.client.DB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Inject transaction into context using shared key
	txCtx := context.WithValue(ctx, "tx", tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
