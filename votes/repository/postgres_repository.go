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
	"github.com/lib/pq"

	"github.com/hearsay-social/hearsay/internal/database/postgres"
	voteerrors "github.com/hearsay-social/hearsay/votes/errors"
	"github.com/hearsay-social/hearsay/votes/models"
)

// postgresVoteRepository implements VoteRepository using raw SQL queries
type postgresVoteRepository struct {
	client *postgres.Client
}

// NewPostgresVoteRepository creates a new PostgreSQL repository for votes
func NewPostgresVoteRepository(client *postgres.Client) VoteRepository {
	return &postgresVoteRepository{client: client}
}

// getExecutor returns either the transaction from context or the DB connection
func (r *postgresVoteRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if txVal := ctx.Value("tx"); txVal != nil {
		if tx, ok := txVal.(*sqlx.Tx); ok {
			return tx
		}
	}
	return r.client.DB()
}

func (r *postgresVoteRepository) FindByUserAndPost(ctx context.Context, userID, postID uuid.UUID) (*models.Vote, error) {
	query := `
		SELECT user_id, post_id, value, created_at
		FROM votes
		WHERE user_id = $1 AND post_id = $2
	`

	var vote models.Vote
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &vote, query, userID, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, voteerrors.ErrVoteNotFound
		}
		return nil, fmt.Errorf("failed to find vote: %w", err)
	}
	return &vote, nil
}

func (r *postgresVoteRepository) Insert(ctx context.Context, vote *models.Vote) error {
	if vote.CreatedAt.IsZero() {
		vote.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO votes (user_id, post_id, value, created_at)
		VALUES (:user_id, :post_id, :value, :created_at)
	`

	if _, err := sqlx.NamedExecContext(ctx, r.getExecutor(ctx), query, vote); err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

func (r *postgresVoteRepository) UpdateValue(ctx context.Context, userID, postID uuid.UUID, value int) error {
	query := `UPDATE votes SET value = $1 WHERE user_id = $2 AND post_id = $3`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, value, userID, postID)
	if err != nil {
		return fmt.Errorf("failed to update vote: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return voteerrors.ErrVoteNotFound
	}
	return nil
}

// ValuesForPosts bulk retrieves vote values for the batched loader.
func (r *postgresVoteRepository) ValuesForPosts(ctx context.Context, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if len(postIDs) == 0 {
		return map[uuid.UUID]int{}, nil
	}

	idStrings := make([]string, len(postIDs))
	for i, id := range postIDs {
		idStrings[i] = id.String()
	}

	query := `
		SELECT post_id, value
		FROM votes
		WHERE user_id = $1 AND post_id = ANY($2::uuid[])
	`

	var rows []struct {
		PostID uuid.UUID `db:"post_id"`
		Value  int       `db:"value"`
	}
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &rows, query, userID, pq.Array(idStrings)); err != nil {
		return nil, fmt.Errorf("failed to find votes for posts: %w", err)
	}

	values := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		values[row.PostID] = row.Value
	}
	return values, nil
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign
// key violation (a vote referencing a post or user that is gone).
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
