package postgres

import (
	"context"
	"fmt"
)

// EnsureSchema creates the application tables if they do not exist.
// Votes carry a composite (user_id, post_id) primary key so a user can
// hold at most one vote per post; deleting a post cascades to its votes.
func EnsureSchema(ctx context.Context, client *Client) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			hashed_password TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			text TEXT NOT NULL,
			points INTEGER NOT NULL DEFAULT 0,
			creator_id UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts (created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS votes (
			user_id UUID NOT NULL REFERENCES users(id),
			post_id UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
			value INTEGER NOT NULL CHECK (value IN (-1, 1)),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, post_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := client.DB().ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}

	return nil
}
