// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/hearsay-social/hearsay/users/models"
)

// UserRepository defines the interface for user-specific database
// operations.
type UserRepository interface {
	// Create inserts a new user row. Duplicate usernames or emails
	// surface as ErrDuplicateUser.
	Create(ctx context.Context, user *models.User) error

	// FindByID retrieves a user by primary key, or ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// FindByIDs bulk retrieves users for the batched loader. Missing
	// ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error)

	// FindByUsername retrieves a user by username, or ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindByEmail retrieves a user by email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error
}
