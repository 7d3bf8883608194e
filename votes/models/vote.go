// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"time"

	uuid "github.com/gofrs/uuid"
)

// Vote values. One row per (user, post); the sign is the direction.
const (
	ValueUp   = 1
	ValueDown = -1
)

// Vote represents a single user's vote on a single post.
type Vote struct {
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	PostID    uuid.UUID `db:"post_id" json:"postId"`
	Value     int       `db:"value" json:"value"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// IsValidValue reports whether v is an accepted vote value.
func IsValidValue(v int) bool {
	return v == ValueUp || v == ValueDown
}
