// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"time"

	uuid "github.com/gofrs/uuid"
)

// User represents a registered account. HashedPassword never leaves
// the service layer.
type User struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Username       string    `db:"username" json:"username"`
	Email          string    `db:"email" json:"email"`
	HashedPassword string    `db:"hashed_password" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

// RegisterInput carries the registration credentials.
type RegisterInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// FieldError is a validation failure tied to a single input field.
// Expected failures travel as values, not as Go errors.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UserResult is the outcome of register/login/changePassword: either a
// user, or a list of field errors. Fatal failures are reported through
// the accompanying Go error instead.
type UserResult struct {
	User   *User
	Errors []FieldError
}

// Failed reports whether the result carries field errors.
func (r *UserResult) Failed() bool {
	return len(r.Errors) > 0
}
