// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"testing"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserResult_Failed(t *testing.T) {
	t.Run("With Field Errors", func(t *testing.T) {
		result := UserResult{Errors: []FieldError{{Field: "username", Message: "taken"}}}
		assert.True(t, result.Failed())
	})

	t.Run("With A User", func(t *testing.T) {
		result := UserResult{User: &User{ID: uuid.Must(uuid.NewV4())}}
		assert.False(t, result.Failed())
	})

	t.Run("Empty", func(t *testing.T) {
		assert.False(t, (&UserResult{}).Failed())
	})
}
