// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearsay-social/hearsay/users/models"
)

func fieldsOf(errs []models.FieldError) []string {
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	return fields
}

func TestValidateRegister(t *testing.T) {
	valid := models.RegisterInput{
		Email:    "ben@example.com",
		Username: "ben",
		Password: "secret123",
	}

	t.Run("Valid Input", func(t *testing.T) {
		assert.Empty(t, ValidateRegister(valid))
	})

	t.Run("Bad Email", func(t *testing.T) {
		input := valid
		input.Email = "nope"
		errs := ValidateRegister(input)
		assert.Contains(t, fieldsOf(errs), "email")
	})

	t.Run("Email Without Dotted Domain", func(t *testing.T) {
		input := valid
		input.Email = "ben@localhost"
		errs := ValidateRegister(input)
		assert.Contains(t, fieldsOf(errs), "email")
	})

	t.Run("Short Username", func(t *testing.T) {
		input := valid
		input.Username = "ab"
		errs := ValidateRegister(input)
		assert.Contains(t, fieldsOf(errs), "username")
	})

	t.Run("Username With At Sign", func(t *testing.T) {
		input := valid
		input.Username = "ben@home"
		errs := ValidateRegister(input)
		assert.Contains(t, fieldsOf(errs), "username")
	})

	t.Run("Short Password", func(t *testing.T) {
		input := valid
		input.Password = "ab"
		errs := ValidateRegister(input)
		assert.Contains(t, fieldsOf(errs), "password")
	})

	t.Run("Weak But Long Password Passes", func(t *testing.T) {
		// Strength scoring warns, it never rejects.
		input := valid
		input.Password = "aaa"
		assert.Empty(t, ValidateRegister(input))
	})

	t.Run("All Fields Bad At Once", func(t *testing.T) {
		errs := ValidateRegister(models.RegisterInput{
			Email:    "x",
			Username: "a",
			Password: "b",
		})
		fields := fieldsOf(errs)
		require.Len(t, errs, 3)
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "username")
		assert.Contains(t, fields, "password")
	})
}

func TestValidateNewPassword(t *testing.T) {
	t.Run("Too Short", func(t *testing.T) {
		errs := ValidateNewPassword("ab")
		require.Len(t, errs, 1)
		assert.Equal(t, "newPassword", errs[0].Field)
	})

	t.Run("Long Enough", func(t *testing.T) {
		assert.Empty(t, ValidateNewPassword("abc"))
	})
}
