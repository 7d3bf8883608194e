// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package graph

import (
	userModels "github.com/hearsay-social/hearsay/users/models"
)

// FieldErrorResolver resolves the FieldError type.
type FieldErrorResolver struct {
	fieldError userModels.FieldError
}

func (r *FieldErrorResolver) Field() string {
	return r.fieldError.Field
}

func (r *FieldErrorResolver) Message() string {
	return r.fieldError.Message
}

// UserResponseResolver resolves the UserResponse type: either a user
// or a list of field errors, never both.
type UserResponseResolver struct {
	result *userModels.UserResult
}

func (r *UserResponseResolver) Errors() *[]*FieldErrorResolver {
	if !r.result.Failed() {
		return nil
	}
	resolvers := make([]*FieldErrorResolver, len(r.result.Errors))
	for i, fe := range r.result.Errors {
		resolvers[i] = &FieldErrorResolver{fieldError: fe}
	}
	return &resolvers
}

func (r *UserResponseResolver) User() *UserResolver {
	if r.result.User == nil {
		return nil
	}
	return &UserResolver{user: r.result.User}
}
