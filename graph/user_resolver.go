// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package graph

import (
	"context"
	"strconv"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/hearsay-social/hearsay/internal/session"
	userModels "github.com/hearsay-social/hearsay/users/models"
)

// UserResolver resolves the User type.
type UserResolver struct {
	user *userModels.User
}

func (r *UserResolver) ID() graphql.ID {
	return graphql.ID(r.user.ID.String())
}

func (r *UserResolver) Username() string {
	return r.user.Username
}

// Email is only visible to its owner. Everyone else sees an empty
// string rather than another user's address.
func (r *UserResolver) Email(ctx context.Context) string {
	if s := session.FromContext(ctx); s != nil {
		if uid, ok := s.UserID(); ok && uid == r.user.ID {
			return r.user.Email
		}
	}
	return ""
}

func (r *UserResolver) CreatedAt() string {
	return strconv.FormatInt(r.user.CreatedAt.UnixMilli(), 10)
}
