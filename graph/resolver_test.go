// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package graph

import (
	"context"
	"strconv"
	"testing"
	"time"

	uuid "github.com/gofrs/uuid"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"

	"github.com/hearsay-social/hearsay/internal/session"
	postModels "github.com/hearsay-social/hearsay/posts/models"
	usererrors "github.com/hearsay-social/hearsay/users/errors"
	userModels "github.com/hearsay-social/hearsay/users/models"
)

func TestSchemaParsesAgainstResolver(t *testing.T) {
	assert.NotPanics(t, func() {
		graphql.MustParseSchema(Schema, NewResolver(nil, nil, nil))
	})
}

func authedContext(userID uuid.UUID) context.Context {
	s := &session.Session{}
	s.SetUserID(userID)
	return context.WithValue(context.Background(), session.ContextKey, s)
}

func TestUserResolver_EmailShield(t *testing.T) {
	owner := &userModels.User{
		ID:       uuid.Must(uuid.NewV4()),
		Username: "ben",
		Email:    "ben@example.com",
	}
	resolver := &UserResolver{user: owner}

	t.Run("Owner Sees Own Email", func(t *testing.T) {
		assert.Equal(t, "ben@example.com", resolver.Email(authedContext(owner.ID)))
	})

	t.Run("Other User Sees Empty String", func(t *testing.T) {
		assert.Equal(t, "", resolver.Email(authedContext(uuid.Must(uuid.NewV4()))))
	})

	t.Run("Anonymous Sees Empty String", func(t *testing.T) {
		assert.Equal(t, "", resolver.Email(context.Background()))
	})
}

func TestUserResolver_CreatedAtIsEpochMillis(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	resolver := &UserResolver{user: &userModels.User{CreatedAt: at}}

	assert.Equal(t, strconv.FormatInt(at.UnixMilli(), 10), resolver.CreatedAt())
}

func TestEstablishSession(t *testing.T) {
	r := NewResolver(nil, nil, nil)

	t.Run("Failed Result Leaves Session Anonymous", func(t *testing.T) {
		s := &session.Session{}
		ctx := context.WithValue(context.Background(), session.ContextKey, s)

		r.establishSession(ctx, &userModels.UserResult{Errors: []userModels.FieldError{
			{Field: "password", Message: "Incorrect Password"},
		}})

		_, authed := s.UserID()
		assert.False(t, authed)
	})

	t.Run("Successful Result Logs The User In", func(t *testing.T) {
		s := &session.Session{}
		ctx := context.WithValue(context.Background(), session.ContextKey, s)
		user := &userModels.User{ID: uuid.Must(uuid.NewV4())}

		r.establishSession(ctx, &userModels.UserResult{User: user})

		got, authed := s.UserID()
		assert.True(t, authed)
		assert.Equal(t, user.ID, got)
	})
}

func TestMutations_RequireAuthentication(t *testing.T) {
	ctx := context.Background()
	r := NewResolver(nil, nil, nil)

	t.Run("CreatePost", func(t *testing.T) {
		_, err := r.CreatePost(ctx, struct{ Details postModels.PostInput }{})
		assert.ErrorIs(t, err, usererrors.ErrNotAuthenticated)
	})

	t.Run("DeletePost", func(t *testing.T) {
		_, err := r.DeletePost(ctx, struct{ ID graphql.ID }{ID: "x"})
		assert.ErrorIs(t, err, usererrors.ErrNotAuthenticated)
	})

	t.Run("Vote", func(t *testing.T) {
		_, err := r.Vote(ctx, struct {
			PostID graphql.ID
			Value  int32
		}{PostID: "x", Value: 1})
		assert.ErrorIs(t, err, usererrors.ErrNotAuthenticated)
	})
}
