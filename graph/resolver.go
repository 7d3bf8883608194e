// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package graph implements the GraphQL surface: the schema, the root
// resolver and the per-type resolvers around the domain services.
package graph

import (
	"context"
	"errors"

	uuid "github.com/gofrs/uuid"
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/hearsay-social/hearsay/internal/session"
	posterrors "github.com/hearsay-social/hearsay/posts/errors"
	postModels "github.com/hearsay-social/hearsay/posts/models"
	postServices "github.com/hearsay-social/hearsay/posts/services"
	usererrors "github.com/hearsay-social/hearsay/users/errors"
	userModels "github.com/hearsay-social/hearsay/users/models"
	userServices "github.com/hearsay-social/hearsay/users/services"
	voteServices "github.com/hearsay-social/hearsay/votes/services"
)

// Resolver is the root resolver backing the schema.
type Resolver struct {
	users userServices.UserService
	posts postServices.PostService
	votes voteServices.VoteService
}

// NewResolver creates the root resolver.
func NewResolver(users userServices.UserService, posts postServices.PostService, votes voteServices.VoteService) *Resolver {
	return &Resolver{users: users, posts: posts, votes: votes}
}

// requireUser gates mutations that need an authenticated session.
func requireUser(ctx context.Context) (uuid.UUID, error) {
	if s := session.FromContext(ctx); s != nil {
		if uid, ok := s.UserID(); ok {
			return uid, nil
		}
	}
	return uuid.Nil, usererrors.ErrNotAuthenticated
}

func parseID(id graphql.ID) (uuid.UUID, error) {
	return uuid.FromString(string(id))
}

// Me resolves the session's user, or null for anonymous requests.
func (r *Resolver) Me(ctx context.Context) (*UserResolver, error) {
	uid, err := requireUser(ctx)
	if err != nil {
		return nil, nil
	}

	user, err := r.users.Me(ctx, uid)
	if err != nil {
		if errors.Is(err, usererrors.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &UserResolver{user: user}, nil
}

// Post resolves a single post, or null when it does not exist.
func (r *Resolver) Post(ctx context.Context, args struct{ ID graphql.ID }) (*PostResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, nil
	}

	post, err := r.posts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, posterrors.ErrPostNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &PostResolver{post: post}, nil
}

// Posts resolves a page of the feed.
func (r *Resolver) Posts(ctx context.Context, args struct {
	Limit  int32
	Cursor *string
}) (*PaginatedPostsResolver, error) {
	posts, hasMore, err := r.posts.List(ctx, int(args.Limit), args.Cursor)
	if err != nil {
		return nil, err
	}
	return &PaginatedPostsResolver{posts: posts, hasMore: hasMore}, nil
}

// Register creates an account and logs the new user in.
func (r *Resolver) Register(ctx context.Context, args struct {
	Credentials userModels.RegisterInput
}) (*UserResponseResolver, error) {
	result, err := r.users.Register(ctx, args.Credentials)
	if err != nil {
		return nil, err
	}
	r.establishSession(ctx, result)
	return &UserResponseResolver{result: result}, nil
}

// Login authenticates by username or email.
func (r *Resolver) Login(ctx context.Context, args struct {
	UsernameOrEmail string
	Password        string
}) (*UserResponseResolver, error) {
	result, err := r.users.Login(ctx, args.UsernameOrEmail, args.Password)
	if err != nil {
		return nil, err
	}
	r.establishSession(ctx, result)
	return &UserResponseResolver{result: result}, nil
}

// Logout destroys the session. Always true.
func (r *Resolver) Logout(ctx context.Context) (bool, error) {
	if s := session.FromContext(ctx); s != nil {
		s.Destroy()
	}
	return true, nil
}

// ForgotPassword emails a reset link when the address is known.
func (r *Resolver) ForgotPassword(ctx context.Context, args struct{ Email string }) (bool, error) {
	return r.users.ForgotPassword(ctx, args.Email)
}

// ChangePassword consumes a reset token and logs the user in with the
// new password.
func (r *Resolver) ChangePassword(ctx context.Context, args struct {
	Token       string
	NewPassword string
}) (*UserResponseResolver, error) {
	result, err := r.users.ChangePassword(ctx, args.Token, args.NewPassword)
	if err != nil {
		return nil, err
	}
	r.establishSession(ctx, result)
	return &UserResponseResolver{result: result}, nil
}

// CreatePost creates a post owned by the session user.
func (r *Resolver) CreatePost(ctx context.Context, args struct {
	Details postModels.PostInput
}) (*PostResolver, error) {
	uid, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	post, err := r.posts.Create(ctx, uid, args.Details)
	if err != nil {
		return nil, err
	}
	return &PostResolver{post: post}, nil
}

// UpdatePost rewrites a post the session user owns, or resolves null.
func (r *Resolver) UpdatePost(ctx context.Context, args struct {
	ID    graphql.ID
	Title string
	Text  string
}) (*PostResolver, error) {
	uid, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseID(args.ID)
	if err != nil {
		return nil, nil
	}

	post, err := r.posts.Update(ctx, id, uid, args.Title, args.Text)
	if err != nil {
		if errors.Is(err, posterrors.ErrPostNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &PostResolver{post: post}, nil
}

// DeletePost removes a post the session user owns and reports whether
// anything was deleted.
func (r *Resolver) DeletePost(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	uid, err := requireUser(ctx)
	if err != nil {
		return false, err
	}

	id, err := parseID(args.ID)
	if err != nil {
		return false, nil
	}

	return r.posts.Delete(ctx, id, uid)
}

// Vote records the session user's vote on a post.
func (r *Resolver) Vote(ctx context.Context, args struct {
	PostID graphql.ID
	Value  int32
}) (bool, error) {
	uid, err := requireUser(ctx)
	if err != nil {
		return false, err
	}

	postID, err := parseID(args.PostID)
	if err != nil {
		return false, posterrors.ErrPostNotFound
	}

	if err := r.votes.Vote(ctx, uid, postID, int(args.Value)); err != nil {
		return false, err
	}
	return true, nil
}

// establishSession logs the result's user into the current session
// after a successful register, login or password change.
func (r *Resolver) establishSession(ctx context.Context, result *userModels.UserResult) {
	if result == nil || result.Failed() || result.User == nil {
		return
	}
	if s := session.FromContext(ctx); s != nil {
		s.SetUserID(result.User.ID)
	}
}
