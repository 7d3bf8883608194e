// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package graph

import (
	"context"
	"fmt"
	"strconv"

	graphql "github.com/graph-gophers/graphql-go"

	postModels "github.com/hearsay-social/hearsay/posts/models"
	usererrors "github.com/hearsay-social/hearsay/users/errors"
)

// PostResolver resolves the Post type.
type PostResolver struct {
	post *postModels.Post
}

func (r *PostResolver) ID() graphql.ID {
	return graphql.ID(r.post.ID.String())
}

func (r *PostResolver) Title() string {
	return r.post.Title
}

func (r *PostResolver) Text() string {
	return r.post.Text
}

func (r *PostResolver) TextSnippet() string {
	return r.post.TextSnippet()
}

func (r *PostResolver) Points() int32 {
	return int32(r.post.Points)
}

// VoteStatus resolves the session user's vote on this post through the
// per-request loader, or null for anonymous viewers.
func (r *PostResolver) VoteStatus(ctx context.Context) (*int32, error) {
	scope := scopeFrom(ctx)
	if scope == nil {
		return nil, nil
	}

	value, err := scope.Loaders.VoteStatus.Load(ctx, r.post.ID)()
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	status := int32(*value)
	return &status, nil
}

// Creator resolves the post's author through the per-request loader.
func (r *PostResolver) Creator(ctx context.Context) (*UserResolver, error) {
	scope := scopeFrom(ctx)
	if scope == nil {
		return nil, fmt.Errorf("request scope missing")
	}

	user, err := scope.Loaders.Users.Load(ctx, r.post.CreatorID)()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, usererrors.ErrUserNotFound
	}
	return &UserResolver{user: user}, nil
}

func (r *PostResolver) CreatedAt() string {
	return strconv.FormatInt(r.post.CreatedAt.UnixMilli(), 10)
}

// PaginatedPostsResolver resolves the PaginatedPosts type.
type PaginatedPostsResolver struct {
	posts   []postModels.Post
	hasMore bool
}

func (r *PaginatedPostsResolver) Posts() []*PostResolver {
	resolvers := make([]*PostResolver, len(r.posts))
	for i := range r.posts {
		resolvers[i] = &PostResolver{post: &r.posts[i]}
	}
	return resolvers
}

func (r *PaginatedPostsResolver) HasMore() bool {
	return r.hasMore
}
