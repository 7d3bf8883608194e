// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package loaders batches the per-row lookups the GraphQL resolvers
// would otherwise issue one by one: post creators and the session
// user's vote on each post. Loaders are built fresh for every request
// so cached values never leak across users.
package loaders

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	uuid "github.com/gofrs/uuid"

	userModels "github.com/hearsay-social/hearsay/users/models"
	userRepository "github.com/hearsay-social/hearsay/users/repository"
	voteRepository "github.com/hearsay-social/hearsay/votes/repository"
)

// Loaders bundles the per-request dataloaders.
type Loaders struct {
	// Users resolves user ids to users.
	Users *dataloader.Loader[uuid.UUID, *userModels.User]

	// VoteStatus resolves post ids to the session user's vote value on
	// that post, or nil when the user has not voted (or is anonymous).
	VoteStatus *dataloader.Loader[uuid.UUID, *int]
}

// New constructs the loaders for one request. sessionUserID is nil for
// anonymous requests, which short-circuits the vote-status loader.
func New(userRepo userRepository.UserRepository, voteRepo voteRepository.VoteRepository, sessionUserID *uuid.UUID) *Loaders {
	return &Loaders{
		Users:      dataloader.NewBatchedLoader(userBatchFn(userRepo)),
		VoteStatus: dataloader.NewBatchedLoader(voteStatusBatchFn(voteRepo, sessionUserID)),
	}
}

func userBatchFn(repo userRepository.UserRepository) dataloader.BatchFunc[uuid.UUID, *userModels.User] {
	return func(ctx context.Context, ids []uuid.UUID) []*dataloader.Result[*userModels.User] {
		results := make([]*dataloader.Result[*userModels.User], len(ids))

		users, err := repo.FindByIDs(ctx, ids)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[*userModels.User]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]*userModels.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}

		for i, id := range ids {
			if user, ok := byID[id]; ok {
				results[i] = &dataloader.Result[*userModels.User]{Data: user}
			} else {
				results[i] = &dataloader.Result[*userModels.User]{Data: nil}
			}
		}
		return results
	}
}

func voteStatusBatchFn(repo voteRepository.VoteRepository, sessionUserID *uuid.UUID) dataloader.BatchFunc[uuid.UUID, *int] {
	return func(ctx context.Context, postIDs []uuid.UUID) []*dataloader.Result[*int] {
		results := make([]*dataloader.Result[*int], len(postIDs))

		// Anonymous viewers have no vote status on anything.
		if sessionUserID == nil {
			for i := range results {
				results[i] = &dataloader.Result[*int]{Data: nil}
			}
			return results
		}

		values, err := repo.ValuesForPosts(ctx, *sessionUserID, postIDs)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[*int]{Error: err}
			}
			return results
		}

		for i, postID := range postIDs {
			if value, ok := values[postID]; ok {
				v := value
				results[i] = &dataloader.Result[*int]{Data: &v}
			} else {
				results[i] = &dataloader.Result[*int]{Data: nil}
			}
		}
		return results
	}
}
