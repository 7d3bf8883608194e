// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package graph

import (
	"context"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	"github.com/hearsay-social/hearsay/graph/loaders"
	"github.com/hearsay-social/hearsay/internal/session"
	userRepository "github.com/hearsay-social/hearsay/users/repository"
	voteRepository "github.com/hearsay-social/hearsay/votes/repository"
)

// ScopeKey is the context key the request scope travels under. It is a
// plain string so values set via fiber Locals survive the conversion
// to a net/http request context.
const ScopeKey = "graph_scope"

// RequestScope carries the per-request state the resolvers need beyond
// their services: the dataloaders built for this request.
type RequestScope struct {
	Loaders *loaders.Loaders
}

// Middleware builds a fresh RequestScope for each request. It must run
// after the session middleware so the vote-status loader knows the
// session user.
func Middleware(userRepo userRepository.UserRepository, voteRepo voteRepository.VoteRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sessionUserID *uuid.UUID
		if s, ok := c.Locals(session.ContextKey).(*session.Session); ok && s != nil {
			if uid, authed := s.UserID(); authed {
				sessionUserID = &uid
			}
		}

		c.Locals(ScopeKey, &RequestScope{
			Loaders: loaders.New(userRepo, voteRepo, sessionUserID),
		})
		return c.Next()
	}
}

// scopeFrom extracts the request scope from a resolver context.
func scopeFrom(ctx context.Context) *RequestScope {
	scope, _ := ctx.Value(ScopeKey).(*RequestScope)
	return scope
}
