// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package errors

import "errors"

var (
	// ErrVoteNotFound is returned when no vote exists for a
	// (user, post) pair.
	ErrVoteNotFound = errors.New("vote not found")

	// ErrInvalidVoteValue is returned for any value other than +1 or -1.
	ErrInvalidVoteValue = errors.New("vote value must be 1 or -1")
)
