// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package errors

import "errors"

var (
	// ErrPostNotFound is returned when a post cannot be found.
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidCursor is returned when a pagination cursor cannot be
	// parsed.
	ErrInvalidCursor = errors.New("invalid pagination cursor")
)
