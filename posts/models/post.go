// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

import (
	"strconv"
	"time"

	uuid "github.com/gofrs/uuid"
)

// snippetLength caps how much of the body the feed shows.
const snippetLength = 200

// Post represents a text post in the system.
type Post struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Text      string    `db:"text" json:"text"`
	Points    int       `db:"points" json:"points"`
	CreatorID uuid.UUID `db:"creator_id" json:"creatorId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// PostInput carries the fields a client supplies when creating a post.
type PostInput struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// TextSnippet returns the leading part of the body for feed views,
// with an ellipsis when the body was truncated.
func (p *Post) TextSnippet() string {
	runes := []rune(p.Text)
	if len(runes) <= snippetLength {
		return p.Text
	}
	return string(runes[:snippetLength]) + "..."
}

// EncodeCursor renders a post's creation time as the opaque cursor the
// client echoes back: epoch milliseconds in a decimal string.
func EncodeCursor(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// DecodeCursor parses a client-supplied cursor back into a timestamp.
func DecodeCursor(cursor string) (time.Time, error) {
	millis, err := strconv.ParseInt(cursor, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(millis), nil
}
