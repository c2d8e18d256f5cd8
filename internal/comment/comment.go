// Package comment manages reader comments attached to photos.
package comment

import (
	"errors"
	"time"
)

// Comment is one reader comment on a photo. Comments are append-only.
type Comment struct {
	ID         string    `json:"id"`
	PhotoID    string    `json:"photoId"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ErrMissingAuthor is returned when the author name is empty after trimming.
var ErrMissingAuthor = errors.New("authorName is required")

// ErrMissingText is returned when the comment text is empty after trimming.
var ErrMissingText = errors.New("text is required")
