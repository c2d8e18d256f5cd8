// Package photo manages the photo catalog: media-upload orchestration,
// validation, and persistence of photo documents.
package photo

import (
	"errors"
	"time"
)

// Photo is a catalog entry. Photos are immutable once created; there is no
// update or delete path.
type Photo struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Caption    string    `json:"caption,omitempty"`
	Location   string    `json:"location,omitempty"`
	People     []string  `json:"people"`
	Tags       []string  `json:"tags"`
	Visibility string    `json:"visibility"`
	MediaURL   string    `json:"mediaUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DefaultVisibility is applied when the caller leaves visibility unset.
const DefaultVisibility = "public"

// searchFields are the document fields covered by free-text search.
var searchFields = []string{"title", "caption", "location"}

// ErrMissingTitle is returned when the title is empty after trimming.
var ErrMissingTitle = errors.New("title is required")

// ErrMissingMedia is returned when neither an upload nor a URL supplies the
// photo's media.
var ErrMissingMedia = errors.New("an image upload or image url is required")

// ErrNotFound is returned when a photo does not exist.
var ErrNotFound = errors.New("photo not found")
