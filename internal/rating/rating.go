// Package rating manages star ratings on photos and their aggregation.
package rating

import (
	"errors"
	"time"
)

// Rating is one star rating on a photo. Ratings are append-only.
type Rating struct {
	ID        string    `json:"id"`
	PhotoID   string    `json:"photoId"`
	Value     int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// Valid rating bounds, inclusive.
const (
	MinValue = 1
	MaxValue = 5
)

// valueField is the document field aggregated for the summary.
const valueField = "rating"

// Summary is the aggregate view of one photo's ratings. Average is nil when
// the photo has no ratings yet.
type Summary struct {
	PhotoID string   `json:"photoId"`
	Average *float64 `json:"average"`
	Count   int64    `json:"count"`
}

// ErrOutOfRange is returned when a rating value falls outside 1–5.
var ErrOutOfRange = errors.New("rating must be between 1 and 5")
