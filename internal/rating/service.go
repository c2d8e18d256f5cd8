package rating

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/photofeed/service/internal/photo"
)

// store is the slice of the document store the rating service needs.
// Ratings partition by the parent photo id.
type store interface {
	Insert(ctx context.Context, partitionKey, id string, createdAt time.Time, doc *Rating) error
	Count(ctx context.Context, partitionKey string) (int64, error)
	Average(ctx context.Context, partitionKey, field string) (*float64, error)
}

// photoProbe checks parent-photo existence before a write.
type photoProbe interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Service contains business logic for photo ratings.
type Service struct {
	ratings store
	photos  photoProbe
}

// NewService creates a rating Service.
func NewService(ratings store, photos photoProbe) *Service {
	return &Service{ratings: ratings, photos: photos}
}

// Add validates and persists a new rating on the given photo.
func (s *Service) Add(ctx context.Context, photoID string, value int) (*Rating, error) {
	if value < MinValue || value > MaxValue {
		return nil, ErrOutOfRange
	}

	ok, err := s.photos.Exists(ctx, photoID)
	if err != nil {
		return nil, fmt.Errorf("probe photo %q: %w", photoID, err)
	}
	if !ok {
		return nil, photo.ErrNotFound
	}

	r := &Rating{
		ID:        uuid.NewString(),
		PhotoID:   photoID,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.ratings.Insert(ctx, r.PhotoID, r.ID, r.CreatedAt, r); err != nil {
		return nil, fmt.Errorf("persist rating: %w", err)
	}
	return r, nil
}

// Summary computes the count and mean of one photo's ratings. The two reads
// are independent; ratings are append-only, so skew between them under
// concurrent writes corrects itself on the next read.
func (s *Service) Summary(ctx context.Context, photoID string) (*Summary, error) {
	avg, err := s.ratings.Average(ctx, photoID, valueField)
	if err != nil {
		return nil, fmt.Errorf("average ratings for %q: %w", photoID, err)
	}
	count, err := s.ratings.Count(ctx, photoID)
	if err != nil {
		return nil, fmt.Errorf("count ratings for %q: %w", photoID, err)
	}
	return &Summary{PhotoID: photoID, Average: avg, Count: count}, nil
}
