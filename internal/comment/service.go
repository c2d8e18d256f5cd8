package comment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/photofeed/service/internal/docstore"
	"github.com/photofeed/service/internal/photo"
)

// store is the slice of the document store the comment service needs.
// Comments partition by the parent photo id.
type store interface {
	Insert(ctx context.Context, partitionKey, id string, createdAt time.Time, doc *Comment) error
	Query(ctx context.Context, q docstore.Query) ([]Comment, error)
}

// photoProbe checks parent-photo existence before a write.
type photoProbe interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Service contains business logic for photo comments.
type Service struct {
	comments store
	photos   photoProbe
}

// NewService creates a comment Service.
func NewService(comments store, photos photoProbe) *Service {
	return &Service{comments: comments, photos: photos}
}

// Add validates and persists a new comment on the given photo. The parent
// probe is best-effort: it catches comments on unknown photos at write time
// but is not a referential-integrity guarantee.
func (s *Service) Add(ctx context.Context, photoID, authorName, text string) (*Comment, error) {
	authorName = strings.TrimSpace(authorName)
	if authorName == "" {
		return nil, ErrMissingAuthor
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrMissingText
	}

	ok, err := s.photos.Exists(ctx, photoID)
	if err != nil {
		return nil, fmt.Errorf("probe photo %q: %w", photoID, err)
	}
	if !ok {
		return nil, photo.ErrNotFound
	}

	c := &Comment{
		ID:         uuid.NewString(),
		PhotoID:    photoID,
		AuthorName: authorName,
		Text:       text,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.comments.Insert(ctx, c.PhotoID, c.ID, c.CreatedAt, c); err != nil {
		return nil, fmt.Errorf("persist comment: %w", err)
	}
	return c, nil
}

// List returns all comments on one photo, newest first.
func (s *Service) List(ctx context.Context, photoID string) ([]Comment, error) {
	comments, err := s.comments.Query(ctx, docstore.ByPartition(photoID))
	if err != nil {
		return nil, fmt.Errorf("list comments for %q: %w", photoID, err)
	}
	return comments, nil
}
