package photo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/photofeed/service/internal/docstore"
	"github.com/photofeed/service/internal/parse"
	"github.com/photofeed/service/internal/storage"
)

// store is the slice of the document store the photo service needs.
// Photos partition by their own id, so every access uses (id, id).
type store interface {
	Insert(ctx context.Context, partitionKey, id string, createdAt time.Time, doc *Photo) error
	Get(ctx context.Context, partitionKey, id string) (*Photo, error)
	Query(ctx context.Context, q docstore.Query) ([]Photo, error)
}

// Service contains business logic for the photo catalog.
type Service struct {
	photos store
	media  storage.Storage // nil when no object store is wired
}

// NewService creates a photo Service. media may be nil, in which case binary
// uploads are rejected with storage.ErrNotConfigured while URL-based creation
// still works.
func NewService(photos store, media storage.Storage) *Service {
	return &Service{photos: photos, media: media}
}

// CreateInput carries everything a create-photo call may supply. Exactly one
// of File and URL provides the media; File wins when both are present.
type CreateInput struct {
	Title      string
	URL        string
	Caption    string
	Location   string
	People     string // comma-separated
	Tags       string // comma-separated
	Visibility string

	File        io.Reader
	FileName    string
	FileSize    int64
	ContentType string
}

// Create validates the input, resolves the media locator, assigns identity
// and timestamp, and persists the photo.
//
// When the document insert fails after a successful upload, the stored object
// is deleted best-effort; if that compensation also fails the orphaned object
// is retained and logged.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Photo, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrMissingTitle
	}

	mediaURL := strings.TrimSpace(in.URL)
	var uploadedKey string
	if in.File != nil {
		if s.media == nil {
			return nil, storage.ErrNotConfigured
		}
		obj, err := s.media.Save(ctx, in.File, in.FileSize, in.FileName, in.ContentType)
		if err != nil {
			return nil, fmt.Errorf("store media: %w", err)
		}
		mediaURL = obj.URL
		uploadedKey = obj.Key
	}
	if mediaURL == "" {
		return nil, ErrMissingMedia
	}

	visibility := strings.TrimSpace(in.Visibility)
	if visibility == "" {
		visibility = DefaultVisibility
	}

	p := &Photo{
		ID:         uuid.NewString(),
		Title:      title,
		Caption:    strings.TrimSpace(in.Caption),
		Location:   strings.TrimSpace(in.Location),
		People:     orEmpty(parse.List(in.People)),
		Tags:       orEmpty(parse.List(in.Tags)),
		Visibility: visibility,
		MediaURL:   mediaURL,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.photos.Insert(ctx, p.ID, p.ID, p.CreatedAt, p); err != nil {
		if uploadedKey != "" {
			if delErr := s.media.Delete(ctx, uploadedKey); delErr != nil {
				log.Printf("photo: orphaned object %q retained after failed insert: %v", uploadedKey, delErr)
			}
		}
		return nil, fmt.Errorf("persist photo: %w", err)
	}
	return p, nil
}

// Get returns one photo by id.
func (s *Service) Get(ctx context.Context, id string) (*Photo, error) {
	p, err := s.photos.Get(ctx, id, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get photo %q: %w", id, err)
	}
	return p, nil
}

// Exists reports whether a photo with the given id is present. Used as the
// opportunistic parent probe by the comment and rating services.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Search lists photos ordered by recency. A non-blank term restricts the
// result to case-insensitive substring matches on title, caption, or location.
func (s *Service) Search(ctx context.Context, term string) ([]Photo, error) {
	photos, err := s.photos.Query(ctx, docstore.Search(term, searchFields...))
	if err != nil {
		return nil, fmt.Errorf("search photos: %w", err)
	}
	return photos, nil
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
