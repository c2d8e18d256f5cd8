// Package storage defines the interface for media object storage.
// Swap implementations by changing the concrete type injected at startup —
// the MinIO implementation works with any S3-compatible provider.
package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNotConfigured is returned when an upload is attempted but no backing
// object store was wired at startup.
var ErrNotConfigured = errors.New("object storage not configured")

// Object describes a stored media object: the opaque key it lives under and
// the stable, publicly resolvable URL for retrieving it.
type Object struct {
	Key string
	URL string
}

// Storage is the interface for saving and removing uploaded media.
type Storage interface {
	// Save streams data to the store under a freshly generated key derived
	// from originalName's extension, tagged with contentType.
	Save(ctx context.Context, r io.Reader, size int64, originalName, contentType string) (*Object, error)
	// Delete removes an object identified by key.
	Delete(ctx context.Context, key string) error
}

// objectKey generates a globally unique key for an upload, preserving the
// original file extension. Files without an extension get ".bin".
func objectKey(originalName string) string {
	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".bin"
	}
	return uuid.NewString() + ext
}
