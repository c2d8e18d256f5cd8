// Package docstore implements a partition-aware keyed-document store on top
// of PostgreSQL. Each collection is one table holding a JSONB document per
// row, keyed by id and grouped by a partition key for scan locality.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a point read matches no document.
var ErrNotFound = errors.New("document not found")

// ErrConflict is returned when an insert collides with an existing id.
var ErrConflict = errors.New("document already exists")

// Spec declares a collection: its name and the document field whose value
// callers supply as the partition key on every write.
type Spec struct {
	Name         string
	PartitionKey string
}

// Store wraps a connection pool and provisions collections.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store over the given connection pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Provision idempotently ensures each declared collection exists with its
// partition index. Safe to call on every startup; existing collections are
// left untouched.
func (s *Store) Provision(ctx context.Context, specs ...Spec) error {
	for _, spec := range specs {
		table := pgx.Identifier{spec.Name}.Sanitize()
		index := pgx.Identifier{spec.Name + "_partition_recency_idx"}.Sanitize()

		ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id            TEXT PRIMARY KEY,
			partition_key TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL,
			doc           JSONB NOT NULL
		)`, table)
		if _, err := s.pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("provision collection %q: %w", spec.Name, err)
		}

		idx := fmt.Sprintf(
			"CREATE INDEX IF NOT EXISTS %s ON %s (partition_key, created_at DESC)",
			index, table,
		)
		if _, err := s.pool.Exec(ctx, idx); err != nil {
			return fmt.Errorf("provision index for %q: %w", spec.Name, err)
		}

		log.Printf("docstore: collection %q ready (partition key %s)", spec.Name, spec.PartitionKey)
	}
	return nil
}

// isUniqueViolation checks whether an error is a PostgreSQL unique_violation (code 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
