package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// Collection is a typed view over one provisioned collection. Documents are
// immutable once inserted; there is no update or delete operation.
type Collection[T any] struct {
	store *Store
	spec  Spec
	table string
}

// NewCollection binds a document type to a provisioned collection.
func NewCollection[T any](store *Store, spec Spec) *Collection[T] {
	return &Collection[T]{
		store: store,
		spec:  spec,
		table: pgx.Identifier{spec.Name}.Sanitize(),
	}
}

// Insert writes a new document under (partitionKey, id). Returns ErrConflict
// when the id is already taken.
func (c *Collection[T]) Insert(ctx context.Context, partitionKey, id string, createdAt time.Time, doc *T) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document %q: %w", id, err)
	}

	sql := fmt.Sprintf(
		"INSERT INTO %s (id, partition_key, created_at, doc) VALUES ($1, $2, $3, $4)",
		c.table,
	)
	if _, err := c.store.pool.Exec(ctx, sql, id, partitionKey, createdAt, body); err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("insert into %q: %w", c.spec.Name, err)
	}
	return nil
}

// Get performs a point read of one document. Returns ErrNotFound when no
// document matches.
func (c *Collection[T]) Get(ctx context.Context, partitionKey, id string) (*T, error) {
	sql := fmt.Sprintf(
		"SELECT doc FROM %s WHERE partition_key = $1 AND id = $2",
		c.table,
	)

	var body []byte
	err := c.store.pool.QueryRow(ctx, sql, partitionKey, id).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %q from %q: %w", id, c.spec.Name, err)
	}

	doc := new(T)
	if err := json.Unmarshal(body, doc); err != nil {
		return nil, fmt.Errorf("unmarshal %q from %q: %w", id, c.spec.Name, err)
	}
	return doc, nil
}

// Query runs a one-shot fetch of all documents matching q, ordered by
// creation time descending. The result is a snapshot, not a live cursor.
func (c *Collection[T]) Query(ctx context.Context, q Query) ([]T, error) {
	sql, args := q.build(c.table)

	rows, err := c.store.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", c.spec.Name, err)
	}
	defer rows.Close()

	docs := []T{}
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan %q row: %w", c.spec.Name, err)
		}
		var doc T
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal %q row: %w", c.spec.Name, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %q: %w", c.spec.Name, err)
	}
	return docs, nil
}

// Count returns the number of documents in one partition.
func (c *Collection[T]) Count(ctx context.Context, partitionKey string) (int64, error) {
	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE partition_key = $1", c.table)

	var n int64
	if err := c.store.pool.QueryRow(ctx, sql, partitionKey).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %q partition: %w", c.spec.Name, err)
	}
	return n, nil
}

// Average computes the mean of a numeric document field across one partition.
// Returns nil when the partition holds no documents.
func (c *Collection[T]) Average(ctx context.Context, partitionKey, field string) (*float64, error) {
	sql := fmt.Sprintf(
		"SELECT AVG((doc->>$2)::numeric) FROM %s WHERE partition_key = $1",
		c.table,
	)

	var avg *float64
	if err := c.store.pool.QueryRow(ctx, sql, partitionKey, field).Scan(&avg); err != nil {
		return nil, fmt.Errorf("average %q over %q partition: %w", field, c.spec.Name, err)
	}
	return avg, nil
}
