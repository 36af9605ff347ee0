// Package docstore abstracts the schema-loose document store the employee
// data lives in. Documents are loosely-typed key/value trees: values are
// strings, numbers, bools, time.Time, []any, or nested map[string]any.
//
// Two implementations exist: Mongo (production) and Memory (tests, local dev).
package docstore

import (
	"context"
	"errors"
)

var (
	// ErrNotFound reports that a point lookup matched no document. It is a
	// normal outcome, distinct from store failure.
	ErrNotFound = errors.New("docstore: document not found")

	// ErrMissingIndex reports that an ordered listing requires an index the
	// store does not have. Callers are expected to retry unordered.
	ErrMissingIndex = errors.New("docstore: ordering requires a missing index")
)

// Doc is one document together with its store-assigned identifier.
type Doc struct {
	ID   string
	Data map[string]any
}

// Query restricts a collection listing. The zero value lists every document
// in undefined order.
type Query struct {
	OrderBy string // field name to order by; "" means unordered
	Desc    bool
	Limit   int // 0 means no limit
}

// Store is the document-store collaborator. Collections are addressed by
// name; they need not exist before use.
type Store interface {
	// Get returns the document data for id, or ErrNotFound.
	Get(ctx context.Context, collection, id string) (map[string]any, error)

	// Add inserts data as a new document and returns the assigned id.
	Add(ctx context.Context, collection string, data map[string]any) (string, error)

	// Set fully replaces the document with id, creating it if absent.
	Set(ctx context.Context, collection, id string, data map[string]any) error

	// Update merges fields into the document with id, or ErrNotFound.
	Update(ctx context.Context, collection, id string, fields map[string]any) error

	// Delete removes the document with id, or ErrNotFound.
	Delete(ctx context.Context, collection, id string) error

	// List returns documents matching q. May return ErrMissingIndex when
	// q.OrderBy names a field the store cannot order by.
	List(ctx context.Context, collection string, q Query) ([]Doc, error)
}
