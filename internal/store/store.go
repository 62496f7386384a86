// Package store defines the document-store handle the repository layer is
// built on. The handle is constructed explicitly and injected into each
// repository, so tests can substitute the in-memory implementation without
// any package-level client state.
package store

import (
	"context"
	"errors"
)

// Op is a comparison operator usable in a Filter.
type Op string

const (
	OpEqual    Op = "="
	OpNotEqual Op = "!="
)

// Filter is a single-field predicate applied store-side by Find.
type Filter struct {
	Field string
	Op    Op
	Value any
}

// FindOptions shape a filtered and/or ordered collection query. A nil Filter
// selects the whole collection; an empty OrderBy leaves store iteration order.
// Ordering is always ascending.
type FindOptions struct {
	Filter  *Filter
	OrderBy string
}

// ErrClosed is returned by operations on a handle whose connection is gone.
var ErrClosed = errors.New("store: connection closed")

// Store is the minimal document-store surface the repositories need:
// collection-level scans and queries plus document-level reads and writes.
// Documents are raw key/value maps; typing is the coercion layer's job.
//
// Reads of a missing document return (nil, nil): absence is a normal outcome,
// not an error. Every operation is a single-shot request/response call; the
// handle keeps no per-call mutable state and implements no retries, so a
// caller's context is the only cancellation boundary.
type Store interface {
	// Create inserts data into a collection and returns the stored document,
	// including its store-assigned id.
	Create(ctx context.Context, collection string, data map[string]any) (map[string]any, error)

	// Get fetches one document by its full id ("collection:key").
	Get(ctx context.Context, id string) (map[string]any, error)

	// All scans an entire collection with no predicate or ordering.
	All(ctx context.Context, collection string) ([]map[string]any, error)

	// Find runs a filtered/ordered query against a collection. Stores may
	// reject shapes they cannot serve; callers own any fallback.
	Find(ctx context.Context, collection string, opts FindOptions) ([]map[string]any, error)

	// Merge applies a partial update to a document and returns the merged
	// result. Fields absent from data are left untouched.
	Merge(ctx context.Context, id string, data map[string]any) (map[string]any, error)

	// Delete removes a document by id. Deleting a missing document is not an
	// error.
	Delete(ctx context.Context, id string) error

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
}
