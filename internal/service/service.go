// Package service holds the use cases consumed by the HTTP surface. It is
// the layer's public boundary and keeps a uniform result contract: read
// methods absorb store-transport failures into empty results (a degraded page
// beats a broken one), and write methods return a WriteResult value instead
// of an error, so callers inspect results rather than handle failures.
package service

import (
	"errors"
	"fmt"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("record not found")
	ErrReaderNil  = errors.New("reader is nil")
)

// WriteResult is the outcome envelope of every write operation. Exactly one
// of ID or Error is populated.
type WriteResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

func okResult(id string) WriteResult {
	return WriteResult{Success: true, ID: id}
}

func failResult(err error) WriteResult {
	return WriteResult{Success: false, Error: err.Error()}
}

// requireStrings checks that each named field is present as a non-empty
// string in the caller-supplied document.
func requireStrings(fields map[string]any, names ...string) error {
	for _, name := range names {
		s, _ := fields[name].(string)
		if s == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}
