package storage

import (
	"context"
	"io"
	"time"
)

// Package storage holds the object-storage abstraction used for project
// images. Implementations stream content to an S3-compatible backend and
// never touch local disk.

// PutOptions define optional parameters for uploading objects. Size should be
// the exact number of bytes if known; -1 lets the backend buffer/chunk.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// Storage is the image-store client interface. Put returns the public URL of
// the stored object, which is what gets persisted in a project's imageUrl
// field.
type Storage interface {
	// Put uploads an object under the given key and returns its public URL.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (string, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited URL usable without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
