package model

import "time"

// Package model contains the typed entities persisted in the document store.
// These are pure domain models with no store-specific dependencies; the JSON
// field names double as the document keys used in each collection.

// Base is the shared document envelope. ID is assigned by the store and is
// empty until the entity is first persisted. CreatedAt and UpdatedAt are
// stamped by the repository layer on every write; callers never set them.
type Base struct {
	ID        string    `json:"id,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}
