// Package repository defines data access for the site's content entities.
// No business logic here, strictly persistence operations.
//
// Shared contract across implementations:
//   - Create takes the caller-supplied fields as a raw map, merges in the
//     layer-assigned createdAt/updatedAt stamps, and returns the new
//     store-assigned id. Typing happens on the read side via coercion.
//   - GetByID returns (nil, nil) when the document is absent; absence is a
//     normal outcome, not an error.
//   - List re-sorts client-side by order ascending (missing order counts as
//     0) so display order is deterministic regardless of fetch path. The
//     active-only predicate is `isActive != false` for every collection:
//     documents without the field are included.
//   - Update applies a partial field merge, always stamps updatedAt and never
//     touches createdAt.
//   - Delete is a hard delete by id; deleting a missing document is nil.
package repository

import (
	"context"

	"sitecms/internal/model"
)

// ProjectRepository persists portfolio projects. Its List carries the
// multi-stage read fallback: filtered query, then raw scan, then a tagged
// placeholder. It never returns an empty slice or an error.
type ProjectRepository interface {
	Create(ctx context.Context, fields map[string]any) (string, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	List(ctx context.Context, activeOnly bool) ([]model.Project, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// ServiceRepository persists service offerings.
type ServiceRepository interface {
	Create(ctx context.Context, fields map[string]any) (string, error)
	GetByID(ctx context.Context, id string) (*model.Service, error)
	List(ctx context.Context, activeOnly bool) ([]model.Service, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// StatRepository persists company stats.
type StatRepository interface {
	Create(ctx context.Context, fields map[string]any) (string, error)
	GetByID(ctx context.Context, id string) (*model.CompanyStat, error)
	List(ctx context.Context, activeOnly bool) ([]model.CompanyStat, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// ContactInfoRepository persists the contact-details record. The collection
// is expected to hold at most one active document; GetActive returns it, or
// (nil, nil) when none exists.
type ContactInfoRepository interface {
	Create(ctx context.Context, fields map[string]any) (string, error)
	GetByID(ctx context.Context, id string) (*model.ContactInfo, error)
	GetActive(ctx context.Context) (*model.ContactInfo, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// BusinessHourRepository persists the weekly schedule. Day is a natural key
// the store does not enforce, so every write goes through UpsertByDay, the
// sole uniqueness enforcement point.
type BusinessHourRepository interface {
	UpsertByDay(ctx context.Context, hour model.BusinessHour) (string, error)
	GetByDay(ctx context.Context, day string) (*model.BusinessHour, error)
	List(ctx context.Context) ([]model.BusinessHour, error)
	Delete(ctx context.Context, id string) error
}

// SubmissionRepository persists contact-form submissions. List returns newest
// first.
type SubmissionRepository interface {
	Create(ctx context.Context, fields map[string]any) (string, error)
	GetByID(ctx context.Context, id string) (*model.ContactSubmission, error)
	List(ctx context.Context) ([]model.ContactSubmission, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
