package docstore

import (
	"context"

	"github.com/rs/zerolog"

	"sitecms/internal/coerce"
	"sitecms/internal/model"
	"sitecms/internal/repository"
	"sitecms/internal/store"
)

// ContactInfoRepo persists the contact-details record. The collection is
// expected to hold at most one active document, but the store does not
// enforce that; callers keep the singleton shape by updating the active
// record through the service layer instead of creating new ones.
type ContactInfoRepo struct {
	c collection[model.ContactInfo]
}

var _ repository.ContactInfoRepository = (*ContactInfoRepo)(nil)

func NewContactInfoRepo(st store.Store, log zerolog.Logger) *ContactInfoRepo {
	return &ContactInfoRepo{c: collection[model.ContactInfo]{
		st:      st,
		name:    collContactInfo,
		convert: coerce.ContactInfo,
		log:     log.With().Str("collection", collContactInfo).Logger(),
	}}
}

func (r *ContactInfoRepo) Create(ctx context.Context, fields map[string]any) (string, error) {
	return r.c.create(ctx, fields)
}

func (r *ContactInfoRepo) GetByID(ctx context.Context, id string) (*model.ContactInfo, error) {
	return r.c.get(ctx, id)
}

// GetActive returns the first document not explicitly marked inactive, or
// (nil, nil) when the collection is empty.
func (r *ContactInfoRepo) GetActive(ctx context.Context) (*model.ContactInfo, error) {
	docs, err := r.c.st.Find(ctx, collContactInfo, store.FindOptions{Filter: activeFilter()})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	info := coerce.ContactInfo(docs[0])
	return &info, nil
}

func (r *ContactInfoRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.c.update(ctx, id, fields)
}

func (r *ContactInfoRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
