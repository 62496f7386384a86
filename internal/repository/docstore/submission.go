package docstore

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"sitecms/internal/coerce"
	"sitecms/internal/model"
	"sitecms/internal/repository"
	"sitecms/internal/store"
)

// SubmissionRepo persists contact-form submissions.
type SubmissionRepo struct {
	c collection[model.ContactSubmission]
}

var _ repository.SubmissionRepository = (*SubmissionRepo)(nil)

func NewSubmissionRepo(st store.Store, log zerolog.Logger) *SubmissionRepo {
	return &SubmissionRepo{c: collection[model.ContactSubmission]{
		st:      st,
		name:    collSubmissions,
		convert: coerce.ContactSubmission,
		log:     log.With().Str("collection", collSubmissions).Logger(),
	}}
}

func (r *SubmissionRepo) Create(ctx context.Context, fields map[string]any) (string, error) {
	return r.c.create(ctx, fields)
}

func (r *SubmissionRepo) GetByID(ctx context.Context, id string) (*model.ContactSubmission, error) {
	return r.c.get(ctx, id)
}

// List returns every submission, newest first.
func (r *SubmissionRepo) List(ctx context.Context) ([]model.ContactSubmission, error) {
	docs, err := r.c.st.Find(ctx, collSubmissions, store.FindOptions{OrderBy: "createdAt"})
	if err != nil {
		return nil, err
	}
	subs := r.c.convertAll(docs)
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})
	return subs, nil
}

func (r *SubmissionRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.c.update(ctx, id, fields)
}

func (r *SubmissionRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
