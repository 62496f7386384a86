package docstore

import (
	"context"

	"github.com/rs/zerolog"

	"sitecms/internal/coerce"
	"sitecms/internal/model"
	"sitecms/internal/repository"
	"sitecms/internal/store"
)

// StatRepo persists company stats.
type StatRepo struct {
	c collection[model.CompanyStat]
}

var _ repository.StatRepository = (*StatRepo)(nil)

func NewStatRepo(st store.Store, log zerolog.Logger) *StatRepo {
	return &StatRepo{c: collection[model.CompanyStat]{
		st:      st,
		name:    collStats,
		convert: coerce.CompanyStat,
		orderOf: func(s model.CompanyStat) int { return s.Order },
		log:     log.With().Str("collection", collStats).Logger(),
	}}
}

func (r *StatRepo) Create(ctx context.Context, fields map[string]any) (string, error) {
	return r.c.create(ctx, fields)
}

func (r *StatRepo) GetByID(ctx context.Context, id string) (*model.CompanyStat, error) {
	return r.c.get(ctx, id)
}

func (r *StatRepo) List(ctx context.Context, activeOnly bool) ([]model.CompanyStat, error) {
	return r.c.list(ctx, activeOnly)
}

func (r *StatRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.c.update(ctx, id, fields)
}

func (r *StatRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
