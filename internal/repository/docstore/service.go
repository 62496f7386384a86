package docstore

import (
	"context"

	"github.com/rs/zerolog"

	"sitecms/internal/coerce"
	"sitecms/internal/model"
	"sitecms/internal/repository"
	"sitecms/internal/store"
)

// ServiceRepo persists service offerings.
type ServiceRepo struct {
	c collection[model.Service]
}

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

func NewServiceRepo(st store.Store, log zerolog.Logger) *ServiceRepo {
	return &ServiceRepo{c: collection[model.Service]{
		st:      st,
		name:    collServices,
		convert: coerce.Service,
		orderOf: func(s model.Service) int { return s.Order },
		log:     log.With().Str("collection", collServices).Logger(),
	}}
}

func (r *ServiceRepo) Create(ctx context.Context, fields map[string]any) (string, error) {
	return r.c.create(ctx, fields)
}

func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*model.Service, error) {
	return r.c.get(ctx, id)
}

func (r *ServiceRepo) List(ctx context.Context, activeOnly bool) ([]model.Service, error) {
	return r.c.list(ctx, activeOnly)
}

func (r *ServiceRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	return r.c.update(ctx, id, fields)
}

func (r *ServiceRepo) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
