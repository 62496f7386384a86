package service

import (
	"context"

	"github.com/rs/zerolog"

	"sitecms/internal/model"
	"sitecms/internal/repository"
)

// CatalogService covers the services and company-stats collections, which
// share plain generated-id CRUD semantics.
type CatalogService interface {
	Services(ctx context.Context, activeOnly bool) []model.Service
	Service(ctx context.Context, id string) (*model.Service, error)
	CreateService(ctx context.Context, fields map[string]any) WriteResult
	UpdateService(ctx context.Context, id string, fields map[string]any) WriteResult
	DeleteService(ctx context.Context, id string) WriteResult

	Stats(ctx context.Context, activeOnly bool) []model.CompanyStat
	Stat(ctx context.Context, id string) (*model.CompanyStat, error)
	CreateStat(ctx context.Context, fields map[string]any) WriteResult
	UpdateStat(ctx context.Context, id string, fields map[string]any) WriteResult
	DeleteStat(ctx context.Context, id string) WriteResult
}

type catalogService struct {
	services repository.ServiceRepository
	stats    repository.StatRepository
	log      zerolog.Logger
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(services repository.ServiceRepository, stats repository.StatRepository, log zerolog.Logger) CatalogService {
	return &catalogService{services: services, stats: stats, log: log}
}

func (s *catalogService) Services(ctx context.Context, activeOnly bool) []model.Service {
	items, err := s.services.List(ctx, activeOnly)
	if err != nil {
		s.log.Warn().Err(err).Msg("service list failed, serving none")
		return []model.Service{}
	}
	return items
}

func (s *catalogService) Service(ctx context.Context, id string) (*model.Service, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrNotFound
	}
	return svc, nil
}

func (s *catalogService) CreateService(ctx context.Context, fields map[string]any) WriteResult {
	if err := requireStrings(fields, "title", "description"); err != nil {
		return failResult(err)
	}
	id, err := s.services.Create(ctx, fields)
	if err != nil {
		s.log.Error().Err(err).Msg("create service failed")
		return failResult(err)
	}
	return okResult(id)
}

func (s *catalogService) UpdateService(ctx context.Context, id string, fields map[string]any) WriteResult {
	if id == "" {
		return failResult(ErrIDRequired)
	}
	if err := s.services.Update(ctx, id, fields); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("update service failed")
		return failResult(err)
	}
	return okResult(id)
}

func (s *catalogService) DeleteService(ctx context.Context, id string) WriteResult {
	if id == "" {
		return failResult(ErrIDRequired)
	}
	if err := s.services.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("delete service failed")
		return failResult(err)
	}
	return okResult(id)
}

func (s *catalogService) Stats(ctx context.Context, activeOnly bool) []model.CompanyStat {
	items, err := s.stats.List(ctx, activeOnly)
	if err != nil {
		s.log.Warn().Err(err).Msg("stat list failed, serving none")
		return []model.CompanyStat{}
	}
	return items
}

func (s *catalogService) Stat(ctx context.Context, id string) (*model.CompanyStat, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	stat, err := s.stats.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stat == nil {
		return nil, ErrNotFound
	}
	return stat, nil
}

func (s *catalogService) CreateStat(ctx context.Context, fields map[string]any) WriteResult {
	if err := requireStrings(fields, "label"); err != nil {
		return failResult(err)
	}
	id, err := s.stats.Create(ctx, fields)
	if err != nil {
		s.log.Error().Err(err).Msg("create stat failed")
		return failResult(err)
	}
	return okResult(id)
}

func (s *catalogService) UpdateStat(ctx context.Context, id string, fields map[string]any) WriteResult {
	if id == "" {
		return failResult(ErrIDRequired)
	}
	if err := s.stats.Update(ctx, id, fields); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("update stat failed")
		return failResult(err)
	}
	return okResult(id)
}

func (s *catalogService) DeleteStat(ctx context.Context, id string) WriteResult {
	if id == "" {
		return failResult(ErrIDRequired)
	}
	if err := s.stats.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("delete stat failed")
		return failResult(err)
	}
	return okResult(id)
}
