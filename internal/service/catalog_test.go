package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"sitecms/internal/repository/mocks"
)

func newCatalog() (*mocks.MockServiceRepository, *mocks.MockStatRepository, CatalogService) {
	services := new(mocks.MockServiceRepository)
	stats := new(mocks.MockStatRepository)
	return services, stats, NewCatalogService(services, stats, zerolog.Nop())
}

func TestCatalogReadsAbsorbFailures(t *testing.T) {
	services, stats, svc := newCatalog()
	ctx := context.Background()

	services.On("List", ctx, true).Return(nil, errors.New("store down"))
	stats.On("List", ctx, true).Return(nil, errors.New("store down"))

	assert.Empty(t, svc.Services(ctx, true))
	assert.Empty(t, svc.Stats(ctx, true))
}

func TestCatalogServiceCRUDEnvelopes(t *testing.T) {
	services, _, svc := newCatalog()
	ctx := context.Background()

	fields := map[string]any{"title": "Consulting", "description": "Advice"}
	services.On("Create", ctx, fields).Return("services:new", nil)

	res := svc.CreateService(ctx, fields)
	assert.True(t, res.Success)
	assert.Equal(t, "services:new", res.ID)

	res = svc.CreateService(ctx, map[string]any{"title": "Consulting"})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "description")

	res = svc.UpdateService(ctx, "", fields)
	assert.False(t, res.Success)

	services.On("Delete", ctx, "services:a").Return(errors.New("nope"))
	res = svc.DeleteService(ctx, "services:a")
	assert.False(t, res.Success)
	assert.Equal(t, "nope", res.Error)
}

func TestCatalogStatEnvelopes(t *testing.T) {
	_, stats, svc := newCatalog()
	ctx := context.Background()

	res := svc.CreateStat(ctx, map[string]any{"value": 42})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "label")

	fields := map[string]any{"label": "Clients", "value": 42}
	stats.On("Create", ctx, fields).Return("company_stats:new", nil)

	res = svc.CreateStat(ctx, fields)
	assert.True(t, res.Success)
	assert.Equal(t, "company_stats:new", res.ID)
}

func TestCatalogGetNotFound(t *testing.T) {
	services, stats, svc := newCatalog()
	ctx := context.Background()

	services.On("GetByID", ctx, "services:x").Return(nil, nil)
	stats.On("GetByID", ctx, "company_stats:x").Return(nil, nil)

	_, err := svc.Service(ctx, "services:x")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Stat(ctx, "company_stats:x")
	assert.ErrorIs(t, err, ErrNotFound)
}
