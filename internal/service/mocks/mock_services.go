package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"sitecms/internal/model"
	"sitecms/internal/service"
)

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context, activeOnly bool) []model.Project {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Project)
}

func (m *MockProjectService) Get(ctx context.Context, id string) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Create(ctx context.Context, fields map[string]any) service.WriteResult {
	args := m.Called(ctx, fields)
	return args.Get(0).(service.WriteResult)
}

func (m *MockProjectService) Update(ctx context.Context, id string, fields map[string]any) service.WriteResult {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(service.WriteResult)
}

func (m *MockProjectService) Delete(ctx context.Context, id string) service.WriteResult {
	args := m.Called(ctx, id)
	return args.Get(0).(service.WriteResult)
}

func (m *MockProjectService) UploadImage(ctx context.Context, id string, r io.Reader, originalFilename, contentType string, size int64) (string, error) {
	args := m.Called(ctx, id, r, originalFilename, contentType, size)
	return args.String(0), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Services(ctx context.Context, activeOnly bool) []model.Service {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Service)
}

func (m *MockCatalogService) Service(ctx context.Context, id string) (*model.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *MockCatalogService) CreateService(ctx context.Context, fields map[string]any) service.WriteResult {
	args := m.Called(ctx, fields)
	return args.Get(0).(service.WriteResult)
}

func (m *MockCatalogService) UpdateService(ctx context.Context, id string, fields map[string]any) service.WriteResult {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(service.WriteResult)
}

func (m *MockCatalogService) DeleteService(ctx context.Context, id string) service.WriteResult {
	args := m.Called(ctx, id)
	return args.Get(0).(service.WriteResult)
}

func (m *MockCatalogService) Stats(ctx context.Context, activeOnly bool) []model.CompanyStat {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.CompanyStat)
}

func (m *MockCatalogService) Stat(ctx context.Context, id string) (*model.CompanyStat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CompanyStat), args.Error(1)
}

func (m *MockCatalogService) CreateStat(ctx context.Context, fields map[string]any) service.WriteResult {
	args := m.Called(ctx, fields)
	return args.Get(0).(service.WriteResult)
}

func (m *MockCatalogService) UpdateStat(ctx context.Context, id string, fields map[string]any) service.WriteResult {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(service.WriteResult)
}

func (m *MockCatalogService) DeleteStat(ctx context.Context, id string) service.WriteResult {
	args := m.Called(ctx, id)
	return args.Get(0).(service.WriteResult)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Info(ctx context.Context) *model.ContactInfo {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.ContactInfo)
}

func (m *MockContactService) SaveInfo(ctx context.Context, fields map[string]any) service.WriteResult {
	args := m.Called(ctx, fields)
	return args.Get(0).(service.WriteResult)
}

func (m *MockContactService) Hours(ctx context.Context) []model.BusinessHour {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.BusinessHour)
}

func (m *MockContactService) SaveHours(ctx context.Context, hour model.BusinessHour) service.WriteResult {
	args := m.Called(ctx, hour)
	return args.Get(0).(service.WriteResult)
}

func (m *MockContactService) SaveWeek(ctx context.Context, hours []model.BusinessHour) service.WriteResult {
	args := m.Called(ctx, hours)
	return args.Get(0).(service.WriteResult)
}

type MockInboxService struct {
	mock.Mock
}

func (m *MockInboxService) Submit(ctx context.Context, fields map[string]any) service.WriteResult {
	args := m.Called(ctx, fields)
	return args.Get(0).(service.WriteResult)
}

func (m *MockInboxService) List(ctx context.Context) []model.ContactSubmission {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.ContactSubmission)
}

func (m *MockInboxService) Get(ctx context.Context, id string) (*model.ContactSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactSubmission), args.Error(1)
}

func (m *MockInboxService) MarkRead(ctx context.Context, id string) service.WriteResult {
	args := m.Called(ctx, id)
	return args.Get(0).(service.WriteResult)
}

func (m *MockInboxService) Delete(ctx context.Context, id string) service.WriteResult {
	args := m.Called(ctx, id)
	return args.Get(0).(service.WriteResult)
}
