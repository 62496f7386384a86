package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sitecms/internal/model"
)

type MockContactInfoRepository struct {
	mock.Mock
}

func (m *MockContactInfoRepository) Create(ctx context.Context, fields map[string]any) (string, error) {
	args := m.Called(ctx, fields)
	return args.String(0), args.Error(1)
}

func (m *MockContactInfoRepository) GetByID(ctx context.Context, id string) (*model.ContactInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactInfo), args.Error(1)
}

func (m *MockContactInfoRepository) GetActive(ctx context.Context) (*model.ContactInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactInfo), args.Error(1)
}

func (m *MockContactInfoRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockContactInfoRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBusinessHourRepository struct {
	mock.Mock
}

func (m *MockBusinessHourRepository) UpsertByDay(ctx context.Context, hour model.BusinessHour) (string, error) {
	args := m.Called(ctx, hour)
	return args.String(0), args.Error(1)
}

func (m *MockBusinessHourRepository) GetByDay(ctx context.Context, day string) (*model.BusinessHour, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BusinessHour), args.Error(1)
}

func (m *MockBusinessHourRepository) List(ctx context.Context) ([]model.BusinessHour, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BusinessHour), args.Error(1)
}

func (m *MockBusinessHourRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, fields map[string]any) (string, error) {
	args := m.Called(ctx, fields)
	return args.String(0), args.Error(1)
}

func (m *MockSubmissionRepository) GetByID(ctx context.Context, id string) (*model.ContactSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) List(ctx context.Context) ([]model.ContactSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContactSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockSubmissionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
