package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/FarmCalc_Go/internal/domain"
	"github.com/osse101/FarmCalc_Go/internal/planner"
)

var _ planner.Service = (*MockPlannerService)(nil)

// MockPlannerService mocks planner.Service
type MockPlannerService struct {
	mock.Mock
}

func (m *MockPlannerService) Preferences(ctx context.Context, profile string) (domain.Preferences, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(domain.Preferences), args.Error(1)
}

func (m *MockPlannerService) UpdatePreferences(ctx context.Context, profile string, update domain.PreferencesUpdate) (domain.Preferences, error) {
	args := m.Called(ctx, profile, update)
	return args.Get(0).(domain.Preferences), args.Error(1)
}

func (m *MockPlannerService) SetPrice(ctx context.Context, profile, cropName string, price float64) (string, error) {
	args := m.Called(ctx, profile, cropName, price)
	return args.String(0), args.Error(1)
}

func (m *MockPlannerService) Ranking(ctx context.Context, profile string) ([]domain.RankedCrop, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RankedCrop), args.Error(1)
}

func (m *MockPlannerService) Detail(ctx context.Context, profile, cropName string) (*domain.CropDetail, error) {
	args := m.Called(ctx, profile, cropName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CropDetail), args.Error(1)
}

func (m *MockPlannerService) Catalog() []domain.Crop {
	args := m.Called()
	return args.Get(0).([]domain.Crop)
}

func (m *MockPlannerService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newMockService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPlannerService {
	m := &MockPlannerService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
