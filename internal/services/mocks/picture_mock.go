// filepath: internal/services/mocks/picture_mock.go
package mocks

import (
	"context"

	"apodapi/internal/models"
	"apodapi/internal/search"
	"apodapi/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockPictureService is a mock implementation of services.PictureService
type MockPictureService struct {
	mock.Mock
}

var _ services.PictureService = (*MockPictureService)(nil)

func (m *MockPictureService) Latest(ctx context.Context) (*models.Picture, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Picture), args.Error(1)
}

func (m *MockPictureService) ByDate(ctx context.Context, date string) (*models.Picture, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Picture), args.Error(1)
}

func (m *MockPictureService) Random(ctx context.Context) (*models.Picture, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Picture), args.Error(1)
}

func (m *MockPictureService) All(ctx context.Context) ([]models.Picture, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Picture), args.Error(1)
}

func (m *MockPictureService) DateRange(ctx context.Context, start, end string) ([]models.Picture, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Picture), args.Error(1)
}

func (m *MockPictureService) Search(ctx context.Context, params search.Params) (*models.SearchResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SearchResponse), args.Error(1)
}

func (m *MockPictureService) Ingest(ctx context.Context, date string, actor string) (*models.Picture, error) {
	args := m.Called(ctx, date, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Picture), args.Error(1)
}
