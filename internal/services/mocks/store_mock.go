// filepath: internal/services/mocks/store_mock.go
package mocks

import (
	"context"

	"apodapi/internal/models"
	"apodapi/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockPictureStore is a mock implementation of services.PictureStore
type MockPictureStore struct {
	mock.Mock
}

var _ services.PictureStore = (*MockPictureStore)(nil)

func (m *MockPictureStore) GetLatestPicture(ctx context.Context) (*models.Picture, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Picture), args.Error(1)
}

func (m *MockPictureStore) GetPictureByDate(ctx context.Context, date string) (*models.Picture, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Picture), args.Error(1)
}

func (m *MockPictureStore) GetPictureAt(ctx context.Context, offset int) (*models.Picture, error) {
	args := m.Called(ctx, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Picture), args.Error(1)
}

func (m *MockPictureStore) CountPictures(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockPictureStore) GetAllPictures(ctx context.Context) ([]models.Picture, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Picture), args.Error(1)
}

func (m *MockPictureStore) SearchPictures(ctx context.Context, filter models.SearchFilter, limit, offset int) ([]models.Picture, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Picture), args.Error(1)
}

func (m *MockPictureStore) CountSearchPictures(ctx context.Context, filter models.SearchFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockPictureStore) PictureExists(ctx context.Context, date string) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockPictureStore) CreatePicture(ctx context.Context, p *models.Picture) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
