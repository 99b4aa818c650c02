// filepath: internal/services/mocks/upstream_mock.go
package mocks

import (
	"context"

	"apodapi/internal/models"
	"apodapi/internal/upstream"

	"github.com/stretchr/testify/mock"
)

// MockUpstreamClient is a mock implementation of upstream.Client
type MockUpstreamClient struct {
	mock.Mock
}

var _ upstream.Client = (*MockUpstreamClient)(nil)

func (m *MockUpstreamClient) FetchPicture(ctx context.Context, date string) (*models.Picture, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Picture), args.Error(1)
}
