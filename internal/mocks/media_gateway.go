package mocks

import (
	"context"

	"github.com/clipora/video-backend/pkg/mediagateway"
	"github.com/stretchr/testify/mock"
)

type MediaGateway struct {
	mock.Mock
}

func (m *MediaGateway) ListVideoAssets(ctx context.Context) ([]mediagateway.VideoAsset, error) {
	args := m.Called(ctx)
	return args.Get(0).([]mediagateway.VideoAsset), args.Error(1)
}
