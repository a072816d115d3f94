package service

import (
	"context"
	"time"

	"github.com/clipora/video-backend/internal/config"
	"github.com/clipora/video-backend/internal/constants"
	"github.com/clipora/video-backend/internal/metrics"
	"github.com/clipora/video-backend/pkg/mediagateway"
	"go.uber.org/zap"
)

// CatalogService lists the video assets available for unlock. It is a
// pass-through over the media host and never touches the ledger.
type CatalogService interface {
	ListVideos(ctx context.Context) ([]mediagateway.VideoAsset, error)
}

type catalog struct {
	gateway mediagateway.MediaGateway
	timeout time.Duration
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewCatalogService(gateway mediagateway.MediaGateway, cfg *config.Config, logger *zap.Logger,
	metrics *metrics.Metrics) CatalogService {
	return &catalog{gateway: gateway, timeout: cfg.MediaGateway.Timeout, logger: logger, metrics: metrics}
}

func (c *catalog) ListVideos(ctx context.Context) ([]mediagateway.VideoAsset, error) {
	gatewayCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	assets, err := c.gateway.ListVideoAssets(gatewayCtx)
	c.metrics.RecordGatewayCall("media", "list_video_assets", time.Since(start))

	if err != nil {
		c.logger.Error("Failed to list video assets", zap.Error(err))
		return nil, NewServiceError(constants.ErrCodeGatewayError, err)
	}

	c.logger.Debug("Video assets listed", zap.Int("count", len(assets)))

	return assets, nil
}
