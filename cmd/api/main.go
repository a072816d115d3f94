package main

import (
	"context"

	"github.com/clipora/video-backend/internal/api"
	v1 "github.com/clipora/video-backend/internal/api/v1"
	"github.com/clipora/video-backend/internal/config"
	apierrors "github.com/clipora/video-backend/internal/errors"
	"github.com/clipora/video-backend/internal/metrics"
	"github.com/clipora/video-backend/internal/repository"
	"github.com/clipora/video-backend/internal/service"
	"github.com/clipora/video-backend/pkg/httpclient"
	"github.com/clipora/video-backend/pkg/mediagateway"
	"github.com/clipora/video-backend/pkg/paymentgateway"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			newMetrics,
			newFiberApp,
			newPaymentGateway,
			newMediaGateway,
			repository.NewLedger,
			repository.NewKeyMutex,
			service.NewPaymentService,
			service.NewQueryService,
			service.NewCatalogService,
			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func newMetrics() *metrics.Metrics {
	return metrics.NewMetrics(prometheus.DefaultRegisterer)
}

func newFiberApp(cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apierrors.ErrorHandler(cfg)})
	app.Use(metrics.HealthCheckMiddleware())
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	return app
}

func newPaymentGateway(cfg *config.Config) paymentgateway.PaymentGateway {
	client := httpclient.NewHTTPClient(cfg.PaymentGateway.Timeout)
	return paymentgateway.NewPaymentGateway(cfg.PaymentGateway, client)
}

func newMediaGateway(cfg *config.Config) mediagateway.MediaGateway {
	client := httpclient.NewHTTPClient(cfg.MediaGateway.Timeout)
	return mediagateway.NewMediaGateway(cfg.MediaGateway, client)
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting API server", zap.String("port", cfg.API.Port))
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
