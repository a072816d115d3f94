package api

import (
	v1 "github.com/clipora/video-backend/internal/api/v1"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const prefix = "/api"

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post(prefix+"/create-payment", handler.CreatePayment)
	app.Post(prefix+"/confirm-payment", handler.ConfirmPayment)
	app.Get(prefix+"/user/:userId", handler.GetUser)
	app.Get(prefix+"/admin/transactions", handler.ListTransactions)
	app.Get(prefix+"/videos", handler.ListVideos)
}
