package v1

import (
	"github.com/clipora/video-backend/internal/constants"
	"github.com/clipora/video-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger   *zap.Logger
	payments service.PaymentService
	queries  service.QueryService
	catalog  service.CatalogService
}

func NewHandler(logger *zap.Logger, payments service.PaymentService, queries service.QueryService,
	catalog service.CatalogService) *Handler {
	return &Handler{logger: logger, payments: payments, queries: queries, catalog: catalog}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) CreatePayment(c *fiber.Ctx) error {
	var request CreatePaymentRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": constants.ErrMsgInvalidRequestBody,
			"type":  constants.ErrCodeInvalidRequestBody,
		})
	}

	cmd := service.CreatePaymentCommand{
		UserEmail:    request.UserEmail,
		UserName:     request.UserName,
		UserID:       request.UserID,
		DeviceInfo:   request.DeviceInfo,
		AppVersion:   request.AppVersion,
		PurchaseType: request.PurchaseType,
	}

	result, err := h.payments.CreatePayment(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	h.logger.Info("Payment created",
		zap.String("paymentRef", result.PaymentRef),
		zap.String("userID", request.UserID))

	return c.JSON(result)
}

func (h *Handler) ConfirmPayment(c *fiber.Ctx) error {
	var request ConfirmPaymentRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": constants.ErrMsgInvalidRequestBody,
			"type":  constants.ErrCodeInvalidRequestBody,
		})
	}

	cmd := service.ConfirmPaymentCommand{
		PaymentRef: request.PaymentIntentID,
		UserID:     request.UserID,
	}

	result, err := h.payments.ConfirmPayment(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(ConfirmPaymentResponse{
		Success: result.Success,
		Message: result.Message,
		PaymentDetails: PaymentDetails{
			PaymentIntentID: result.PaymentRef,
			Amount:          result.Amount,
			Status:          result.Status,
		},
	})
}

func (h *Handler) GetUser(c *fiber.Ctx) error {
	report, err := h.queries.GetUser(c.Params("userId"))
	if err != nil {
		return err
	}

	return c.JSON(report)
}

func (h *Handler) ListTransactions(c *fiber.Ctx) error {
	return c.JSON(h.queries.ListAllTransactions())
}

func (h *Handler) ListVideos(c *fiber.Ctx) error {
	videos, err := h.catalog.ListVideos(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(ListVideosResponse{Videos: videos})
}
