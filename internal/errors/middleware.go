package errors

import (
	"errors"

	"github.com/clipora/video-backend/internal/config"
	"github.com/clipora/video-backend/internal/constants"
	"github.com/clipora/video-backend/internal/service"
	"github.com/clipora/video-backend/pkg/paymentgateway"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler maps service errors to HTTP statuses and JSON bodies at the
// operation boundary. Nothing below this layer writes responses.
func ErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr, cfg.API.DevMode)
		}

		body := fiber.Map{
			"error": constants.ErrMsgInternalError,
			"type":  constants.ErrCodeInternalError,
		}
		if cfg.API.DevMode {
			body["detail"] = err.Error()
		}

		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error, devMode bool) error {
	status := constants.GetHTTPStatus(err.Code)
	body := fiber.Map{}

	switch err.Code {
	case constants.ErrCodeValidationFailed:
		body["error"] = err.Error()
		body["type"] = err.Code

	case constants.ErrCodePaymentNotCompleted:
		body["error"] = err.Error()

	case constants.ErrCodeGatewayError:
		// Surface the provider's own message and type tag to the caller.
		var gatewayErr paymentgateway.Error
		if errors.As(err.Cause, &gatewayErr) {
			body["error"] = gatewayErr.Message
			body["type"] = gatewayErr.Type
		} else {
			body["error"] = constants.GetErrorMessage(err.Code)
			body["type"] = err.Code
		}

	default:
		body["error"] = constants.GetErrorMessage(err.Code)
	}

	if devMode && err.Cause != nil {
		body["detail"] = err.Cause.Error()
	}

	return c.Status(status).JSON(body)
}
