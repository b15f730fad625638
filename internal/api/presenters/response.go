package presenters

import (
	"errors"

	"recipe-box/domain"
	"recipe-box/internal/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func SuccessResponse[T any](c *fiber.Ctx, data T, status int) error {
	return c.Status(status).JSON(domain.Ok(data))
}

// ErrorResponse writes the failure envelope for err. Errors that carry no
// caller-safe message are answered with fallback, and logged when they are
// server faults.
func ErrorResponse(c *fiber.Ctx, fallback string, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		utils.Logger.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Any("request_id", c.Locals("request_id")),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	return c.Status(status).JSON(domain.Envelope[any](nil, err, fallback))
}

func StatusFor(err error) int {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		conflictErr   *domain.ConflictError
		upstreamErr   *domain.UpstreamError
	)
	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound
	case errors.As(err, &conflictErr):
		return fiber.StatusConflict
	case errors.As(err, &upstreamErr):
		return fiber.StatusBadGateway
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrAuthDisabled):
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}
