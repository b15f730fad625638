package handlers

import (
	"recipe-box/domain"
	"recipe-box/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type (
	HealthHandler interface {
		Ping(c *fiber.Ctx) error
		Health(c *fiber.Ctx) error
	}

	healthHandler struct {
		db *gorm.DB
	}
)

func NewHealthHandler(db *gorm.DB) HealthHandler {
	return &healthHandler{db: db}
}

func (h *healthHandler) Ping(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.Map{"message": "pong"}, fiber.StatusOK)
}

func (h *healthHandler) Health(c *fiber.Ctx) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.UserContext())
	}
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedHealth, err)
	}
	return presenters.SuccessResponse(c, domain.HealthResponse{Status: "ok", Database: h.db.Dialector.Name()}, fiber.StatusOK)
}
