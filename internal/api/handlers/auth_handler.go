package handlers

import (
	"recipe-box/domain"
	"recipe-box/internal/api/presenters"
	"recipe-box/pkg/auth"

	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		Login(c *fiber.Ctx) error
	}

	authHandler struct {
		authService auth.AuthService
	}
)

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandler{
		authService: authService,
	}
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := parseBody(c, req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedLogin, err)
	}

	res, err := h.authService.Login(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedLogin, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
