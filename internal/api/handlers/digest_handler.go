package handlers

import (
	"recipe-box/domain"
	"recipe-box/internal/api/presenters"
	"recipe-box/pkg/digest"

	"github.com/gofiber/fiber/v2"
)

type (
	DigestHandler interface {
		DigestRecipe(c *fiber.Ctx) error
	}

	digestHandler struct {
		digestService digest.DigestService
	}
)

func NewDigestHandler(digestService digest.DigestService) DigestHandler {
	return &digestHandler{
		digestService: digestService,
	}
}

func (h *digestHandler) DigestRecipe(c *fiber.Ctx) error {
	req := new(domain.DigestRequest)
	if err := parseBody(c, req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedDigestRecipe, err)
	}

	res, err := h.digestService.DigestRecipe(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedDigestRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}
