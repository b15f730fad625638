package handlers

import (
	"recipe-box/domain"
	"recipe-box/internal/api/presenters"
	"recipe-box/pkg/steal"

	"github.com/gofiber/fiber/v2"
)

type (
	StealHandler interface {
		StealRecipe(c *fiber.Ctx) error
		StealPrompt(c *fiber.Ctx) error
	}

	stealHandler struct {
		stealService steal.StealService
	}
)

func NewStealHandler(stealService steal.StealService) StealHandler {
	return &stealHandler{
		stealService: stealService,
	}
}

// StealRecipe extracts the recipe at the posted URL. With "digest": true the
// extracted recipe is also stored.
func (h *stealHandler) StealRecipe(c *fiber.Ctx) error {
	req := new(domain.StealRequest)
	if err := parseBody(c, req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedStealRecipe, err)
	}

	if req.Digest {
		res, err := h.stealService.StealAndDigest(c.UserContext(), req.URL)
		if err != nil {
			return presenters.ErrorResponse(c, domain.MessageFailedStealRecipe, err)
		}
		return presenters.SuccessResponse(c, res, fiber.StatusCreated)
	}

	res, err := h.stealService.Extract(c.UserContext(), req.URL)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedStealRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *stealHandler) StealPrompt(c *fiber.Ctx) error {
	res, err := h.stealService.Prompt(c.Query("url"))
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedStealPrompt, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
