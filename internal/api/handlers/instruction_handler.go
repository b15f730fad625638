package handlers

import (
	"recipe-box/domain"
	"recipe-box/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
)

func (h *recipeHandler) AddInstruction(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id", domain.MessageInvalidRecipeID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedAddInstruction, err)
	}
	req := new(domain.AddInstructionRequest)
	if err := parseBody(c, req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedAddInstruction, err)
	}

	res, err := h.recipeService.AddInstruction(c.UserContext(), recipeID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedAddInstruction, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *recipeHandler) EditInstruction(c *fiber.Ctx) error {
	id, err := paramID(c, "id", domain.MessageInvalidInstructionID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedEditInstruction, err)
	}
	req := new(domain.EditInstructionRequest)
	if err := parseBody(c, req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedEditInstruction, err)
	}

	res, err := h.recipeService.EditInstruction(c.UserContext(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedEditInstruction, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) DeleteInstruction(c *fiber.Ctx) error {
	id, err := paramID(c, "id", domain.MessageInvalidInstructionID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedDeleteInstruction, err)
	}

	if err := h.recipeService.DeleteInstruction(c.UserContext(), id); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedDeleteInstruction, err)
	}
	return presenters.SuccessResponse(c, domain.DeletedResponse{ID: id}, fiber.StatusOK)
}
