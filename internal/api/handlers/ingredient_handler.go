package handlers

import (
	"recipe-box/domain"
	"recipe-box/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
)

func (h *recipeHandler) AddIngredient(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id", domain.MessageInvalidRecipeID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedAddIngredient, err)
	}
	req := new(domain.AddIngredientRequest)
	if err := parseBody(c, req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedAddIngredient, err)
	}

	res, err := h.recipeService.AddIngredient(c.UserContext(), recipeID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedAddIngredient, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *recipeHandler) EditIngredient(c *fiber.Ctx) error {
	id, err := paramID(c, "id", domain.MessageInvalidIngredientID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedEditIngredient, err)
	}
	req := new(domain.EditIngredientRequest)
	if err := parseBody(c, req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedEditIngredient, err)
	}

	res, err := h.recipeService.EditIngredient(c.UserContext(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedEditIngredient, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) DeleteIngredient(c *fiber.Ctx) error {
	id, err := paramID(c, "id", domain.MessageInvalidIngredientID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedDeleteIngredient, err)
	}

	if err := h.recipeService.DeleteIngredient(c.UserContext(), id); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedDeleteIngredient, err)
	}
	return presenters.SuccessResponse(c, domain.DeletedResponse{ID: id}, fiber.StatusOK)
}
