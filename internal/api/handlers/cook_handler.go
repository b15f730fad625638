package handlers

import (
	"recipe-box/domain"
	"recipe-box/internal/api/presenters"
	"recipe-box/pkg/cook"

	"github.com/gofiber/fiber/v2"
)

type (
	CookHandler interface {
		StartCook(c *fiber.Ctx) error
		ListCooks(c *fiber.Ctx) error
		GetCook(c *fiber.Ctx) error
		UpdateCookNotes(c *fiber.Ctx) error
		DeleteCook(c *fiber.Ctx) error
		CheckIngredient(c *fiber.Ctx) error
		CheckInstruction(c *fiber.Ctx) error
	}

	cookHandler struct {
		cookService cook.CookService
	}
)

func NewCookHandler(cookService cook.CookService) CookHandler {
	return &cookHandler{
		cookService: cookService,
	}
}

func (h *cookHandler) StartCook(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id", domain.MessageInvalidRecipeID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedStartCook, err)
	}
	req := new(domain.StartCookRequest)
	if len(c.Body()) > 0 {
		if err := parseBody(c, req); err != nil {
			return presenters.ErrorResponse(c, domain.MessageFailedStartCook, err)
		}
	}

	res, err := h.cookService.StartCook(c.UserContext(), recipeID, *req, currentUser(c))
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedStartCook, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *cookHandler) ListCooks(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "id", domain.MessageInvalidRecipeID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetCooks, err)
	}

	res, err := h.cookService.ListCooks(c.UserContext(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetCooks, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *cookHandler) GetCook(c *fiber.Ctx) error {
	id, err := paramID(c, "id", domain.MessageInvalidCookID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetCook, err)
	}

	res, err := h.cookService.GetCook(c.UserContext(), id)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetCook, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *cookHandler) UpdateCookNotes(c *fiber.Ctx) error {
	id, err := paramID(c, "id", domain.MessageInvalidCookID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateCookNotes, err)
	}
	req := new(domain.UpdateCookNotesRequest)
	if err := parseBody(c, req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateCookNotes, err)
	}

	res, err := h.cookService.UpdateCookNotes(c.UserContext(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateCookNotes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *cookHandler) DeleteCook(c *fiber.Ctx) error {
	id, err := paramID(c, "id", domain.MessageInvalidCookID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedDeleteCook, err)
	}

	if err := h.cookService.DeleteCook(c.UserContext(), id); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedDeleteCook, err)
	}
	return presenters.SuccessResponse(c, domain.DeletedResponse{ID: id}, fiber.StatusOK)
}

func (h *cookHandler) CheckIngredient(c *fiber.Ctx) error {
	cookID, err := paramID(c, "id", domain.MessageInvalidCookID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCheckIngredient, err)
	}
	ingredientID, err := paramID(c, "ingredientId", domain.MessageInvalidIngredientID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCheckIngredient, err)
	}
	req := new(domain.CheckItemRequest)
	if err := parseBody(c, req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCheckIngredient, err)
	}

	res, err := h.cookService.CheckIngredient(c.UserContext(), cookID, ingredientID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCheckIngredient, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *cookHandler) CheckInstruction(c *fiber.Ctx) error {
	cookID, err := paramID(c, "id", domain.MessageInvalidCookID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCheckInstruction, err)
	}
	instructionID, err := paramID(c, "instructionId", domain.MessageInvalidInstructionID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCheckInstruction, err)
	}
	req := new(domain.CheckItemRequest)
	if err := parseBody(c, req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCheckInstruction, err)
	}

	res, err := h.cookService.CheckInstruction(c.UserContext(), cookID, instructionID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCheckInstruction, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
