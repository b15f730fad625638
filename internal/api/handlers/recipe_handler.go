package handlers

import (
	"recipe-box/domain"
	"recipe-box/internal/api/presenters"
	"recipe-box/pkg/recipe"

	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		ListRecipes(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		GetRecipe(c *fiber.Ctx) error
		UpdateNotes(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		ShareRecipe(c *fiber.Ctx) error

		AddIngredient(c *fiber.Ctx) error
		EditIngredient(c *fiber.Ctx) error
		DeleteIngredient(c *fiber.Ctx) error

		AddInstruction(c *fiber.Ctx) error
		EditInstruction(c *fiber.Ctx) error
		DeleteInstruction(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
	}
}

func (h *recipeHandler) ListRecipes(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	res, err := h.recipeService.ListRecipes(c.UserContext(), page)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetRecipes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)
	if err := parseBody(c, req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCreateRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *recipeHandler) GetRecipe(c *fiber.Ctx) error {
	id, err := paramID(c, "id", domain.MessageInvalidRecipeID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetRecipe, err)
	}

	res, err := h.recipeService.GetRecipe(c.UserContext(), id)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) UpdateNotes(c *fiber.Ctx) error {
	id, err := paramID(c, "id", domain.MessageInvalidRecipeID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateNotes, err)
	}
	req := new(domain.UpdateNotesRequest)
	if err := parseBody(c, req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateNotes, err)
	}

	res, err := h.recipeService.UpdateRecipeNotes(c.UserContext(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateNotes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := paramID(c, "id", domain.MessageInvalidRecipeID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedDeleteRecipe, err)
	}

	if err := h.recipeService.DeleteRecipe(c.UserContext(), id); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedDeleteRecipe, err)
	}
	return presenters.SuccessResponse(c, domain.DeletedResponse{ID: id}, fiber.StatusOK)
}

func (h *recipeHandler) ShareRecipe(c *fiber.Ctx) error {
	id, err := paramID(c, "id", domain.MessageInvalidRecipeID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedShareRecipe, err)
	}
	req := new(domain.ShareRecipeRequest)
	if err := parseBody(c, req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedShareRecipe, err)
	}

	if err := h.recipeService.ShareRecipe(c.UserContext(), id, *req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedShareRecipe, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"id": id, "email": req.Email}, fiber.StatusOK)
}
