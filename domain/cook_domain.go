package domain

import "time"

var (
	MessageFailedStartCook        = "Failed to start cook"
	MessageFailedGetCook          = "Failed to retrieve cook"
	MessageFailedGetCooks         = "Failed to retrieve cooks"
	MessageFailedCheckIngredient  = "Failed to update ingredient check"
	MessageFailedCheckInstruction = "Failed to update instruction check"
	MessageFailedUpdateCookNotes  = "Failed to update cook notes"
	MessageFailedDeleteCook       = "Failed to delete cook"

	MessageInvalidCookID = "Invalid cook ID provided"

	ErrCookNotFound            = NewNotFoundError("cook")
	ErrCookIngredientNotFound  = NewNotFoundError("cook ingredient")
	ErrCookInstructionNotFound = NewNotFoundError("cook instruction")
)

type (
	Cook struct {
		ID        uint      `json:"id"`
		CreatedAt time.Time `json:"created_at"`
		CreatedBy *string   `json:"created_by"`
		RecipeID  uint      `json:"recipe"`
		Notes     *string   `json:"notes"`
	}

	CookIngredient struct {
		Ingredient
		Checked bool `json:"checked"`
	}

	CookInstruction struct {
		Instruction
		Checked bool `json:"checked"`
	}

	CookDetail struct {
		Cook         Cook              `json:"cook"`
		Ingredients  []CookIngredient  `json:"ingredients"`
		Instructions []CookInstruction `json:"instructions"`
	}

	StartCookRequest struct {
		Notes *string `json:"notes"`
	}

	CheckItemRequest struct {
		Checked *bool `json:"checked" validate:"required"`
	}

	UpdateCookNotesRequest struct {
		Notes *string `json:"notes"`
	}
)
