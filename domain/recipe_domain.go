package domain

import "time"

var (
	MessageFailedCreateRecipe      = "Failed to create recipe"
	MessageFailedGetRecipe         = "Failed to retrieve recipe"
	MessageFailedGetRecipes        = "Failed to retrieve recipes"
	MessageFailedUpdateNotes       = "Failed to update notes"
	MessageFailedDeleteRecipe      = "Failed to delete recipe"
	MessageFailedShareRecipe       = "Failed to share recipe"
	MessageFailedAddIngredient     = "Failed to add ingredient"
	MessageFailedEditIngredient    = "Failed to edit ingredient"
	MessageFailedDeleteIngredient  = "Failed to delete ingredient"
	MessageFailedAddInstruction    = "Failed to add instruction"
	MessageFailedEditInstruction   = "Failed to edit instruction"
	MessageFailedDeleteInstruction = "Failed to delete instruction"

	MessageInvalidRecipeID      = "Invalid recipe ID provided"
	MessageInvalidIngredientID  = "Invalid ingredient ID provided"
	MessageInvalidInstructionID = "Invalid instruction ID provided"
	MessageMissingFields        = "Missing required fields"
	MessageNothingToUpdate      = "No fields to update"

	ErrRecipeNotFound      = NewNotFoundError("recipe")
	ErrIngredientNotFound  = NewNotFoundError("ingredient")
	ErrInstructionNotFound = NewNotFoundError("instruction")
)

// Units suggested to the extraction model and to clients. Unit is free text in
// storage; this list is advisory.
var CommonUnits = []string{
	"cup", "cups", "tbsp", "tsp", "oz", "lb", "g", "kg", "ml", "l", "pinch", "whole", "other",
}

type (
	Recipe struct {
		ID          uint      `json:"id"`
		Title       string    `json:"title"`
		Description *string   `json:"description"`
		Servings    int       `json:"servings"`
		Preptime    int       `json:"preptime"`
		Cooktime    int       `json:"cooktime"`
		Notes       *string   `json:"notes"`
		CreatedAt   time.Time `json:"created_at"`
	}

	Ingredient struct {
		ID       uint    `json:"id"`
		Name     string  `json:"name"`
		Amount   float64 `json:"amount"`
		Unit     string  `json:"unit"`
		RecipeID uint    `json:"recipe"`
	}

	Instruction struct {
		ID       uint   `json:"id"`
		Order    int    `json:"order"`
		RecipeID uint   `json:"recipe"`
		Content  string `json:"content"`
	}

	RecipeDetail struct {
		Recipe       Recipe        `json:"recipe"`
		Ingredients  []Ingredient  `json:"ingredients"`
		Instructions []Instruction `json:"instructions"`
	}

	RecipePage struct {
		Recipes    []Recipe `json:"recipes"`
		Total      int64    `json:"total"`
		TotalPages int      `json:"total_pages"`
		Page       int      `json:"page"`
		PageSize   int      `json:"page_size"`
	}

	CreateRecipeRequest struct {
		Title       string  `json:"title" validate:"required"`
		Description *string `json:"description"`
		Servings    *int    `json:"servings" validate:"required,min=1"`
		Preptime    *int    `json:"preptime" validate:"required,min=0"`
		Cooktime    *int    `json:"cooktime" validate:"required,min=0"`
		Notes       *string `json:"notes"`
	}

	UpdateNotesRequest struct {
		Notes *string `json:"notes"`
	}

	AddIngredientRequest struct {
		Name   string   `json:"name" validate:"required"`
		Amount *float64 `json:"amount" validate:"required,min=0"`
		Unit   string   `json:"unit" validate:"required"`
	}

	EditIngredientRequest struct {
		Name   *string  `json:"name" validate:"omitempty,min=1"`
		Amount *float64 `json:"amount" validate:"omitempty,min=0"`
		Unit   *string  `json:"unit" validate:"omitempty,min=1"`
	}

	AddInstructionRequest struct {
		Order   *int   `json:"order" validate:"required,min=1"`
		Content string `json:"content" validate:"required"`
	}

	EditInstructionRequest struct {
		Order   *int    `json:"order" validate:"omitempty,min=1"`
		Content *string `json:"content" validate:"omitempty,min=1"`
	}

	ShareRecipeRequest struct {
		Email string `json:"email" validate:"required,email"`
	}
)
