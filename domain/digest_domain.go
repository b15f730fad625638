package domain

var (
	MessageFailedDigestRecipe = "Failed to Digest Recipe!"
)

type (
	// DigestRequest is a full recipe with children, as pasted by a user or
	// produced by the extraction model.
	DigestRequest struct {
		Title        string              `json:"title" validate:"required"`
		Description  *string             `json:"description"`
		Servings     *int                `json:"servings" validate:"required,min=1"`
		Preptime     *int                `json:"preptime" validate:"required,min=0"`
		Cooktime     *int                `json:"cooktime" validate:"required,min=0"`
		Notes        *string             `json:"notes"`
		Ingredients  []DigestIngredient  `json:"ingredients" validate:"required,min=1,dive"`
		Instructions []DigestInstruction `json:"instructions" validate:"required,min=1,dive"`
	}

	DigestIngredient struct {
		Name   string   `json:"name" validate:"required"`
		Amount *float64 `json:"amount" validate:"required,min=0"`
		Unit   string   `json:"unit" validate:"required"`
	}

	DigestInstruction struct {
		Order   *int   `json:"order" validate:"required,min=1"`
		Content string `json:"content" validate:"required"`
	}
)
