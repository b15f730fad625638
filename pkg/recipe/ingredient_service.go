package recipe

import (
	"context"
	"strings"

	"recipe-box/domain"
	"recipe-box/entities"
	"recipe-box/internal/utils"
)

func (s *recipeService) AddIngredient(ctx context.Context, recipeID uint, req domain.AddIngredientRequest) (domain.Ingredient, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Unit = strings.TrimSpace(req.Unit)
	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return domain.Ingredient{}, err
	}

	ingredient := entities.Ingredient{
		Name:     req.Name,
		Amount:   *req.Amount,
		Unit:     req.Unit,
		RecipeID: recipeID,
	}
	if err := s.recipeRepository.CreateIngredient(ctx, &ingredient); err != nil {
		return domain.Ingredient{}, translateError(err, domain.ErrRecipeNotFound, "")
	}
	return toIngredient(&ingredient), nil
}

func (s *recipeService) EditIngredient(ctx context.Context, id uint, req domain.EditIngredientRequest) (domain.Ingredient, error) {
	req.Name = trimmed(req.Name)
	req.Unit = trimmed(req.Unit)
	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return domain.Ingredient{}, err
	}

	fields := make(map[string]any)
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if req.Unit != nil {
		fields["unit"] = *req.Unit
	}
	if len(fields) == 0 {
		return domain.Ingredient{}, domain.NewValidationError("%s", domain.MessageNothingToUpdate)
	}

	affected, err := s.recipeRepository.UpdateIngredient(ctx, id, fields)
	if err != nil {
		return domain.Ingredient{}, translateError(err, domain.ErrIngredientNotFound, "")
	}
	if affected == 0 {
		return domain.Ingredient{}, domain.ErrIngredientNotFound
	}

	ingredient, err := s.recipeRepository.GetIngredientByID(ctx, id)
	if err != nil {
		return domain.Ingredient{}, translateError(err, domain.ErrIngredientNotFound, "")
	}
	return toIngredient(ingredient), nil
}

func (s *recipeService) DeleteIngredient(ctx context.Context, id uint) error {
	return s.recipeRepository.DeleteIngredient(ctx, id)
}

// trimmed strips surrounding whitespace from an optional field, keeping nil
// as "not provided".
func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

func toIngredient(i *entities.Ingredient) domain.Ingredient {
	return domain.Ingredient{
		ID:       i.ID,
		Name:     i.Name,
		Amount:   i.Amount,
		Unit:     i.Unit,
		RecipeID: i.RecipeID,
	}
}
