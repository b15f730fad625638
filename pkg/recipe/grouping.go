package recipe

import (
	"sort"

	"recipe-box/domain"
)

// JoinRow is one row of recipe LEFT JOIN ingredient LEFT JOIN instruction.
// Either side may be absent when the recipe has no children on that axis.
type JoinRow struct {
	Recipe      domain.Recipe
	Ingredient  *domain.Ingredient
	Instruction *domain.Instruction
}

// GroupRows folds the cartesian rows of a single recipe back into one recipe
// with distinct ingredients and instructions. Each row is checked on both axes
// independently; a row carries a new ingredient and a new instruction at the
// same time in the common case. Ingredients keep their encounter order and
// instructions are sorted by step order.
func GroupRows(rows []JoinRow) (domain.RecipeDetail, error) {
	if len(rows) == 0 {
		return domain.RecipeDetail{}, domain.ErrRecipeNotFound
	}

	detail := domain.RecipeDetail{
		Recipe:       rows[0].Recipe,
		Ingredients:  []domain.Ingredient{},
		Instructions: []domain.Instruction{},
	}
	seenIngredients := make(map[uint]struct{})
	seenInstructions := make(map[uint]struct{})

	for _, row := range rows {
		if row.Ingredient != nil {
			if _, ok := seenIngredients[row.Ingredient.ID]; !ok {
				seenIngredients[row.Ingredient.ID] = struct{}{}
				detail.Ingredients = append(detail.Ingredients, *row.Ingredient)
			}
		}
		if row.Instruction != nil {
			if _, ok := seenInstructions[row.Instruction.ID]; !ok {
				seenInstructions[row.Instruction.ID] = struct{}{}
				detail.Instructions = append(detail.Instructions, *row.Instruction)
			}
		}
	}

	sort.SliceStable(detail.Instructions, func(i, j int) bool {
		return detail.Instructions[i].Order < detail.Instructions[j].Order
	})
	return detail, nil
}
