package cook

import (
	"context"

	"recipe-box/domain"
	"recipe-box/entities"

	"gorm.io/gorm"
)

type (
	CookRepository interface {
		// CreateCook inserts the cook together with one unchecked checklist row
		// per ingredient and instruction the recipe has right now.
		CreateCook(ctx context.Context, cook *entities.Cook) error
		GetCookByID(ctx context.Context, id uint) (*entities.Cook, error)
		GetCooksByRecipe(ctx context.Context, recipeID uint) ([]*entities.Cook, error)
		GetCookIngredients(ctx context.Context, cookID uint) ([]domain.CookIngredient, error)
		GetCookInstructions(ctx context.Context, cookID uint) ([]domain.CookInstruction, error)
		SetIngredientChecked(ctx context.Context, cookID, ingredientID uint, checked bool) (int64, error)
		SetInstructionChecked(ctx context.Context, cookID, instructionID uint, checked bool) (int64, error)
		UpdateCookNotes(ctx context.Context, id uint, notes *string) (int64, error)
		DeleteCook(ctx context.Context, id uint) error
	}

	cookRepository struct {
		db *gorm.DB
	}

	cookIngredientRow struct {
		ID       uint
		Name     string
		Amount   float64
		Unit     string
		RecipeID uint
		Checked  bool
	}

	cookInstructionRow struct {
		ID        uint
		StepOrder int
		RecipeID  uint
		Content   string
		Checked   bool
	}
)

func NewCookRepository(db *gorm.DB) CookRepository {
	return &cookRepository{db: db}
}

func (r *cookRepository) CreateCook(ctx context.Context, cook *entities.Cook) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe entities.Recipe
		if err := tx.Select("id").Where("id = ?", cook.RecipeID).First(&recipe).Error; err != nil {
			return err
		}

		if err := tx.Create(cook).Error; err != nil {
			return err
		}

		var ingredientIDs []uint
		if err := tx.Model(&entities.Ingredient{}).Where("recipe = ?", cook.RecipeID).Order("id").Pluck("id", &ingredientIDs).Error; err != nil {
			return err
		}
		if len(ingredientIDs) > 0 {
			rows := make([]entities.CookIngredient, 0, len(ingredientIDs))
			for _, id := range ingredientIDs {
				rows = append(rows, entities.CookIngredient{CookID: cook.ID, IngredientID: id})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		var instructionIDs []uint
		if err := tx.Model(&entities.Instruction{}).Where("recipe = ?", cook.RecipeID).Order("id").Pluck("id", &instructionIDs).Error; err != nil {
			return err
		}
		if len(instructionIDs) > 0 {
			rows := make([]entities.CookInstruction, 0, len(instructionIDs))
			for _, id := range instructionIDs {
				rows = append(rows, entities.CookInstruction{CookID: cook.ID, InstructionID: id})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *cookRepository) GetCookByID(ctx context.Context, id uint) (*entities.Cook, error) {
	var cook entities.Cook
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cook).Error; err != nil {
		return nil, err
	}
	return &cook, nil
}

func (r *cookRepository) GetCooksByRecipe(ctx context.Context, recipeID uint) ([]*entities.Cook, error) {
	var cooks []*entities.Cook
	if err := r.db.WithContext(ctx).
		Where("recipe = ?", recipeID).
		Order("created_at desc, id desc").
		Find(&cooks).Error; err != nil {
		return nil, err
	}
	return cooks, nil
}

func (r *cookRepository) GetCookIngredients(ctx context.Context, cookID uint) ([]domain.CookIngredient, error) {
	var rows []cookIngredientRow
	err := r.db.WithContext(ctx).
		Table("cook_ingredient").
		Select("ingredient.id AS id, ingredient.name AS name, ingredient.amount AS amount, ingredient.unit AS unit, ingredient.recipe AS recipe_id, cook_ingredient.checked AS checked").
		Joins("JOIN ingredient ON ingredient.id = cook_ingredient.ingredient").
		Where("cook_ingredient.cook = ?", cookID).
		Order("ingredient.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]domain.CookIngredient, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.CookIngredient{
			Ingredient: domain.Ingredient{
				ID:       row.ID,
				Name:     row.Name,
				Amount:   row.Amount,
				Unit:     row.Unit,
				RecipeID: row.RecipeID,
			},
			Checked: row.Checked,
		})
	}
	return items, nil
}

func (r *cookRepository) GetCookInstructions(ctx context.Context, cookID uint) ([]domain.CookInstruction, error) {
	var rows []cookInstructionRow
	err := r.db.WithContext(ctx).
		Table("cook_instruction").
		Select(`instruction.id AS id, instruction."order" AS step_order, instruction.recipe AS recipe_id, instruction.content AS content, cook_instruction.checked AS checked`).
		Joins("JOIN instruction ON instruction.id = cook_instruction.instruction").
		Where("cook_instruction.cook = ?", cookID).
		Order(`instruction."order"`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]domain.CookInstruction, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.CookInstruction{
			Instruction: domain.Instruction{
				ID:       row.ID,
				Order:    row.StepOrder,
				RecipeID: row.RecipeID,
				Content:  row.Content,
			},
			Checked: row.Checked,
		})
	}
	return items, nil
}

func (r *cookRepository) SetIngredientChecked(ctx context.Context, cookID, ingredientID uint, checked bool) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.CookIngredient{}).
		Where("cook = ? AND ingredient = ?", cookID, ingredientID).
		Update("checked", checked)
	return res.RowsAffected, res.Error
}

func (r *cookRepository) SetInstructionChecked(ctx context.Context, cookID, instructionID uint, checked bool) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.CookInstruction{}).
		Where("cook = ? AND instruction = ?", cookID, instructionID).
		Update("checked", checked)
	return res.RowsAffected, res.Error
}

func (r *cookRepository) UpdateCookNotes(ctx context.Context, id uint, notes *string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Cook{}).
		Where("id = ?", id).
		Update("notes", notes)
	return res.RowsAffected, res.Error
}

func (r *cookRepository) DeleteCook(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.Cook{}, id).Error
}
