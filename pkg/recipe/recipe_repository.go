package recipe

import (
	"context"
	"time"

	"recipe-box/domain"
	"recipe-box/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipeRows(ctx context.Context, id uint) ([]JoinRow, error)
		GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error)
		UpdateRecipeNotes(ctx context.Context, id uint, notes *string) (int64, error)
		DeleteRecipe(ctx context.Context, id uint) error

		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredientByID(ctx context.Context, id uint) (*entities.Ingredient, error)
		UpdateIngredient(ctx context.Context, id uint, fields map[string]any) (int64, error)
		DeleteIngredient(ctx context.Context, id uint) error

		CreateInstruction(ctx context.Context, instruction *entities.Instruction) error
		GetInstructionByID(ctx context.Context, id uint) (*entities.Instruction, error)
		UpdateInstruction(ctx context.Context, id uint, fields map[string]any) (int64, error)
		DeleteInstruction(ctx context.Context, id uint) error
	}

	recipeRepository struct {
		db *gorm.DB
	}

	// recipeJoinRow is the flat shape of one joined row before grouping.
	recipeJoinRow struct {
		RecipeID           uint
		Title              string
		Description        *string
		Servings           int
		Preptime           int
		Cooktime           int
		Notes              *string
		CreatedAt          time.Time
		IngredientID       *uint
		IngredientName     *string
		IngredientAmount   *float64
		IngredientUnit     *string
		InstructionID      *uint
		InstructionOrder   *int
		InstructionContent *string
	}
)

const recipeJoinColumns = `recipe.id AS recipe_id, recipe.title AS title, recipe.description AS description,
recipe.servings AS servings, recipe.preptime AS preptime, recipe.cooktime AS cooktime,
recipe.notes AS notes, recipe.created_at AS created_at,
ingredient.id AS ingredient_id, ingredient.name AS ingredient_name,
ingredient.amount AS ingredient_amount, ingredient.unit AS ingredient_unit,
instruction.id AS instruction_id, instruction."order" AS instruction_order,
instruction.content AS instruction_content`

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeRows(ctx context.Context, id uint) ([]JoinRow, error) {
	var flat []recipeJoinRow
	if err := r.db.WithContext(ctx).
		Table("recipe").
		Select(recipeJoinColumns).
		Joins("LEFT JOIN ingredient ON ingredient.recipe = recipe.id").
		Joins("LEFT JOIN instruction ON instruction.recipe = recipe.id").
		Where("recipe.id = ?", id).
		Scan(&flat).Error; err != nil {
		return nil, err
	}

	rows := make([]JoinRow, 0, len(flat))
	for _, f := range flat {
		row := JoinRow{
			Recipe: domain.Recipe{
				ID:          f.RecipeID,
				Title:       f.Title,
				Description: f.Description,
				Servings:    f.Servings,
				Preptime:    f.Preptime,
				Cooktime:    f.Cooktime,
				Notes:       f.Notes,
				CreatedAt:   f.CreatedAt,
			},
		}
		if f.IngredientID != nil {
			row.Ingredient = &domain.Ingredient{
				ID:       *f.IngredientID,
				Name:     deref(f.IngredientName),
				Amount:   deref(f.IngredientAmount),
				Unit:     deref(f.IngredientUnit),
				RecipeID: f.RecipeID,
			}
		}
		if f.InstructionID != nil {
			row.Instruction = &domain.Instruction{
				ID:       *f.InstructionID,
				Order:    deref(f.InstructionOrder),
				RecipeID: f.RecipeID,
				Content:  deref(f.InstructionContent),
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(limit).
		Order("created_at desc, id desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) UpdateRecipeNotes(ctx context.Context, id uint, notes *string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Update("notes", notes)
	return res.RowsAffected, res.Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.Recipe{}, id).Error
}

func (r *recipeRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *recipeRepository) GetIngredientByID(ctx context.Context, id uint) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *recipeRepository) UpdateIngredient(ctx context.Context, id uint, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Ingredient{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *recipeRepository) DeleteIngredient(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.Ingredient{}, id).Error
}

func (r *recipeRepository) CreateInstruction(ctx context.Context, instruction *entities.Instruction) error {
	return r.db.WithContext(ctx).Create(instruction).Error
}

func (r *recipeRepository) GetInstructionByID(ctx context.Context, id uint) (*entities.Instruction, error) {
	var instruction entities.Instruction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&instruction).Error; err != nil {
		return nil, err
	}
	return &instruction, nil
}

func (r *recipeRepository) UpdateInstruction(ctx context.Context, id uint, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Instruction{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *recipeRepository) DeleteInstruction(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.Instruction{}, id).Error
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
