package digest

import (
	"context"

	"recipe-box/entities"

	"gorm.io/gorm"
)

type (
	DigestRepository interface {
		// CreateRecipeTree writes the recipe and all of its children atomically.
		// Children get their recipe id stamped from the inserted recipe.
		CreateRecipeTree(ctx context.Context, recipe *entities.Recipe, ingredients []entities.Ingredient, instructions []entities.Instruction) error
	}

	digestRepository struct {
		db *gorm.DB
	}
)

func NewDigestRepository(db *gorm.DB) DigestRepository {
	return &digestRepository{db: db}
}

func (r *digestRepository) CreateRecipeTree(ctx context.Context, recipe *entities.Recipe, ingredients []entities.Ingredient, instructions []entities.Instruction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}

		for i := range ingredients {
			ingredients[i].RecipeID = recipe.ID
		}
		for i := range instructions {
			instructions[i].RecipeID = recipe.ID
		}

		// The transaction is bound to one connection, so batches run in turn.
		if len(ingredients) > 0 {
			if err := tx.Create(&ingredients).Error; err != nil {
				return err
			}
		}
		if len(instructions) > 0 {
			if err := tx.Create(&instructions).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
