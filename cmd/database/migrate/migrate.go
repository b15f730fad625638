package migration

import (
	"fmt"

	"recipe-box/entities"
	"recipe-box/internal/utils"

	"gorm.io/gorm"
)

// Migrate creates or updates the six recipe tables. Parents are migrated
// before children so the cascading foreign keys can be attached.
func Migrate(db *gorm.DB) error {
	models := []struct {
		name  string
		model any
	}{
		{"recipe", &entities.Recipe{}},
		{"ingredient", &entities.Ingredient{}},
		{"instruction", &entities.Instruction{}},
		{"cook", &entities.Cook{}},
		{"cook_ingredient", &entities.CookIngredient{}},
		{"cook_instruction", &entities.CookInstruction{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("error migrating %s table: %w", m.name, err)
		}
	}

	utils.Logger.Info("database migration complete")
	return nil
}
