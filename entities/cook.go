package entities

import "time"

// Cook is one run through a recipe with its own checklist state.
type Cook struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	CreatedBy *string   `json:"created_by"`
	RecipeID  uint      `gorm:"column:recipe;not null;index" json:"recipe"`
	Notes     *string   `json:"notes"`

	CookIngredients  []CookIngredient  `gorm:"foreignKey:CookID;constraint:OnDelete:CASCADE" json:"-"`
	CookInstructions []CookInstruction `gorm:"foreignKey:CookID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Cook) TableName() string { return "cook" }

type CookIngredient struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	CookID       uint `gorm:"column:cook;not null;uniqueIndex:idx_cook_ingredient" json:"cook"`
	IngredientID uint `gorm:"column:ingredient;not null;uniqueIndex:idx_cook_ingredient" json:"ingredient"`
	Checked      bool `gorm:"not null;default:false" json:"checked"`
}

func (CookIngredient) TableName() string { return "cook_ingredient" }

type CookInstruction struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	CookID        uint `gorm:"column:cook;not null;uniqueIndex:idx_cook_instruction" json:"cook"`
	InstructionID uint `gorm:"column:instruction;not null;uniqueIndex:idx_cook_instruction" json:"instruction"`
	Checked       bool `gorm:"not null;default:false" json:"checked"`
}

func (CookInstruction) TableName() string { return "cook_instruction" }
