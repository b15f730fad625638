package entities

import "time"

type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null;uniqueIndex:idx_recipe_title" json:"title"`
	Description *string   `json:"description"`
	Servings    int       `gorm:"not null;default:1" json:"servings"`
	Preptime    int       `gorm:"not null" json:"preptime"`
	Cooktime    int       `gorm:"not null" json:"cooktime"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `gorm:"not null;index" json:"created_at"`

	Ingredients  []Ingredient  `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Instructions []Instruction `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Cooks        []Cook        `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Recipe) TableName() string { return "recipe" }

type Ingredient struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"not null" json:"name"`
	Amount   float64 `gorm:"not null" json:"amount"`
	Unit     string  `gorm:"not null" json:"unit"`
	RecipeID uint    `gorm:"column:recipe;not null;index" json:"recipe"`

	CookIngredients []CookIngredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Ingredient) TableName() string { return "ingredient" }

// Instruction steps are unique per (order, recipe).
type Instruction struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Order    int    `gorm:"column:order;not null;uniqueIndex:idx_instruction_order_recipe" json:"order"`
	RecipeID uint   `gorm:"column:recipe;not null;uniqueIndex:idx_instruction_order_recipe" json:"recipe"`
	Content  string `gorm:"not null" json:"content"`

	CookInstructions []CookInstruction `gorm:"foreignKey:InstructionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Instruction) TableName() string { return "instruction" }
