package recipe

import (
	"math/rand"
	"testing"
	"time"

	"recipe-box/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crossRows(recipe domain.Recipe, ingredients []domain.Ingredient, instructions []domain.Instruction) []JoinRow {
	var rows []JoinRow
	for i := range ingredients {
		for j := range instructions {
			rows = append(rows, JoinRow{Recipe: recipe, Ingredient: &ingredients[i], Instruction: &instructions[j]})
		}
	}
	return rows
}

func sampleRecipe() (domain.Recipe, []domain.Ingredient, []domain.Instruction) {
	recipe := domain.Recipe{ID: 7, Title: "Pancakes", Servings: 2, Preptime: 5, Cooktime: 10, CreatedAt: time.Now()}
	ingredients := []domain.Ingredient{
		{ID: 1, Name: "flour", Amount: 1.5, Unit: "cup", RecipeID: 7},
		{ID: 2, Name: "milk", Amount: 1, Unit: "cup", RecipeID: 7},
		{ID: 3, Name: "egg", Amount: 1, Unit: "whole", RecipeID: 7},
	}
	instructions := []domain.Instruction{
		{ID: 10, Order: 2, Content: "Whisk", RecipeID: 7},
		{ID: 11, Order: 1, Content: "Measure", RecipeID: 7},
		{ID: 12, Order: 4, Content: "Serve", RecipeID: 7},
		{ID: 13, Order: 3, Content: "Fry", RecipeID: 7},
	}
	return recipe, ingredients, instructions
}

func TestGroupRowsCrossProduct(t *testing.T) {
	recipe, ingredients, instructions := sampleRecipe()
	rows := crossRows(recipe, ingredients, instructions)
	require.Len(t, rows, 12)

	detail, err := GroupRows(rows)
	require.NoError(t, err)

	assert.Equal(t, recipe, detail.Recipe)
	assert.Equal(t, ingredients, detail.Ingredients)
	require.Len(t, detail.Instructions, 4)
	for i, ins := range detail.Instructions {
		assert.Equal(t, i+1, ins.Order)
	}
}

func TestGroupRowsIndependentOfRowOrder(t *testing.T) {
	recipe, ingredients, instructions := sampleRecipe()
	rows := crossRows(recipe, ingredients, instructions)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		rng.Shuffle(len(rows), func(a, b int) { rows[a], rows[b] = rows[b], rows[a] })

		detail, err := GroupRows(rows)
		require.NoError(t, err)
		assert.ElementsMatch(t, ingredients, detail.Ingredients)
		require.Len(t, detail.Instructions, len(instructions))
		assert.Equal(t, []int{1, 2, 3, 4}, []int{
			detail.Instructions[0].Order, detail.Instructions[1].Order,
			detail.Instructions[2].Order, detail.Instructions[3].Order,
		})
	}
}

func TestGroupRowsOneAxisEmpty(t *testing.T) {
	recipe, ingredients, instructions := sampleRecipe()

	t.Run("no instructions", func(t *testing.T) {
		rows := make([]JoinRow, 0, len(ingredients))
		for i := range ingredients {
			rows = append(rows, JoinRow{Recipe: recipe, Ingredient: &ingredients[i]})
		}
		detail, err := GroupRows(rows)
		require.NoError(t, err)
		assert.Len(t, detail.Ingredients, 3)
		assert.Empty(t, detail.Instructions)
	})

	t.Run("no ingredients", func(t *testing.T) {
		rows := make([]JoinRow, 0, len(instructions))
		for i := range instructions {
			rows = append(rows, JoinRow{Recipe: recipe, Instruction: &instructions[i]})
		}
		detail, err := GroupRows(rows)
		require.NoError(t, err)
		assert.Empty(t, detail.Ingredients)
		assert.Len(t, detail.Instructions, 4)
	})

	t.Run("bare recipe", func(t *testing.T) {
		detail, err := GroupRows([]JoinRow{{Recipe: recipe}})
		require.NoError(t, err)
		assert.Equal(t, recipe, detail.Recipe)
		assert.NotNil(t, detail.Ingredients)
		assert.NotNil(t, detail.Instructions)
		assert.Empty(t, detail.Ingredients)
		assert.Empty(t, detail.Instructions)
	})
}

func TestGroupRowsNoRows(t *testing.T) {
	_, err := GroupRows(nil)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}
