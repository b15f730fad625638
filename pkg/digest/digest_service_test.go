package digest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"recipe-box/domain"
	"recipe-box/entities"
	"recipe-box/internal/testutil"
	"recipe-box/internal/utils"
	"recipe-box/pkg/recipe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func payload(title string) domain.DigestRequest {
	return domain.DigestRequest{
		Title:    title,
		Servings: testutil.Ptr(4),
		Preptime: testutil.Ptr(15),
		Cooktime: testutil.Ptr(12),
		Ingredients: []domain.DigestIngredient{
			{Name: "all-purpose flour", Amount: testutil.Ptr(2.25), Unit: "cup"},
			{Name: "large eggs", Amount: testutil.Ptr(2.0), Unit: "whole"},
		},
		Instructions: []domain.DigestInstruction{
			{Order: testutil.Ptr(1), Content: "Preheat oven to 375F."},
			{Order: testutil.Ptr(2), Content: "Cream butter and sugar."},
			{Order: testutil.Ptr(3), Content: "Bake 10 minutes."},
		},
	}
}

func countRows(t *testing.T, db *gorm.DB) (recipes, ingredients, instructions int64) {
	t.Helper()
	require.NoError(t, db.Model(&entities.Recipe{}).Count(&recipes).Error)
	require.NoError(t, db.Model(&entities.Ingredient{}).Count(&ingredients).Error)
	require.NoError(t, db.Model(&entities.Instruction{}).Count(&instructions).Error)
	return
}

func TestDigestRecipeWritesWholeTree(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewDigestService(NewDigestRepository(db), utils.InitValidator())

	created, err := svc.DigestRecipe(context.Background(), payload("Cookies"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	detail, err := recipe.NewRecipeService(recipe.NewRecipeRepository(db), utils.InitValidator(), nil).
		GetRecipe(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cookies", detail.Recipe.Title)
	assert.Len(t, detail.Ingredients, 2)
	require.Len(t, detail.Instructions, 3)
	for _, ins := range detail.Instructions {
		assert.Equal(t, created.ID, ins.RecipeID)
	}
}

func TestDigestRecipeRollsBackOnChildFailure(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_instructions", func(tx *gorm.DB) {
		if tx.Statement.Table == "instruction" {
			_ = tx.AddError(errors.New("forced instruction failure"))
		}
	}))
	svc := NewDigestService(NewDigestRepository(db), utils.InitValidator())

	_, err := svc.DigestRecipe(context.Background(), payload("Doomed"))
	require.Error(t, err)
	var txErr *domain.TransactionError
	assert.True(t, errors.As(err, &txErr))

	res := domain.Envelope(domain.Recipe{}, err, domain.MessageFailedDigestRecipe)
	assert.False(t, res.Success)
	assert.Equal(t, domain.MessageFailedDigestRecipe, res.Message)

	recipes, ingredients, instructions := countRows(t, db)
	assert.Zero(t, recipes)
	assert.Zero(t, ingredients)
	assert.Zero(t, instructions)
}

func TestDigestRecipeDuplicateTitleLeavesNothingBehind(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewDigestService(NewDigestRepository(db), utils.InitValidator())
	ctx := context.Background()

	_, err := svc.DigestRecipe(ctx, payload("Brownies"))
	require.NoError(t, err)

	_, err = svc.DigestRecipe(ctx, payload("Brownies"))
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))

	recipes, ingredients, instructions := countRows(t, db)
	assert.Equal(t, int64(1), recipes)
	assert.Equal(t, int64(2), ingredients)
	assert.Equal(t, int64(3), instructions)
}

func TestDigestRecipeValidation(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewDigestService(NewDigestRepository(db), utils.InitValidator())

	cases := map[string]func(p *domain.DigestRequest){
		"empty ingredients":         func(p *domain.DigestRequest) { p.Ingredients = []domain.DigestIngredient{} },
		"missing instructions":      func(p *domain.DigestRequest) { p.Instructions = nil },
		"ingredient without unit":   func(p *domain.DigestRequest) { p.Ingredients[1].Unit = " " },
		"ingredient without amount": func(p *domain.DigestRequest) { p.Ingredients[0].Amount = nil },
		"instruction order zero":    func(p *domain.DigestRequest) { p.Instructions[0].Order = testutil.Ptr(0) },
		"duplicate orders":          func(p *domain.DigestRequest) { p.Instructions[2].Order = testutil.Ptr(1) },
		"missing servings":          func(p *domain.DigestRequest) { p.Servings = nil },
		"blank instruction":         func(p *domain.DigestRequest) { p.Instructions[1].Content = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := payload("Invalid " + name)
			mutate(&p)
			_, err := svc.DigestRecipe(context.Background(), p)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err), err.Error())
		})
	}

	recipes, _, _ := countRows(t, db)
	assert.Zero(t, recipes)
}

func TestCreateRecipeTreeInsertsBatchesInTurn(t *testing.T) {
	db := testutil.NewDB(t)

	var (
		mu       sync.Mutex
		inFlight int
		peak     int
		tables   []string
	)
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:enter", func(d *gorm.DB) {
		mu.Lock()
		defer mu.Unlock()
		inFlight++
		peak = max(peak, inFlight)
		tables = append(tables, d.Statement.Table)
	}))
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:leave", func(*gorm.DB) {
		mu.Lock()
		defer mu.Unlock()
		inFlight--
	}))

	root := entities.Recipe{Title: "Flatbread", Servings: 2, Preptime: 5, Cooktime: 8}
	ingredients := []entities.Ingredient{
		{Name: "flour", Amount: 2, Unit: "cup"},
		{Name: "water", Amount: 0.75, Unit: "cup"},
	}
	instructions := []entities.Instruction{
		{Order: 1, Content: "Mix into a dough."},
		{Order: 2, Content: "Cook in a dry pan."},
	}

	require.NoError(t, NewDigestRepository(db).CreateRecipeTree(context.Background(), &root, ingredients, instructions))

	assert.Equal(t, 1, peak, "inserts inside the transaction must not overlap")
	assert.Equal(t, []string{"recipe", "ingredient", "instruction"}, tables)

	recipes, ingredientCount, instructionCount := countRows(t, db)
	assert.EqualValues(t, 1, recipes)
	assert.EqualValues(t, 2, ingredientCount)
	assert.EqualValues(t, 2, instructionCount)
	for _, ing := range ingredients {
		assert.Equal(t, root.ID, ing.RecipeID)
	}
}
