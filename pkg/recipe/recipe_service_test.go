package recipe

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"recipe-box/domain"
	"recipe-box/entities"
	"recipe-box/internal/testutil"
	"recipe-box/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMailer struct {
	to, subject, body string
	err               error
}

func (m *fakeMailer) SendMail(toEmail, subject, body string) error {
	m.to, m.subject, m.body = toEmail, subject, body
	return m.err
}

func newTestService(t *testing.T) (RecipeService, *gorm.DB, *fakeMailer) {
	t.Helper()
	db := testutil.NewDB(t)
	mailer := &fakeMailer{}
	return NewRecipeService(NewRecipeRepository(db), utils.InitValidator(), mailer), db, mailer
}

func createRecipe(t *testing.T, svc RecipeService, title string) domain.Recipe {
	t.Helper()
	r, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:    title,
		Servings: testutil.Ptr(4),
		Preptime: testutil.Ptr(10),
		Cooktime: testutil.Ptr(20),
	})
	require.NoError(t, err)
	return r
}

func TestCreateAndGetRecipe(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:       "  Shakshuka ",
		Description: testutil.Ptr("Eggs in tomato sauce"),
		Servings:    testutil.Ptr(2),
		Preptime:    testutil.Ptr(0),
		Cooktime:    testutil.Ptr(25),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Shakshuka", created.Title)
	assert.False(t, created.CreatedAt.IsZero())

	for i, name := range []string{"tomato", "egg", "onion"} {
		_, err := svc.AddIngredient(ctx, created.ID, domain.AddIngredientRequest{
			Name: name, Amount: testutil.Ptr(float64(i + 1)), Unit: "whole",
		})
		require.NoError(t, err)
	}
	for _, order := range []int{3, 1, 2} {
		_, err := svc.AddInstruction(ctx, created.ID, domain.AddInstructionRequest{
			Order: testutil.Ptr(order), Content: fmt.Sprintf("step %d", order),
		})
		require.NoError(t, err)
	}

	detail, err := svc.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, detail.Recipe.ID)
	assert.Equal(t, "Eggs in tomato sauce", *detail.Recipe.Description)
	assert.Len(t, detail.Ingredients, 3)
	require.Len(t, detail.Instructions, 3)
	for i, ins := range detail.Instructions {
		assert.Equal(t, i+1, ins.Order)
		assert.Equal(t, created.ID, ins.RecipeID)
	}
}

func TestCreateRecipeValidation(t *testing.T) {
	svc, _, _ := newTestService(t)

	cases := map[string]domain.CreateRecipeRequest{
		"missing title":     {Servings: testutil.Ptr(1), Preptime: testutil.Ptr(1), Cooktime: testutil.Ptr(1)},
		"blank title":       {Title: "   ", Servings: testutil.Ptr(1), Preptime: testutil.Ptr(1), Cooktime: testutil.Ptr(1)},
		"missing servings":  {Title: "x", Preptime: testutil.Ptr(1), Cooktime: testutil.Ptr(1)},
		"zero servings":     {Title: "x", Servings: testutil.Ptr(0), Preptime: testutil.Ptr(1), Cooktime: testutil.Ptr(1)},
		"negative preptime": {Title: "x", Servings: testutil.Ptr(1), Preptime: testutil.Ptr(-1), Cooktime: testutil.Ptr(1)},
		"missing cooktime":  {Title: "x", Servings: testutil.Ptr(1), Preptime: testutil.Ptr(1)},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateRecipe(context.Background(), req)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err), err.Error())
		})
	}
}

func TestCreateRecipeDuplicateTitle(t *testing.T) {
	svc, _, _ := newTestService(t)
	createRecipe(t, svc, "Ramen")

	_, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title: "Ramen", Servings: testutil.Ptr(1), Preptime: testutil.Ptr(1), Cooktime: testutil.Ptr(1),
	})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestGetRecipeNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetRecipe(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestListRecipesPagination(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	for i := 1; i <= 45; i++ {
		createRecipe(t, svc, fmt.Sprintf("Recipe %02d", i))
	}

	seen := make(map[uint]bool)
	for page, want := range map[int]int{1: 20, 2: 20, 3: 5} {
		res, err := svc.ListRecipes(ctx, page)
		require.NoError(t, err)
		assert.Len(t, res.Recipes, want, "page %d", page)
		assert.Equal(t, int64(45), res.Total)
		assert.Equal(t, 3, res.TotalPages)
		assert.Equal(t, page, res.Page)
		assert.Equal(t, domain.RecipePageSize, res.PageSize)
		for _, r := range res.Recipes {
			assert.False(t, seen[r.ID], "recipe %d listed twice", r.ID)
			seen[r.ID] = true
		}
	}
	assert.Len(t, seen, 45)

	first, err := svc.ListRecipes(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Recipe 45", first.Recipes[0].Title)

	for _, page := range []int{0, -3} {
		res, err := svc.ListRecipes(ctx, page)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Page)
		assert.Equal(t, first.Recipes, res.Recipes)
	}

	beyond, err := svc.ListRecipes(ctx, 4)
	require.NoError(t, err)
	assert.Empty(t, beyond.Recipes)
}

func TestUpdateRecipeNotes(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	r := createRecipe(t, svc, "Chili")

	updated, err := svc.UpdateRecipeNotes(ctx, r.ID, domain.UpdateNotesRequest{Notes: testutil.Ptr("double the beans")})
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "double the beans", *updated.Notes)

	cleared, err := svc.UpdateRecipeNotes(ctx, r.ID, domain.UpdateNotesRequest{})
	require.NoError(t, err)
	assert.Nil(t, cleared.Notes)

	_, err = svc.UpdateRecipeNotes(ctx, r.ID+100, domain.UpdateNotesRequest{Notes: testutil.Ptr("x")})
	assert.True(t, domain.IsNotFound(err))
}

func TestIngredientEdits(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	r := createRecipe(t, svc, "Bread")

	ing, err := svc.AddIngredient(ctx, r.ID, domain.AddIngredientRequest{Name: "flour", Amount: testutil.Ptr(500.0), Unit: "g"})
	require.NoError(t, err)

	edited, err := svc.EditIngredient(ctx, ing.ID, domain.EditIngredientRequest{Amount: testutil.Ptr(450.0)})
	require.NoError(t, err)
	assert.Equal(t, 450.0, edited.Amount)
	assert.Equal(t, "flour", edited.Name)
	assert.Equal(t, "g", edited.Unit)

	_, err = svc.EditIngredient(ctx, ing.ID, domain.EditIngredientRequest{})
	assert.True(t, domain.IsValidation(err))

	_, err = svc.EditIngredient(ctx, ing.ID, domain.EditIngredientRequest{Name: testutil.Ptr("   "), Unit: testutil.Ptr("  ")})
	assert.True(t, domain.IsValidation(err))
	_, err = svc.EditIngredient(ctx, ing.ID, domain.EditIngredientRequest{Unit: testutil.Ptr("\t")})
	assert.True(t, domain.IsValidation(err))

	edited, err = svc.EditIngredient(ctx, ing.ID, domain.EditIngredientRequest{Name: testutil.Ptr("  bread flour ")})
	require.NoError(t, err)
	assert.Equal(t, "bread flour", edited.Name)
	assert.Equal(t, "g", edited.Unit)

	_, err = svc.EditIngredient(ctx, ing.ID+50, domain.EditIngredientRequest{Name: testutil.Ptr("rye")})
	assert.True(t, domain.IsNotFound(err))

	_, err = svc.AddIngredient(ctx, r.ID, domain.AddIngredientRequest{Name: "salt", Unit: "tsp"})
	assert.True(t, domain.IsValidation(err))

	_, err = svc.AddIngredient(ctx, r.ID+50, domain.AddIngredientRequest{Name: "salt", Amount: testutil.Ptr(1.0), Unit: "tsp"})
	assert.True(t, domain.IsNotFound(err))
}

func TestInstructionEdits(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	r := createRecipe(t, svc, "Stew")

	ins, err := svc.AddInstruction(ctx, r.ID, domain.AddInstructionRequest{Order: testutil.Ptr(1), Content: "Brown the beef."})
	require.NoError(t, err)

	_, err = svc.EditInstruction(ctx, ins.ID, domain.EditInstructionRequest{Content: testutil.Ptr(" ")})
	assert.True(t, domain.IsValidation(err))

	edited, err := svc.EditInstruction(ctx, ins.ID, domain.EditInstructionRequest{Content: testutil.Ptr(" Sear the beef. ")})
	require.NoError(t, err)
	assert.Equal(t, "Sear the beef.", edited.Content)
	assert.Equal(t, 1, edited.Order)

	_, err = svc.AddInstruction(ctx, r.ID, domain.AddInstructionRequest{Order: testutil.Ptr(2), Content: "   "})
	assert.True(t, domain.IsValidation(err))
}

func TestInstructionOrderUniqueness(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	a := createRecipe(t, svc, "Soup")
	b := createRecipe(t, svc, "Salad")

	_, err := svc.AddInstruction(ctx, a.ID, domain.AddInstructionRequest{Order: testutil.Ptr(1), Content: "Boil water"})
	require.NoError(t, err)

	_, err = svc.AddInstruction(ctx, a.ID, domain.AddInstructionRequest{Order: testutil.Ptr(1), Content: "Chop"})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))

	_, err = svc.AddInstruction(ctx, b.ID, domain.AddInstructionRequest{Order: testutil.Ptr(1), Content: "Chop"})
	assert.NoError(t, err)

	second, err := svc.AddInstruction(ctx, a.ID, domain.AddInstructionRequest{Order: testutil.Ptr(2), Content: "Add salt"})
	require.NoError(t, err)
	_, err = svc.EditInstruction(ctx, second.ID, domain.EditInstructionRequest{Order: testutil.Ptr(1)})
	assert.True(t, domain.IsConflict(err))

	moved, err := svc.EditInstruction(ctx, second.ID, domain.EditInstructionRequest{Order: testutil.Ptr(5), Content: testutil.Ptr("Season")})
	require.NoError(t, err)
	assert.Equal(t, 5, moved.Order)
	assert.Equal(t, "Season", moved.Content)

	_, err = svc.AddInstruction(ctx, a.ID, domain.AddInstructionRequest{Order: testutil.Ptr(0), Content: "zero"})
	assert.True(t, domain.IsValidation(err))
}

func TestDeleteRecipeCascades(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()
	r := createRecipe(t, svc, "Tacos")

	_, err := svc.AddIngredient(ctx, r.ID, domain.AddIngredientRequest{Name: "tortilla", Amount: testutil.Ptr(8.0), Unit: "whole"})
	require.NoError(t, err)
	ins, err := svc.AddInstruction(ctx, r.ID, domain.AddInstructionRequest{Order: testutil.Ptr(1), Content: "Warm tortillas"})
	require.NoError(t, err)

	cook := entities.Cook{RecipeID: r.ID}
	require.NoError(t, db.Create(&cook).Error)
	require.NoError(t, db.Create(&entities.CookInstruction{CookID: cook.ID, InstructionID: ins.ID}).Error)

	require.NoError(t, svc.DeleteRecipe(ctx, r.ID))

	for _, model := range []any{&entities.Ingredient{}, &entities.Instruction{}, &entities.Cook{}, &entities.CookInstruction{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "%T rows left behind", model)
	}

	_, err = svc.GetRecipe(ctx, r.ID)
	assert.True(t, domain.IsNotFound(err))

	assert.NoError(t, svc.DeleteRecipe(ctx, r.ID), "delete is idempotent")
	assert.NoError(t, svc.DeleteIngredient(ctx, 12345))
	assert.NoError(t, svc.DeleteInstruction(ctx, 12345))
}

func TestShareRecipe(t *testing.T) {
	svc, _, mailer := newTestService(t)
	ctx := context.Background()
	r := createRecipe(t, svc, "Lemonade <fresh>")
	_, err := svc.AddIngredient(ctx, r.ID, domain.AddIngredientRequest{Name: "lemon", Amount: testutil.Ptr(0.5), Unit: "cup"})
	require.NoError(t, err)

	require.NoError(t, svc.ShareRecipe(ctx, r.ID, domain.ShareRecipeRequest{Email: "friend@example.com"}))
	assert.Equal(t, "friend@example.com", mailer.to)
	assert.Equal(t, "Recipe: Lemonade <fresh>", mailer.subject)
	assert.Contains(t, mailer.body, "0.5 cup lemon")
	assert.True(t, strings.Contains(mailer.body, "Lemonade &lt;fresh&gt;"))

	err = svc.ShareRecipe(ctx, r.ID, domain.ShareRecipeRequest{Email: "not-an-email"})
	assert.True(t, domain.IsValidation(err))

	err = svc.ShareRecipe(ctx, r.ID+1, domain.ShareRecipeRequest{Email: "friend@example.com"})
	assert.True(t, domain.IsNotFound(err))
}
