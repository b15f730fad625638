package recipe

import (
	"context"
	"errors"
	"strings"

	"recipe-box/domain"
	"recipe-box/entities"
	"recipe-box/internal/utils"
	"recipe-box/internal/utils/mailing"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.Recipe, error)
		GetRecipe(ctx context.Context, id uint) (domain.RecipeDetail, error)
		ListRecipes(ctx context.Context, page int) (domain.RecipePage, error)
		UpdateRecipeNotes(ctx context.Context, id uint, req domain.UpdateNotesRequest) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, id uint) error
		ShareRecipe(ctx context.Context, id uint, req domain.ShareRecipeRequest) error

		AddIngredient(ctx context.Context, recipeID uint, req domain.AddIngredientRequest) (domain.Ingredient, error)
		EditIngredient(ctx context.Context, id uint, req domain.EditIngredientRequest) (domain.Ingredient, error)
		DeleteIngredient(ctx context.Context, id uint) error

		AddInstruction(ctx context.Context, recipeID uint, req domain.AddInstructionRequest) (domain.Instruction, error)
		EditInstruction(ctx context.Context, id uint, req domain.EditInstructionRequest) (domain.Instruction, error)
		DeleteInstruction(ctx context.Context, id uint) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		validator        *validator.Validate
		mailer           mailing.Mailer
	}
)

func NewRecipeService(recipeRepository RecipeRepository, validator *validator.Validate, mailer mailing.Mailer) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		validator:        validator,
		mailer:           mailer,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.Recipe, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return domain.Recipe{}, err
	}

	recipe := entities.Recipe{
		Title:       req.Title,
		Description: req.Description,
		Servings:    *req.Servings,
		Preptime:    *req.Preptime,
		Cooktime:    *req.Cooktime,
		Notes:       req.Notes,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, &recipe); err != nil {
		return domain.Recipe{}, translateError(err, domain.ErrRecipeNotFound, "a recipe with that title already exists")
	}
	return ToRecipe(&recipe), nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id uint) (domain.RecipeDetail, error) {
	rows, err := s.recipeRepository.GetRecipeRows(ctx, id)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	return GroupRows(rows)
}

func (s *recipeService) ListRecipes(ctx context.Context, page int) (domain.RecipePage, error) {
	if page < 1 {
		page = 1
	}
	limit := domain.RecipePageSize

	recipes, total, err := s.recipeRepository.GetRecipes(ctx, page, limit)
	if err != nil {
		return domain.RecipePage{}, err
	}

	res := domain.RecipePage{
		Recipes:    make([]domain.Recipe, 0, len(recipes)),
		Total:      total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		Page:       page,
		PageSize:   limit,
	}
	for _, r := range recipes {
		res.Recipes = append(res.Recipes, ToRecipe(r))
	}
	return res, nil
}

func (s *recipeService) UpdateRecipeNotes(ctx context.Context, id uint, req domain.UpdateNotesRequest) (domain.Recipe, error) {
	affected, err := s.recipeRepository.UpdateRecipeNotes(ctx, id, req.Notes)
	if err != nil {
		return domain.Recipe{}, err
	}
	if affected == 0 {
		return domain.Recipe{}, domain.ErrRecipeNotFound
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return domain.Recipe{}, translateError(err, domain.ErrRecipeNotFound, "")
	}
	return ToRecipe(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func ToRecipe(r *entities.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Servings:    r.Servings,
		Preptime:    r.Preptime,
		Cooktime:    r.Cooktime,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
	}
}

// translateError maps store failures onto the domain taxonomy. A missing row
// becomes notFound, a unique violation a conflict carrying conflictMessage and
// a broken foreign key means the parent recipe is gone.
func translateError(err error, notFound error, conflictMessage string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case utils.IsDuplicateKey(err) && conflictMessage != "":
		return domain.NewConflictError("%s", conflictMessage)
	case utils.IsForeignKeyViolation(err):
		return domain.ErrRecipeNotFound
	}
	return err
}
