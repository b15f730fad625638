package digest

import (
	"context"
	"strings"

	"recipe-box/domain"
	"recipe-box/entities"
	"recipe-box/internal/utils"
	"recipe-box/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type (
	DigestService interface {
		DigestRecipe(ctx context.Context, req domain.DigestRequest) (domain.Recipe, error)
		// Validate runs the checks DigestRecipe applies before touching the store.
		Validate(req *domain.DigestRequest) error
	}

	digestService struct {
		digestRepository DigestRepository
		validator        *validator.Validate
	}
)

func NewDigestService(digestRepository DigestRepository, validator *validator.Validate) DigestService {
	return &digestService{
		digestRepository: digestRepository,
		validator:        validator,
	}
}

func (s *digestService) Validate(req *domain.DigestRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	for i := range req.Ingredients {
		req.Ingredients[i].Name = strings.TrimSpace(req.Ingredients[i].Name)
		req.Ingredients[i].Unit = strings.TrimSpace(req.Ingredients[i].Unit)
	}
	for i := range req.Instructions {
		req.Instructions[i].Content = strings.TrimSpace(req.Instructions[i].Content)
	}

	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return err
	}

	orders := make(map[int]struct{}, len(req.Instructions))
	for _, ins := range req.Instructions {
		if _, dup := orders[*ins.Order]; dup {
			return domain.NewValidationError("instructions contain order %d more than once", *ins.Order)
		}
		orders[*ins.Order] = struct{}{}
	}
	return nil
}

func (s *digestService) DigestRecipe(ctx context.Context, req domain.DigestRequest) (domain.Recipe, error) {
	if err := s.Validate(&req); err != nil {
		return domain.Recipe{}, err
	}

	rec := entities.Recipe{
		Title:       req.Title,
		Description: req.Description,
		Servings:    *req.Servings,
		Preptime:    *req.Preptime,
		Cooktime:    *req.Cooktime,
		Notes:       req.Notes,
	}
	ingredients := make([]entities.Ingredient, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		ingredients = append(ingredients, entities.Ingredient{
			Name:   ing.Name,
			Amount: *ing.Amount,
			Unit:   ing.Unit,
		})
	}
	instructions := make([]entities.Instruction, 0, len(req.Instructions))
	for _, ins := range req.Instructions {
		instructions = append(instructions, entities.Instruction{
			Order:   *ins.Order,
			Content: ins.Content,
		})
	}

	if err := s.digestRepository.CreateRecipeTree(ctx, &rec, ingredients, instructions); err != nil {
		if utils.IsDuplicateKey(err) {
			return domain.Recipe{}, domain.NewConflictError("a recipe with that title already exists")
		}
		utils.Logger.Error("digest transaction rolled back",
			zap.String("title", req.Title),
			zap.Int("ingredients", len(ingredients)),
			zap.Int("instructions", len(instructions)),
			zap.Error(err),
		)
		return domain.Recipe{}, &domain.TransactionError{Op: "digest recipe", Err: err}
	}

	utils.Logger.Info("recipe digested",
		zap.Uint("recipe_id", rec.ID),
		zap.Int("ingredients", len(ingredients)),
		zap.Int("instructions", len(instructions)),
	)
	return recipe.ToRecipe(&rec), nil
}
