package cook

import (
	"context"
	"errors"

	"recipe-box/domain"
	"recipe-box/entities"
	"recipe-box/internal/utils"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type (
	CookService interface {
		StartCook(ctx context.Context, recipeID uint, req domain.StartCookRequest, createdBy string) (domain.CookDetail, error)
		GetCook(ctx context.Context, id uint) (domain.CookDetail, error)
		ListCooks(ctx context.Context, recipeID uint) ([]domain.Cook, error)
		CheckIngredient(ctx context.Context, cookID, ingredientID uint, req domain.CheckItemRequest) (domain.CookDetail, error)
		CheckInstruction(ctx context.Context, cookID, instructionID uint, req domain.CheckItemRequest) (domain.CookDetail, error)
		UpdateCookNotes(ctx context.Context, id uint, req domain.UpdateCookNotesRequest) (domain.Cook, error)
		DeleteCook(ctx context.Context, id uint) error
	}

	cookService struct {
		cookRepository CookRepository
		validator      *validator.Validate
	}
)

func NewCookService(cookRepository CookRepository, validator *validator.Validate) CookService {
	return &cookService{
		cookRepository: cookRepository,
		validator:      validator,
	}
}

func (s *cookService) StartCook(ctx context.Context, recipeID uint, req domain.StartCookRequest, createdBy string) (domain.CookDetail, error) {
	cook := entities.Cook{
		RecipeID: recipeID,
		Notes:    req.Notes,
	}
	if createdBy != "" {
		cook.CreatedBy = &createdBy
	}

	if err := s.cookRepository.CreateCook(ctx, &cook); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || utils.IsForeignKeyViolation(err) {
			return domain.CookDetail{}, domain.ErrRecipeNotFound
		}
		return domain.CookDetail{}, err
	}
	return s.GetCook(ctx, cook.ID)
}

func (s *cookService) GetCook(ctx context.Context, id uint) (domain.CookDetail, error) {
	cook, err := s.cookRepository.GetCookByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CookDetail{}, domain.ErrCookNotFound
		}
		return domain.CookDetail{}, err
	}

	// Each checklist read takes its own pooled connection.
	var (
		ingredients  []domain.CookIngredient
		instructions []domain.CookInstruction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ingredients, err = s.cookRepository.GetCookIngredients(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		instructions, err = s.cookRepository.GetCookInstructions(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.CookDetail{}, err
	}

	return domain.CookDetail{
		Cook:         toCook(cook),
		Ingredients:  ingredients,
		Instructions: instructions,
	}, nil
}

func (s *cookService) ListCooks(ctx context.Context, recipeID uint) ([]domain.Cook, error) {
	cooks, err := s.cookRepository.GetCooksByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Cook, 0, len(cooks))
	for _, c := range cooks {
		res = append(res, toCook(c))
	}
	return res, nil
}

func (s *cookService) CheckIngredient(ctx context.Context, cookID, ingredientID uint, req domain.CheckItemRequest) (domain.CookDetail, error) {
	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return domain.CookDetail{}, err
	}

	affected, err := s.cookRepository.SetIngredientChecked(ctx, cookID, ingredientID, *req.Checked)
	if err != nil {
		return domain.CookDetail{}, err
	}
	if affected == 0 {
		return domain.CookDetail{}, domain.ErrCookIngredientNotFound
	}
	return s.GetCook(ctx, cookID)
}

func (s *cookService) CheckInstruction(ctx context.Context, cookID, instructionID uint, req domain.CheckItemRequest) (domain.CookDetail, error) {
	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return domain.CookDetail{}, err
	}

	affected, err := s.cookRepository.SetInstructionChecked(ctx, cookID, instructionID, *req.Checked)
	if err != nil {
		return domain.CookDetail{}, err
	}
	if affected == 0 {
		return domain.CookDetail{}, domain.ErrCookInstructionNotFound
	}
	return s.GetCook(ctx, cookID)
}

func (s *cookService) UpdateCookNotes(ctx context.Context, id uint, req domain.UpdateCookNotesRequest) (domain.Cook, error) {
	affected, err := s.cookRepository.UpdateCookNotes(ctx, id, req.Notes)
	if err != nil {
		return domain.Cook{}, err
	}
	if affected == 0 {
		return domain.Cook{}, domain.ErrCookNotFound
	}

	cook, err := s.cookRepository.GetCookByID(ctx, id)
	if err != nil {
		return domain.Cook{}, err
	}
	return toCook(cook), nil
}

func (s *cookService) DeleteCook(ctx context.Context, id uint) error {
	return s.cookRepository.DeleteCook(ctx, id)
}

func toCook(c *entities.Cook) domain.Cook {
	return domain.Cook{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		CreatedBy: c.CreatedBy,
		RecipeID:  c.RecipeID,
		Notes:     c.Notes,
	}
}
