package recipe

import (
	"context"
	"strings"

	"recipe-box/domain"
	"recipe-box/entities"
	"recipe-box/internal/utils"
)

const instructionOrderTaken = "an instruction with that order already exists for this recipe"

func (s *recipeService) AddInstruction(ctx context.Context, recipeID uint, req domain.AddInstructionRequest) (domain.Instruction, error) {
	req.Content = strings.TrimSpace(req.Content)
	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return domain.Instruction{}, err
	}

	instruction := entities.Instruction{
		Order:    *req.Order,
		RecipeID: recipeID,
		Content:  req.Content,
	}
	if err := s.recipeRepository.CreateInstruction(ctx, &instruction); err != nil {
		return domain.Instruction{}, translateError(err, domain.ErrRecipeNotFound, instructionOrderTaken)
	}
	return toInstruction(&instruction), nil
}

func (s *recipeService) EditInstruction(ctx context.Context, id uint, req domain.EditInstructionRequest) (domain.Instruction, error) {
	req.Content = trimmed(req.Content)
	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return domain.Instruction{}, err
	}

	fields := make(map[string]any)
	if req.Order != nil {
		fields["order"] = *req.Order
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if len(fields) == 0 {
		return domain.Instruction{}, domain.NewValidationError("%s", domain.MessageNothingToUpdate)
	}

	affected, err := s.recipeRepository.UpdateInstruction(ctx, id, fields)
	if err != nil {
		return domain.Instruction{}, translateError(err, domain.ErrInstructionNotFound, instructionOrderTaken)
	}
	if affected == 0 {
		return domain.Instruction{}, domain.ErrInstructionNotFound
	}

	instruction, err := s.recipeRepository.GetInstructionByID(ctx, id)
	if err != nil {
		return domain.Instruction{}, translateError(err, domain.ErrInstructionNotFound, "")
	}
	return toInstruction(instruction), nil
}

func (s *recipeService) DeleteInstruction(ctx context.Context, id uint) error {
	return s.recipeRepository.DeleteInstruction(ctx, id)
}

func toInstruction(i *entities.Instruction) domain.Instruction {
	return domain.Instruction{
		ID:       i.ID,
		Order:    i.Order,
		RecipeID: i.RecipeID,
		Content:  i.Content,
	}
}
