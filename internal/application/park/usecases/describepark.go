package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"parksexplorer/internal/application/park/dto"
	"parksexplorer/internal/domain/park"
	"parksexplorer/internal/infrastructure/openai"
	"parksexplorer/internal/infrastructure/repository"
	"parksexplorer/internal/shared/errors"
	"parksexplorer/internal/shared/logger"
)

// DescribeParkUseCase generates a long-form park description from the seeded
// park data via the language-model API.
type DescribeParkUseCase struct {
	repo   park.Repository
	ai     openai.Client
	logger logger.Interface
}

func NewDescribeParkUseCase(
	repo park.Repository,
	ai openai.Client,
	logger logger.Interface,
) *DescribeParkUseCase {
	return &DescribeParkUseCase{
		repo:   repo,
		ai:     ai,
		logger: logger,
	}
}

func (uc *DescribeParkUseCase) Execute(ctx context.Context, id string) (*dto.DescriptionResponse, error) {
	parkID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.NewValidationError("Invalid park ID")
	}

	p, err := uc.repo.FindByID(ctx, parkID)
	if err != nil {
		if err == repository.ErrParkNotFound {
			return nil, errors.NewNotFoundError("Park not found")
		}
		uc.logger.Errorw("failed to find park", "park_id", id, "error", err)
		return nil, fmt.Errorf("failed to find park: %w", err)
	}

	text, err := uc.ai.GenerateText(ctx,
		openai.ParkGuideSystemPrompt,
		openai.ParkDescriptionPrompt(p.Name(), p.Description()),
		openai.DescriptionOptions,
	)
	if err != nil {
		return nil, err
	}

	return &dto.DescriptionResponse{
		ParkID:      p.ID().String(),
		Name:        p.Name(),
		Description: text,
	}, nil
}
