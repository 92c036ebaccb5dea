package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"parksexplorer/internal/application/park/dto"
	"parksexplorer/internal/domain/park"
	"parksexplorer/internal/infrastructure/openai"
	"parksexplorer/internal/infrastructure/repository"
	"parksexplorer/internal/shared/errors"
	"parksexplorer/internal/shared/logger"
)

// RecommendActivitiesUseCase generates seasonal activity recommendations for
// a park via the language-model API.
type RecommendActivitiesUseCase struct {
	repo   park.Repository
	ai     openai.Client
	logger logger.Interface
}

func NewRecommendActivitiesUseCase(
	repo park.Repository,
	ai openai.Client,
	logger logger.Interface,
) *RecommendActivitiesUseCase {
	return &RecommendActivitiesUseCase{
		repo:   repo,
		ai:     ai,
		logger: logger,
	}
}

func (uc *RecommendActivitiesUseCase) Execute(ctx context.Context, id, season string) (*dto.ActivitiesResponse, error) {
	parkID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.NewValidationError("Invalid park ID")
	}
	season = strings.TrimSpace(season)
	if season == "" {
		return nil, errors.NewValidationError("Season is required")
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
		openai.RangerSystemPrompt,
		openai.ActivityRecommendationsPrompt(p.Name(), season, p.Description()),
		openai.ActivitiesOptions,
	)
	if err != nil {
		return nil, err
	}

	return &dto.ActivitiesResponse{
		ParkID:          p.ID().String(),
		Name:            p.Name(),
		Season:          season,
		Recommendations: text,
	}, nil
}
