package usecases

import (
	"context"
	"fmt"

	"parksexplorer/internal/application/itinerary/dto"
	"parksexplorer/internal/domain/itinerary"
	"parksexplorer/internal/shared/logger"
)

type ListItinerariesUseCase struct {
	repo   itinerary.Repository
	logger logger.Interface
}

func NewListItinerariesUseCase(repo itinerary.Repository, logger logger.Interface) *ListItinerariesUseCase {
	return &ListItinerariesUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListItinerariesUseCase) Execute(ctx context.Context, ownerID string) ([]dto.ItineraryResponse, error) {
	its, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		uc.logger.Errorw("failed to list itineraries", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("failed to list itineraries: %w", err)
	}

	return dto.FromItineraries(its), nil
}
