package usecases

import (
	"context"
	"fmt"

	"parksexplorer/internal/domain/itinerary"
	"parksexplorer/internal/infrastructure/repository"
	"parksexplorer/internal/shared/errors"
	"parksexplorer/internal/shared/logger"
)

type DeleteItineraryUseCase struct {
	repo   itinerary.Repository
	logger logger.Interface
}

func NewDeleteItineraryUseCase(repo itinerary.Repository, logger logger.Interface) *DeleteItineraryUseCase {
	return &DeleteItineraryUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *DeleteItineraryUseCase) Execute(ctx context.Context, ownerID string, id uint) error {
	uc.logger.Infow("executing delete itinerary use case", "id", id, "user_id", ownerID)

	it, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrItineraryNotFound {
			return errors.NewNotFoundError("Itinerary not found")
		}
		uc.logger.Errorw("failed to find itinerary", "id", id, "error", err)
		return fmt.Errorf("failed to find itinerary: %w", err)
	}
	if !it.IsOwnedBy(ownerID) {
		uc.logger.Warnw("itinerary access denied", "id", id, "user_id", ownerID)
		return errors.NewNotFoundError("Itinerary not found")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if err == repository.ErrItineraryNotFound {
			return errors.NewNotFoundError("Itinerary not found")
		}
		uc.logger.Errorw("failed to delete itinerary", "id", id, "error", err)
		return fmt.Errorf("failed to delete itinerary: %w", err)
	}

	uc.logger.Infow("itinerary deleted", "id", id, "user_id", ownerID)
	return nil
}
