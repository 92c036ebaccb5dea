package usecases

import (
	"context"
	"fmt"
	"time"

	"parksexplorer/internal/application/itinerary/dto"
	"parksexplorer/internal/domain/itinerary"
	"parksexplorer/internal/infrastructure/repository"
	"parksexplorer/internal/shared/errors"
	"parksexplorer/internal/shared/logger"
)

type UpdateItineraryUseCase struct {
	repo   itinerary.Repository
	logger logger.Interface
}

func NewUpdateItineraryUseCase(repo itinerary.Repository, logger logger.Interface) *UpdateItineraryUseCase {
	return &UpdateItineraryUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *UpdateItineraryUseCase) Execute(ctx context.Context, ownerID string, id uint, req dto.UpdateItineraryRequest) (*dto.ItineraryResponse, error) {
	uc.logger.Infow("executing update itinerary use case", "id", id, "user_id", ownerID)

	it, err := uc.fetchOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	startDate, err := parseOptionalDate(req.StartDate, "start_date")
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate(req.EndDate, "end_date")
	if err != nil {
		return nil, err
	}

	if err := it.Update(req.Title, req.Description, startDate, endDate); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, it); err != nil {
		if err == repository.ErrItineraryNotFound {
			return nil, errors.NewNotFoundError("Itinerary not found")
		}
		uc.logger.Errorw("failed to update itinerary", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update itinerary: %w", err)
	}

	uc.logger.Infow("itinerary updated", "id", id, "user_id", ownerID)
	resp := dto.FromItinerary(it)
	return &resp, nil
}

// fetchOwned loads the itinerary and applies the uniform ownership rule:
// an itinerary owned by someone else is indistinguishable from a missing one.
func (uc *UpdateItineraryUseCase) fetchOwned(ctx context.Context, ownerID string, id uint) (*itinerary.Itinerary, error) {
	it, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrItineraryNotFound {
			return nil, errors.NewNotFoundError("Itinerary not found")
		}
		uc.logger.Errorw("failed to find itinerary", "id", id, "error", err)
		return nil, fmt.Errorf("failed to find itinerary: %w", err)
	}
	if !it.IsOwnedBy(ownerID) {
		uc.logger.Warnw("itinerary access denied", "id", id, "user_id", ownerID)
		return nil, errors.NewNotFoundError("Itinerary not found")
	}
	return it, nil
}

func parseOptionalDate(value *string, field string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(itinerary.DateLayout, *value)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid %s: expected YYYY-MM-DD", field))
	}
	return &parsed, nil
}
