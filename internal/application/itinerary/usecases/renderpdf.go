package usecases

import (
	"context"
	"fmt"

	"parksexplorer/internal/domain/itinerary"
	"parksexplorer/internal/infrastructure/repository"
	"parksexplorer/internal/shared/errors"
	"parksexplorer/internal/shared/logger"
)

// DocumentRenderer turns an itinerary into a downloadable document.
type DocumentRenderer interface {
	RenderItinerary(it *itinerary.Itinerary) ([]byte, error)
}

type RenderPDFUseCase struct {
	repo     itinerary.Repository
	renderer DocumentRenderer
	logger   logger.Interface
}

func NewRenderPDFUseCase(
	repo itinerary.Repository,
	renderer DocumentRenderer,
	logger logger.Interface,
) *RenderPDFUseCase {
	return &RenderPDFUseCase{
		repo:     repo,
		renderer: renderer,
		logger:   logger,
	}
}

// Execute renders the itinerary as PDF bytes and returns them together with
// a filename suggestion for the download header.
func (uc *RenderPDFUseCase) Execute(ctx context.Context, ownerID string, id uint) ([]byte, string, error) {
	it, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrItineraryNotFound {
			return nil, "", errors.NewNotFoundError("Itinerary not found")
		}
		uc.logger.Errorw("failed to find itinerary", "id", id, "error", err)
		return nil, "", fmt.Errorf("failed to find itinerary: %w", err)
	}
	if !it.IsOwnedBy(ownerID) {
		uc.logger.Warnw("itinerary access denied", "id", id, "user_id", ownerID)
		return nil, "", errors.NewNotFoundError("Itinerary not found")
	}

	data, err := uc.renderer.RenderItinerary(it)
	if err != nil {
		uc.logger.Errorw("failed to render itinerary PDF", "id", id, "error", err)
		return nil, "", errors.NewInternalError("Failed to render itinerary PDF")
	}

	filename := fmt.Sprintf("itinerary_%d.pdf", it.ID())
	return data, filename, nil
}
