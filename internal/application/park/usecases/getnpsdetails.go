package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"parksexplorer/internal/application/park/dto"
	"parksexplorer/internal/domain/park"
	"parksexplorer/internal/infrastructure/nps"
	"parksexplorer/internal/infrastructure/repository"
	"parksexplorer/internal/shared/errors"
	"parksexplorer/internal/shared/logger"
)

type GetNPSDetailsUseCase struct {
	repo   park.Repository
	nps    nps.Client
	logger logger.Interface
}

func NewGetNPSDetailsUseCase(
	repo park.Repository,
	npsClient nps.Client,
	logger logger.Interface,
) *GetNPSDetailsUseCase {
	return &GetNPSDetailsUseCase{
		repo:   repo,
		nps:    npsClient,
		logger: logger,
	}
}

func (uc *GetNPSDetailsUseCase) Execute(ctx context.Context, id string) (*dto.NPSDetailsResponse, error) {
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

	details, err := uc.nps.GetParkDetails(ctx, p.ParkCode())
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, errors.NewNotFoundError("No park service data for this park")
	}

	return &dto.NPSDetailsResponse{
		ParkID:  p.ID().String(),
		Details: *details,
	}, nil
}
