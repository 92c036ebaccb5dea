package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"parksexplorer/internal/application/park/dto"
	"parksexplorer/internal/domain/park"
	"parksexplorer/internal/infrastructure/repository"
	"parksexplorer/internal/shared/errors"
	"parksexplorer/internal/shared/logger"
)

type GetParkUseCase struct {
	repo   park.Repository
	logger logger.Interface
}

func NewGetParkUseCase(repo park.Repository, logger logger.Interface) *GetParkUseCase {
	return &GetParkUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetParkUseCase) Execute(ctx context.Context, id string) (*dto.ParkResponse, error) {
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

	resp := dto.FromPark(p)
	return &resp, nil
}
