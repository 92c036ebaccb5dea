package usecases

import (
	"context"
	"fmt"
	"strings"

	"parksexplorer/internal/application/park/dto"
	"parksexplorer/internal/domain/park"
	"parksexplorer/internal/infrastructure/repository"
	"parksexplorer/internal/shared/errors"
	"parksexplorer/internal/shared/logger"
)

type GetParkByCodeUseCase struct {
	repo   park.Repository
	logger logger.Interface
}

func NewGetParkByCodeUseCase(repo park.Repository, logger logger.Interface) *GetParkByCodeUseCase {
	return &GetParkByCodeUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetParkByCodeUseCase) Execute(ctx context.Context, parkCode string) (*dto.ParkResponse, error) {
	parkCode = strings.TrimSpace(parkCode)
	if parkCode == "" {
		return nil, errors.NewValidationError("Park code is required")
	}

	p, err := uc.repo.FindByParkCode(ctx, parkCode)
	if err != nil {
		if err == repository.ErrParkNotFound {
			return nil, errors.NewNotFoundError("Park not found")
		}
		uc.logger.Errorw("failed to find park by code", "parkcode", parkCode, "error", err)
		return nil, fmt.Errorf("failed to find park by code: %w", err)
	}

	resp := dto.FromPark(p)
	return &resp, nil
}
