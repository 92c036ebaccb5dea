package usecases

import (
	"context"
	"fmt"
	"strings"

	"parksexplorer/internal/application/park/dto"
	"parksexplorer/internal/domain/park"
	"parksexplorer/internal/shared/errors"
	"parksexplorer/internal/shared/logger"
)

type SearchParksUseCase struct {
	repo   park.Repository
	logger logger.Interface
}

func NewSearchParksUseCase(repo park.Repository, logger logger.Interface) *SearchParksUseCase {
	return &SearchParksUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *SearchParksUseCase) Execute(ctx context.Context, term string) ([]dto.ParkResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, errors.NewValidationError("Search term is required")
	}

	parks, err := uc.repo.Search(ctx, term)
	if err != nil {
		uc.logger.Errorw("failed to search parks", "term", term, "error", err)
		return nil, fmt.Errorf("failed to search parks: %w", err)
	}

	return dto.FromParks(parks), nil
}
