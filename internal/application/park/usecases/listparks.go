package usecases

import (
	"context"
	"fmt"

	"parksexplorer/internal/application/park/dto"
	"parksexplorer/internal/domain/park"
	"parksexplorer/internal/shared/logger"
)

type ListParksUseCase struct {
	repo   park.Repository
	logger logger.Interface
}

func NewListParksUseCase(repo park.Repository, logger logger.Interface) *ListParksUseCase {
	return &ListParksUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListParksUseCase) Execute(ctx context.Context, skip, limit int) (*dto.ListParksResponse, error) {
	parks, total, err := uc.repo.List(ctx, skip, limit)
	if err != nil {
		uc.logger.Errorw("failed to list parks", "skip", skip, "limit", limit, "error", err)
		return nil, fmt.Errorf("failed to list parks: %w", err)
	}

	return &dto.ListParksResponse{
		Parks: dto.FromParks(parks),
		Total: total,
		Skip:  skip,
		Limit: limit,
	}, nil
}
