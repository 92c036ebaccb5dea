// Package park exposes read operations over the seeded park catalog plus
// live park-service lookups and generated guide content.
package park

import (
	"context"

	"parksexplorer/internal/application/park/dto"
	"parksexplorer/internal/application/park/usecases"
	domainpark "parksexplorer/internal/domain/park"
	"parksexplorer/internal/infrastructure/nps"
	"parksexplorer/internal/infrastructure/openai"
	"parksexplorer/internal/shared/logger"
)

type Service struct {
	logger logger.Interface

	listParks           *usecases.ListParksUseCase
	getPark             *usecases.GetParkUseCase
	getParkByCode       *usecases.GetParkByCodeUseCase
	searchParks         *usecases.SearchParksUseCase
	getNPSDetails       *usecases.GetNPSDetailsUseCase
	describePark        *usecases.DescribeParkUseCase
	recommendActivities *usecases.RecommendActivitiesUseCase
}

func NewService(
	repo domainpark.Repository,
	npsClient nps.Client,
	aiClient openai.Client,
	logger logger.Interface,
) *Service {
	return &Service{
		logger: logger,

		listParks:           usecases.NewListParksUseCase(repo, logger),
		getPark:             usecases.NewGetParkUseCase(repo, logger),
		getParkByCode:       usecases.NewGetParkByCodeUseCase(repo, logger),
		searchParks:         usecases.NewSearchParksUseCase(repo, logger),
		getNPSDetails:       usecases.NewGetNPSDetailsUseCase(repo, npsClient, logger),
		describePark:        usecases.NewDescribeParkUseCase(repo, aiClient, logger),
		recommendActivities: usecases.NewRecommendActivitiesUseCase(repo, aiClient, logger),
	}
}

func (s *Service) List(ctx context.Context, skip, limit int) (*dto.ListParksResponse, error) {
	return s.listParks.Execute(ctx, skip, limit)
}

func (s *Service) GetByID(ctx context.Context, id string) (*dto.ParkResponse, error) {
	return s.getPark.Execute(ctx, id)
}

func (s *Service) GetByParkCode(ctx context.Context, parkCode string) (*dto.ParkResponse, error) {
	return s.getParkByCode.Execute(ctx, parkCode)
}

func (s *Service) Search(ctx context.Context, term string) ([]dto.ParkResponse, error) {
	return s.searchParks.Execute(ctx, term)
}

func (s *Service) GetNPSDetails(ctx context.Context, id string) (*dto.NPSDetailsResponse, error) {
	return s.getNPSDetails.Execute(ctx, id)
}

func (s *Service) Describe(ctx context.Context, id string) (*dto.DescriptionResponse, error) {
	return s.describePark.Execute(ctx, id)
}

func (s *Service) RecommendActivities(ctx context.Context, id, season string) (*dto.ActivitiesResponse, error) {
	return s.recommendActivities.Execute(ctx, id, season)
}
