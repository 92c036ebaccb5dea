// Package itinerary orchestrates trip planning: preference validation, park
// resolution, weather lookup, narrative generation and persistence, plus the
// owner-scoped read, update, delete and PDF export flows.
package itinerary

import (
	"context"

	"parksexplorer/internal/application/itinerary/dto"
	"parksexplorer/internal/application/itinerary/usecases"
	domainitinerary "parksexplorer/internal/domain/itinerary"
	domainpark "parksexplorer/internal/domain/park"
	"parksexplorer/internal/infrastructure/openai"
	"parksexplorer/internal/infrastructure/weather"
	"parksexplorer/internal/shared/logger"
)

type Service struct {
	logger logger.Interface

	generate  *usecases.GenerateItineraryUseCase
	list      *usecases.ListItinerariesUseCase
	update    *usecases.UpdateItineraryUseCase
	delete    *usecases.DeleteItineraryUseCase
	renderPDF *usecases.RenderPDFUseCase
}

func NewService(
	itineraries domainitinerary.Repository,
	parks domainpark.Repository,
	weatherService weather.Service,
	aiClient openai.Client,
	renderer usecases.DocumentRenderer,
	logger logger.Interface,
) *Service {
	return &Service{
		logger: logger,

		generate:  usecases.NewGenerateItineraryUseCase(parks, itineraries, weatherService, aiClient, logger),
		list:      usecases.NewListItinerariesUseCase(itineraries, logger),
		update:    usecases.NewUpdateItineraryUseCase(itineraries, logger),
		delete:    usecases.NewDeleteItineraryUseCase(itineraries, logger),
		renderPDF: usecases.NewRenderPDFUseCase(itineraries, renderer, logger),
	}
}

func (s *Service) Generate(ctx context.Context, ownerID string, req dto.GenerateItineraryRequest) (*dto.ItineraryResponse, error) {
	return s.generate.Execute(ctx, ownerID, req)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]dto.ItineraryResponse, error) {
	return s.list.Execute(ctx, ownerID)
}

func (s *Service) Update(ctx context.Context, ownerID string, id uint, req dto.UpdateItineraryRequest) (*dto.ItineraryResponse, error) {
	return s.update.Execute(ctx, ownerID, id, req)
}

func (s *Service) Delete(ctx context.Context, ownerID string, id uint) error {
	return s.delete.Execute(ctx, ownerID, id)
}

func (s *Service) RenderPDF(ctx context.Context, ownerID string, id uint) ([]byte, string, error) {
	return s.renderPDF.Execute(ctx, ownerID, id)
}
