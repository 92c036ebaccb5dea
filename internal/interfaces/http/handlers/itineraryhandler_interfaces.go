package handlers

import (
	"context"

	itinerarydto "parksexplorer/internal/application/itinerary/dto"
)

// Service interface for ItineraryHandler

type itineraryService interface {
	Generate(ctx context.Context, ownerID string, req itinerarydto.GenerateItineraryRequest) (*itinerarydto.ItineraryResponse, error)
	ListByOwner(ctx context.Context, ownerID string) ([]itinerarydto.ItineraryResponse, error)
	Update(ctx context.Context, ownerID string, id uint, req itinerarydto.UpdateItineraryRequest) (*itinerarydto.ItineraryResponse, error)
	Delete(ctx context.Context, ownerID string, id uint) error
	RenderPDF(ctx context.Context, ownerID string, id uint) ([]byte, string, error)
}
