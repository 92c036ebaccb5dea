package handlers

import (
	"context"

	parkdto "parksexplorer/internal/application/park/dto"
)

// Service interface for ParkHandler

type parkService interface {
	List(ctx context.Context, skip, limit int) (*parkdto.ListParksResponse, error)
	GetByID(ctx context.Context, id string) (*parkdto.ParkResponse, error)
	GetByParkCode(ctx context.Context, parkCode string) (*parkdto.ParkResponse, error)
	Search(ctx context.Context, term string) ([]parkdto.ParkResponse, error)
	GetNPSDetails(ctx context.Context, id string) (*parkdto.NPSDetailsResponse, error)
	Describe(ctx context.Context, id string) (*parkdto.DescriptionResponse, error)
	RecommendActivities(ctx context.Context, id, season string) (*parkdto.ActivitiesResponse, error)
}
