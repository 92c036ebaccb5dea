package usecases

import (
	"context"

	"github.com/google/uuid"

	"parksexplorer/internal/domain/itinerary"
	"parksexplorer/internal/domain/park"
	"parksexplorer/internal/infrastructure/openai"
	"parksexplorer/internal/infrastructure/weather"
	"parksexplorer/internal/shared/logger"
)

type mockParkRepository struct {
	ListFunc           func(ctx context.Context, skip, limit int) ([]*park.Park, int64, error)
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*park.Park, error)
	FindByParkCodeFunc func(ctx context.Context, parkCode string) (*park.Park, error)
	SearchFunc         func(ctx context.Context, term string) ([]*park.Park, error)
	SaveFunc           func(ctx context.Context, p *park.Park) error
}

func (m *mockParkRepository) List(ctx context.Context, skip, limit int) ([]*park.Park, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, skip, limit)
	}
	return nil, 0, nil
}

func (m *mockParkRepository) FindByID(ctx context.Context, id uuid.UUID) (*park.Park, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockParkRepository) FindByParkCode(ctx context.Context, parkCode string) (*park.Park, error) {
	if m.FindByParkCodeFunc != nil {
		return m.FindByParkCodeFunc(ctx, parkCode)
	}
	return nil, nil
}

func (m *mockParkRepository) Search(ctx context.Context, term string) ([]*park.Park, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, term)
	}
	return nil, nil
}

func (m *mockParkRepository) Save(ctx context.Context, p *park.Park) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

type mockItineraryRepository struct {
	SaveFunc        func(ctx context.Context, it *itinerary.Itinerary) error
	UpdateFunc      func(ctx context.Context, it *itinerary.Itinerary) error
	DeleteFunc      func(ctx context.Context, id uint) error
	FindByIDFunc    func(ctx context.Context, id uint) (*itinerary.Itinerary, error)
	ListByOwnerFunc func(ctx context.Context, ownerID string) ([]*itinerary.Itinerary, error)
}

func (m *mockItineraryRepository) Save(ctx context.Context, it *itinerary.Itinerary) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, it)
	}
	return nil
}

func (m *mockItineraryRepository) Update(ctx context.Context, it *itinerary.Itinerary) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, it)
	}
	return nil
}

func (m *mockItineraryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockItineraryRepository) FindByID(ctx context.Context, id uint) (*itinerary.Itinerary, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockItineraryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*itinerary.Itinerary, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

type mockWeatherService struct {
	GetForecastFunc func(ctx context.Context, latitude, longitude float64) (*weather.Forecast, error)
	ConfiguredFunc  func() bool
}

func (m *mockWeatherService) GetForecast(ctx context.Context, latitude, longitude float64) (*weather.Forecast, error) {
	if m.GetForecastFunc != nil {
		return m.GetForecastFunc(ctx, latitude, longitude)
	}
	return nil, nil
}

func (m *mockWeatherService) Configured() bool {
	if m.ConfiguredFunc != nil {
		return m.ConfiguredFunc()
	}
	return false
}

type mockAIClient struct {
	GenerateTextFunc func(ctx context.Context, system, user string, opts openai.GenerationOptions) (string, error)
}

func (m *mockAIClient) GenerateText(ctx context.Context, system, user string, opts openai.GenerationOptions) (string, error) {
	if m.GenerateTextFunc != nil {
		return m.GenerateTextFunc(ctx, system, user, opts)
	}
	return "", nil
}

type mockRenderer struct {
	RenderItineraryFunc func(it *itinerary.Itinerary) ([]byte, error)
}

func (m *mockRenderer) RenderItinerary(it *itinerary.Itinerary) ([]byte, error) {
	if m.RenderItineraryFunc != nil {
		return m.RenderItineraryFunc(it)
	}
	return nil, nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
