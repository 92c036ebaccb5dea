package usecases

import (
	"context"
	"fmt"

	"parksexplorer/internal/application/itinerary/dto"
	"parksexplorer/internal/domain/itinerary"
	"parksexplorer/internal/domain/park"
	"parksexplorer/internal/infrastructure/openai"
	"parksexplorer/internal/infrastructure/repository"
	"parksexplorer/internal/infrastructure/weather"
	"parksexplorer/internal/shared/errors"
	"parksexplorer/internal/shared/logger"
)

// GenerateItineraryUseCase runs the full planning flow: resolve the park,
// fetch a weather summary, generate the narrative, persist the result.
type GenerateItineraryUseCase struct {
	parks       park.Repository
	itineraries itinerary.Repository
	weather     weather.Service
	ai          openai.Client
	logger      logger.Interface
}

func NewGenerateItineraryUseCase(
	parks park.Repository,
	itineraries itinerary.Repository,
	weatherService weather.Service,
	ai openai.Client,
	logger logger.Interface,
) *GenerateItineraryUseCase {
	return &GenerateItineraryUseCase{
		parks:       parks,
		itineraries: itineraries,
		weather:     weatherService,
		ai:          ai,
		logger:      logger,
	}
}

func (uc *GenerateItineraryUseCase) Execute(ctx context.Context, ownerID string, req dto.GenerateItineraryRequest) (*dto.ItineraryResponse, error) {
	uc.logger.Infow("executing generate itinerary use case",
		"user_id", ownerID,
		"parkcode", req.ParkCode,
		"num_days", req.NumDays)

	prefs := req.Preferences()
	start, end, err := prefs.Validate()
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	p, err := uc.parks.FindByParkCode(ctx, prefs.ParkCode)
	if err != nil {
		if err == repository.ErrParkNotFound {
			return nil, errors.NewNotFoundError("Park not found")
		}
		uc.logger.Errorw("failed to find park", "parkcode", prefs.ParkCode, "error", err)
		return nil, fmt.Errorf("failed to find park: %w", err)
	}

	weatherSummary, err := uc.weatherSummary(ctx, p)
	if err != nil {
		return nil, err
	}

	narrative, err := uc.ai.GenerateText(ctx,
		openai.ItinerarySystemPrompt(prefs.WantsCamping()),
		openai.ItineraryUserPrompt(p.Name(), prefs, weatherSummary),
		openai.ItineraryOptions,
	)
	if err != nil {
		return nil, err
	}

	it, err := itinerary.NewItinerary(ownerID, p.Name()+" Itinerary", narrative, start, end)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	for day := 1; day <= prefs.NumDays; day++ {
		if err := it.AddParkDay(p.ID(), day, ""); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.itineraries.Save(ctx, it); err != nil {
		uc.logger.Errorw("failed to save itinerary", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("failed to save itinerary: %w", err)
	}

	uc.logger.Infow("itinerary generated", "id", it.ID(), "user_id", ownerID, "parkcode", prefs.ParkCode)
	resp := dto.FromItinerary(it)
	return &resp, nil
}

// weatherSummary returns the live summary when the weather service is usable,
// and the neutral fallback when it is unconfigured or the park has no
// coordinates. A failure of a configured service is surfaced, not masked;
// silent degradation is reserved for the unconfigured case.
func (uc *GenerateItineraryUseCase) weatherSummary(ctx context.Context, p *park.Park) (string, error) {
	if !uc.weather.Configured() || !p.HasCoordinates() {
		return weather.NeutralSummary, nil
	}

	forecast, err := uc.weather.GetForecast(ctx, *p.Latitude(), *p.Longitude())
	if err != nil {
		uc.logger.Errorw("weather lookup failed",
			"parkcode", p.ParkCode(),
			"error", err)
		return "", err
	}
	return forecast.Summary(), nil
}
