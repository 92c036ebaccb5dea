package mappers

import (
	"parksexplorer/internal/domain/itinerary"
	"parksexplorer/internal/infrastructure/persistence/models"
)

type ItineraryMapper struct{}

func NewItineraryMapper() ItineraryMapper {
	return ItineraryMapper{}
}

func (m ItineraryMapper) ToModel(it *itinerary.Itinerary) *models.ItineraryModel {
	return &models.ItineraryModel{
		ID:          it.ID(),
		UserID:      it.OwnerID(),
		Title:       it.Title(),
		Description: it.Description(),
		StartDate:   it.StartDate(),
		EndDate:     it.EndDate(),
		CreatedAt:   it.CreatedAt(),
		UpdatedAt:   it.UpdatedAt(),
	}
}

func (m ItineraryMapper) ToParkDayModels(it *itinerary.Itinerary) []models.ItineraryParkModel {
	days := it.ParkDays()
	out := make([]models.ItineraryParkModel, len(days))
	for i, d := range days {
		out[i] = models.ItineraryParkModel{
			ItineraryID: it.ID(),
			ParkID:      d.ParkID,
			DayNumber:   d.DayNumber,
			Notes:       d.Notes,
		}
	}
	return out
}

func (m ItineraryMapper) ToDomain(model *models.ItineraryModel, parkDays []models.ItineraryParkModel) *itinerary.Itinerary {
	days := make([]itinerary.ParkDay, len(parkDays))
	for i, pd := range parkDays {
		days[i] = itinerary.ParkDay{
			ParkID:    pd.ParkID,
			DayNumber: pd.DayNumber,
			Notes:     pd.Notes,
		}
	}

	return itinerary.Reconstruct(
		model.ID,
		model.UserID,
		model.Title,
		model.Description,
		model.StartDate,
		model.EndDate,
		days,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
