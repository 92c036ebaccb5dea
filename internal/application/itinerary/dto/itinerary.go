package dto

import (
	"time"

	"parksexplorer/internal/domain/itinerary"
)

// GenerateItineraryRequest carries the traveler's preferences for a new
// itinerary. It is transient; only the generated result is persisted.
type GenerateItineraryRequest struct {
	ParkCode            string   `json:"parkcode" validate:"required"`
	NumDays             int      `json:"num_days" validate:"required,min=1"`
	FitnessLevel        string   `json:"fitness_level" validate:"required"`
	PreferredActivities []string `json:"preferred_activities" validate:"required,min=1"`
	VisitSeason         string   `json:"visit_season" validate:"required"`
	StartDate           string   `json:"start_date" validate:"required"`
	EndDate             string   `json:"end_date" validate:"required"`
}

// Preferences maps the request onto the domain preference object.
func (r GenerateItineraryRequest) Preferences() itinerary.Preferences {
	return itinerary.Preferences{
		ParkCode:            r.ParkCode,
		NumDays:             r.NumDays,
		FitnessLevel:        r.FitnessLevel,
		PreferredActivities: r.PreferredActivities,
		VisitSeason:         r.VisitSeason,
		StartDate:           r.StartDate,
		EndDate:             r.EndDate,
	}
}

// UpdateItineraryRequest carries a partial update; nil fields are untouched.
type UpdateItineraryRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
}

// ParkDayResponse is one park/day association of an itinerary.
type ParkDayResponse struct {
	ParkID    string `json:"park_id"`
	DayNumber int    `json:"day_number"`
	Notes     string `json:"notes,omitempty"`
}

// ItineraryResponse is the public shape of an itinerary.
type ItineraryResponse struct {
	ID          uint              `json:"id"`
	UserID      string            `json:"user_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	ParkDays    []ParkDayResponse `json:"park_days"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// FromItinerary maps a domain itinerary to its response shape.
func FromItinerary(it *itinerary.Itinerary) ItineraryResponse {
	parkDays := make([]ParkDayResponse, 0, len(it.ParkDays()))
	for _, pd := range it.ParkDays() {
		parkDays = append(parkDays, ParkDayResponse{
			ParkID:    pd.ParkID.String(),
			DayNumber: pd.DayNumber,
			Notes:     pd.Notes,
		})
	}

	return ItineraryResponse{
		ID:          it.ID(),
		UserID:      it.OwnerID(),
		Title:       it.Title(),
		Description: it.Description(),
		StartDate:   it.StartDate().Format(itinerary.DateLayout),
		EndDate:     it.EndDate().Format(itinerary.DateLayout),
		ParkDays:    parkDays,
		CreatedAt:   it.CreatedAt(),
		UpdatedAt:   it.UpdatedAt(),
	}
}

// FromItineraries maps a slice of domain itineraries, never returning nil.
func FromItineraries(its []*itinerary.Itinerary) []ItineraryResponse {
	out := make([]ItineraryResponse, 0, len(its))
	for _, it := range its {
		out = append(out, FromItinerary(it))
	}
	return out
}
