package dto

import (
	"time"

	"parksexplorer/internal/domain/park"
	"parksexplorer/internal/infrastructure/nps"
)

// ParkResponse is the public shape of a park record.
type ParkResponse struct {
	ID              string                 `json:"id"`
	ParkCode        string                 `json:"parkcode"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description,omitempty"`
	Location        map[string]interface{} `json:"location,omitempty"`
	Latitude        *float64               `json:"latitude,omitempty"`
	Longitude       *float64               `json:"longitude,omitempty"`
	OfficialWebsite string                 `json:"official_website,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// ListParksResponse is an offset-paginated park listing.
type ListParksResponse struct {
	Parks []ParkResponse `json:"parks"`
	Total int64          `json:"total"`
	Skip  int            `json:"skip"`
	Limit int            `json:"limit"`
}

// NPSDetailsResponse wraps a live record from the National Park Service API.
type NPSDetailsResponse struct {
	ParkID  string   `json:"park_id"`
	Details nps.Park `json:"details"`
}

// DescriptionResponse holds a generated long-form park description.
type DescriptionResponse struct {
	ParkID      string `json:"park_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ActivitiesResponse holds generated seasonal activity recommendations.
type ActivitiesResponse struct {
	ParkID          string `json:"park_id"`
	Name            string `json:"name"`
	Season          string `json:"season"`
	Recommendations string `json:"recommendations"`
}

// FromPark maps a domain park to its response shape.
func FromPark(p *park.Park) ParkResponse {
	return ParkResponse{
		ID:              p.ID().String(),
		ParkCode:        p.ParkCode(),
		Name:            p.Name(),
		Description:     p.Description(),
		Location:        p.Location(),
		Latitude:        p.Latitude(),
		Longitude:       p.Longitude(),
		OfficialWebsite: p.OfficialWebsite(),
		CreatedAt:       p.CreatedAt(),
	}
}

// FromParks maps a slice of domain parks, never returning nil.
func FromParks(parks []*park.Park) []ParkResponse {
	out := make([]ParkResponse, 0, len(parks))
	for _, p := range parks {
		out = append(out, FromPark(p))
	}
	return out
}
