package park

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Park is seeded reference data describing a US national park. The API never
// creates or mutates parks; they are read-only from the service's perspective.
type Park struct {
	id              uuid.UUID
	parkCode        string
	name            string
	description     string
	location        map[string]interface{}
	latitude        *float64
	longitude       *float64
	officialWebsite string
	createdAt       time.Time
}

// NewPark constructs a park for seeding. The park code is normalized to
// lowercase so lookups stay case-insensitive.
func NewPark(parkCode, name, description string) (*Park, error) {
	parkCode = strings.ToLower(strings.TrimSpace(parkCode))
	if parkCode == "" {
		return nil, fmt.Errorf("park code is required")
	}
	if len(parkCode) > 16 {
		return nil, fmt.Errorf("park code exceeds maximum length of 16 characters")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}

	return &Park{
		id:          uuid.New(),
		parkCode:    parkCode,
		name:        name,
		description: description,
		createdAt:   time.Now(),
	}, nil
}

// Reconstruct rebuilds a park from persisted state.
func Reconstruct(
	id uuid.UUID,
	parkCode string,
	name string,
	description string,
	location map[string]interface{},
	latitude, longitude *float64,
	officialWebsite string,
	createdAt time.Time,
) *Park {
	return &Park{
		id:              id,
		parkCode:        strings.ToLower(parkCode),
		name:            name,
		description:     description,
		location:        location,
		latitude:        latitude,
		longitude:       longitude,
		officialWebsite: officialWebsite,
		createdAt:       createdAt,
	}
}

func (p *Park) ID() uuid.UUID                     { return p.id }
func (p *Park) ParkCode() string                  { return p.parkCode }
func (p *Park) Name() string                      { return p.name }
func (p *Park) Description() string               { return p.description }
func (p *Park) Location() map[string]interface{}  { return p.location }
func (p *Park) Latitude() *float64                { return p.latitude }
func (p *Park) Longitude() *float64               { return p.longitude }
func (p *Park) OfficialWebsite() string           { return p.officialWebsite }
func (p *Park) CreatedAt() time.Time              { return p.createdAt }

// SetCoordinates records the park's location for seeding.
func (p *Park) SetCoordinates(latitude, longitude float64) {
	p.latitude = &latitude
	p.longitude = &longitude
}

// SetOfficialWebsite records the park's website for seeding.
func (p *Park) SetOfficialWebsite(url string) {
	p.officialWebsite = url
}

// SetLocation records the raw location payload for seeding.
func (p *Park) SetLocation(location map[string]interface{}) {
	p.location = location
}

// HasCoordinates reports whether both latitude and longitude are known.
func (p *Park) HasCoordinates() bool {
	return p.latitude != nil && p.longitude != nil
}
