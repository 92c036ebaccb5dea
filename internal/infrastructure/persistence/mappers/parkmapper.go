package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"parksexplorer/internal/domain/park"
	"parksexplorer/internal/infrastructure/persistence/models"
)

type ParkMapper struct{}

func NewParkMapper() ParkMapper {
	return ParkMapper{}
}

func (m ParkMapper) ToModel(p *park.Park) (*models.ParkModel, error) {
	var location datatypes.JSON
	if p.Location() != nil {
		raw, err := json.Marshal(p.Location())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal park location: %w", err)
		}
		location = raw
	}

	return &models.ParkModel{
		ID:              p.ID(),
		ParkCode:        p.ParkCode(),
		Name:            p.Name(),
		Description:     p.Description(),
		Location:        location,
		Latitude:        p.Latitude(),
		Longitude:       p.Longitude(),
		OfficialWebsite: p.OfficialWebsite(),
		CreatedAt:       p.CreatedAt(),
	}, nil
}

func (m ParkMapper) ToDomain(model *models.ParkModel) (*park.Park, error) {
	var location map[string]interface{}
	if len(model.Location) > 0 {
		if err := json.Unmarshal(model.Location, &location); err != nil {
			return nil, fmt.Errorf("failed to unmarshal park location: %w", err)
		}
	}

	return park.Reconstruct(
		model.ID,
		model.ParkCode,
		model.Name,
		model.Description,
		location,
		model.Latitude,
		model.Longitude,
		model.OfficialWebsite,
		model.CreatedAt,
	), nil
}
