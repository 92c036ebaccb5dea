package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parksexplorer/internal/domain/park"
	"parksexplorer/internal/infrastructure/persistence/mappers"
	"parksexplorer/internal/infrastructure/persistence/models"
)

// ErrParkNotFound is returned when a park lookup matches no row.
var ErrParkNotFound = errors.New("park not found")

type ParkRepository struct {
	db     *gorm.DB
	mapper mappers.ParkMapper
}

func NewParkRepository(db *gorm.DB) *ParkRepository {
	return &ParkRepository{
		db:     db,
		mapper: mappers.NewParkMapper(),
	}
}

var _ park.Repository = (*ParkRepository)(nil)

func (r *ParkRepository) List(ctx context.Context, skip, limit int) ([]*park.Park, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ParkModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count parks: %w", err)
	}

	var parkModels []models.ParkModel
	if err := query.
		Order("name ASC").
		Offset(skip).
		Limit(limit).
		Find(&parkModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list parks: %w", err)
	}

	parks, err := r.toDomainSlice(parkModels)
	if err != nil {
		return nil, 0, err
	}
	return parks, total, nil
}

func (r *ParkRepository) FindByID(ctx context.Context, id uuid.UUID) (*park.Park, error) {
	var model models.ParkModel
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParkNotFound
		}
		return nil, fmt.Errorf("failed to find park: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ParkRepository) FindByParkCode(ctx context.Context, parkCode string) (*park.Park, error) {
	var model models.ParkModel
	if err := r.db.WithContext(ctx).
		Where("parkcode = ?", strings.ToLower(parkCode)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParkNotFound
		}
		return nil, fmt.Errorf("failed to find park by code: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ParkRepository) Search(ctx context.Context, term string) ([]*park.Park, error) {
	pattern := "%" + strings.ToLower(term) + "%"

	var parkModels []models.ParkModel
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("name ASC").
		Find(&parkModels).Error; err != nil {
		return nil, fmt.Errorf("failed to search parks: %w", err)
	}

	return r.toDomainSlice(parkModels)
}

func (r *ParkRepository) Save(ctx context.Context, p *park.Park) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save park: %w", err)
	}
	return nil
}

func (r *ParkRepository) toDomainSlice(parkModels []models.ParkModel) ([]*park.Park, error) {
	parks := make([]*park.Park, len(parkModels))
	for i := range parkModels {
		p, err := r.mapper.ToDomain(&parkModels[i])
		if err != nil {
			return nil, err
		}
		parks[i] = p
	}
	return parks, nil
}
