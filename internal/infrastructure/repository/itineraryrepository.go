package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"parksexplorer/internal/domain/itinerary"
	"parksexplorer/internal/infrastructure/persistence/mappers"
	"parksexplorer/internal/infrastructure/persistence/models"
)

// ErrItineraryNotFound is returned when an itinerary lookup matches no row.
var ErrItineraryNotFound = errors.New("itinerary not found")

type ItineraryRepository struct {
	db     *gorm.DB
	mapper mappers.ItineraryMapper
}

func NewItineraryRepository(db *gorm.DB) *ItineraryRepository {
	return &ItineraryRepository{
		db:     db,
		mapper: mappers.NewItineraryMapper(),
	}
}

var _ itinerary.Repository = (*ItineraryRepository)(nil)

// Save inserts the itinerary and its park/day rows in one transaction.
func (r *ItineraryRepository) Save(ctx context.Context, it *itinerary.Itinerary) error {
	model := r.mapper.ToModel(it)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save itinerary: %w", err)
		}

		if err := it.SetID(model.ID); err != nil {
			return err
		}

		parkDays := r.mapper.ToParkDayModels(it)
		if len(parkDays) > 0 {
			if err := tx.Create(&parkDays).Error; err != nil {
				return fmt.Errorf("failed to save itinerary park days: %w", err)
			}
		}
		return nil
	})
	return err
}

func (r *ItineraryRepository) Update(ctx context.Context, it *itinerary.Itinerary) error {
	model := r.mapper.ToModel(it)

	result := r.db.WithContext(ctx).
		Model(&models.ItineraryModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "start_date", "end_date", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update itinerary: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItineraryNotFound
	}
	return nil
}

func (r *ItineraryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ItineraryModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete itinerary: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItineraryNotFound
	}
	return nil
}

func (r *ItineraryRepository) FindByID(ctx context.Context, id uint) (*itinerary.Itinerary, error) {
	var model models.ItineraryModel
	if err := r.db.WithContext(ctx).
		First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItineraryNotFound
		}
		return nil, fmt.Errorf("failed to find itinerary: %w", err)
	}

	parkDays, err := r.loadParkDays(ctx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, parkDays), nil
}

func (r *ItineraryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*itinerary.Itinerary, error) {
	var itineraryModels []models.ItineraryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&itineraryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list itineraries: %w", err)
	}

	itineraries := make([]*itinerary.Itinerary, len(itineraryModels))
	for i := range itineraryModels {
		parkDays, err := r.loadParkDays(ctx, itineraryModels[i].ID)
		if err != nil {
			return nil, err
		}
		itineraries[i] = r.mapper.ToDomain(&itineraryModels[i], parkDays)
	}
	return itineraries, nil
}

func (r *ItineraryRepository) loadParkDays(ctx context.Context, itineraryID uint) ([]models.ItineraryParkModel, error) {
	var parkDays []models.ItineraryParkModel
	if err := r.db.WithContext(ctx).
		Where("itinerary_id = ?", itineraryID).
		Order("day_number ASC").
		Find(&parkDays).Error; err != nil {
		return nil, fmt.Errorf("failed to load itinerary park days: %w", err)
	}
	return parkDays, nil
}
