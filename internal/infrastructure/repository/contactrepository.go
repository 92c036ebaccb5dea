package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"parksexplorer/internal/domain/contact"
	"parksexplorer/internal/infrastructure/persistence/mappers"
)

type ContactRepository struct {
	db     *gorm.DB
	mapper mappers.ContactMapper
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{
		db:     db,
		mapper: mappers.NewContactMapper(),
	}
}

var _ contact.Repository = (*ContactRepository)(nil)

func (r *ContactRepository) Save(ctx context.Context, c *contact.Contact) error {
	model := r.mapper.ToModel(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save contact: %w", err)
	}
	if err := c.SetID(model.ID); err != nil {
		return err
	}
	return nil
}
