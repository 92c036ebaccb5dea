package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ParkModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParkCode        string    `gorm:"column:parkcode;size:16;uniqueIndex;not null"`
	Name            string    `gorm:"size:255;not null"`
	Description     string    `gorm:"type:text"`
	Location        datatypes.JSON
	Latitude        *float64
	Longitude       *float64
	OfficialWebsite string `gorm:"size:512"`
	CreatedAt       time.Time
}

func (ParkModel) TableName() string {
	return "parks"
}
