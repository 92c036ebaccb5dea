package models

import (
	"time"

	"github.com/google/uuid"
)

type ItineraryModel struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      string    `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User UserModel `gorm:"foreignKey:UserID"`
}

func (ItineraryModel) TableName() string {
	return "itineraries"
}

type ItineraryParkModel struct {
	ItineraryID uint      `gorm:"primaryKey"`
	ParkID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	DayNumber   int       `gorm:"primaryKey;not null"`
	Notes       string    `gorm:"type:text"`

	Itinerary ItineraryModel `gorm:"foreignKey:ItineraryID;constraint:OnDelete:CASCADE"`
	Park      ParkModel      `gorm:"foreignKey:ParkID"`
}

func (ItineraryParkModel) TableName() string {
	return "itinerary_parks"
}
