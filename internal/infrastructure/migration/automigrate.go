package migration

import (
	"parksexplorer/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ParkModel{},
		&models.ItineraryModel{},
		&models.ItineraryParkModel{},
		&models.ContactModel{},
	}
}
