package models

import "time"

// UserModel mirrors identity-service accounts; the ID is the identity
// service's UUID, not locally generated.
type UserModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Email     string `gorm:"size:255;uniqueIndex;not null"`
	FullName  string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}
