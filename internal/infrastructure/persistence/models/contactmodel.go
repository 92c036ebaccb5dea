package models

import "time"

type ContactModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"type:uuid;not null;index"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null"`
	Message   string `gorm:"type:text;not null"`
	CreatedAt time.Time

	User UserModel `gorm:"foreignKey:UserID"`
}

func (ContactModel) TableName() string {
	return "contacts"
}
