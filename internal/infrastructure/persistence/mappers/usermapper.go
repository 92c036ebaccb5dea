package mappers

import (
	"parksexplorer/internal/domain/contact"
	"parksexplorer/internal/domain/user"
	"parksexplorer/internal/infrastructure/persistence/models"
)

type UserMapper struct{}

func NewUserMapper() UserMapper {
	return UserMapper{}
}

func (m UserMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:        u.ID(),
		Email:     u.Email(),
		FullName:  u.FullName(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func (m UserMapper) ToDomain(model *models.UserModel) *user.User {
	return user.Reconstruct(
		model.ID,
		model.Email,
		model.FullName,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

type ContactMapper struct{}

func NewContactMapper() ContactMapper {
	return ContactMapper{}
}

func (m ContactMapper) ToModel(c *contact.Contact) *models.ContactModel {
	return &models.ContactModel{
		ID:        c.ID(),
		UserID:    c.UserID(),
		Name:      c.Name(),
		Email:     c.Email(),
		Message:   c.Message(),
		CreatedAt: c.CreatedAt(),
	}
}

func (m ContactMapper) ToDomain(model *models.ContactModel) *contact.Contact {
	return contact.Reconstruct(
		model.ID,
		model.UserID,
		model.Name,
		model.Email,
		model.Message,
		model.CreatedAt,
	)
}
