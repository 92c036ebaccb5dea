package user

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// User mirrors an identity-service account into the local database. Identity
// and credential lifecycle are fully owned by the external identity service;
// this record only anchors foreign keys and profile display fields.
type User struct {
	id        string
	email     string
	fullName  string
	createdAt time.Time
	updatedAt time.Time
}

// NewUser mirrors a freshly signed-up identity-service account. The ID is the
// identity service's UUID, never locally generated.
func NewUser(id, email, fullName string) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}

	now := time.Now()
	return &User{
		id:        id,
		email:     email,
		fullName:  fullName,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a user from persisted state.
func Reconstruct(id, email, fullName string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		email:     email,
		fullName:  fullName,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (u *User) ID() string           { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) FullName() string     { return u.fullName }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// Repository defines persistence operations for mirrored users.
type Repository interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
}
