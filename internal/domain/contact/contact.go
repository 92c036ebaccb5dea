package contact

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Contact is a message submitted through the site's contact form, attributed
// to the authenticated sender.
type Contact struct {
	id        uint
	userID    string
	name      string
	email     string
	message   string
	createdAt time.Time
}

func NewContact(userID, name, email, message string) (*Contact, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > 5000 {
		return nil, fmt.Errorf("message exceeds maximum length of 5000 characters")
	}

	return &Contact{
		userID:    userID,
		name:      name,
		email:     email,
		message:   message,
		createdAt: time.Now(),
	}, nil
}

// Reconstruct rebuilds a contact from persisted state.
func Reconstruct(id uint, userID, name, email, message string, createdAt time.Time) *Contact {
	return &Contact{
		id:        id,
		userID:    userID,
		name:      name,
		email:     email,
		message:   message,
		createdAt: createdAt,
	}
}

func (c *Contact) ID() uint             { return c.id }
func (c *Contact) UserID() string       { return c.userID }
func (c *Contact) Name() string         { return c.name }
func (c *Contact) Email() string        { return c.email }
func (c *Contact) Message() string      { return c.message }
func (c *Contact) CreatedAt() time.Time { return c.createdAt }

// SetID assigns the storage identifier after insert.
func (c *Contact) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("contact ID already set")
	}
	c.id = id
	return nil
}

// Repository defines persistence operations for contact messages.
type Repository interface {
	Save(ctx context.Context, c *Contact) error
}
