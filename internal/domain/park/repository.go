package park

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for parks.
type Repository interface {
	// List returns parks with offset pagination plus the total row count.
	List(ctx context.Context, skip, limit int) ([]*Park, int64, error)
	// FindByID returns the park with the given opaque identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Park, error)
	// FindByParkCode returns the park with the given code. The lookup is
	// case-insensitive; codes are stored lowercase.
	FindByParkCode(ctx context.Context, parkCode string) (*Park, error)
	// Search returns parks whose name or description contains the term,
	// case-insensitively.
	Search(ctx context.Context, term string) ([]*Park, error)
	// Save inserts a park row (seeding only).
	Save(ctx context.Context, p *Park) error
}
