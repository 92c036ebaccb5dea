package itinerary

import "context"

// Repository defines persistence operations for itineraries. Save persists
// the itinerary together with its park/day associations.
type Repository interface {
	Save(ctx context.Context, it *Itinerary) error
	Update(ctx context.Context, it *Itinerary) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Itinerary, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Itinerary, error)
}
