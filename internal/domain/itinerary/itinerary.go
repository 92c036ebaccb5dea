package itinerary

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Itinerary is a user-owned trip plan. The description holds the generated
// narrative text verbatim; its shape is not validated here.
type Itinerary struct {
	id          uint
	ownerID     string
	title       string
	description string
	startDate   time.Time
	endDate     time.Time
	parkDays    []ParkDay
	createdAt   time.Time
	updatedAt   time.Time
}

// ParkDay associates one park with one day of an itinerary.
type ParkDay struct {
	ParkID    uuid.UUID
	DayNumber int
	Notes     string
}

// NewItinerary creates an itinerary owned by ownerID. The date ordering
// invariant (start <= end) is enforced here.
func NewItinerary(ownerID, title, description string, startDate, endDate time.Time) (*Itinerary, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, fmt.Errorf("owner ID is required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, fmt.Errorf("start and end dates are required")
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date cannot precede start date")
	}

	now := time.Now()
	return &Itinerary{
		ownerID:     ownerID,
		title:       title,
		description: description,
		startDate:   startDate,
		endDate:     endDate,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds an itinerary from persisted state.
func Reconstruct(
	id uint,
	ownerID string,
	title string,
	description string,
	startDate, endDate time.Time,
	parkDays []ParkDay,
	createdAt, updatedAt time.Time,
) *Itinerary {
	return &Itinerary{
		id:          id,
		ownerID:     ownerID,
		title:       title,
		description: description,
		startDate:   startDate,
		endDate:     endDate,
		parkDays:    parkDays,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (i *Itinerary) ID() uint             { return i.id }
func (i *Itinerary) OwnerID() string      { return i.ownerID }
func (i *Itinerary) Title() string        { return i.title }
func (i *Itinerary) Description() string  { return i.description }
func (i *Itinerary) StartDate() time.Time { return i.startDate }
func (i *Itinerary) EndDate() time.Time   { return i.endDate }
func (i *Itinerary) ParkDays() []ParkDay  { return i.parkDays }
func (i *Itinerary) CreatedAt() time.Time { return i.createdAt }
func (i *Itinerary) UpdatedAt() time.Time { return i.updatedAt }

// SetID assigns the storage identifier after insert.
func (i *Itinerary) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("itinerary ID already set")
	}
	if id == 0 {
		return fmt.Errorf("itinerary ID cannot be zero")
	}
	i.id = id
	return nil
}

// IsOwnedBy reports whether the itinerary belongs to the given user.
func (i *Itinerary) IsOwnedBy(userID string) bool {
	return i.ownerID == userID
}

// Days returns the trip length in days, inclusive of both endpoints.
func (i *Itinerary) Days() int {
	return int(i.endDate.Sub(i.startDate).Hours()/24) + 1
}

// AddParkDay appends a park/day association. The day number must fall within
// the itinerary's date span.
func (i *Itinerary) AddParkDay(parkID uuid.UUID, dayNumber int, notes string) error {
	if dayNumber < 1 || dayNumber > i.Days() {
		return fmt.Errorf("day number %d outside itinerary span of %d days", dayNumber, i.Days())
	}
	i.parkDays = append(i.parkDays, ParkDay{
		ParkID:    parkID,
		DayNumber: dayNumber,
		Notes:     notes,
	})
	return nil
}

// Update applies caller-supplied changes. Nil fields are left untouched.
// Date changes re-validate the ordering invariant against the merged values.
func (i *Itinerary) Update(title, description *string, startDate, endDate *time.Time) error {
	newStart := i.startDate
	newEnd := i.endDate
	if startDate != nil {
		newStart = *startDate
	}
	if endDate != nil {
		newEnd = *endDate
	}
	if newEnd.Before(newStart) {
		return fmt.Errorf("end date cannot precede start date")
	}

	if title != nil {
		if strings.TrimSpace(*title) == "" {
			return fmt.Errorf("title cannot be empty")
		}
		if len(*title) > 200 {
			return fmt.Errorf("title exceeds maximum length of 200 characters")
		}
		i.title = *title
	}
	if description != nil {
		i.description = *description
	}
	i.startDate = newStart
	i.endDate = newEnd
	i.updatedAt = time.Now()
	return nil
}
