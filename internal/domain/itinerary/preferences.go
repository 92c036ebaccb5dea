package itinerary

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for itinerary dates.
const DateLayout = "2006-01-02"

// Preferences is the transient request object driving itinerary generation.
// It is never persisted; its content is folded into the generated narrative.
type Preferences struct {
	ParkCode            string
	NumDays             int
	FitnessLevel        string
	PreferredActivities []string
	VisitSeason         string
	StartDate           string
	EndDate             string
}

// Validate checks the preference payload and returns the parsed date range.
func (p Preferences) Validate() (start, end time.Time, err error) {
	if strings.TrimSpace(p.ParkCode) == "" {
		return start, end, fmt.Errorf("parkcode is required")
	}
	if p.NumDays < 1 {
		return start, end, fmt.Errorf("num_days must be at least 1")
	}
	start, err = time.Parse(DateLayout, p.StartDate)
	if err != nil {
		return start, end, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err = time.Parse(DateLayout, p.EndDate)
	if err != nil {
		return start, end, fmt.Errorf("invalid end_date: %w", err)
	}
	if end.Before(start) {
		return start, end, fmt.Errorf("end_date cannot precede start_date")
	}
	return start, end, nil
}

// WantsCamping reports whether camping is among the preferred activities.
// It selects the campsite variant of the accommodation line in the prompt.
func (p Preferences) WantsCamping() bool {
	for _, a := range p.PreferredActivities {
		if strings.EqualFold(strings.TrimSpace(a), "camping") {
			return true
		}
	}
	return false
}
