package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPreferences() Preferences {
	return Preferences{
		ParkCode:            "yose",
		NumDays:             3,
		FitnessLevel:        "moderate",
		PreferredActivities: []string{"hiking", "photography"},
		VisitSeason:         "summer",
		StartDate:           "2026-06-01",
		EndDate:             "2026-06-03",
	}
}

func TestPreferences_Validate(t *testing.T) {
	start, end, err := validPreferences().Validate()
	require.NoError(t, err)
	assert.Equal(t, date("2026-06-01"), start)
	assert.Equal(t, date("2026-06-03"), end)
}

func TestPreferences_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Preferences)
		wantErr string
	}{
		{
			name:    "missing park code",
			mutate:  func(p *Preferences) { p.ParkCode = "  " },
			wantErr: "parkcode is required",
		},
		{
			name:    "zero days",
			mutate:  func(p *Preferences) { p.NumDays = 0 },
			wantErr: "num_days must be at least 1",
		},
		{
			name:    "negative days",
			mutate:  func(p *Preferences) { p.NumDays = -2 },
			wantErr: "num_days must be at least 1",
		},
		{
			name:    "malformed start date",
			mutate:  func(p *Preferences) { p.StartDate = "06/01/2026" },
			wantErr: "invalid start_date",
		},
		{
			name:    "malformed end date",
			mutate:  func(p *Preferences) { p.EndDate = "June 3" },
			wantErr: "invalid end_date",
		},
		{
			name: "end before start",
			mutate: func(p *Preferences) {
				p.StartDate = "2026-06-03"
				p.EndDate = "2026-06-01"
			},
			wantErr: "end_date cannot precede start_date",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validPreferences()
			tc.mutate(&p)
			_, _, err := p.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestPreferences_WantsCamping(t *testing.T) {
	tests := []struct {
		name       string
		activities []string
		want       bool
	}{
		{name: "no camping", activities: []string{"hiking", "wildlife viewing"}, want: false},
		{name: "camping present", activities: []string{"hiking", "camping"}, want: true},
		{name: "case insensitive", activities: []string{"Camping"}, want: true},
		{name: "padded entry", activities: []string{" camping "}, want: true},
		{name: "substring does not match", activities: []string{"camping gear shopping"}, want: false},
		{name: "empty list", activities: nil, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validPreferences()
			p.PreferredActivities = tc.activities
			assert.Equal(t, tc.want, p.WantsCamping())
		})
	}
}
