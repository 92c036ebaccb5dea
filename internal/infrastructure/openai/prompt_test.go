package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"parksexplorer/internal/domain/itinerary"
)

func TestItinerarySystemPrompt_AccommodationVariant(t *testing.T) {
	hotel := ItinerarySystemPrompt(false)
	assert.Contains(t, hotel, "Recommended Hotel")
	assert.NotContains(t, hotel, "Recommended Campsite")

	campsite := ItinerarySystemPrompt(true)
	assert.Contains(t, campsite, "Recommended Campsite")
	assert.NotContains(t, campsite, "Recommended Hotel")
}

func TestItinerarySystemPrompt_FixedFormat(t *testing.T) {
	prompt := ItinerarySystemPrompt(false)

	assert.Contains(t, prompt, "📅 Day [Number]: [Title]")
	assert.Contains(t, prompt, "Morning:")
	assert.Contains(t, prompt, "Afternoon:")
	assert.Contains(t, prompt, "Evening:")
	assert.Contains(t, prompt, "🍽️ Recommended Restaurant")
}

func TestItineraryUserPrompt(t *testing.T) {
	prefs := itinerary.Preferences{
		ParkCode:            "yose",
		NumDays:             3,
		FitnessLevel:        "moderate",
		PreferredActivities: []string{"hiking", "photography"},
		VisitSeason:         "summer",
		StartDate:           "2026-06-01",
		EndDate:             "2026-06-03",
	}

	prompt := ItineraryUserPrompt("Yosemite National Park", prefs, "Current conditions: Sunny, 75°F")

	assert.Contains(t, prompt, "Plan a 3 day trip to Yosemite National Park for the summer.")
	assert.Contains(t, prompt, "Fitness Level: moderate")
	assert.Contains(t, prompt, "Preferred Activities: hiking, photography")
	assert.Contains(t, prompt, "Weather: Current conditions: Sunny, 75°F")
	assert.Contains(t, prompt, "Dates: 2026-06-01 to 2026-06-03")
}

func TestParkDescriptionPrompt(t *testing.T) {
	prompt := ParkDescriptionPrompt("Zion National Park", "Sandstone canyons.")

	assert.Contains(t, prompt, "Create an engaging description for Zion National Park.")
	assert.Contains(t, prompt, "OVERVIEW")
	assert.Contains(t, prompt, "MAIN ATTRACTIONS")
	assert.Contains(t, prompt, "ACTIVITIES")
	assert.Contains(t, prompt, "VISITOR TIPS")
	assert.Contains(t, prompt, "Sandstone canyons.")
}

func TestActivityRecommendationsPrompt(t *testing.T) {
	prompt := ActivityRecommendationsPrompt("Zion National Park", "winter", "Sandstone canyons.")

	assert.Contains(t, prompt, "Create activity recommendations for Zion National Park during winter.")
	assert.Contains(t, prompt, "Safety considerations")
	assert.Contains(t, prompt, "Sandstone canyons.")
}

func TestGenerationOptions_Presets(t *testing.T) {
	assert.Less(t, ItineraryOptions.Temperature, DescriptionOptions.Temperature,
		"itinerary generation runs colder for stable formatting")
	assert.Greater(t, ItineraryOptions.MaxTokens, DescriptionOptions.MaxTokens)
}
