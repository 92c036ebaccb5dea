package openai

import (
	"fmt"
	"strings"

	"parksexplorer/internal/domain/itinerary"
)

// Generation settings per prompt kind. Itinerary generation runs at low
// temperature for consistent formatting; descriptive prompts run warmer.
var (
	ItineraryOptions = GenerationOptions{Temperature: 0.22, MaxTokens: 3000}

	DescriptionOptions = GenerationOptions{Temperature: 0.7, MaxTokens: 500}

	ActivitiesOptions = GenerationOptions{Temperature: 0.7, MaxTokens: 400}
)

const itinerarySystemPromptFormat = `You are an AI assistant integrated into the National Parks Explorer application.

REQUIRED DAILY FORMAT:
📅 Day [Number]: [Title]

Morning:
• [Activity 1 with trail name and distance if applicable]
• [Activity 2]

Afternoon:
• [Activity 1 with trail name and distance if applicable]
• [Activity 2]

Evening:
• [Activity 1]
• [Activity 2]

%s
🍽️ Recommended Restaurant: [Name] (Rating: 4.4+)

---

Follow this exact format for each day of the itinerary.`

// ItinerarySystemPrompt builds the fixed-format system instruction. The
// accommodation line switches to a campsite when camping is preferred.
func ItinerarySystemPrompt(wantsCamping bool) string {
	accommodation := "🏨 Recommended Hotel: [Name] (Rating: 4.4+)"
	if wantsCamping {
		accommodation = "🏨 Recommended Campsite: [Name]"
	}
	return fmt.Sprintf(itinerarySystemPromptFormat, accommodation)
}

// ItineraryUserPrompt builds the per-request instruction from preferences,
// the park's display name and a weather summary.
func ItineraryUserPrompt(parkName string, prefs itinerary.Preferences, weatherSummary string) string {
	return fmt.Sprintf(`Plan a %d day trip to %s for the %s.
Fitness Level: %s (adjust trail distances accordingly)
Preferred Activities: %s
Weather: %s
Dates: %s to %s`,
		prefs.NumDays,
		parkName,
		prefs.VisitSeason,
		prefs.FitnessLevel,
		strings.Join(prefs.PreferredActivities, ", "),
		weatherSummary,
		prefs.StartDate,
		prefs.EndDate,
	)
}

// ParkGuideSystemPrompt is the system instruction for park descriptions.
const ParkGuideSystemPrompt = "You are a knowledgeable national park guide providing informative and engaging park descriptions."

// ParkDescriptionPrompt builds the instruction for an enhanced park
// description with fixed sections.
func ParkDescriptionPrompt(parkName, parkDescription string) string {
	return fmt.Sprintf(`Create an engaging description for %s.
Include the following sections:

OVERVIEW
[Brief introduction and significance]

MAIN ATTRACTIONS
[Key features and must-see spots]

ACTIVITIES
[Available activities by season]

VISITOR TIPS
[Practical advice for visitors]

Base your response on this park data:
%s`, parkName, parkDescription)
}

// RangerSystemPrompt is the system instruction for activity recommendations.
const RangerSystemPrompt = "You are an expert park ranger providing seasonal activity recommendations."

// ActivityRecommendationsPrompt builds the instruction for season-specific
// activity recommendations.
func ActivityRecommendationsPrompt(parkName, season, parkDescription string) string {
	return fmt.Sprintf(`Create activity recommendations for %s during %s.
Include:
- Best activities for the season
- Safety considerations
- Required gear/equipment
- Timing recommendations

Base recommendations on this park data:
%s`, parkName, season, parkDescription)
}
