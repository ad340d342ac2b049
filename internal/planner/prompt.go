package planner

import (
	"fmt"
	"strconv"
	"strings"

	"tripcraft/internal/models/request_models"
)

const replyShape = `{
  "destination": "string",
  "duration": number,
  "overview": "string",
  "itinerary": [
    {
      "day": number,
      "theme": "string",
      "activities": [{"time": "string", "description": "string"}]
    }
  ],
  "packingSuggestions": ["string"],
  "notes": "string",
  "budgetSummary": "string"
}`

// BuildPrompt renders the planning instructions for prefs. Grounded mode adds
// the user's approximate coordinates.
func BuildPrompt(prefs request_models.TravelPreferences, mode Mode) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a detailed %d-day travel itinerary for %s.\n", prefs.Duration, prefs.Destination)
	fmt.Fprintf(&b, "Traveller interests: %s.\n", interestsOrDefault(prefs.Interests))
	fmt.Fprintf(&b, "Total budget: %s %s.\n\n", formatBudget(prefs.Budget), prefs.Currency)

	b.WriteString("Include:\n")
	b.WriteString("- A short overview of the trip.\n")
	b.WriteString("- A day-by-day breakdown with a theme for each day and activities, each with a time and a description.\n")
	b.WriteString("- Packing suggestions.\n")
	b.WriteString("- Useful notes for the traveller.\n")
	fmt.Fprintf(&b, "- A summary of how the budget of %s %s affects the plan.\n\n", formatBudget(prefs.Budget), prefs.Currency)

	b.WriteString("Respond with a single JSON object in this shape:\n")
	b.WriteString(replyShape)
	b.WriteString("\n")

	if mode == ModeGrounded && prefs.Latitude != nil && prefs.Longitude != nil {
		fmt.Fprintf(&b, "\nThe user is currently near latitude %s, longitude %s; use nearby places where relevant.\n",
			formatCoordinate(*prefs.Latitude), formatCoordinate(*prefs.Longitude))
	}

	return b.String()
}

func interestsOrDefault(interests string) string {
	if strings.TrimSpace(interests) == "" {
		return "general sightseeing"
	}
	return interests
}

func formatBudget(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
