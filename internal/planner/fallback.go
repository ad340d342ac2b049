package planner

import (
	"fmt"

	"tripcraft/internal/models/request_models"
	"tripcraft/internal/models/response_models"
)

// FallbackNotes explains why a fallback itinerary has no daily breakdown.
const FallbackNotes = "The planner could not return a structured itinerary, so its full answer is shown in the overview."

// BuildFallback wraps an untrusted reply in a minimal itinerary built from
// the request itself.
func BuildFallback(prefs request_models.TravelPreferences, raw string) response_models.GeneratedItinerary {
	return response_models.GeneratedItinerary{
		Destination:        prefs.Destination,
		Duration:           prefs.Duration,
		Overview:           raw,
		Itinerary:          []response_models.DayPlan{},
		PackingSuggestions: []string{},
		Notes:              FallbackNotes,
		BudgetSummary:      fmt.Sprintf("Planned around a total budget of %s %s.", formatBudget(prefs.Budget), prefs.Currency),
	}
}
