package response_models

type Activity struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

type GeneratedItinerary struct {
	Destination        string    `json:"destination"`
	Duration           int       `json:"duration"`
	Overview           string    `json:"overview"`
	Itinerary          []DayPlan `json:"itinerary"`
	PackingSuggestions []string  `json:"packingSuggestions"`
	Notes              string    `json:"notes"`
	BudgetSummary      string    `json:"budgetSummary"`
}

// Citation is a source the model consulted while planning.
type Citation struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

type ItineraryResult struct {
	ItineraryData GeneratedItinerary `json:"itineraryData"`
	SourceURLs    []Citation         `json:"sourceUrls"`
}
