package planner

import "tripcraft/pkg/llm"

// ItinerarySchema describes the reply shape requested in Structured mode.
func ItinerarySchema() *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"destination": {Type: llm.TypeString},
			"duration":    {Type: llm.TypeInteger, Description: "Number of days"},
			"overview":    {Type: llm.TypeString, Description: "A short summary of the trip"},
			"itinerary": {
				Type: llm.TypeArray,
				Items: &llm.Schema{
					Type: llm.TypeObject,
					Properties: map[string]*llm.Schema{
						"day":   {Type: llm.TypeInteger},
						"theme": {Type: llm.TypeString},
						"activities": {
							Type: llm.TypeArray,
							Items: &llm.Schema{
								Type: llm.TypeObject,
								Properties: map[string]*llm.Schema{
									"time":        {Type: llm.TypeString, Description: "e.g. Morning, 09:00 AM"},
									"description": {Type: llm.TypeString},
								},
								Required: []string{"time", "description"},
							},
						},
					},
					Required: []string{"day", "theme", "activities"},
				},
			},
			"packingSuggestions": {Type: llm.TypeArray, Items: &llm.Schema{Type: llm.TypeString}},
			"notes":              {Type: llm.TypeString},
			"budgetSummary":      {Type: llm.TypeString, Description: "How the budget shapes the plan"},
		},
		Required: []string{"destination", "duration", "overview", "itinerary", "packingSuggestions", "notes", "budgetSummary"},
	}
}
