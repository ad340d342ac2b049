package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcraft/internal/models/request_models"
	"tripcraft/internal/models/response_models"
)

func TestValidateItineraryAcceptsFullReply(t *testing.T) {
	itinerary, err := ValidateItinerary(kyotoJSON)
	require.NoError(t, err)

	assert.Equal(t, response_models.GeneratedItinerary{
		Destination: "Kyoto",
		Duration:    3,
		Overview:    "Temples and food.",
		Itinerary: []response_models.DayPlan{{
			Day:        1,
			Theme:      "Higashiyama",
			Activities: []response_models.Activity{{Time: "Morning", Description: "Kiyomizu-dera"}},
		}},
		PackingSuggestions: []string{"Walking shoes"},
		Notes:              "Carry cash.",
		BudgetSummary:      "Fits within 500 USD.",
	}, *itinerary)
}

func TestValidateItineraryAcceptsMinimalReply(t *testing.T) {
	itinerary, err := ValidateItinerary(`{"destination":"Lisbon","itinerary":[]}`)
	require.NoError(t, err)

	assert.Equal(t, "Lisbon", itinerary.Destination)
	assert.Empty(t, itinerary.Itinerary)
	assert.Nil(t, itinerary.PackingSuggestions)
}

func TestValidateItineraryRejects(t *testing.T) {
	tests := map[string]string{
		"missing destination":    `{"itinerary":[]}`,
		"empty destination":      `{"destination":"","itinerary":[]}`,
		"blank destination":      `{"destination":"   ","itinerary":[]}`,
		"destination not string": `{"destination":42,"itinerary":[]}`,
		"missing itinerary":      `{"destination":"Kyoto"}`,
		"itinerary not array":    `{"destination":"Kyoto","itinerary":{"day":1}}`,
		"top level array":        `[{"destination":"Kyoto","itinerary":[]}]`,
		"not json":               `Kyoto in three days`,
	}

	for name, candidate := range tests {
		t.Run(name, func(t *testing.T) {
			itinerary, err := ValidateItinerary(candidate)
			assert.ErrorIs(t, err, ErrStructuralMismatch)
			assert.Nil(t, itinerary)
		})
	}
}

func TestValidateItineraryToleratesMistypedOptionalFields(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      response_models.GeneratedItinerary
	}{
		{
			name:      "duration as text",
			candidate: `{"destination":"Kyoto","duration":"3 days","itinerary":[{"day":1,"theme":"Temples"}]}`,
			want: response_models.GeneratedItinerary{
				Destination: "Kyoto",
				Itinerary:   []response_models.DayPlan{{Day: 1, Theme: "Temples"}},
			},
		},
		{
			name:      "day as text",
			candidate: `{"destination":"Kyoto","duration":3,"itinerary":[{"day":"1","theme":"Temples","activities":[{"time":"Morning","description":"Kiyomizu-dera"}]}]}`,
			want: response_models.GeneratedItinerary{
				Destination: "Kyoto",
				Duration:    3,
				Itinerary: []response_models.DayPlan{{
					Theme:      "Temples",
					Activities: []response_models.Activity{{Time: "Morning", Description: "Kiyomizu-dera"}},
				}},
			},
		},
		{
			name:      "notes as array",
			candidate: `{"destination":"Kyoto","notes":["a","b"],"itinerary":[]}`,
			want: response_models.GeneratedItinerary{
				Destination: "Kyoto",
				Itinerary:   []response_models.DayPlan{},
			},
		},
		{
			name:      "mixed packing list and stray day entries",
			candidate: `{"destination":"Kyoto","packingSuggestions":["Umbrella",2,{"x":1}],"itinerary":["rest day",{"day":2.5,"activities":"free time"}],"budgetSummary":500}`,
			want: response_models.GeneratedItinerary{
				Destination:        "Kyoto",
				Itinerary:          []response_models.DayPlan{{}},
				PackingSuggestions: []string{"Umbrella"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			itinerary, err := ValidateItinerary(tt.candidate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *itinerary)
		})
	}
}

func TestBuildFallback(t *testing.T) {
	prefs := request_models.TravelPreferences{
		Destination: "Kyoto",
		Duration:    3,
		Budget:      500,
		Currency:    "USD",
	}
	raw := "Day one: temples.\nDay two: ramen."

	got := BuildFallback(prefs, raw)

	assert.Equal(t, "Kyoto", got.Destination)
	assert.Equal(t, 3, got.Duration)
	assert.Equal(t, raw, got.Overview)
	assert.NotNil(t, got.Itinerary)
	assert.Empty(t, got.Itinerary)
	assert.NotNil(t, got.PackingSuggestions)
	assert.Empty(t, got.PackingSuggestions)
	assert.Equal(t, FallbackNotes, got.Notes)
	assert.Equal(t, "Planned around a total budget of 500 USD.", got.BudgetSummary)
}

func TestBuildFallbackFormatsFractionalBudget(t *testing.T) {
	got := BuildFallback(request_models.TravelPreferences{Destination: "Porto", Duration: 1, Budget: 99.5, Currency: "EUR"}, "")
	assert.Equal(t, "Planned around a total budget of 99.5 EUR.", got.BudgetSummary)
}
