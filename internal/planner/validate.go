package planner

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"

	"tripcraft/internal/models/response_models"
)

// ErrStructuralMismatch is returned when a parsed reply lacks the fields every
// itinerary must carry.
var ErrStructuralMismatch = errors.New("reply does not match the itinerary shape")

// structuralSchema only pins what downstream code relies on: a non-blank
// destination and an itinerary array. Everything else is optional.
const structuralSchema = `{
  "type": "object",
  "required": ["destination", "itinerary"],
  "properties": {
    "destination": {"type": "string", "pattern": "\\S"},
    "itinerary": {"type": "array"}
  }
}`

var structuralLoader = gojsonschema.NewStringLoader(structuralSchema)

// ValidateItinerary checks candidate against the structural contract and
// decodes it. Optional fields of an unexpected type decode to their zero
// value; only the destination and itinerary checks can reject a reply.
func ValidateItinerary(candidate string) (*response_models.GeneratedItinerary, error) {
	result, err := gojsonschema.Validate(structuralLoader, gojsonschema.NewStringLoader(candidate))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStructuralMismatch, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrStructuralMismatch, strings.Join(msgs, "; "))
	}

	return decodeItinerary(gjson.Parse(candidate)), nil
}

func decodeItinerary(doc gjson.Result) *response_models.GeneratedItinerary {
	days := doc.Get("itinerary").Array()
	itinerary := &response_models.GeneratedItinerary{
		Destination:   stringValue(doc.Get("destination")),
		Duration:      intValue(doc.Get("duration")),
		Overview:      stringValue(doc.Get("overview")),
		Itinerary:     make([]response_models.DayPlan, 0, len(days)),
		Notes:         stringValue(doc.Get("notes")),
		BudgetSummary: stringValue(doc.Get("budgetSummary")),
	}

	for _, day := range days {
		if !day.IsObject() {
			continue
		}
		itinerary.Itinerary = append(itinerary.Itinerary, decodeDay(day))
	}

	if packing := doc.Get("packingSuggestions"); packing.IsArray() {
		itinerary.PackingSuggestions = make([]string, 0, len(packing.Array()))
		for _, item := range packing.Array() {
			if item.Type == gjson.String {
				itinerary.PackingSuggestions = append(itinerary.PackingSuggestions, item.Str)
			}
		}
	}
	return itinerary
}

func decodeDay(day gjson.Result) response_models.DayPlan {
	plan := response_models.DayPlan{
		Day:   intValue(day.Get("day")),
		Theme: stringValue(day.Get("theme")),
	}
	if activities := day.Get("activities"); activities.IsArray() {
		plan.Activities = make([]response_models.Activity, 0, len(activities.Array()))
		for _, activity := range activities.Array() {
			if !activity.IsObject() {
				continue
			}
			plan.Activities = append(plan.Activities, response_models.Activity{
				Time:        stringValue(activity.Get("time")),
				Description: stringValue(activity.Get("description")),
			})
		}
	}
	return plan
}

func stringValue(r gjson.Result) string {
	if r.Type != gjson.String {
		return ""
	}
	return r.Str
}

// intValue accepts integral JSON numbers only.
func intValue(r gjson.Result) int {
	if r.Type != gjson.Number || r.Num != math.Trunc(r.Num) {
		return 0
	}
	return int(r.Num)
}
