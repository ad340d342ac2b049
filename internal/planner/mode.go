// Package planner holds the itinerary request/response recovery logic: mode
// selection, prompt rendering, JSON extraction, structural validation, the
// fallback itinerary and citation normalisation.
package planner

import (
	"tripcraft/internal/models/request_models"
	"tripcraft/pkg/llm"
)

type Mode string

const (
	// ModeGrounded gives the model location retrieval and drops the schema constraint.
	ModeGrounded Mode = "grounded"
	// ModeStructured enforces the itinerary schema and omits location retrieval.
	ModeStructured Mode = "structured"
)

// Options are the per-deployment knobs of the planner.
type Options struct {
	GroundedModel   string
	StructuredModel string
	Temperature     float32
	TopP            float32
	TopK            int32

	// ZeroCoordinatesPresent decides whether a coordinate of exactly 0 counts
	// as present when choosing the mode.
	ZeroCoordinatesPresent bool
}

func DefaultOptions() Options {
	return Options{
		GroundedModel:          "gemini-2.5-flash",
		StructuredModel:        "gemini-2.5-flash",
		Temperature:            0.7,
		TopP:                   0.95,
		TopK:                   40,
		ZeroCoordinatesPresent: true,
	}
}

// RequestPlan is the outcome of mode selection.
type RequestPlan struct {
	Mode         Mode
	Model        string
	Tools        []llm.Tool
	Location     *llm.LatLng
	StrictSchema bool
}

// SelectMode picks Grounded when both coordinates are present and Structured
// otherwise. The search tool is attached in both modes.
func SelectMode(prefs request_models.TravelPreferences, opts Options) RequestPlan {
	if prefs.HasCoordinates(opts.ZeroCoordinatesPresent) {
		return RequestPlan{
			Mode:  ModeGrounded,
			Model: opts.GroundedModel,
			Tools: []llm.Tool{llm.ToolGoogleSearch, llm.ToolGoogleMaps},
			Location: &llm.LatLng{
				Latitude:  *prefs.Latitude,
				Longitude: *prefs.Longitude,
			},
		}
	}
	return RequestPlan{
		Mode:         ModeStructured,
		Model:        opts.StructuredModel,
		Tools:        []llm.Tool{llm.ToolGoogleSearch},
		StrictSchema: true,
	}
}

// Request assembles the Model Client request for this plan.
func (p RequestPlan) Request(prompt string, opts Options) llm.Request {
	req := llm.Request{
		Model:    p.Model,
		Prompt:   prompt,
		Tools:    p.Tools,
		Location: p.Location,
		Config: llm.GenerationConfig{
			Temperature: opts.Temperature,
			TopP:        opts.TopP,
			TopK:        opts.TopK,
		},
	}
	if p.StrictSchema {
		req.Config.ResponseSchema = ItinerarySchema()
	}
	return req
}
