package llm

import (
	"context"
)

// Tool names a capability the model may use while answering.
type Tool string

const (
	ToolGoogleSearch Tool = "google_search"
	ToolGoogleMaps   Tool = "google_maps"
)

// LatLng is the retrieval location handed to the maps tool.
type LatLng struct {
	Latitude  float64
	Longitude float64
}

// SchemaType mirrors the JSON schema primitive types the providers understand.
type SchemaType string

const (
	TypeObject  SchemaType = "object"
	TypeArray   SchemaType = "array"
	TypeString  SchemaType = "string"
	TypeInteger SchemaType = "integer"
	TypeNumber  SchemaType = "number"
)

// Schema is a provider-neutral description of the expected reply shape.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Required    []string
	Items       *Schema
}

// GenerationConfig holds the sampling parameters. ResponseSchema is nil when
// the reply must not be constrained.
type GenerationConfig struct {
	Temperature    float32
	TopP           float32
	TopK           int32
	ResponseSchema *Schema
}

type Request struct {
	Model    string
	Prompt   string
	Tools    []Tool
	Location *LatLng
	Config   GenerationConfig
}

// WebSource is a grounding entry pointing at a web page.
type WebSource struct {
	URI   string
	Title string
}

// ReviewSnippet is a review attached to a maps grounding entry.
type ReviewSnippet struct {
	URI   string
	Title string
}

// MapsSource is a grounding entry pointing at a place.
type MapsSource struct {
	URI            string
	Title          string
	ReviewSnippets []ReviewSnippet
}

// GroundingChunk holds exactly one of Web or Maps; chunks of any other kind
// arrive with both nil.
type GroundingChunk struct {
	Web  *WebSource
	Maps *MapsSource
}

type Response struct {
	Text      string
	Grounding []GroundingChunk
}

// Client is a scoped connection to a model provider. Callers construct one
// per request through a Factory and close it when done.
type Client interface {
	GenerateContent(ctx context.Context, req Request) (*Response, error)
	Close() error
}

// Factory builds a new Client.
type Factory func(ctx context.Context) (Client, error)
