package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiClient talks to the Gemini API through google.golang.org/genai. It is
// the only adapter that supports the search and maps grounding tools.
type GeminiClient struct {
	client  *genai.Client
	timeout time.Duration
	logger  *zap.Logger
}

// NewGeminiFactory returns a Factory producing a fresh GeminiClient per call.
func NewGeminiFactory(apiKey string, timeout time.Duration, logger *zap.Logger) Factory {
	return func(ctx context.Context) (Client, error) {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return &GeminiClient{client: client, timeout: timeout, logger: logger}, nil
	}
}

func (c *GeminiClient) GenerateContent(ctx context.Context, req Request) (*Response, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Config.Temperature),
		TopP:        genai.Ptr(req.Config.TopP),
		TopK:        genai.Ptr(float32(req.Config.TopK)),
	}

	for _, tool := range req.Tools {
		switch tool {
		case ToolGoogleSearch:
			config.Tools = append(config.Tools, &genai.Tool{GoogleSearch: &genai.GoogleSearch{}})
		case ToolGoogleMaps:
			config.Tools = append(config.Tools, &genai.Tool{GoogleMaps: &genai.GoogleMaps{}})
		}
	}

	if req.Location != nil {
		config.ToolConfig = &genai.ToolConfig{
			RetrievalConfig: &genai.RetrievalConfig{
				LatLng: &genai.LatLng{
					Latitude:  genai.Ptr(req.Location.Latitude),
					Longitude: genai.Ptr(req.Location.Longitude),
				},
			},
		}
	}

	if req.Config.ResponseSchema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = toGenaiSchema(req.Config.ResponseSchema)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}
	resp, err := c.client.Models.GenerateContent(ctx, req.Model, contents, config)
	if err != nil {
		return nil, classify("gemini", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini: %w", ErrEmptyResponse)
	}

	candidate := resp.Candidates[0]

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		text.WriteString(part.Text)
	}

	out := &Response{Text: text.String()}
	if candidate.GroundingMetadata != nil {
		out.Grounding = fromGenaiChunks(candidate.GroundingMetadata.GroundingChunks)
	}

	c.logger.Debug("gemini reply received",
		zap.String("model", req.Model),
		zap.Int("reply_length", len(out.Text)),
		zap.Int("grounding_chunks", len(out.Grounding)))

	return out, nil
}

// Close is a no-op; the genai client holds no resources that need releasing.
func (c *GeminiClient) Close() error {
	return nil
}

func fromGenaiChunks(chunks []*genai.GroundingChunk) []GroundingChunk {
	out := make([]GroundingChunk, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk == nil {
			continue
		}
		var gc GroundingChunk
		switch {
		case chunk.Web != nil:
			gc.Web = &WebSource{URI: chunk.Web.URI, Title: chunk.Web.Title}
		case chunk.Maps != nil:
			maps := &MapsSource{URI: chunk.Maps.URI, Title: chunk.Maps.Title}
			if sources := chunk.Maps.PlaceAnswerSources; sources != nil {
				for _, snippet := range sources.ReviewSnippets {
					if snippet == nil {
						continue
					}
					maps.ReviewSnippets = append(maps.ReviewSnippets, ReviewSnippet{
						URI:   snippet.GoogleMapsURI,
						Title: snippet.Title,
					})
				}
			}
			gc.Maps = maps
		}
		out = append(out, gc)
	}
	return out
}

func toGenaiSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        genaiType(s.Type),
		Description: s.Description,
		Required:    s.Required,
		Items:       toGenaiSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	return out
}

func genaiType(t SchemaType) genai.Type {
	switch t {
	case TypeObject:
		return genai.TypeObject
	case TypeArray:
		return genai.TypeArray
	case TypeInteger:
		return genai.TypeInteger
	case TypeNumber:
		return genai.TypeNumber
	default:
		return genai.TypeString
	}
}
