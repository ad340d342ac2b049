package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	legacy "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// LegacyGeminiClient uses the older generative-ai-go SDK. The SDK has no
// grounding tools, so requested tools are dropped and replies never carry
// grounding metadata.
type LegacyGeminiClient struct {
	client  *legacy.Client
	timeout time.Duration
	logger  *zap.Logger
}

// NewLegacyGeminiFactory returns a Factory producing a fresh LegacyGeminiClient per call.
func NewLegacyGeminiFactory(apiKey string, timeout time.Duration, logger *zap.Logger) Factory {
	return func(ctx context.Context) (Client, error) {
		client, err := legacy.NewClient(ctx, option.WithAPIKey(apiKey))
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return &LegacyGeminiClient{client: client, timeout: timeout, logger: logger}, nil
	}
}

func (c *LegacyGeminiClient) GenerateContent(ctx context.Context, req Request) (*Response, error) {
	model := c.client.GenerativeModel(req.Model)
	model.SetTemperature(req.Config.Temperature)
	model.SetTopP(req.Config.TopP)
	model.SetTopK(req.Config.TopK)

	if req.Config.ResponseSchema != nil {
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = toLegacySchema(req.Config.ResponseSchema)
	}

	if len(req.Tools) > 0 {
		c.logger.Warn("grounding tools are not supported by the legacy Gemini SDK; sending request without them",
			zap.Int("dropped_tools", len(req.Tools)))
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := model.GenerateContent(ctx, legacy.Text(req.Prompt))
	if err != nil {
		return nil, classify("gemini-legacy", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini-legacy: %w", ErrEmptyResponse)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(legacy.Text); ok {
			text.WriteString(string(txt))
		}
	}

	return &Response{Text: text.String()}, nil
}

func (c *LegacyGeminiClient) Close() error {
	return c.client.Close()
}

func toLegacySchema(s *Schema) *legacy.Schema {
	if s == nil {
		return nil
	}
	out := &legacy.Schema{
		Type:        legacyType(s.Type),
		Description: s.Description,
		Required:    s.Required,
		Items:       toLegacySchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*legacy.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toLegacySchema(prop)
		}
	}
	return out
}

func legacyType(t SchemaType) legacy.Type {
	switch t {
	case TypeObject:
		return legacy.TypeObject
	case TypeArray:
		return legacy.TypeArray
	case TypeInteger:
		return legacy.TypeInteger
	case TypeNumber:
		return legacy.TypeNumber
	default:
		return legacy.TypeString
	}
}
