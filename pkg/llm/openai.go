package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIClient sends the prompt as a single chat completion. Grounding tools
// have no equivalent here and TopK is not supported by the API.
type OpenAIClient struct {
	client  *openai.Client
	timeout time.Duration
	logger  *zap.Logger
}

// NewOpenAIFactory returns a Factory producing a fresh OpenAIClient per call.
func NewOpenAIFactory(apiKey string, timeout time.Duration, logger *zap.Logger) Factory {
	return newOpenAIFactory(openai.DefaultConfig(apiKey), timeout, logger)
}

func newOpenAIFactory(cfg openai.ClientConfig, timeout time.Duration, logger *zap.Logger) Factory {
	return func(ctx context.Context) (Client, error) {
		return &OpenAIClient{
			client:  openai.NewClientWithConfig(cfg),
			timeout: timeout,
			logger:  logger,
		}, nil
	}
}

func (c *OpenAIClient) GenerateContent(ctx context.Context, req Request) (*Response, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: req.Config.Temperature,
		TopP:        req.Config.TopP,
	}

	if req.Config.ResponseSchema != nil {
		raw, err := json.Marshal(JSONSchema(req.Config.ResponseSchema))
		if err != nil {
			return nil, fmt.Errorf("openai: marshal response schema: %w", err)
		}
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "itinerary",
				Schema: json.RawMessage(raw),
				Strict: true,
			},
		}
	}

	if len(req.Tools) > 0 {
		c.logger.Warn("grounding tools are not supported by the OpenAI adapter; sending request without them",
			zap.Int("dropped_tools", len(req.Tools)))
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) &&
			(apiErr.HTTPStatusCode == http.StatusUnauthorized || apiErr.HTTPStatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("openai: %w: %w", ErrAuthorization, err)
		}
		return nil, classify("openai", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: %w", ErrEmptyResponse)
	}

	return &Response{Text: resp.Choices[0].Message.Content}, nil
}

func (c *OpenAIClient) Close() error {
	return nil
}

// JSONSchema renders s as a JSON Schema document. Objects are closed with
// additionalProperties false, which OpenAI strict mode requires.
func JSONSchema(s *Schema) map[string]any {
	if s == nil {
		return nil
	}
	out := map[string]any{"type": string(s.Type)}
	if s.Type == TypeObject {
		out["additionalProperties"] = false
	}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = JSONSchema(prop)
		}
		out["properties"] = props
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	if s.Items != nil {
		out["items"] = JSONSchema(s.Items)
	}
	return out
}
