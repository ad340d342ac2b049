package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestIsAuthorizationFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"sentinel", fmt.Errorf("wrapped: %w", ErrAuthorization), true},
		{"entity not found", errors.New("Error 404, Message: Requested entity was not found., Status: NOT_FOUND"), true},
		{"invalid key", errors.New("API key not valid. Please pass a valid API key."), true},
		{"permission denied", errors.New("rpc error: code = PermissionDenied desc = PERMISSION_DENIED"), true},
		{"network", errors.New("dial tcp: connection refused"), false},
		{"server error", errors.New("Error 500, Message: internal"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAuthorizationFailure(tt.err))
		})
	}
}

func TestClassifyWrapsAuthorization(t *testing.T) {
	cause := errors.New("Requested entity was not found.")
	err := classify("gemini", cause)

	assert.ErrorIs(t, err, ErrAuthorization)
	assert.ErrorIs(t, err, cause)

	err = classify("gemini", errors.New("timeout"))
	assert.NotErrorIs(t, err, ErrAuthorization)
	assert.Contains(t, err.Error(), "gemini: generate content")
}

func TestJSONSchema(t *testing.T) {
	schema := &Schema{
		Type:     TypeObject,
		Required: []string{"name"},
		Properties: map[string]*Schema{
			"name": {Type: TypeString, Description: "the name"},
			"tags": {Type: TypeArray, Items: &Schema{Type: TypeString}},
		},
	}

	out := JSONSchema(schema)

	assert.Equal(t, "object", out["type"])
	assert.Equal(t, false, out["additionalProperties"])
	assert.Equal(t, []string{"name"}, out["required"])
	props, ok := out["properties"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"type": "string", "description": "the name"}, props["name"])
	assert.Equal(t, map[string]any{"type": "array", "items": map[string]any{"type": "string"}}, props["tags"])
	assert.NotContains(t, props["name"], "additionalProperties")
	assert.Nil(t, JSONSchema(nil))
}

func TestFromGenaiChunksPreservesOrder(t *testing.T) {
	chunks := []*genai.GroundingChunk{
		{Web: &genai.GroundingChunkWeb{URI: "https://a.example", Title: "A"}},
		nil,
		{Maps: &genai.GroundingChunkMaps{
			URI:   "https://maps.example/place",
			Title: "Place",
			PlaceAnswerSources: &genai.GroundingChunkMapsPlaceAnswerSources{
				ReviewSnippets: []*genai.GroundingChunkMapsPlaceAnswerSourcesReviewSnippet{
					{GoogleMapsURI: "https://maps.example/r1", Title: "R1"},
					{GoogleMapsURI: "https://maps.example/r2"},
				},
			},
		}},
		{},
	}

	out := fromGenaiChunks(chunks)

	require.Len(t, out, 3)
	assert.Equal(t, &WebSource{URI: "https://a.example", Title: "A"}, out[0].Web)
	require.NotNil(t, out[1].Maps)
	assert.Equal(t, "Place", out[1].Maps.Title)
	assert.Equal(t, []ReviewSnippet{
		{URI: "https://maps.example/r1", Title: "R1"},
		{URI: "https://maps.example/r2"},
	}, out[1].Maps.ReviewSnippets)
	assert.Nil(t, out[2].Web)
	assert.Nil(t, out[2].Maps)
}

func TestToGenaiSchema(t *testing.T) {
	out := toGenaiSchema(&Schema{
		Type:       TypeObject,
		Properties: map[string]*Schema{"day": {Type: TypeInteger}},
	})

	assert.Equal(t, genai.TypeObject, out.Type)
	assert.Equal(t, genai.TypeInteger, out.Properties["day"].Type)
}
