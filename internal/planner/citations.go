package planner

import (
	"tripcraft/internal/models/response_models"
	"tripcraft/pkg/llm"
)

// ReviewPlaceholderTitle labels review snippets that arrive without a title.
const ReviewPlaceholderTitle = "Google Maps review"

// NormalizeCitations flattens grounding metadata into citations, keeping the
// source order. A maps entry is followed by its review snippets. Entries of
// unknown kind and entries without a link are skipped.
func NormalizeCitations(chunks []llm.GroundingChunk) []response_models.Citation {
	citations := make([]response_models.Citation, 0, len(chunks))
	for _, chunk := range chunks {
		switch {
		case chunk.Web != nil:
			citations = appendCitation(citations, chunk.Web.URI, chunk.Web.Title)
		case chunk.Maps != nil:
			citations = appendCitation(citations, chunk.Maps.URI, chunk.Maps.Title)
			for _, snippet := range chunk.Maps.ReviewSnippets {
				title := snippet.Title
				if title == "" {
					title = ReviewPlaceholderTitle
				}
				citations = appendCitation(citations, snippet.URI, title)
			}
		}
	}
	return citations
}

func appendCitation(citations []response_models.Citation, uri, title string) []response_models.Citation {
	if uri == "" {
		return citations
	}
	return append(citations, response_models.Citation{URI: uri, Title: title})
}
