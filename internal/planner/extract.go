package planner

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fenceLine matches a markdown fence line, with or without a language tag.
var fenceLine = regexp.MustCompile("(?m)^[ \t]*```[A-Za-z0-9_+.-]*[ \t]*\r?$\n?")

// ExtractJSON recovers a JSON document from a model reply. It strips fence
// lines, slices from the first '{' or '[' to the last matching closer and
// returns the slice only if it parses. Nothing is repaired; a reply with
// several top-level documents or stray braces in prose yields no match.
func ExtractJSON(raw string) (string, bool) {
	cleaned := fenceLine.ReplaceAllString(raw, "")

	start := strings.IndexAny(cleaned, "{[")
	if start < 0 {
		return "", false
	}

	closer := "}"
	if cleaned[start] == '[' {
		closer = "]"
	}

	end := strings.LastIndex(cleaned, closer)
	if end <= start {
		return "", false
	}

	candidate := cleaned[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return "", false
	}
	return candidate, true
}
