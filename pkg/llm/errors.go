package llm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAuthorization marks provider failures caused by a missing or invalid
// API key selection.
var ErrAuthorization = errors.New("model provider rejected the credentials")

// ErrEmptyResponse is returned when the provider answers without candidates.
var ErrEmptyResponse = errors.New("model returned no candidates")

var authSignatures = []string{
	"requested entity was not found",
	"api key not valid",
	"api_key_invalid",
	"permission_denied",
	"unauthenticated",
	"incorrect api key",
	"error 401",
	"error 403",
}

// IsAuthorizationFailure reports whether err carries one of the known
// credential failure signatures.
func IsAuthorizationFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrAuthorization) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, sig := range authSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}

// classify wraps err with ErrAuthorization when it looks like a credential
// failure so callers can rely on errors.Is.
func classify(provider string, err error) error {
	if IsAuthorizationFailure(err) {
		return fmt.Errorf("%s: %w: %w", provider, ErrAuthorization, err)
	}
	return fmt.Errorf("%s: generate content: %w", provider, err)
}
