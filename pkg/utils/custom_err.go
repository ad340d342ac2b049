package utils

import "errors"

var (
	ErrInvalidPreferences = errors.New("invalid travel preferences")
	ErrModelAuthorization = errors.New("model authorization failed")
	ErrModelUnavailable   = errors.New("model service unavailable")
	ErrItineraryFormat    = errors.New("itinerary format violated")
)

// User-facing messages attached to PlanError.
const (
	MsgInvalidPreferences = "Please check your travel preferences and try again."
	MsgModelAuthorization = "Your API key selection is invalid or missing. Please select a valid API key and try again."
	MsgModelUnavailable   = "We couldn't generate your itinerary right now. Please try again later."
	MsgItineraryFormat    = "The planner returned an itinerary in an unexpected format. Please try again."
)

// PlanError carries a message safe to show to the user. It unwraps to both
// its Kind sentinel and the underlying cause.
type PlanError struct {
	Kind    error
	Message string
	Cause   error
}

func (e *PlanError) Error() string {
	return e.Message
}

func (e *PlanError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func NewPlanError(kind error, message string, cause error) *PlanError {
	return &PlanError{Kind: kind, Message: message, Cause: cause}
}

// UserMessage returns the user-facing message carried by err, or fallback
// when err is not a PlanError.
func UserMessage(err error, fallback string) string {
	var planErr *PlanError
	if errors.As(err, &planErr) && planErr.Message != "" {
		return planErr.Message
	}
	return fallback
}
