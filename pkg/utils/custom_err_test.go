package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanErrorUnwrapsToKindAndCause(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := fmt.Errorf("generate: %w", NewPlanError(ErrModelUnavailable, MsgModelUnavailable, cause))

	assert.ErrorIs(t, err, ErrModelUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrModelAuthorization)
	assert.Equal(t, MsgModelUnavailable, UserMessage(err, "fallback"))
}

func TestPlanErrorWithoutCause(t *testing.T) {
	err := NewPlanError(ErrItineraryFormat, MsgItineraryFormat, nil)

	assert.ErrorIs(t, err, ErrItineraryFormat)
	assert.Equal(t, MsgItineraryFormat, err.Error())
}

func TestUserMessageFallback(t *testing.T) {
	assert.Equal(t, "fallback", UserMessage(errors.New("plain"), "fallback"))
}
