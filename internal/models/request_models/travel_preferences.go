package request_models

import (
	"errors"
	"math"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	ErrBlankDestination   = errors.New("destination must not be blank")
	ErrPartialCoordinates = errors.New("latitude and longitude must be provided together")
)

// TravelPreferences is the user's request for an itinerary. Latitude and
// Longitude are either both set or both nil.
type TravelPreferences struct {
	Destination string   `json:"destination" binding:"required"`
	Duration    int      `json:"duration" binding:"required,min=1,max=60"`
	Interests   string   `json:"interests"`
	Budget      float64  `json:"budget" binding:"gte=0"`
	Currency    string   `json:"currency" binding:"required,max=8"`
	Latitude    *float64 `json:"latitude,omitempty" binding:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude,omitempty" binding:"omitempty,gte=-180,lte=180"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate applies the same binding rules gin uses for request bodies plus
// the checks struct tags cannot express.
func (p TravelPreferences) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.SetTagName("binding")
	})
	if err := validate.Struct(p); err != nil {
		return err
	}
	if strings.TrimSpace(p.Destination) == "" {
		return ErrBlankDestination
	}
	if (p.Latitude == nil) != (p.Longitude == nil) {
		return ErrPartialCoordinates
	}
	return nil
}

// HasCoordinates reports whether both coordinates are set to finite numbers.
// When zeroIsPresent is false a coordinate equal to 0 counts as missing.
func (p TravelPreferences) HasCoordinates(zeroIsPresent bool) bool {
	return coordinatePresent(p.Latitude, zeroIsPresent) && coordinatePresent(p.Longitude, zeroIsPresent)
}

func coordinatePresent(v *float64, zeroIsPresent bool) bool {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return false
	}
	return zeroIsPresent || *v != 0
}
