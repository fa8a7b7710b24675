package kernel

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// CoordinatesLength is the exact number of entries a coordinate pair must
// have: latitude at index 0, longitude at index 1.
const CoordinatesLength = 2

// ErrCoordinatesAreNotConstructed is returned when attempting to use an
// improperly initialized Coordinates value. Coordinates must be created
// through NewCoordinates or CoordinatesFromSlice.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates or CoordinatesFromSlice")

// Coordinates is an immutable value object holding one geographic point as a
// latitude/longitude pair of non-blank strings. The values are passed
// verbatim to the distance provider, so no numeric parsing is performed
// here; the provider owns the coordinate format.
//
// The zero value is invalid and fails validation. Use the constructors.
//
// Example:
//
//	origin, err := kernel.NewCoordinates("48.858245", "2.294642")
//	if err != nil {
//	    // handle validation error
//	}
type Coordinates struct { //nolint:recvcheck //using for validation
	latitude  string
	longitude string
	guard     guard.ConstructorGuard
}

// NewCoordinates creates Coordinates from a latitude and a longitude.
// Both values must be non-blank.
func NewCoordinates(latitude string, longitude string) (Coordinates, error) {
	coords := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		coords.setLatitude(latitude),
		coords.setLongitude(longitude),
	); err != nil {
		return Coordinates{}, err
	}

	return coords, nil
}

// CoordinatesFromSlice creates Coordinates from a raw pair as it arrives on
// the wire: exactly two entries, latitude first. paramName names the request
// field being validated so failures point at the offending parameter.
func CoordinatesFromSlice(paramName string, pair []string) (Coordinates, error) {
	if len(pair) != CoordinatesLength {
		return Coordinates{}, errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("expected %d coordinates, got %d", CoordinatesLength, len(pair)))
	}

	coords, err := NewCoordinates(pair[0], pair[1])
	if err != nil {
		return Coordinates{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}

	return coords, nil
}

// Validate checks if the Coordinates were properly constructed.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

// Latitude returns the latitude string, index 0 of the original pair.
func (c Coordinates) Latitude() string {
	return c.latitude
}

// Longitude returns the longitude string, index 1 of the original pair.
func (c Coordinates) Longitude() string {
	return c.longitude
}

// String returns the "lat,lon" form used in provider query parameters.
func (c Coordinates) String() string {
	return fmt.Sprintf("%s,%s", c.latitude, c.longitude)
}

// IsEqual compares two coordinate pairs for equality. Both must be properly
// constructed for the comparison to succeed.
func (c Coordinates) IsEqual(other Coordinates) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return c == other, nil
}

func (c *Coordinates) setLatitude(latitude string) error {
	if strings.TrimSpace(latitude) == "" {
		return errs.NewValueIsRequiredError("latitude")
	}

	c.latitude = latitude
	return nil
}

func (c *Coordinates) setLongitude(longitude string) error {
	if strings.TrimSpace(longitude) == "" {
		return errs.NewValueIsRequiredError("longitude")
	}

	c.longitude = longitude
	return nil
}
