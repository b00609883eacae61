package geo

import "errors"

var (
	// ErrNegativeCount is returned when a negative number of cities is requested.
	ErrNegativeCount = errors.New("geo: negative city count")

	// ErrInvalidRange is returned when a coordinate range is empty, inverted
	// or not finite.
	ErrInvalidRange = errors.New("geo: invalid coordinate range")
)
