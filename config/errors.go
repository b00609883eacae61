package config

import "errors"

var (
	// ErrNoCities indicates neither cities nor random_cities was given.
	ErrNoCities = errors.New("config: no cities")

	// ErrAmbiguousCities indicates both cities and random_cities were given.
	ErrAmbiguousCities = errors.New("config: cities and random_cities are mutually exclusive")

	// ErrInvalidCity indicates a city entry with a missing label or a
	// non-finite coordinate.
	ErrInvalidCity = errors.New("config: invalid city")
)
