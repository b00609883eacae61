package tsp

import "errors"

// Sentinel errors. Callers match with errors.Is; context is added by
// wrapping with %w at the boundary where it is detected.
var (
	// ErrNoCities is returned when an instance is built from an empty city set.
	ErrNoCities = errors.New("tsp: no cities")

	// ErrNonFiniteCoordinate is returned when a city has a NaN/±Inf coordinate.
	ErrNonFiniteCoordinate = errors.New("tsp: non-finite city coordinate")

	// ErrNilInstance is returned when a nil *Instance is passed.
	ErrNilInstance = errors.New("tsp: nil instance")

	// ErrNilTour is returned when a nil *Tour is passed.
	ErrNilTour = errors.New("tsp: nil tour")

	// ErrInstanceMismatch is returned when two tours over different instances
	// are combined.
	ErrInstanceMismatch = errors.New("tsp: tours belong to different instances")

	// ErrDimensionMismatch is returned when an order or index does not fit the
	// instance size.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrCorruptTour signals a broken permutation invariant (duplicate or
	// missing city). Produced only by programming defects; runs must abort.
	ErrCorruptTour = errors.New("tsp: tour is not a permutation of the city set")

	// ErrInvalidOption is returned for out-of-range tuning parameters.
	ErrInvalidOption = errors.New("tsp: invalid option")
)
