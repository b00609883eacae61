package genetic

import "errors"

// Sentinel errors. Configuration errors are wrapped with the offending value
// by Options.Validate; match them with errors.Is.
var (
	// ErrPopulationSize is returned for a non-positive initial population size.
	ErrPopulationSize = errors.New("genetic: invalid population size")

	// ErrSurvivorCount is returned for a survivor count outside [2, PopulationSize],
	// or a non-positive keep count passed to Population.Select.
	ErrSurvivorCount = errors.New("genetic: invalid survivor count")

	// ErrMutationProbability is returned for a probability outside [0, 1].
	ErrMutationProbability = errors.New("genetic: mutation probability outside [0, 1]")

	// ErrMutationsPerChild is returned for a non-positive mutation repeat count.
	ErrMutationsPerChild = errors.New("genetic: invalid mutations per child")

	// ErrGenerations is returned for a negative generation budget.
	ErrGenerations = errors.New("genetic: negative generation count")

	// ErrPolishMaxMoves is returned for a negative 2-opt move bound.
	ErrPolishMaxMoves = errors.New("genetic: negative polish move bound")

	// ErrNotSelected is returned by operations that require a selected population.
	ErrNotSelected = errors.New("genetic: population has not been selected")

	// ErrEmptyPopulation is returned when a population holds no tours.
	ErrEmptyPopulation = errors.New("genetic: empty population")

	// ErrExhausted is returned by Step once the generation budget is spent.
	ErrExhausted = errors.New("genetic: generation budget exhausted")
)
