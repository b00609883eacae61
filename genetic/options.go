package genetic

import (
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"
)

// Defaults: 100 random tours, 10 parents, 20 % mutation probability,
// 500 generations.
const (
	DefaultPopulationSize      = 100
	DefaultSurvivorCount       = 10
	DefaultMutationProbability = 0.2
	DefaultMutationsPerChild   = 1
	DefaultGenerations         = 500
)

// Options is the caller-owned run configuration.
type Options struct {
	// PopulationSize is the number of random tours in the first generation (>0).
	PopulationSize int

	// SurvivorCount is the number of parents kept by selection, in
	// [2, PopulationSize]. Recombination produces SurvivorCount·(SurvivorCount−1)
	// children, so a single survivor would leave the next generation empty.
	// The lower bound is therefore 2, stricter than "any positive count":
	// Validate rejects 1 with ErrSurvivorCount instead of letting the run
	// fail one generation later on an empty population.
	SurvivorCount int

	// MutationProbability is the per-child probability of mutation, in [0, 1].
	MutationProbability float64

	// MutationsPerChild is how many swaps a child selected for mutation gets (≥1).
	MutationsPerChild int

	// Generations is the generation budget (≥0).
	Generations int

	// Seed feeds the default random stream; 0 selects the fixed default seed.
	// Ignored when WithRand supplies a generator.
	Seed int64

	// CheckInvariants re-validates every child after mutation and aborts the
	// run on the first corrupt tour.
	CheckInvariants bool

	// PolishBest applies 2-opt to the best-known tour when Run finishes.
	PolishBest bool

	// PolishMaxMoves bounds accepted 2-opt moves (0 ⇒ until a local optimum).
	PolishMaxMoves int
}

// DefaultOptions returns the default run configuration.
func DefaultOptions() Options {
	return Options{
		PopulationSize:      DefaultPopulationSize,
		SurvivorCount:       DefaultSurvivorCount,
		MutationProbability: DefaultMutationProbability,
		MutationsPerChild:   DefaultMutationsPerChild,
		Generations:         DefaultGenerations,
		CheckInvariants:     true,
	}
}

// Validate checks every field. Values are never clamped; the first violation
// is returned wrapped around its sentinel.
func (o Options) Validate() error {
	if o.PopulationSize <= 0 {
		return fmt.Errorf("genetic: population size %d must be > 0: %w", o.PopulationSize, ErrPopulationSize)
	}
	if o.SurvivorCount < 2 || o.SurvivorCount > o.PopulationSize {
		return fmt.Errorf("genetic: survivor count %d must be in [2, %d]: %w",
			o.SurvivorCount, o.PopulationSize, ErrSurvivorCount)
	}
	if math.IsNaN(o.MutationProbability) || o.MutationProbability < 0 || o.MutationProbability > 1 {
		return fmt.Errorf("genetic: mutation probability %v: %w", o.MutationProbability, ErrMutationProbability)
	}
	if o.MutationsPerChild < 1 {
		return fmt.Errorf("genetic: mutations per child %d must be ≥ 1: %w", o.MutationsPerChild, ErrMutationsPerChild)
	}
	if o.Generations < 0 {
		return fmt.Errorf("genetic: generations %d: %w", o.Generations, ErrGenerations)
	}
	if o.PolishMaxMoves < 0 {
		return fmt.Errorf("genetic: polish max moves %d: %w", o.PolishMaxMoves, ErrPolishMaxMoves)
	}

	return nil
}

// Option customizes an Evolution.
type Option func(*Evolution)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(e *Evolution) {
		if l != nil {
			e.log = l
		}
	}
}

// WithObserver registers an observer notified after every generation.
// Observers are called in registration order.
func WithObserver(o Observer) Option {
	return func(e *Evolution) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}

// WithRand supplies the random stream, overriding Options.Seed.
func WithRand(r *rand.Rand) Option {
	return func(e *Evolution) {
		if r != nil {
			e.rng = r
		}
	}
}
