package genetic

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/gatsp/tsp"
)

// Generation is the snapshot published after every step.
type Generation struct {
	// Index is the 1-based number of the completed generation.
	Index int

	// Best is a copy of the shortest tour selected in this generation.
	Best       *tsp.Tour
	BestLength float64

	// BestKnownLength is the run's best-known length after this generation.
	BestKnownLength float64

	// Improved reports whether this generation improved the best-known tour.
	Improved bool

	// Survivors is the number of tours kept by selection.
	Survivors int

	// Size is the size of the next population after recombination.
	Size int

	// Mutated is the number of children mutated.
	Mutated int

	// Stats describes the population that was selected from.
	Stats Stats
}

// Observer is notified after every completed generation.
type Observer interface {
	OnGeneration(Generation)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Generation)

// OnGeneration calls f(g).
func (f ObserverFunc) OnGeneration(g Generation) { f(g) }

// Result is the outcome of Run.
type Result struct {
	// Best is the best-known tour of the run and FoundAt the generation it was
	// selected in (0 = initial population).
	Best       *tsp.Tour
	BestLength float64
	FoundAt    int

	// Final is the shortest tour of the last (unselected) population.
	Final       *tsp.Tour
	FinalLength float64

	// Improvement is how much shorter Best is than Final, in percent of
	// FinalLength. Zero when the final generation holds the best-known length.
	Improvement float64

	// Generations is the number of completed generations.
	Generations int

	// Polished is the 2-opt refinement of Best when PolishBest is enabled.
	Polished       *tsp.Tour
	PolishedLength float64
	PolishMoves    int
}

// Tour returns the shortest tour of the result: Polished when present,
// Best otherwise.
func (r *Result) Tour() (*tsp.Tour, float64) {
	if r.Polished != nil {
		return r.Polished, r.PolishedLength
	}

	return r.Best, r.BestLength
}

// Summary renders the console line of the batch variant:
//
//	Best found solution is "A, B, C" with distance 12.34
func (r *Result) Summary() string {
	t, l := r.Tour()
	if t == nil {
		return "no solution"
	}

	return fmt.Sprintf("Best found solution is %q with distance %g", strings.Join(t.Labels(), ", "), l)
}

// Evolution drives the generation loop of one run. It owns the population,
// the random stream and the best-known tracker; nothing is shared between
// runs.
type Evolution struct {
	inst      *tsp.Instance
	opts      Options
	rng       *rand.Rand
	log       *zap.Logger
	observers []Observer

	pop  *Population
	best Best
	gen  int
	err  error
}

// New validates opts, applies options and builds the initial population.
//
// Errors: tsp.ErrNilInstance, any Options.Validate error.
func New(inst *tsp.Instance, opts Options, options ...Option) (*Evolution, error) {
	if inst == nil {
		return nil, tsp.ErrNilInstance
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	e := &Evolution{
		inst: inst,
		opts: opts,
		log:  zap.NewNop(),
	}
	for _, o := range options {
		o(e)
	}
	if e.rng == nil {
		e.rng = tsp.NewRand(opts.Seed)
	}
	if err := e.Reset(); err != nil {
		return nil, err
	}

	return e, nil
}

// Reset discards the population and the best-known tour and starts over
// from a fresh random population. The random stream continues, so a reset
// run differs from the first one.
func (e *Evolution) Reset() error {
	pop, err := NewPopulation(e.inst, e.opts.PopulationSize, e.rng)
	if err != nil {
		return err
	}
	e.pop = pop
	e.best.Reset()
	e.gen = 0
	e.err = nil

	return nil
}

// Options returns the run configuration.
func (e *Evolution) Options() Options { return e.opts }

// Generation returns the number of completed generations.
func (e *Evolution) Generation() int { return e.gen }

// Done reports whether the generation budget is spent or the run aborted.
func (e *Evolution) Done() bool { return e.err != nil || e.gen >= e.opts.Generations }

// Population returns the current (next-to-select) population.
func (e *Evolution) Population() *Population { return e.pop }

// Best returns a copy of the best-known tour and its length; ok is false
// before the first generation.
func (e *Evolution) Best() (t *tsp.Tour, length float64, ok bool) {
	if !e.best.Found() {
		return nil, 0, false
	}

	return e.best.Tour(), e.best.Length(), true
}

// Step runs one generation: select, track the best, recombine, mutate.
//
// Errors:
//   - ErrExhausted once the budget is spent.
//   - Any invariant violation (tsp.ErrCorruptTour) aborts the run; the same
//     error is returned by every later Step until Reset.
func (e *Evolution) Step() (Generation, error) {
	if e.err != nil {
		return Generation{}, e.err
	}
	if e.gen >= e.opts.Generations {
		return Generation{}, ErrExhausted
	}

	g, err := e.step()
	if err != nil {
		e.err = err
		e.log.Error("generation aborted", zap.Int("generation", e.gen+1), zap.Error(err))

		return Generation{}, err
	}
	e.gen = g.Index

	e.log.Debug("generation",
		zap.Int("generation", g.Index),
		zap.Float64("best_length", g.BestLength),
		zap.Float64("best_known_length", g.BestKnownLength),
		zap.Bool("improved", g.Improved),
		zap.Float64("mean_length", g.Stats.Mean),
		zap.Int("population", g.Size),
		zap.Int("mutated", g.Mutated),
	)
	for _, o := range e.observers {
		o.OnGeneration(g)
	}

	return g, nil
}

func (e *Evolution) step() (Generation, error) {
	stats := e.pop.Stats()
	updates := e.best.Updates()

	survivors, err := e.pop.Select(e.opts.SurvivorCount, &e.best)
	if err != nil {
		return Generation{}, err
	}
	head, err := e.pop.Best()
	if err != nil {
		return Generation{}, err
	}

	next, err := e.pop.Recombine()
	if err != nil {
		return Generation{}, err
	}
	mutated, err := next.MutateAll(e.opts.MutationProbability, e.opts.MutationsPerChild, e.rng)
	if err != nil {
		return Generation{}, err
	}
	if e.opts.CheckInvariants {
		if err = next.Validate(); err != nil {
			return Generation{}, err
		}
	}
	e.pop = next

	return Generation{
		Index:           e.gen + 1,
		Best:            head.Clone(),
		BestLength:      head.Length(),
		BestKnownLength: e.best.Length(),
		Improved:        e.best.Updates() != updates,
		Survivors:       survivors,
		Size:            next.Size(),
		Mutated:         mutated,
		Stats:           stats,
	}, nil
}

// Run executes the remaining generation budget and reports the best-known
// tour. ctx is checked between generations.
//
// With a zero budget no selection happens and the best tour is the shortest
// tour of the initial population.
func (e *Evolution) Run(ctx context.Context) (*Result, error) {
	e.log.Info("evolution started",
		zap.Int("cities", e.inst.Len()),
		zap.Int("population", e.opts.PopulationSize),
		zap.Int("survivors", e.opts.SurvivorCount),
		zap.Float64("mutation_probability", e.opts.MutationProbability),
		zap.Int("generations", e.opts.Generations),
	)

	for !e.Done() {
		if err := ctx.Err(); err != nil {
			e.log.Warn("evolution cancelled", zap.Int("generation", e.gen), zap.Error(err))

			return nil, fmt.Errorf("genetic: cancelled after %d generations: %w", e.gen, err)
		}
		if _, err := e.Step(); err != nil {
			return nil, err
		}
	}
	if e.err != nil {
		return nil, e.err
	}

	res, err := e.result()
	if err != nil {
		return nil, err
	}

	e.log.Info("evolution finished",
		zap.Int("generations", res.Generations),
		zap.Float64("best_length", res.BestLength),
		zap.Int("found_at", res.FoundAt),
		zap.Float64("final_length", res.FinalLength),
		zap.Float64("improvement_pct", res.Improvement),
	)

	return res, nil
}

func (e *Evolution) result() (*Result, error) {
	final, err := e.pop.Shortest()
	if err != nil {
		return nil, err
	}
	res := &Result{
		Final:       final.Clone(),
		FinalLength: final.Length(),
		Generations: e.gen,
	}

	if e.best.Found() {
		res.Best, res.BestLength, res.FoundAt = e.best.Tour(), e.best.Length(), e.best.Generation()
	} else {
		res.Best, res.BestLength = res.Final.Clone(), res.FinalLength
	}
	if res.FinalLength > 0 && res.BestLength < res.FinalLength {
		res.Improvement = 100 - 100*(res.BestLength/res.FinalLength)
	}

	if e.opts.PolishBest {
		polished, moves, err := tsp.TwoOpt(res.Best, e.opts.PolishMaxMoves)
		if err != nil {
			return nil, fmt.Errorf("genetic: polish: %w", err)
		}
		res.Polished, res.PolishedLength, res.PolishMoves = polished, polished.Length(), moves
		e.log.Debug("best tour polished",
			zap.Float64("before", res.BestLength),
			zap.Float64("after", res.PolishedLength),
			zap.Int("moves", moves),
		)
	}

	return res, nil
}
