package genetic

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/gatsp/tsp"
)

// Population is the set of tours considered in one generation.
//
// Lengths are computed lazily and cached until the tours change. After
// Select the population is sorted ascending by length and truncated.
type Population struct {
	inst       *tsp.Instance
	tours      []*tsp.Tour
	lengths    []float64 // valid iff evaluated
	evaluated  bool
	selected   bool
	generation int
}

// NewPopulation builds size independent random tours over inst (generation 0).
//
// Errors: tsp.ErrNilInstance, ErrPopulationSize for size <= 0.
//
// Complexity: O(size·n).
func NewPopulation(inst *tsp.Instance, size int, rng *rand.Rand) (*Population, error) {
	if inst == nil {
		return nil, tsp.ErrNilInstance
	}
	if size <= 0 {
		return nil, fmt.Errorf("genetic: population size %d: %w", size, ErrPopulationSize)
	}

	var (
		tours = make([]*tsp.Tour, size)
		err   error
		i     int
	)
	for i = 0; i < size; i++ {
		if tours[i], err = tsp.RandomTour(inst, rng); err != nil {
			return nil, err
		}
	}

	return &Population{inst: inst, tours: tours}, nil
}

// Size returns the number of tours.
func (p *Population) Size() int { return len(p.tours) }

// Generation returns the generation index this population belongs to.
func (p *Population) Generation() int { return p.generation }

// Selected reports whether Select has run since the tours last changed.
func (p *Population) Selected() bool { return p.selected }

// Tours returns the tours in current order. The slice is a copy; the tours
// are shared.
func (p *Population) Tours() []*tsp.Tour {
	out := make([]*tsp.Tour, len(p.tours))
	copy(out, p.tours)

	return out
}

// Lengths returns the tour lengths in current order.
func (p *Population) Lengths() []float64 {
	p.evaluate()
	out := make([]float64, len(p.lengths))
	copy(out, p.lengths)

	return out
}

// evaluate fills the length cache if it is stale.
func (p *Population) evaluate() {
	if p.evaluated {
		return
	}
	if cap(p.lengths) < len(p.tours) {
		p.lengths = make([]float64, len(p.tours))
	}
	p.lengths = p.lengths[:len(p.tours)]
	for i, t := range p.tours {
		p.lengths[i] = t.Length()
	}
	p.evaluated = true
}

// Select sorts the tours ascending by length and keeps the first
// min(keep, Size()). Ties keep their original relative order, so selection
// is reproducible for a given population. The new head is offered to best
// (nil skips tracking). Returns the surviving count.
//
// Errors: ErrSurvivorCount for keep <= 0.
//
// Complexity: O(m log m) for m tours, lengths computed once.
func (p *Population) Select(keep int, best *Best) (int, error) {
	if keep <= 0 {
		return 0, fmt.Errorf("genetic: keep %d: %w", keep, ErrSurvivorCount)
	}
	p.evaluate()

	idx := make([]int, len(p.tours))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return p.lengths[idx[a]] < p.lengths[idx[b]]
	})

	n := min(keep, len(idx))
	tours := make([]*tsp.Tour, n)
	lengths := make([]float64, n)
	for i := 0; i < n; i++ {
		tours[i] = p.tours[idx[i]]
		lengths[i] = p.lengths[idx[i]]
	}
	p.tours, p.lengths, p.selected = tours, lengths, true

	if best != nil && n > 0 {
		best.Offer(p.tours[0], p.generation)
	}

	return n, nil
}

// Recombine crosses every ordered pair (i, j), i ≠ j, of the selected tours
// and returns the n·(n−1) children as the next, unselected generation.
// Pairs are visited row-major, so child order is deterministic.
//
// Errors: ErrNotSelected before Select; any crossover error (notably
// tsp.ErrCorruptTour) aborts recombination.
//
// Complexity: O(n²·c) for n survivors over c cities.
func (p *Population) Recombine() (*Population, error) {
	if !p.selected {
		return nil, ErrNotSelected
	}

	var (
		n        = len(p.tours)
		children = make([]*tsp.Tour, 0, n*(n-1))
		child    *tsp.Tour
		err      error
		i, j     int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if child, err = p.tours[i].Crossover(p.tours[j]); err != nil {
				return nil, fmt.Errorf("genetic: recombine (%d,%d): %w", i, j, err)
			}
			children = append(children, child)
		}
	}

	return &Population{inst: p.inst, tours: children, generation: p.generation + 1}, nil
}

// MutateAll draws one uniform value in [0,1) per tour; when it is below
// probability the tour is mutated times times. Returns the number of tours
// mutated. Mutation invalidates any previous selection.
//
// Errors: ErrMutationProbability, ErrMutationsPerChild for bad arguments.
func (p *Population) MutateAll(probability float64, times int, rng *rand.Rand) (int, error) {
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		return 0, fmt.Errorf("genetic: probability %v: %w", probability, ErrMutationProbability)
	}
	if times < 1 {
		return 0, fmt.Errorf("genetic: times %d: %w", times, ErrMutationsPerChild)
	}
	if rng == nil {
		rng = tsp.NewRand(0)
	}

	mutated := 0
	for _, t := range p.tours {
		if rng.Float64() >= probability {
			continue
		}
		for k := 0; k < times; k++ {
			t.Mutate(rng)
		}
		mutated++
	}
	if mutated > 0 {
		p.evaluated = false
		p.selected = false
	}

	return mutated, nil
}

// Validate checks the permutation invariant of every tour.
func (p *Population) Validate() error {
	for i, t := range p.tours {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("genetic: tour %d of generation %d: %w", i, p.generation, err)
		}
	}

	return nil
}

// Best returns the shortest tour of a selected population (its head).
//
// Errors: ErrNotSelected before Select, ErrEmptyPopulation when empty.
func (p *Population) Best() (*tsp.Tour, error) {
	if !p.selected {
		return nil, ErrNotSelected
	}
	if len(p.tours) == 0 {
		return nil, ErrEmptyPopulation
	}

	return p.tours[0], nil
}

// Shortest scans for the shortest tour without reordering the population.
// The first of equally short tours wins.
//
// Errors: ErrEmptyPopulation.
func (p *Population) Shortest() (*tsp.Tour, error) {
	if len(p.tours) == 0 {
		return nil, ErrEmptyPopulation
	}
	p.evaluate()
	bi := 0
	for i := 1; i < len(p.lengths); i++ {
		if p.lengths[i] < p.lengths[bi] {
			bi = i
		}
	}

	return p.tours[bi], nil
}

// Stats summarizes the current tour lengths.
func (p *Population) Stats() Stats {
	p.evaluate()

	return summarize(p.lengths)
}
