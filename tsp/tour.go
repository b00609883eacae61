// Package tsp: the Tour type and its genetic operators.
//
// A Tour is an open index sequence interpreted cyclically: the edge from the
// last city back to the first is always part of the tour. Invariant: the
// sequence is a permutation of 0..n-1 for the owning Instance.
package tsp

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/gatsp/geo"
)

// Tour is one candidate solution: a cyclic visiting order over an Instance.
type Tour struct {
	inst  *Instance
	order []int
}

// NewTour builds a tour from an explicit order. The order is copied and
// validated (ErrCorruptTour on a non-permutation).
//
// Complexity: O(n).
func NewTour(inst *Instance, order []int) (*Tour, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	if err := ValidatePermutation(order, inst.n); err != nil {
		return nil, err
	}
	cp := make([]int, len(order))
	copy(cp, order)

	return &Tour{inst: inst, order: cp}, nil
}

// IdentityTour returns the tour visiting cities in instance order.
func IdentityTour(inst *Instance) (*Tour, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	order := make([]int, inst.n)
	for i := range order {
		order[i] = i
	}

	return &Tour{inst: inst, order: order}, nil
}

// RandomTour returns a uniformly shuffled permutation of the instance's cities.
//
// Complexity: O(n).
func RandomTour(inst *Instance, rng *rand.Rand) (*Tour, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}

	return &Tour{inst: inst, order: permRange(inst.n, rng)}, nil
}

// Instance returns the owning instance.
func (t *Tour) Instance() *Instance { return t.inst }

// Len returns the number of cities in the tour.
func (t *Tour) Len() int { return len(t.order) }

// Order returns a copy of the visiting order as city indices.
func (t *Tour) Order() []int {
	cp := make([]int, len(t.order))
	copy(cp, t.order)

	return cp
}

// Length returns the cyclic length: consecutive distances plus the closing
// edge from the last city back to the first. A single-city tour has length 0.
//
// Complexity: O(n).
func (t *Tour) Length() float64 {
	return cyclicLength(t.inst.w, t.inst.n, t.order)
}

// Randomize replaces the order with a uniformly shuffled permutation, in place.
func (t *Tour) Randomize(rng *rand.Rand) {
	shuffleIntsInPlace(t.order, rng)
}

// Crossover produces a child of t and other:
//
//  1. copy t's first ⌊n/2⌋ positions unchanged;
//  2. scan other left to right and append every city not yet in the child.
//
// The child is therefore a permutation of the same city set, biased toward
// t's first half and other's relative order for the rest. Crossover is
// asymmetric: a.Crossover(b) and b.Crossover(a) generally differ.
//
// Errors:
//   - ErrNilTour, ErrInstanceMismatch for unusable parents.
//   - ErrCorruptTour if the child fails the permutation check.
//
// Complexity: O(n) time, O(n) space (membership kept in a []bool by city index).
func (t *Tour) Crossover(other *Tour) (*Tour, error) {
	if other == nil {
		return nil, ErrNilTour
	}
	if t.inst != other.inst {
		return nil, ErrInstanceMismatch
	}

	var (
		n     = len(t.order)
		mid   = n / 2
		child = make([]int, 0, n)
		seen  = make([]bool, n)
		i, v  int
	)
	for i = 0; i < mid; i++ {
		v = t.order[i]
		child = append(child, v)
		seen[v] = true
	}
	for i = 0; i < len(other.order); i++ {
		v = other.order[i]
		if v < 0 || v >= n {
			return nil, fmt.Errorf("tsp: crossover: parent city %d: %w", v, ErrCorruptTour)
		}
		if !seen[v] {
			child = append(child, v)
			seen[v] = true
		}
	}

	if err := ValidatePermutation(child, n); err != nil {
		return nil, fmt.Errorf("tsp: crossover: %w", err)
	}

	return &Tour{inst: t.inst, order: child}, nil
}

// Mutate swaps the cities at two positions drawn uniformly from [0, n).
// When both draws coincide the swap is a no-op; the tour is a valid
// permutation either way. The drawn positions are returned.
//
// Complexity: O(1).
func (t *Tour) Mutate(rng *rand.Rand) (int, int) {
	n := len(t.order)
	if n < 2 {
		return 0, 0
	}
	r := orDefault(rng)
	i := r.Intn(n)
	j := r.Intn(n)
	t.order[i], t.order[j] = t.order[j], t.order[i]

	return i, j
}

// Validate checks the permutation invariant against the owning instance.
func (t *Tour) Validate() error {
	if t.inst == nil {
		return ErrNilInstance
	}

	return ValidatePermutation(t.order, t.inst.n)
}

// Clone returns an independent copy sharing the same instance.
func (t *Tour) Clone() *Tour {
	cp := make([]int, len(t.order))
	copy(cp, t.order)

	return &Tour{inst: t.inst, order: cp}
}

// Equal reports whether t and other visit the same cities in the same order
// over the same instance. Rotations are considered different.
func (t *Tour) Equal(other *Tour) bool {
	if other == nil || t.inst != other.inst || len(t.order) != len(other.order) {
		return false
	}
	for i := range t.order {
		if t.order[i] != other.order[i] {
			return false
		}
	}

	return true
}

// Cities returns the cities in visiting order.
func (t *Tour) Cities() []geo.City {
	out := make([]geo.City, len(t.order))
	for i, v := range t.order {
		out[i] = t.inst.cities[v]
	}

	return out
}

// Labels returns the city strings (label, or coordinates when unlabelled)
// in visiting order.
func (t *Tour) Labels() []string {
	out := make([]string, len(t.order))
	for i, v := range t.order {
		out[i] = t.inst.cities[v].String()
	}

	return out
}

// String renders the tour as "A → B → C", closing edge implied.
func (t *Tour) String() string {
	return strings.Join(t.Labels(), " → ")
}
