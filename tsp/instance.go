package tsp

import (
	"fmt"

	"github.com/katalvlaran/gatsp/geo"
	"github.com/katalvlaran/gatsp/matrix"
)

// distanceEps bounds the diagonal and symmetry error accepted for a cache.
const distanceEps = 1e-12

// Instance is an immutable TSP instance: an ordered city set and the
// symmetric Euclidean distance matrix between its cities.
//
// Tours reference cities by their index in the instance, so every tour built
// over the same Instance shares the same read-only city data.
type Instance struct {
	cities []geo.City
	dist   *matrix.Dense
	w      []float64 // row-major prefetch of dist for hot loops
	n      int
}

// NewInstance copies cities and builds the distance matrix.
//
// Errors:
//   - ErrNoCities for an empty city set.
//   - ErrNonFiniteCoordinate (wrapped with the city position) for NaN/±Inf coordinates.
//   - matrix.ErrNaNInf when a distance overflows, or any matrix.ValidateDistance
//     error for a cache that is not a proper distance matrix.
//
// Cities sharing coordinates are accepted; they are distinct by index.
//
// Complexity: O(n²) time and space.
func NewInstance(cities []geo.City) (*Instance, error) {
	n := len(cities)
	if n == 0 {
		return nil, ErrNoCities
	}

	var i int
	for i = 0; i < n; i++ {
		if !cities[i].IsFinite() {
			return nil, fmt.Errorf("tsp: city %d (%s): %w", i, cities[i], ErrNonFiniteCoordinate)
		}
	}

	cs := make([]geo.City, n)
	copy(cs, cities)

	dist, err := matrix.NewSymmetric(n, func(i, j int) float64 {
		return cs[i].DistanceTo(cs[j])
	})
	if err != nil {
		return nil, fmt.Errorf("tsp: distance matrix: %w", err)
	}
	if err = matrix.ValidateDistance(dist, distanceEps); err != nil {
		return nil, fmt.Errorf("tsp: distance matrix: %w", err)
	}

	return &Instance{
		cities: cs,
		dist:   dist,
		w:      dist.Flat(),
		n:      n,
	}, nil
}

// Len returns the number of cities.
func (in *Instance) Len() int { return in.n }

// City returns the city at index i.
func (in *Instance) City(i int) (geo.City, error) {
	if i < 0 || i >= in.n {
		return geo.City{}, ErrDimensionMismatch
	}

	return in.cities[i], nil
}

// Cities returns a copy of the city set in instance order.
func (in *Instance) Cities() []geo.City {
	out := make([]geo.City, in.n)
	copy(out, in.cities)

	return out
}

// Distance returns the distance between cities i and j.
func (in *Instance) Distance(i, j int) (float64, error) {
	if i < 0 || i >= in.n || j < 0 || j >= in.n {
		return 0, ErrDimensionMismatch
	}

	return in.w[i*in.n+j], nil
}

// Matrix returns an independent copy of the distance matrix.
func (in *Instance) Matrix() matrix.Matrix { return in.dist.Clone() }
