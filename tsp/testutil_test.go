// Package tsp_test provides lightweight helpers shared across *_test.go files
// in this package.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/geo"
	"github.com/katalvlaran/gatsp/tsp"
)

const (
	// epsTiny is the tolerance for exact geometric comparisons.
	epsTiny = 1e-9

	// seedDet is a fixed seed for RNG-driven tests.
	seedDet = int64(42)
)

// unitSquare returns the corners of the unit square in perimeter order.
func unitSquare() []geo.City {
	return []geo.City{
		geo.NewCity(0, 0, "A"),
		geo.NewCity(0, 1, "B"),
		geo.NewCity(1, 1, "C"),
		geo.NewCity(1, 0, "D"),
	}
}

// mustInstance builds an instance or fails the test.
func mustInstance(t testing.TB, cities []geo.City) *tsp.Instance {
	t.Helper()
	inst, err := tsp.NewInstance(cities)
	require.NoError(t, err)

	return inst
}

// mustTour builds a tour from an explicit order or fails the test.
func mustTour(t testing.TB, inst *tsp.Instance, order ...int) *tsp.Tour {
	t.Helper()
	tour, err := tsp.NewTour(inst, order)
	require.NoError(t, err)

	return tour
}

// randomInstance draws n cities in [0,100)² from a seeded stream.
func randomInstance(t testing.TB, n int, seed int64) *tsp.Instance {
	t.Helper()
	cs, err := geo.RandomCities(rand.New(rand.NewSource(seed)), n, 0, 100)
	require.NoError(t, err)

	return mustInstance(t, cs)
}

// requirePermutation asserts that tour is a permutation of its instance.
func requirePermutation(t testing.TB, tour *tsp.Tour) {
	t.Helper()
	require.NoError(t, tour.Validate())
	require.Equal(t, tour.Instance().Len(), tour.Len())
}
