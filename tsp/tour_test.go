package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gatsp/geo"
	"github.com/katalvlaran/gatsp/tsp"
)

// TourSuite exercises the Tour operators on small fixed instances.
type TourSuite struct {
	suite.Suite
	square *tsp.Instance
	single *tsp.Instance
}

func (s *TourSuite) SetupTest() {
	s.square = mustInstance(s.T(), unitSquare())
	s.single = mustInstance(s.T(), []geo.City{geo.NewCity(3, 7, "Solo")})
}

// TestLength_Perimeter verifies that the perimeter order measures 4.
func (s *TourSuite) TestLength_Perimeter() {
	tour := mustTour(s.T(), s.square, 0, 1, 2, 3)
	require.InDelta(s.T(), 4.0, tour.Length(), epsTiny)
}

// TestLength_IncludesWrapAround checks the crossing order A,C,B,D:
// |AC| + |CB| + |BD| + |DA| = √2 + 1 + √2 + 1.
func (s *TourSuite) TestLength_IncludesWrapAround() {
	tour := mustTour(s.T(), s.square, 0, 2, 1, 3)
	require.InDelta(s.T(), 2+2*math.Sqrt2, tour.Length(), epsTiny)

	cost, err := tsp.TourCost(s.square.Matrix(), tour.Order())
	require.NoError(s.T(), err)
	require.InDelta(s.T(), tour.Length(), cost, epsTiny)
}

// TestSingleCity covers the degenerate one-city instance.
func (s *TourSuite) TestSingleCity() {
	tour, err := tsp.RandomTour(s.single, tsp.NewRand(seedDet))
	require.NoError(s.T(), err)
	require.Zero(s.T(), tour.Length())

	i, j := tour.Mutate(tsp.NewRand(seedDet))
	require.Equal(s.T(), 0, i)
	require.Equal(s.T(), 0, j)
	require.Equal(s.T(), []int{0}, tour.Order())

	child, err := tour.Crossover(tour)
	require.NoError(s.T(), err)
	require.True(s.T(), child.Equal(tour))
	require.Zero(s.T(), child.Length())
}

// TestCrossover_FirstHalfThenFill checks the exact recombination rule.
func (s *TourSuite) TestCrossover_FirstHalfThenFill() {
	inst := randomInstance(s.T(), 5, 1)
	a := mustTour(s.T(), inst, 0, 1, 2, 3, 4)
	b := mustTour(s.T(), inst, 4, 3, 2, 1, 0)

	ab, err := a.Crossover(b)
	require.NoError(s.T(), err)
	if diff := cmp.Diff([]int{0, 1, 4, 3, 2}, ab.Order()); diff != "" {
		s.T().Fatalf("a×b mismatch (-want +got):\n%s", diff)
	}

	ba, err := b.Crossover(a)
	require.NoError(s.T(), err)
	if diff := cmp.Diff([]int{4, 3, 0, 1, 2}, ba.Order()); diff != "" {
		s.T().Fatalf("b×a mismatch (-want +got):\n%s", diff)
	}

	// Parents are untouched.
	require.Equal(s.T(), []int{0, 1, 2, 3, 4}, a.Order())
	require.Equal(s.T(), []int{4, 3, 2, 1, 0}, b.Order())
}

// TestCrossover_Errors covers nil and foreign parents.
func (s *TourSuite) TestCrossover_Errors() {
	a := mustTour(s.T(), s.square, 0, 1, 2, 3)
	_, err := a.Crossover(nil)
	require.ErrorIs(s.T(), err, tsp.ErrNilTour)

	other := mustInstance(s.T(), unitSquare())
	b := mustTour(s.T(), other, 0, 1, 2, 3)
	_, err = a.Crossover(b)
	require.ErrorIs(s.T(), err, tsp.ErrInstanceMismatch)
}

// TestCrossover_DuplicateCoordinates keeps the permutation even when two
// distinct cities share coordinates.
func (s *TourSuite) TestCrossover_DuplicateCoordinates() {
	inst := mustInstance(s.T(), []geo.City{
		geo.NewCity(1, 1, "A"),
		geo.NewCity(1, 1, "B"),
		geo.NewCity(5, 5, "C"),
		geo.NewCity(0, 3, "D"),
	})
	a := mustTour(s.T(), inst, 0, 2, 1, 3)
	b := mustTour(s.T(), inst, 1, 3, 0, 2)
	child, err := a.Crossover(b)
	require.NoError(s.T(), err)
	requirePermutation(s.T(), child)
	require.Equal(s.T(), []int{0, 2, 1, 3}, child.Order())
}

// TestNewTour_RejectsNonPermutation covers constructor validation.
func (s *TourSuite) TestNewTour_RejectsNonPermutation() {
	for _, order := range [][]int{
		{0, 1, 2},
		{0, 1, 2, 2},
		{0, 1, 2, 4},
		{0, 1, 2, 3, 0},
	} {
		_, err := tsp.NewTour(s.square, order)
		require.ErrorIs(s.T(), err, tsp.ErrCorruptTour, "order %v", order)
	}
	_, err := tsp.NewTour(nil, []int{0})
	require.ErrorIs(s.T(), err, tsp.ErrNilInstance)
}

// TestNewTour_CopiesOrder guards against aliasing the caller's slice.
func (s *TourSuite) TestNewTour_CopiesOrder() {
	order := []int{3, 2, 1, 0}
	tour := mustTour(s.T(), s.square, order...)
	order[0] = 0
	require.Equal(s.T(), []int{3, 2, 1, 0}, tour.Order())

	out := tour.Order()
	out[1] = 99
	requirePermutation(s.T(), tour)
}

// TestCitiesAndString renders labels in visiting order.
func (s *TourSuite) TestCitiesAndString() {
	tour := mustTour(s.T(), s.square, 2, 0, 3, 1)
	require.Equal(s.T(), []string{"C", "A", "D", "B"}, tour.Labels())
	require.Equal(s.T(), "C → A → D → B", tour.String())
	require.Equal(s.T(), "D", tour.Cities()[2].Label())
}

// TestIdentityAndEqual covers IdentityTour, Clone and Equal.
func (s *TourSuite) TestIdentityAndEqual() {
	id, err := tsp.IdentityTour(s.square)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1, 2, 3}, id.Order())

	cp := id.Clone()
	require.True(s.T(), cp.Equal(id))
	cp.Mutate(rand.New(rand.NewSource(3)))
	require.Equal(s.T(), []int{0, 1, 2, 3}, id.Order(), "clone must not alias")

	require.False(s.T(), id.Equal(nil))
	require.False(s.T(), id.Equal(mustTour(s.T(), s.square, 1, 0, 2, 3)))
}

func TestTourSuite(t *testing.T) {
	suite.Run(t, new(TourSuite))
}

// TestCrossover_AlwaysPermutation is the property check over many random parents.
func TestCrossover_AlwaysPermutation(t *testing.T) {
	rng := tsp.NewRand(seedDet)
	for _, n := range []int{1, 2, 3, 7, 20, 51} {
		inst := randomInstance(t, n, int64(n))
		for trial := 0; trial < 50; trial++ {
			a, err := tsp.RandomTour(inst, rng)
			require.NoError(t, err)
			b, err := tsp.RandomTour(inst, rng)
			require.NoError(t, err)

			child, err := a.Crossover(b)
			require.NoError(t, err)
			requirePermutation(t, child)
			require.Equal(t, a.Order()[:n/2], child.Order()[:n/2], "first half comes from the receiver")
		}
	}
}

// TestMutate_AlwaysPermutation covers random swaps, including i == j draws.
func TestMutate_AlwaysPermutation(t *testing.T) {
	rng := tsp.NewRand(seedDet)
	for _, n := range []int{1, 2, 3, 10} {
		inst := randomInstance(t, n, int64(n)+100)
		tour, err := tsp.RandomTour(inst, rng)
		require.NoError(t, err)

		sawSame := n == 1
		for trial := 0; trial < 500; trial++ {
			before := tour.Order()
			i, j := tour.Mutate(rng)
			requirePermutation(t, tour)

			after := tour.Order()
			if i == j {
				sawSame = true
				require.Equal(t, before, after, "equal indices must be a no-op")
				continue
			}
			require.Equal(t, before[i], after[j])
			require.Equal(t, before[j], after[i])
		}
		require.True(t, sawSame, "n=%d: expected at least one coinciding draw", n)
	}
}

// TestRandomize_Permutation checks shuffling keeps the city set.
func TestRandomize_Permutation(t *testing.T) {
	inst := randomInstance(t, 30, 9)
	tour, err := tsp.IdentityTour(inst)
	require.NoError(t, err)
	tour.Randomize(tsp.NewRand(seedDet))
	requirePermutation(t, tour)

	id, _ := tsp.IdentityTour(inst)
	require.False(t, tour.Equal(id), "30! permutations: a seeded shuffle should move something")
}

// TestRandomTour_NilInstance covers the nil guard.
func TestRandomTour_NilInstance(t *testing.T) {
	_, err := tsp.RandomTour(nil, nil)
	require.ErrorIs(t, err, tsp.ErrNilInstance)
	_, err = tsp.IdentityTour(nil)
	require.ErrorIs(t, err, tsp.ErrNilInstance)
}
