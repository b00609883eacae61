package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/geo"
	"github.com/katalvlaran/gatsp/matrix"
	"github.com/katalvlaran/gatsp/tsp"
)

func TestNewInstance_Errors(t *testing.T) {
	_, err := tsp.NewInstance(nil)
	require.ErrorIs(t, err, tsp.ErrNoCities)

	_, err = tsp.NewInstance([]geo.City{geo.NewCity(0, 0, "A"), geo.NewCity(math.NaN(), 1, "B")})
	require.ErrorIs(t, err, tsp.ErrNonFiniteCoordinate)
	require.Contains(t, err.Error(), "city 1 (B)")
}

func TestInstance_Accessors(t *testing.T) {
	cities := unitSquare()
	inst := mustInstance(t, cities)
	require.Equal(t, 4, inst.Len())

	c, err := inst.City(2)
	require.NoError(t, err)
	require.Equal(t, "C", c.Label())
	_, err = inst.City(4)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	d, err := inst.Distance(0, 2)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt2, d, epsTiny)
	_, err = inst.Distance(-1, 0)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	// Cities and the input slice are independent of the instance.
	cs := inst.Cities()
	cs[0] = geo.NewCity(9, 9, "Z")
	cities[1] = geo.NewCity(9, 9, "Y")
	c, _ = inst.City(0)
	require.Equal(t, "A", c.Label())
	c, _ = inst.City(1)
	require.Equal(t, "B", c.Label())

	m := inst.Matrix()
	require.Equal(t, 4, m.Rows())
	v, err := m.At(1, 3)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt2, v, epsTiny)
}

func TestInstance_DuplicateCoordinatesAccepted(t *testing.T) {
	inst := mustInstance(t, []geo.City{
		geo.NewCity(1, 1, "A"),
		geo.NewCity(1, 1, "B"),
		geo.NewCity(2, 2, "C"),
	})
	d, err := inst.Distance(0, 1)
	require.NoError(t, err)
	require.Zero(t, d)
}

func TestNewInstance_ValidatedDistanceCache(t *testing.T) {
	inst := randomInstance(t, 15, 8)
	require.NoError(t, matrix.ValidateDistance(inst.Matrix(), 0))

	_, err := tsp.NewInstance([]geo.City{
		geo.NewCity(-math.MaxFloat64, 0, "West"),
		geo.NewCity(math.MaxFloat64, 0, "East"),
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
