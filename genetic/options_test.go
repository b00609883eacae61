package genetic_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/genetic"
)

func TestDefaultOptions_Valid(t *testing.T) {
	o := genetic.DefaultOptions()
	require.NoError(t, o.Validate())
	require.Equal(t, 100, o.PopulationSize)
	require.Equal(t, 10, o.SurvivorCount)
	require.Equal(t, 0.2, o.MutationProbability)
	require.Equal(t, 1, o.MutationsPerChild)
	require.Equal(t, 500, o.Generations)
	require.True(t, o.CheckInvariants)
}

func TestOptions_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*genetic.Options)
		want   error
	}{
		{"population zero", func(o *genetic.Options) { o.PopulationSize = 0 }, genetic.ErrPopulationSize},
		{"survivors one", func(o *genetic.Options) { o.SurvivorCount = 1 }, genetic.ErrSurvivorCount},
		{"survivors above population", func(o *genetic.Options) { o.SurvivorCount = 101 }, genetic.ErrSurvivorCount},
		{"probability negative", func(o *genetic.Options) { o.MutationProbability = -0.01 }, genetic.ErrMutationProbability},
		{"probability above one", func(o *genetic.Options) { o.MutationProbability = 1.5 }, genetic.ErrMutationProbability},
		{"probability NaN", func(o *genetic.Options) { o.MutationProbability = math.NaN() }, genetic.ErrMutationProbability},
		{"mutations zero", func(o *genetic.Options) { o.MutationsPerChild = 0 }, genetic.ErrMutationsPerChild},
		{"generations negative", func(o *genetic.Options) { o.Generations = -1 }, genetic.ErrGenerations},
		{"polish negative", func(o *genetic.Options) { o.PolishMaxMoves = -3 }, genetic.ErrPolishMaxMoves},
		{"boundaries ok", func(o *genetic.Options) {
			o.PopulationSize, o.SurvivorCount, o.MutationProbability, o.Generations = 2, 2, 1, 0
		}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := genetic.DefaultOptions()
			tc.mutate(&o)
			err := o.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, tc.want), "want %v, got %v", tc.want, err)
		})
	}
}
