package tsp_test

import (
	"testing"

	"github.com/katalvlaran/gatsp/tsp"
)

func BenchmarkTour_Length(b *testing.B) {
	inst := randomInstance(b, 200, 1)
	tour, _ := tsp.RandomTour(inst, tsp.NewRand(seedDet))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tour.Length()
	}
}

func BenchmarkTour_Crossover(b *testing.B) {
	inst := randomInstance(b, 200, 1)
	rng := tsp.NewRand(seedDet)
	p1, _ := tsp.RandomTour(inst, rng)
	p2, _ := tsp.RandomTour(inst, rng)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p1.Crossover(p2); err != nil {
			b.Fatal(err)
		}
	}
}
