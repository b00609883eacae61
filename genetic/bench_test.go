package genetic_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/gatsp/geo"
	"github.com/katalvlaran/gatsp/genetic"
	"github.com/katalvlaran/gatsp/tsp"
)

func benchInstance(b *testing.B, n int) *tsp.Instance {
	b.Helper()
	cs, err := geo.RandomCities(tsp.NewRand(1), n, 0, 1000)
	if err != nil {
		b.Fatal(err)
	}
	inst, err := tsp.NewInstance(cs)
	if err != nil {
		b.Fatal(err)
	}

	return inst
}

func BenchmarkStep_N50(b *testing.B) {
	inst := benchInstance(b, 50)
	opts := genetic.DefaultOptions()
	opts.Generations = b.N
	e, err := genetic.New(inst, opts)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = e.Step(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_N20_G100(b *testing.B) {
	inst := benchInstance(b, 20)
	opts := genetic.DefaultOptions()
	opts.Generations = 100
	opts.CheckInvariants = false

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, err := genetic.New(inst, opts)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = e.Run(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}
