package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gatsp/genetic"
)

const namespace = "gatsp"

// Recorder mirrors genetic.Generation snapshots into Prometheus collectors.
// Like genetic.Evolution it is meant for a single run goroutine.
type Recorder struct {
	bestKnown   prometheus.Gauge
	genBest     prometheus.Gauge
	genMean     prometheus.Gauge
	population  prometheus.Gauge
	generations prometheus.Counter
	mutations   prometheus.Counter
}

// NewRecorder creates the collectors and registers them on reg.
//
// Errors: any registration error (for example prometheus.AlreadyRegisteredError
// when two recorders share a registry), wrapped.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		return nil, fmt.Errorf("metrics: nil registerer")
	}

	r := &Recorder{
		bestKnown: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_known_length",
			Help:      "Best-known tour length of the run.",
		}),
		genBest: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generation_best_length",
			Help:      "Shortest tour length selected in the last generation.",
		}),
		genMean: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generation_mean_length",
			Help:      "Mean tour length of the population the last generation selected from.",
		}),
		population: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "population_size",
			Help:      "Number of tours in the next population.",
		}),
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Completed generations.",
		}),
		mutations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Children mutated after recombination.",
		}),
	}

	for _, c := range []prometheus.Collector{
		r.bestKnown, r.genBest, r.genMean, r.population, r.generations, r.mutations,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return r, nil
}

// OnGeneration implements genetic.Observer.
func (r *Recorder) OnGeneration(g genetic.Generation) {
	r.bestKnown.Set(g.BestKnownLength)
	r.genBest.Set(g.BestLength)
	r.genMean.Set(g.Stats.Mean)
	r.population.Set(float64(g.Size))
	r.generations.Inc()
	r.mutations.Add(float64(g.Mutated))
}

var _ genetic.Observer = (*Recorder)(nil)
