// Package metrics exports the progress of a genetic run as Prometheus
// gauges and counters.
//
// A Recorder is a genetic.Observer: register it with genetic.WithObserver
// and every completed generation updates the series below.
//
//	gatsp_best_known_length        gauge    best-known tour length of the run
//	gatsp_generation_best_length   gauge    shortest tour selected in the last generation
//	gatsp_generation_mean_length   gauge    mean length of the last selected-from population
//	gatsp_population_size          gauge    size of the next population
//	gatsp_generations_total        counter  completed generations
//	gatsp_mutations_total          counter  mutated children
//
// Metrics are registered on a caller-supplied prometheus.Registerer, never on
// the global default registry, so several runs can coexist in one process.
package metrics
