// Package gatsp approximates the travelling salesman problem with a simple
// genetic algorithm: a population of random round trips is repeatedly cut
// down to its shortest members, recombined pairwise and mutated, while the
// shortest tour ever seen is remembered.
//
// Layout:
//
//	geo/       City: a labelled point in the plane, Euclidean distance, random maps
//	matrix/    dense row-major matrix and the symmetric distance cache
//	tsp/       Instance, Tour (crossover, mutation, length), RNG policy, 2-opt polish
//	genetic/   Population (select, recombine, mutate) and the Evolution driver
//	metrics/   Prometheus recorder observing a run
//	config/    YAML run description
//	cmd/gatsp/ console front end
//
// Quick start:
//
//	inst, _ := tsp.NewInstance(cities)
//	e, _ := genetic.New(inst, genetic.DefaultOptions())
//	res, _ := e.Run(ctx)
//	fmt.Println(res.Summary())
//
// Runs are deterministic for a fixed Options.Seed. No optimality guarantee is
// given; the result is the best tour the search happened to meet.
package gatsp
