// Package config loads a gatsp run description from YAML.
//
// A file names the random seed, the generation budget, the population
// parameters, optional 2-opt polishing and either an explicit city list or a
// random map:
//
//	seed: 42
//	generations: 100
//	population:
//	  initial_size: 50
//	  survivors: 10
//	  mutation_probability: 0.2
//	  mutations_per_child: 1
//	polish:
//	  enabled: true
//	  max_moves: 0
//	cities:
//	  - {label: A, x: 1, y: 20}
//	  - {label: B, x: 14, y: 3}
//
// or, instead of cities:
//
//	random_cities: {count: 20, min: 0, max: 500}
//
// Omitted fields keep the values of Default().
package config
