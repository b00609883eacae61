// Package genetic implements the generational genetic search over tsp.Tour
// candidates.
//
// One generation is a fixed pipeline:
//
//	unselected population ──Select(k)──▶ survivors ──Recombine──▶ n·(n−1) children
//	        ▲                                                              │
//	        └────────────────────────── MutateAll(p) ◀─────────────────────┘
//
//   - Select sorts tours ascending by length (stable: ties keep their
//     original relative order) and keeps the first k.
//   - Recombine crosses every ordered pair (i, j), i ≠ j, of survivors.
//   - MutateAll draws one uniform value per child and, below the mutation
//     probability, swaps two random positions MutationsPerChild times.
//
// The genetic process is not monotone: a later generation can be worse than
// an earlier one. The per-run Best tracker therefore keeps the shortest tour
// ever selected and replaces it only with a strictly shorter one.
//
// Evolution drives the loop. Run executes the whole generation budget (batch
// mode); Step advances exactly one generation (incremental mode, e.g. one
// generation per display refresh). Both paths run identical code per
// generation. Observers receive a Generation snapshot after every step.
//
// Concurrency:
//   - Evolution and Population are single-threaded and not goroutine-safe.
//   - Distinct Evolution values may run concurrently; give each its own
//     *rand.Rand (see tsp.DeriveRand).
package genetic
