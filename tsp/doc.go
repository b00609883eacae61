// Package tsp provides the tour primitives of the gatsp genetic solver.
//
// An Instance owns an ordered set of cities and a precomputed symmetric
// distance matrix. A Tour is a permutation of the instance's city indices and
// represents one cyclic visiting order. Tours support the operations a
// genetic algorithm needs:
//
//   - Length    — cyclic length including the wrap-around edge.
//   - Randomize — uniform Fisher–Yates shuffle.
//   - Crossover — first half of the receiver, remainder in the other parent's order.
//   - Mutate    — swap of two uniformly drawn positions (equal positions ⇒ no-op).
//   - Validate  — permutation invariant check.
//
// TwoOpt offers an optional first-improvement local search for polishing a
// final tour.
//
// Determinism:
//   - Every random operation takes a *rand.Rand; nil selects a fixed default
//     stream (see rng.go), so identical seeds give identical tours.
//
// Concurrency:
//   - Instance is read-only after construction and safe to share.
//   - Tour is not goroutine-safe; Mutate and Randomize modify it in place.
package tsp
