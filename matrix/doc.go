// Package matrix provides the dense distance cache used by the gatsp solvers.
//
// The package provides:
//
//   - Matrix, a minimal mutable 2D interface with error-returning accessors.
//   - Dense, a row-major implementation that never panics on bad indices.
//   - NewSymmetric, which builds a zero-diagonal symmetric distance matrix
//     from a pair function (one evaluation per unordered pair).
//   - ValidateDistance, which checks any Matrix against the distance contract.
//
// Matrices are best for small and medium instances where O(n²) memory is
// acceptable in exchange for O(1) distance lookups in the inner GA loops.
package matrix
