// Package geo provides the City primitive used by the gatsp solvers.
//
// A City is an immutable point on the plane with an optional label. Cities
// are compared by coordinates, not identity, and measured with the
// Euclidean metric:
//
//	d(a, b) = √((a.x − b.x)² + (a.y − b.y)²)
//
// The package also generates random city maps for experiments and demos
// (see RandomCities). Generation is driven by a caller-supplied *rand.Rand,
// so identical seeds produce identical maps.
//
// Design:
//   - Value semantics: City is small and copied freely; fields are unexported
//     so a City cannot change after construction.
//   - No logging, no panics on user input; only sentinel errors from errors.go.
package geo
