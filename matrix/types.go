// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface shared by the distance cache and the
// tour cost helpers.
package matrix

// Matrix is a mutable r×c grid of float64 with bounds-checked access.
// Out-of-range indices yield ErrOutOfRange; implementations never panic on
// caller input.
type Matrix interface {
	Rows() int
	Cols() int

	// At reads cell (row, col).
	At(row, col int) (float64, error)

	// Set writes cell (row, col).
	Set(row, col int, v float64) error

	// Clone returns an independent deep copy. O(r·c).
	Clone() Matrix
}
