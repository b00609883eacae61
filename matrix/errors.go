// SPDX-License-Identifier: MIT

// Package matrix: sentinel errors. Accessors wrap them with the call site
// (Dense.At(3,7): ...); match with errors.Is.
package matrix

import "errors"

var (
	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare indicates a distance matrix with Rows() != Cols().
	ErrNonSquare = errors.New("matrix: not square")

	// ErrAsymmetry indicates d(i,j) and d(j,i) differ by more than eps.
	ErrAsymmetry = errors.New("matrix: asymmetric distance")

	// ErrNonZeroDiagonal indicates d(i,i) is not zero within eps.
	ErrNonZeroDiagonal = errors.New("matrix: non-zero self distance")

	ErrNaNInf = errors.New("matrix: NaN or Inf value")

	// ErrNegativeValue signals a negative entry in a distance matrix.
	ErrNegativeValue = errors.New("matrix: negative distance")

	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates a requested shape with a non-positive side.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)
