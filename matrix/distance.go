// SPDX-License-Identifier: MIT

// Package matrix - distance-matrix builders and validators.
//
// A distance matrix here is square, zero on the diagonal, symmetric,
// non-negative and finite. NewSymmetric builds one from a pair function;
// ValidateDistance checks an arbitrary Matrix against the same contract.
package matrix

import "math"

// NewSymmetric builds an n×n symmetric matrix with a zero diagonal, calling
// fn(i, j) exactly once for every unordered pair i<j.
//
// Errors:
//   - ErrInvalidDimensions if n<=0.
//   - ErrNaNInf if fn returns NaN/±Inf (wrapped with the offending cell).
//   - ErrNegativeValue if fn returns a negative value (wrapped likewise).
//
// Complexity: Time O(n²) evaluations/2, Space O(n²).
func NewSymmetric(n int, fn func(i, j int) float64) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
	)
	// Diagonal stays at the zero value from NewDense.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = fn(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaNInf)
			}
			if v < 0 {
				return nil, denseErrorf(ctxSet, i, j, ErrNegativeValue)
			}
			m.data[i*n+j] = v
			m.data[j*n+i] = v
		}
	}

	return m, nil
}

// ValidateDistance verifies that m is a proper distance matrix:
// non-nil, square, |a_ii| ≤ eps, finite, non-negative and |a_ij − a_ji| ≤ eps.
//
// Complexity: O(n²).
func ValidateDistance(m Matrix, eps float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	n := m.Rows()
	if n != m.Cols() || n <= 0 {
		return ErrNonSquare
	}

	var (
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return err
			}
			if aji, err = m.At(j, i); err != nil {
				return err
			}
			if math.IsNaN(aij) || math.IsInf(aij, 0) || math.IsNaN(aji) || math.IsInf(aji, 0) {
				return denseErrorf(ctxAt, i, j, ErrNaNInf)
			}
			if i == j {
				if math.Abs(aij) > eps {
					return denseErrorf(ctxAt, i, i, ErrNonZeroDiagonal)
				}
				continue
			}
			if aij < 0 || aji < 0 {
				return denseErrorf(ctxAt, i, j, ErrNegativeValue)
			}
			if math.Abs(aij-aji) > eps {
				return denseErrorf(ctxAt, i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}
