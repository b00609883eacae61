// Package tsp: cost utilities.
//
// Costs are sums over the cyclic edges of an index order, wrap-around
// included, stabilized to 1e-9 so that equal tours compare equal across
// platforms and summation orders.
package tsp

import (
	"math"

	"github.com/katalvlaran/gatsp/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost returns the cyclic cost of order over dist: Σ dist[o[i]][o[i+1]]
// plus the closing edge dist[o[n-1]][o[0]]. An order of length 1 costs 0.
//
// Contract:
//   - dist is square and non-nil, otherwise matrix.ErrNilMatrix / matrix.ErrNonSquare.
//   - every index lies in [0..n-1], otherwise ErrDimensionMismatch.
//   - NaN/±Inf weights yield matrix.ErrNaNInf.
//
// Complexity: O(len(order)).
func TourCost(dist matrix.Matrix, order []int) (float64, error) {
	if dist == nil {
		return 0, matrix.ErrNilMatrix
	}
	n := dist.Rows()
	if n != dist.Cols() || n <= 0 {
		return 0, matrix.ErrNonSquare
	}
	if len(order) == 0 {
		return 0, ErrDimensionMismatch
	}

	var (
		sum  float64
		i    int
		u, v int
		w    float64
		err  error
		L    = len(order)
	)
	for i = 0; i < L; i++ {
		u = order[i]
		v = order[(i+1)%L]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		if w, err = dist.At(u, v); err != nil {
			return 0, err
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, matrix.ErrNaNInf
		}
		sum += w
	}

	return round1e9(sum), nil
}

// cyclicLength is the unchecked hot-path variant of TourCost over a
// prefetched row-major buffer. order must already be a valid permutation.
//
// Complexity: O(n).
func cyclicLength(w []float64, n int, order []int) float64 {
	L := len(order)
	if L < 2 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < L-1; i++ {
		sum += w[order[i]*n+order[i+1]]
	}
	sum += w[order[L-1]*n+order[0]]

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
