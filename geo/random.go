package geo

import (
	"math"
	"math/rand"
	"strconv"
)

// defaultMapSeed backs RandomCities when the caller passes a nil generator.
const defaultMapSeed int64 = 1

// RandomCities draws n cities uniformly from the square [lo, hi)×[lo, hi).
// Cities are labelled "C0" … "C<n-1>" in generation order.
//
// Contract:
//   - n ≥ 0, otherwise ErrNegativeCount; n == 0 yields an empty, non-nil slice.
//   - lo < hi and both finite, otherwise ErrInvalidRange.
//   - rng == nil uses a fixed default stream, so output stays reproducible.
//
// Complexity: O(n).
func RandomCities(rng *rand.Rand, n int, lo, hi float64) ([]City, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return nil, ErrInvalidRange
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultMapSeed))
	}

	var (
		out  = make([]City, n)
		span = hi - lo
		i    int
	)
	for i = 0; i < n; i++ {
		out[i] = City{
			x:     lo + rng.Float64()*span,
			y:     lo + rng.Float64()*span,
			label: "C" + strconv.Itoa(i),
		}
	}

	return out, nil
}
