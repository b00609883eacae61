// Package tsp - 2-opt local search for polishing a finished tour.
//
// TwoOpt performs deterministic first-improvement 2-opt on the cyclic order.
// For positions 1 ≤ i < k ≤ n−1 with a=T[i−1], b=T[i], c=T[k], d=T[(k+1) mod n]:
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//
// and a move with Δ < −eps reverses the segment T[i..k] in place.
//
// Design:
//   - Deterministic scanning order; no RNG usage.
//   - Works on a copy; the input tour is never modified.
//   - Position 0 stays fixed, so the result starts at the same city.
//
// Complexity:
//   - One pass: O(n²) candidate checks; each accepted move costs O(k−i).
package tsp

// twoOptEps is the acceptance tolerance for an improving move.
const twoOptEps = 1e-12

// TwoOpt improves t by first-improvement 2-opt and returns the improved copy
// together with the number of accepted moves. maxMoves bounds the accepted
// moves (0 ⇒ run until a local optimum).
//
// Errors:
//   - ErrNilTour when t is nil.
//   - ErrInvalidOption when maxMoves < 0.
//   - ErrCorruptTour if the result fails the permutation check.
//
// Tours with fewer than four cities are returned as a copy with zero moves:
// every cyclic order of three or fewer cities has the same length.
func TwoOpt(t *Tour, maxMoves int) (*Tour, int, error) {
	if t == nil {
		return nil, 0, ErrNilTour
	}
	if maxMoves < 0 {
		return nil, 0, ErrInvalidOption
	}

	var (
		cur = t.Clone()
		n   = len(cur.order)
		w   = cur.inst.w
		at  = func(u, v int) float64 { return w[u*cur.inst.n+v] }
	)
	if n < 4 {
		return cur, 0, nil
	}

	accepted := 0
	for {
		improved := false

		var (
			a, b, c, d int
			delta      float64
			i, k       int
		)
		for i = 1; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				a = cur.order[i-1]
				b = cur.order[i]
				c = cur.order[k]
				d = cur.order[(k+1)%n]

				delta = (at(a, c) + at(b, d)) - (at(a, b) + at(c, d))
				if delta >= -twoOptEps {
					continue
				}

				reverseSegment(cur.order, i, k)
				accepted++
				improved = true
				break
			}
		}

		if !improved || (maxMoves > 0 && accepted >= maxMoves) {
			break
		}
	}

	if err := cur.Validate(); err != nil {
		return nil, 0, err
	}

	return cur, accepted, nil
}

// reverseSegment reverses order[i..k] in place (inclusive bounds).
func reverseSegment(order []int, i, k int) {
	for i < k {
		order[i], order[k] = order[k], order[i]
		i++
		k--
	}
}
