package tsp

import "fmt"

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
// Violations are reported as ErrCorruptTour wrapped with the first offending
// position, e.g. "tsp: duplicate city 3 at position 5: tsp: tour is not ...".
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("tsp: length %d, want %d: %w", len(perm), n, ErrCorruptTour)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("tsp: city %d out of range at position %d: %w", v, i, ErrCorruptTour)
		}
		if seen[v] {
			return fmt.Errorf("tsp: duplicate city %d at position %d: %w", v, i, ErrCorruptTour)
		}
		seen[v] = true
	}

	return nil
}
