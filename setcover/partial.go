// SPDX-License-Identifier: MIT
// Package setcover - partial solutions for iterated restart (destroy & repair).

package setcover

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
)

// RemovalCount is floor(size·fraction), clamped to [0, size].
func RemovalCount(size int, fraction float64) int {
	if size <= 0 || fraction <= 0 || math.IsNaN(fraction) {
		return 0
	}
	k := int(math.Floor(float64(size) * fraction))

	return min(k, size)
}

// PartialSolution returns solution without the members at positions, in the
// original order. Repeated positions count once.
//
// Errors: ErrConstruction for a position outside [0, len(solution)).
//
// Complexity: O(n + k).
func PartialSolution(solution []int, positions []int) ([]int, error) {
	drop := make([]bool, len(solution))
	for _, p := range positions {
		if p < 0 || p >= len(solution) {
			return nil, fmt.Errorf("removal position %d not in [0,%d): %w", p, len(solution), ErrConstruction)
		}
		drop[p] = true
	}

	out := make([]int, 0, len(solution))
	for i, c := range solution {
		if !drop[i] {
			out = append(out, c)
		}
	}

	return out, nil
}

// RandomRemovalPositions draws RemovalCount(size, fraction) distinct
// positions uniformly from [0, size), returned in ascending order.
//
// Complexity: O(size).
func RandomRemovalPositions(rng *rand.Rand, size int, fraction float64) []int {
	k := RemovalCount(size, fraction)
	if k == 0 {
		return nil
	}
	pos := permRange(size, rng)[:k]
	slices.Sort(pos)

	return pos
}
