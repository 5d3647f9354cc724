// SPDX-License-Identifier: MIT

package colony

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/antcover/setcover"
)

// SelectionProbabilities returns p(c) ∝ τ(c)^α · η(c)^β over neighbourhood,
// normalised to sum to 1. When every weight is 0 the distribution is uniform.
//
// Complexity: O(len(neighbourhood) · |samplesOf(c)|).
func SelectionProbabilities(ant *setcover.Ant, neighbourhood []int, alpha, beta float64) []float64 {
	weights := make([]float64, len(neighbourhood))
	total := 0.0
	for i, c := range neighbourhood {
		w := math.Pow(ant.PheromoneTrailValue(c, 0), alpha) * math.Pow(ant.HeuristicValue(c), beta)
		if math.IsNaN(w) || math.IsInf(w, 0) {
			w = 0
		}
		weights[i] = w
		total += w
	}
	if total == 0 {
		for i := range weights {
			weights[i] = 1 / float64(len(weights))
		}
		return weights
	}
	for i := range weights {
		weights[i] /= total
	}

	return weights
}

// roulette draws an index from probs (which sum to 1).
func roulette(probs []float64, rng *rand.Rand) int {
	r := rng.Float64()
	acc := 0.0
	for i, p := range probs {
		acc += p
		if r < acc {
			return i
		}
	}

	// Rounding left r ≥ acc; pick the last non-zero entry.
	for i := len(probs) - 1; i >= 0; i-- {
		if probs[i] > 0 {
			return i
		}
	}

	return len(probs) - 1
}
