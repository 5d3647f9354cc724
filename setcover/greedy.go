// SPDX-License-Identifier: MIT
// Package setcover - lazy greedy cover.
//
// The classic greedy picks, at every step, the candidate covering the most
// still-uncovered samples. Gains only ever shrink, so a popped candidate whose
// recorded gain is stale is re-queued with its fresh gain instead of
// rescanning every candidate ("lazy" evaluation).

package setcover

import (
	"fmt"

	"gopkg.in/dnaeon/go-priorityqueue.v1"
)

// GreedyCover builds a complete cover from the mandatory candidates plus
// greedy picks over the non-dominated ones. It is used as the first
// incumbent of iterated restart when no earlier solution is known.
//
// Errors: ErrInfeasibleInstance when the queue runs dry before completion.
//
// Complexity: O(C log C + Σ|samplesOf(c)|·log C) typical.
func GreedyCover(ix *Index) ([]int, error) {
	cov := NewCoverageState(ix.NumSamples())
	chosen := make([]bool, ix.NumCandidates())
	solution := make([]int, 0, len(ix.MandatoryCandidates()))
	for _, c := range ix.MandatoryCandidates() {
		cov.Cover(ix.SamplesOf(c))
		chosen[c] = true
		solution = append(solution, c)
	}

	// MinHeap over negated gains == max-gain first.
	pq := priorityqueue.New[int, float64](priorityqueue.MinHeap)
	gain := make([]int, ix.NumCandidates())
	for c := 0; c < ix.NumCandidates(); c++ {
		if chosen[c] || ix.IsDominated(c) {
			continue
		}
		gain[c] = cov.Gain(ix.SamplesOf(c))
		if gain[c] > 0 {
			pq.Put(c, float64(-gain[c]))
		}
	}

	for !cov.Complete() {
		if pq.Len() == 0 {
			return nil, fmt.Errorf("greedy stalled with %d samples uncovered: %w",
				cov.UncoveredCount(), ErrInfeasibleInstance)
		}
		c := pq.Get().Value
		g := cov.Gain(ix.SamplesOf(c))
		if g == 0 {
			continue
		}
		if g < gain[c] {
			gain[c] = g
			pq.Put(c, float64(-g))
			continue
		}
		cov.Cover(ix.SamplesOf(c))
		solution = append(solution, c)
	}

	return solution, nil
}
