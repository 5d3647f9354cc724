// SPDX-License-Identifier: MIT
// Package setcover - immutable preprocessed instance.
//
// Concurrency: every method is read-only; an *Index may be shared by any
// number of goroutines without locking. Returned slices are views and must
// not be modified by callers.

package setcover

import (
	"fmt"
	"time"

	"github.com/prysmaticlabs/go-bitfield"
)

// Index is the frozen result of preprocessing.
type Index struct {
	numSamples    int
	numCandidates int

	samplesOf [][]int
	masks     []bitfield.Bitlist
	coverers  [][]int // non-dominated coverers per sample

	dominated         []bool
	dominatedCount    int
	dominanceComplete bool
	mandatory         []int

	preprocessTime time.Duration
}

// NumSamples returns the universe size.
func (ix *Index) NumSamples() int { return ix.numSamples }

// NumCandidates returns the total candidate count (dominated ones included).
func (ix *Index) NumCandidates() int { return ix.numCandidates }

// validCandidate reports whether c is a known candidate index.
func (ix *Index) validCandidate(c int) bool { return c >= 0 && c < ix.numCandidates }

// SamplesOf returns the samples covered by candidate, regardless of dominance.
// This is the ground truth used for validation.
func (ix *Index) SamplesOf(candidate int) []int {
	if !ix.validCandidate(candidate) {
		return nil
	}

	return ix.samplesOf[candidate]
}

// SamplesForNonDominatedCandidate returns the coverage set of candidate, or
// nil when candidate is dominated or unknown (it has no registered coverage
// in the search view).
func (ix *Index) SamplesForNonDominatedCandidate(candidate int) []int {
	if !ix.validCandidate(candidate) || ix.dominated[candidate] {
		return nil
	}

	return ix.samplesOf[candidate]
}

// CoveringCandidates returns the non-dominated coverers of sample.
func (ix *Index) CoveringCandidates(sample int) []int {
	if sample < 0 || sample >= ix.numSamples {
		return nil
	}

	return ix.coverers[sample]
}

// IsDominated reports whether candidate is excluded from the search.
// Unknown indexes report true.
func (ix *Index) IsDominated(candidate int) bool {
	return !ix.validCandidate(candidate) || ix.dominated[candidate]
}

// DominatedCount returns the number of dominated candidates.
func (ix *Index) DominatedCount() int { return ix.dominatedCount }

// DominanceComplete reports whether the dominance scan examined every pair.
func (ix *Index) DominanceComplete() bool { return ix.dominanceComplete }

// MandatoryCandidates returns the ascending list of mandatory candidates.
func (ix *Index) MandatoryCandidates() []int { return ix.mandatory }

// PreprocessTime returns the wall time spent in Build.
func (ix *Index) PreprocessTime() time.Duration { return ix.preprocessTime }

// ValidateSolution re-derives coverage of solution from the ground-truth
// incidence and checks it against the whole universe.
//
// Errors:
//   - ErrCandidateOutOfRange when solution names an unknown candidate.
//   - ErrInvalidSolution when some sample stays uncovered; the message carries
//     the number of uncovered samples and the first of them.
//
// Complexity: O(Σ|samplesOf(c)|) over c in solution, plus O(S/8) for the mask.
func (ix *Index) ValidateSolution(solution []int) error {
	covered := bitfield.NewBitlist(uint64(ix.numSamples))
	pending := ix.numSamples
	for _, c := range solution {
		if !ix.validCandidate(c) {
			return fmt.Errorf("candidate %d not in [0,%d): %w", c, ix.numCandidates, ErrCandidateOutOfRange)
		}
		for _, s := range ix.samplesOf[c] {
			if !covered.BitAt(uint64(s)) {
				covered.SetBitAt(uint64(s), true)
				pending--
			}
		}
	}
	if pending == 0 {
		return nil
	}

	first := -1
	for s := 0; s < ix.numSamples; s++ {
		if !covered.BitAt(uint64(s)) {
			first = s
			break
		}
	}
	log.WithField("pending", pending).Warn("Solution does not cover every sample")

	return fmt.Errorf("%d samples uncovered (first %d): %w", pending, first, ErrInvalidSolution)
}

// IsValidSolution is the boolean form of ValidateSolution.
func (ix *Index) IsValidSolution(solution []int) bool {
	return ix.ValidateSolution(solution) == nil
}

// String summarises the preprocessing outcome.
func (ix *Index) String() string {
	return fmt.Sprintf("Index{samples=%d, candidates=%d, dominated=%d, complete=%t, mandatory=%d, preprocess=%s}",
		ix.numSamples, ix.numCandidates, ix.dominatedCount, ix.dominanceComplete, len(ix.mandatory), ix.preprocessTime)
}

// Covers reports whether candidate covers sample in the ground-truth incidence.
//
// Complexity: O(1).
func (ix *Index) Covers(candidate, sample int) bool {
	if !ix.validCandidate(candidate) || sample < 0 || sample >= ix.numSamples {
		return false
	}

	return ix.masks[candidate].BitAt(uint64(sample))
}
