// SPDX-License-Identifier: MIT

package setcover

import (
	"fmt"
	"slices"
)

// FindMandatoryCandidates returns, in ascending order, every non-dominated
// candidate that is the sole non-dominated coverer of some sample. It must be
// called with the flags produced by the dominance analysis.
//
// Errors:
//   - ErrConfiguration when counts are unset or len(dominated) != numCandidates.
//   - ErrInfeasibleInstance when a sample has no non-dominated coverer.
//
// Complexity: O(Σ|candidatesOf(s)| + M log M) for M mandatory candidates.
func (p *Preprocessor) FindMandatoryCandidates(dominated []bool) ([]int, error) {
	if err := p.checkCounts(); err != nil {
		return nil, err
	}
	if len(dominated) != p.numCandidates {
		return nil, fmt.Errorf("dominated flags for %d candidates, want %d: %w",
			len(dominated), p.numCandidates, ErrConfiguration)
	}

	var (
		mandatory []int
		sole      int
		count     int
	)
	for s, list := range p.candidatesPerSample {
		count = 0
		for _, c := range list {
			if !dominated[c] {
				count++
				sole = c
				if count > 1 {
					break
				}
			}
		}
		switch count {
		case 0:
			return nil, fmt.Errorf("sample %d has no covering candidate: %w", s, ErrInfeasibleInstance)
		case 1:
			mandatory = append(mandatory, sole)
		}
	}
	slices.Sort(mandatory)

	return slices.Compact(mandatory), nil
}

// nonDominatedCoverers filters every sample's coverer list down to the
// retained candidates.
func nonDominatedCoverers(candidatesPerSample [][]int, dominated []bool) [][]int {
	out := make([][]int, len(candidatesPerSample))
	for s, list := range candidatesPerSample {
		kept := make([]int, 0, len(list))
		for _, c := range list {
			if !dominated[c] {
				kept = append(kept, c)
			}
		}
		out[s] = kept
	}

	return out
}
