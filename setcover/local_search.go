// SPDX-License-Identifier: MIT
// Package setcover - redundancy elimination.
//
// A candidate is redundant when every sample it covers is also covered by
// some other candidate of the solution that has not been marked for removal.
// Marks accumulate over a single left-to-right pass and are applied at the
// end, so two candidates covering the same gap are never both dropped.

package setcover

// RemoveRedundant returns solution without its redundant candidates, keeping
// the order of the survivors. If solution is a valid cover, so is the result,
// and its cost is never larger.
//
// Complexity: O(Σ|samplesOf(c)|) time, O(S) extra space.
func RemoveRedundant(ix *Index, solution []int) []int {
	// multiplicity[s] = number of unmarked solution members covering s
	multiplicity := make([]int, ix.NumSamples())
	for _, c := range solution {
		for _, s := range ix.SamplesOf(c) {
			multiplicity[s]++
		}
	}

	marked := make([]bool, len(solution))
	removed := 0
	for pos, c := range solution {
		redundant := true
		for _, s := range ix.SamplesOf(c) {
			if multiplicity[s] < 2 {
				redundant = false
				break
			}
		}
		if !redundant {
			continue
		}
		marked[pos] = true
		removed++
		for _, s := range ix.SamplesOf(c) {
			multiplicity[s]--
		}
	}

	out := make([]int, 0, len(solution)-removed)
	for pos, c := range solution {
		if !marked[pos] {
			out = append(out, c)
		}
	}

	return out
}

// ApplyLocalSearch drops the redundant candidates of a Complete Ant in place
// and returns how many were removed. Coverage is unchanged.
//
// Errors: ErrIncompleteSolution when the Ant is not Complete.
func (a *Ant) ApplyLocalSearch() (int, error) {
	if _, err := a.SolutionCost(); err != nil {
		return 0, err
	}

	kept := RemoveRedundant(a.ix, a.solution)
	removed := len(a.solution) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	clear(a.visited)
	for _, c := range kept {
		a.visited[c] = true
	}
	a.solution = append(a.solution[:0], kept...)
	a.focus = -1
	log.WithField("removed", removed).Debug("Local search dropped redundant candidates")

	return removed, nil
}
