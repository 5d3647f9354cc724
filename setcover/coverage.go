// SPDX-License-Identifier: MIT

package setcover

import "github.com/prysmaticlabs/go-bitfield"

// CoverageState records which samples are covered during one construction
// attempt. It is owned by exactly one Ant and never shared.
type CoverageState struct {
	bits      bitfield.Bitlist
	size      int
	uncovered int
}

// NewCoverageState returns an all-uncovered state over n samples.
func NewCoverageState(n int) *CoverageState {
	return &CoverageState{
		bits:      bitfield.NewBitlist(uint64(n)),
		size:      n,
		uncovered: n,
	}
}

// Reset marks every sample uncovered.
func (cs *CoverageState) Reset() {
	cs.bits = bitfield.NewBitlist(uint64(cs.size))
	cs.uncovered = cs.size
}

// Cover marks samples covered and returns how many were newly covered.
func (cs *CoverageState) Cover(samples []int) int {
	added := 0
	for _, s := range samples {
		if !cs.bits.BitAt(uint64(s)) {
			cs.bits.SetBitAt(uint64(s), true)
			added++
		}
	}
	cs.uncovered -= added

	return added
}

// IsCovered reports whether sample is covered.
func (cs *CoverageState) IsCovered(sample int) bool {
	if sample < 0 || sample >= cs.size {
		return false
	}

	return cs.bits.BitAt(uint64(sample))
}

// Gain counts the samples in samples that are still uncovered.
func (cs *CoverageState) Gain(samples []int) int {
	g := 0
	for _, s := range samples {
		if !cs.bits.BitAt(uint64(s)) {
			g++
		}
	}

	return g
}

// UncoveredCount returns the number of uncovered samples.
func (cs *CoverageState) UncoveredCount() int { return cs.uncovered }

// Uncovered returns the uncovered samples in ascending order.
//
// Complexity: O(S).
func (cs *CoverageState) Uncovered() []int {
	out := make([]int, 0, cs.uncovered)
	for s := 0; s < cs.size && len(out) < cs.uncovered; s++ {
		if !cs.bits.BitAt(uint64(s)) {
			out = append(out, s)
		}
	}

	return out
}

// nthUncovered returns the k-th (0-based) uncovered sample, or -1.
func (cs *CoverageState) nthUncovered(k int) int {
	for s := 0; s < cs.size; s++ {
		if !cs.bits.BitAt(uint64(s)) {
			if k == 0 {
				return s
			}
			k--
		}
	}

	return -1
}

// Complete reports whether every sample is covered.
func (cs *CoverageState) Complete() bool { return cs.uncovered == 0 }
