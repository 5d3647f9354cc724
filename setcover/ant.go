// SPDX-License-Identifier: MIT
// Package setcover - the solution constructor.
//
// An Ant walks the candidate graph of one Environment and extends a partial
// cover one candidate at a time:
//
//	Empty ──Clear/Visit──▶ Partial ──Visit──▶ Complete
//	  ▲                                          │
//	  └──────────────────── Clear ◀──────────────┘
//
// Clear always re-inserts the mandatory candidates (and the seed, if any), so
// an Ant is Empty only before its first Clear or when the instance has no
// mandatory candidate and no seed.
package setcover

import (
	"fmt"
	"math/rand"
	"slices"
)

// AntState is the construction state of an Ant.
type AntState int

const (
	// Empty means no candidate has been visited.
	Empty AntState = iota
	// Partial means some, but not all, samples are covered.
	Partial
	// Complete means every sample is covered.
	Complete
)

// String implements fmt.Stringer.
func (s AntState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Partial:
		return "partial"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("AntState(%d)", int(s))
	}
}

// AntOption customises NewAnt.
type AntOption func(*Ant)

// WithSeedSolution makes every Clear visit seed after the mandatory
// candidates. Seeds are typically produced by PartialSolution.
func WithSeedSolution(seed []int) AntOption {
	return func(a *Ant) { a.seed = slices.Clone(seed) }
}

// WithStrategy sets the neighbourhood strategy (AllCandidates by default).
func WithStrategy(s NeighbourhoodStrategy) AntOption {
	return func(a *Ant) { a.strategy = s }
}

// WithRand sets the random source used by SampleRestricted.
func WithRand(rng *rand.Rand) AntOption {
	return func(a *Ant) { a.rng = rng }
}

// Ant builds one cover at a time against an Environment.
// It is not safe for concurrent use.
type Ant struct {
	env      *Environment
	ix       *Index
	coverage *CoverageState

	solution []int
	visited  []bool
	seed     []int

	strategy NeighbourhoodStrategy
	rng      *rand.Rand

	// focus is the uncovered sample the restricted neighbourhood is built
	// around; -1 when not drawn yet.
	focus int
}

// NewAnt returns an Empty Ant bound to env. Call Clear before constructing.
func NewAnt(env *Environment, opts ...AntOption) *Ant {
	ix := env.Index()
	a := &Ant{
		env:      env,
		ix:       ix,
		coverage: NewCoverageState(ix.NumSamples()),
		visited:  make([]bool, ix.NumCandidates()),
		focus:    -1,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = NewRand(0)
	}

	return a
}

// Environment returns the Environment the Ant reads pheromone from.
func (a *Ant) Environment() *Environment { return a.env }

// Seed returns the seed visited by every Clear (read-only view).
func (a *Ant) Seed() []int { return a.seed }

// SetSeed replaces the seed used by subsequent Clear calls.
func (a *Ant) SetSeed(seed []int) { a.seed = slices.Clone(seed) }

// reset drops the solution and marks every sample uncovered.
func (a *Ant) reset() {
	a.coverage.Reset()
	a.solution = a.solution[:0]
	clear(a.visited)
	a.focus = -1
}

// Clear resets coverage, then visits every mandatory candidate followed by
// every seed candidate not visited yet. Seed entries that are dominated or
// unknown to this instance are skipped.
//
// Complexity: O(C + S + Σ|samplesOf(m)|).
func (a *Ant) Clear() {
	a.reset()
	for _, c := range a.ix.MandatoryCandidates() {
		a.add(c)
	}
	skipped := 0
	for _, c := range a.seed {
		if !a.ix.validCandidate(c) || a.ix.IsDominated(c) {
			skipped++
			continue
		}
		if !a.visited[c] {
			a.add(c)
		}
	}
	if skipped > 0 {
		log.WithField("skipped", skipped).Debug("Seed candidates not usable on this instance")
	}
}

// Visit appends candidate to the solution and covers its samples.
//
// Errors: ErrConstruction when candidate is unknown, dominated or already visited.
//
// Complexity: O(|samplesOf(candidate)|).
func (a *Ant) Visit(candidate int) error {
	switch {
	case !a.ix.validCandidate(candidate):
		return fmt.Errorf("candidate %d not in [0,%d): %w", candidate, a.ix.NumCandidates(), ErrConstruction)
	case a.ix.IsDominated(candidate):
		return fmt.Errorf("candidate %d is dominated: %w", candidate, ErrConstruction)
	case a.visited[candidate]:
		return fmt.Errorf("candidate %d already visited: %w", candidate, ErrConstruction)
	}
	a.add(candidate)

	return nil
}

// add is Visit without checks.
func (a *Ant) add(candidate int) {
	a.solution = append(a.solution, candidate)
	a.visited[candidate] = true
	a.coverage.Cover(a.ix.SamplesOf(candidate))
	a.focus = -1
}

// IsReady reports whether every sample is covered.
func (a *Ant) IsReady() bool { return a.coverage.Complete() }

// State reports the construction state.
func (a *Ant) State() AntState {
	switch {
	case len(a.solution) == 0 && !a.coverage.Complete():
		return Empty
	case a.coverage.Complete():
		return Complete
	default:
		return Partial
	}
}

// HeuristicValue is the share of the universe that candidate would newly
// cover: |uncovered ∩ samplesOf(candidate)| / numSamples. It lies in [0,1],
// is 0 once the Ant is Complete and 0 for dominated or unknown candidates.
//
// Complexity: O(|samplesOf(candidate)|).
func (a *Ant) HeuristicValue(candidate int) float64 {
	if a.coverage.Complete() || a.ix.IsDominated(candidate) {
		return 0
	}
	gain := a.coverage.Gain(a.ix.SamplesOf(candidate))

	return float64(gain) / float64(a.ix.NumSamples())
}

// Neighbourhood returns the eligible next candidates in ascending order.
// With SampleRestricted the list is limited to coverers of one uniformly
// drawn uncovered sample; the draw is kept until the next Visit or Clear.
// A Complete Ant has an empty neighbourhood.
//
// Complexity: O(C) for AllCandidates, O(S + |coverers|) for SampleRestricted.
func (a *Ant) Neighbourhood() []int {
	if a.coverage.Complete() {
		return nil
	}
	if a.strategy == SampleRestricted {
		if a.focus < 0 {
			k := a.rng.Intn(a.coverage.UncoveredCount())
			a.focus = a.coverage.nthUncovered(k)
		}

		return a.NeighbourhoodForSample(a.focus)
	}

	out := make([]int, 0, a.ix.NumCandidates()-a.ix.DominatedCount())
	for c := 0; c < a.ix.NumCandidates(); c++ {
		if !a.visited[c] && !a.ix.IsDominated(c) {
			out = append(out, c)
		}
	}

	return out
}

// NeighbourhoodForSample returns the unvisited non-dominated coverers of
// sample in ascending order (nil for an out-of-range sample).
func (a *Ant) NeighbourhoodForSample(sample int) []int {
	coverers := a.ix.CoveringCandidates(sample)
	out := make([]int, 0, len(coverers))
	for _, c := range coverers {
		if !a.visited[c] {
			out = append(out, c)
		}
	}

	return out
}

// SolutionCost returns the number of candidates in the solution.
//
// Errors: ErrIncompleteSolution unless the Ant is Complete.
func (a *Ant) SolutionCost() (int, error) {
	if !a.coverage.Complete() {
		return 0, fmt.Errorf("%d of %d samples uncovered: %w",
			a.coverage.UncoveredCount(), a.ix.NumSamples(), ErrIncompleteSolution)
	}

	return len(a.solution), nil
}

// PheromoneTrailValue returns the trail of candidate. Pheromone is kept per
// candidate; position is accepted for driver symmetry and ignored.
func (a *Ant) PheromoneTrailValue(candidate, position int) float64 {
	_ = position
	return a.env.PheromoneValue(candidate)
}

// SetPheromoneTrailValue sets the trail of candidate; position is ignored.
func (a *Ant) SetPheromoneTrailValue(candidate, position int, value float64) {
	_ = position
	a.env.SetPheromoneValue(candidate, value)
}

// Solution returns a copy of the visited candidates in visit order.
func (a *Ant) Solution() []int { return slices.Clone(a.solution) }

// SetSolution replaces the current solution and rebuilds coverage from it.
//
// Errors: ErrConstruction for unknown, dominated or repeated candidates; the
// Ant is left cleared (without mandatory candidates) in that case.
func (a *Ant) SetSolution(solution []int) error {
	a.reset()
	for _, c := range solution {
		if err := a.Visit(c); err != nil {
			a.reset()
			return err
		}
	}

	return nil
}

// IsSampleCovered reports whether sample is covered by the current solution.
func (a *Ant) IsSampleCovered(sample int) bool { return a.coverage.IsCovered(sample) }

// UncoveredSamples returns the uncovered samples in ascending order.
func (a *Ant) UncoveredSamples() []int { return a.coverage.Uncovered() }
