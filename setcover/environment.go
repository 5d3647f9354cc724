// SPDX-License-Identifier: MIT

package setcover

// Environment is what one colony run traverses: the shared, immutable Index
// plus a private per-candidate pheromone vector. Pheromone is not per
// position; one scalar per candidate.
//
// Concurrency: an Environment is owned by a single run. Use Clone to give
// every parallel run its own copy; clones share the Index without locking.
type Environment struct {
	ix        *Index
	pheromone []float64
}

// NewEnvironment wraps ix with a zeroed pheromone vector.
func NewEnvironment(ix *Index) *Environment {
	return &Environment{
		ix:        ix,
		pheromone: make([]float64, ix.numCandidates),
	}
}

// Index returns the shared preprocessed instance.
func (e *Environment) Index() *Index { return e.ix }

// Clone returns an Environment that shares the Index and owns a copy of the
// pheromone vector.
//
// Complexity: O(C).
func (e *Environment) Clone() *Environment {
	p := make([]float64, len(e.pheromone))
	copy(p, e.pheromone)

	return &Environment{ix: e.ix, pheromone: p}
}

// PheromoneValue returns the trail value of candidate (0 for unknown indexes).
func (e *Environment) PheromoneValue(candidate int) float64 {
	if candidate < 0 || candidate >= len(e.pheromone) {
		return 0
	}

	return e.pheromone[candidate]
}

// SetPheromoneValue sets the trail value of candidate; unknown indexes are ignored.
func (e *Environment) SetPheromoneValue(candidate int, value float64) {
	if candidate < 0 || candidate >= len(e.pheromone) {
		return
	}
	e.pheromone[candidate] = value
}

// FillPheromone sets every trail to value.
func (e *Environment) FillPheromone(value float64) {
	for i := range e.pheromone {
		e.pheromone[i] = value
	}
}

// ScalePheromone multiplies every trail by factor (evaporation uses 1−ρ).
func (e *Environment) ScalePheromone(factor float64) {
	for i := range e.pheromone {
		e.pheromone[i] *= factor
	}
}

// ValidateSolution re-derives coverage of solution from ground truth.
// See Index.ValidateSolution.
func (e *Environment) ValidateSolution(solution []int) error {
	return e.ix.ValidateSolution(solution)
}
