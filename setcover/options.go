// SPDX-License-Identifier: MIT
// Package setcover: preprocessing options and neighbourhood strategies.

package setcover

import (
	"fmt"
	"runtime"
	"time"
)

// DefaultPreprocessTimeLimit bounds the pairwise dominance scan by default.
const DefaultPreprocessTimeLimit = 60 * time.Second

// Options configures a Preprocessor.
//
// Fields:
//   - PreprocessTimeLimit: wall-clock budget of the pairwise dominance scan.
//     0 means unlimited. When the budget runs out the scan stops and the
//     dominated set found so far is used (it is always safe, never complete-by-claim).
//   - Workers: goroutines used by the parallel preprocessing stages.
//     0 means runtime.GOMAXPROCS(0).
type Options struct {
	PreprocessTimeLimit time.Duration
	Workers             int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		PreprocessTimeLimit: DefaultPreprocessTimeLimit,
		Workers:             0,
	}
}

// Validate checks internal consistency of o.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.PreprocessTimeLimit < 0 {
		return fmt.Errorf("PreprocessTimeLimit %v is negative: %w", o.PreprocessTimeLimit, ErrConfiguration)
	}
	if o.Workers < 0 {
		return fmt.Errorf("Workers %d is negative: %w", o.Workers, ErrConfiguration)
	}

	return nil
}

// workers resolves the effective worker count.
func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// NeighbourhoodStrategy selects how an Ant builds its candidate list.
//
//   - AllCandidates: every non-dominated, unvisited candidate.
//   - SampleRestricted: only the unvisited coverers of one uniformly drawn,
//     currently uncovered sample. The drawn sample is kept until the next
//     Visit or Clear, so repeated Neighbourhood calls agree.
type NeighbourhoodStrategy int

const (
	// AllCandidates is the default, unrestricted neighbourhood.
	AllCandidates NeighbourhoodStrategy = iota

	// SampleRestricted narrows the branching factor to closing one gap.
	SampleRestricted
)

// String implements fmt.Stringer.
func (s NeighbourhoodStrategy) String() string {
	switch s {
	case AllCandidates:
		return "all"
	case SampleRestricted:
		return "sample"
	default:
		return fmt.Sprintf("NeighbourhoodStrategy(%d)", int(s))
	}
}

// ParseNeighbourhoodStrategy maps "all" / "sample" to a strategy.
func ParseNeighbourhoodStrategy(s string) (NeighbourhoodStrategy, error) {
	switch s {
	case "", "all":
		return AllCandidates, nil
	case "sample":
		return SampleRestricted, nil
	default:
		return AllCandidates, fmt.Errorf("unknown neighbourhood strategy %q: %w", s, ErrConfiguration)
	}
}
