// SPDX-License-Identifier: MIT
// Package setcover - time-bounded pairwise dominance analysis.
//
// Candidate A dominates candidate B when samplesOf(A) ⊇ samplesOf(B) and
// |samplesOf(A)| ≥ |samplesOf(B)|. Identical sets keep the lower index as the
// dominant one, so exactly one member of every group of equal candidates survives.
// Candidates that cover nothing are dominated unconditionally.
//
// Scan:
//   - All C·(C−1)/2 pairs are enumerated lazily, row i = {(i, j) | j > i}.
//   - Rows are handed to Options.Workers goroutines; every unit of work
//     (pairUnit pairs) starts by reading the shared elapsed time.
//   - Once elapsed ≥ budget, no further unit is started and the flags found
//     so far are returned with Complete == false.
//
// Safety:
//   - A flag is only ever set when a superset witness was observed, so an
//     interrupted scan can miss dominated candidates but never marks a
//     necessary one. The maximal members of every ⊇-chain are never marked,
//     hence the retained candidates still cover every coverable sample.
package setcover

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/prysmaticlabs/go-bitfield"
	"golang.org/x/sync/errgroup"
)

// pairUnit is the number of pairs examined between two budget checks.
const pairUnit = 256

// DominanceResult is the outcome of FindDominatedCandidates.
type DominanceResult struct {
	// Dominated[c] is true when c was found dominated. False means "retained",
	// not "proven non-dominated" unless Complete is true.
	Dominated []bool

	// Count is the number of true entries in Dominated.
	Count int

	// Complete reports whether every pair was examined within the budget.
	Complete bool

	// PairsChecked is the number of pairs actually examined.
	PairsChecked int64

	// Elapsed is the wall time spent in the scan.
	Elapsed time.Duration
}

// FindDominatedCandidates enumerates candidate pairs and records the dominated
// member of each pair, stopping once budget is exhausted (budget == 0 ⇒ unlimited).
// ComputeSamplesPerCandidate is run first if it has not been.
//
// Errors: ErrConfiguration (counts unset), ctx errors. Budget exhaustion is
// reported through DominanceResult.Complete, never as an error.
//
// Complexity: O(C²·S/64) worst case, bounded by budget; O(C) extra space.
func (p *Preprocessor) FindDominatedCandidates(ctx context.Context, budget time.Duration) (DominanceResult, error) {
	if err := p.checkCounts(); err != nil {
		return DominanceResult{}, err
	}
	if budget < 0 {
		budget = 0
	}
	if !p.computed {
		if err := p.ComputeSamplesPerCandidate(ctx); err != nil {
			return DominanceResult{}, err
		}
	}

	log.Info("Starting domination analysis")
	var (
		n         = p.numCandidates
		flags     = make([]atomic.Bool, n)
		sizes     = make([]int, n)
		pairs     atomic.Int64
		expired   atomic.Bool
		startTime = time.Now()
	)
	for c := 0; c < n; c++ {
		sizes[c] = len(p.samplesPerCandidate[c])
		if sizes[c] == 0 {
			flags[c].Store(true)
		}
	}

	// outOfTime is the shared checkpoint read before every unit of work.
	outOfTime := func() bool {
		if expired.Load() {
			return true
		}
		if budget > 0 && time.Since(startTime) >= budget {
			expired.Store(true)
			return true
		}

		return false
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.workers())

	var i int
	for i = 0; i < n-1; i++ {
		if outOfTime() || gctx.Err() != nil {
			break
		}
		row := i
		g.Go(func() error {
			scanRow(row, p.masks, sizes, flags, &pairs, outOfTime)
			return gctx.Err()
		})
	}
	err := g.Wait()
	if err != nil {
		return DominanceResult{}, err
	}

	res := DominanceResult{
		Dominated:    make([]bool, n),
		Complete:     !expired.Load() && i >= n-1,
		PairsChecked: pairs.Load(),
		Elapsed:      time.Since(startTime),
	}
	for c := 0; c < n; c++ {
		if flags[c].Load() {
			res.Dominated[c] = true
			res.Count++
		}
	}
	if !res.Complete {
		log.WithField("budget", budget).Info("Dominance budget exhausted, keeping partial dominated set")
	}

	return res, nil
}

// scanRow examines pairs (i, j) for j > i in units of pairUnit, checking the
// budget before each unit.
func scanRow(i int, masks []bitfield.Bitlist, sizes []int, flags []atomic.Bool, pairs *atomic.Int64, outOfTime func() bool) {
	n := len(masks)
	var j, examined int
	for j = i + 1; j < n; j++ {
		if examined%pairUnit == 0 && outOfTime() {
			break
		}
		examined++
		if flags[i].Load() {
			// i already has a witness; (i, j) can only matter for j, and any
			// superset of i also beats j, so that witness row covers it.
			break
		}
		if flags[j].Load() {
			continue
		}
		switch {
		case sizes[i] >= sizes[j] && contains(masks[i], masks[j]):
			// Equal sets land here as well: the lower index i stays dominant.
			flags[j].Store(true)
		case sizes[j] > sizes[i] && contains(masks[j], masks[i]):
			flags[i].Store(true)
		}
	}
	pairs.Add(int64(examined))
}

// contains reports whether a ⊇ b. Masks of one Index share a length, so the
// length error of Bitlist.Contains cannot occur; it is treated as "no".
func contains(a, b bitfield.Bitlist) bool {
	ok, err := a.Contains(b)
	return err == nil && ok
}
