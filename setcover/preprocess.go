// SPDX-License-Identifier: MIT
// Package setcover - incidence preprocessing.
//
// The Preprocessor collects the sample→candidates mapping produced by a loader,
// derives the inverse candidate→samples mapping, runs the (time-bounded)
// dominance scan and the mandatory analysis, and freezes everything into an
// immutable Index.
//
// Pipeline (Build):
//  1. ComputeSamplesPerCandidate: inverse mapping + per-candidate bit masks.
//  2. FindDominatedCandidates: pairwise scan under Options.PreprocessTimeLimit.
//  3. FindMandatoryCandidates: sole non-dominated coverers.
//  4. freeze into *Index.
package setcover

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/prysmaticlabs/go-bitfield"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var log = logrus.WithField("prefix", "setcover")

// Preprocessor accumulates an instance and analyses it. It is not safe for
// concurrent mutation; Build must be called once loading is finished.
type Preprocessor struct {
	opts Options

	numSamples    int
	numCandidates int

	candidatesPerSample [][]int            // input mapping, sorted and de-duplicated
	samplesPerCandidate [][]int            // derived, sorted ascending
	masks               []bitfield.Bitlist // derived, len == numSamples each
	computed            bool
}

// NewPreprocessor creates an empty Preprocessor. Counts must be set with
// SetNumberOfSamples / SetNumberOfCandidates before samples are added.
func NewPreprocessor(opts Options) *Preprocessor {
	return &Preprocessor{opts: opts}
}

// SetNumberOfSamples sets the universe size and resets the sample mapping.
func (p *Preprocessor) SetNumberOfSamples(n int) {
	if n < 0 {
		n = 0
	}
	p.numSamples = n
	p.candidatesPerSample = make([][]int, n)
	p.computed = false
}

// SetNumberOfCandidates sets the candidate count.
func (p *Preprocessor) SetNumberOfCandidates(n int) {
	if n < 0 {
		n = 0
	}
	p.numCandidates = n
	p.computed = false
}

// NumberOfSamples returns the configured universe size.
func (p *Preprocessor) NumberOfSamples() int { return p.numSamples }

// NumberOfCandidates returns the configured candidate count.
func (p *Preprocessor) NumberOfCandidates() int { return p.numCandidates }

// Options returns the options the Preprocessor was created with.
func (p *Preprocessor) Options() Options { return p.opts }

// checkCounts fails fast when analysis is requested on an unsized instance.
func (p *Preprocessor) checkCounts() error {
	if p.numSamples == 0 || p.numCandidates == 0 {
		return fmt.Errorf("number of samples (%d) and candidates (%d) must be set before preprocessing: %w",
			p.numSamples, p.numCandidates, ErrConfiguration)
	}

	return nil
}

// AddCandidatesForSample registers which candidates cover sample.
// Called once per sample during load; a second call replaces the first.
//
// Errors: ErrConfiguration (counts unset), ErrSampleOutOfRange, ErrCandidateOutOfRange.
//
// Complexity: O(k log k) for k candidates (sort + de-duplicate).
func (p *Preprocessor) AddCandidatesForSample(sample int, candidates []int) error {
	if err := p.checkCounts(); err != nil {
		return err
	}
	if sample < 0 || sample >= p.numSamples {
		return fmt.Errorf("sample %d not in [0,%d): %w", sample, p.numSamples, ErrSampleOutOfRange)
	}
	for _, c := range candidates {
		if c < 0 || c >= p.numCandidates {
			return fmt.Errorf("sample %d lists candidate %d not in [0,%d): %w",
				sample, c, p.numCandidates, ErrCandidateOutOfRange)
		}
	}

	list := slices.Clone(candidates)
	slices.Sort(list)
	p.candidatesPerSample[sample] = slices.Compact(list)
	p.computed = false

	return nil
}

// CandidatesForSample returns the registered coverers of sample (read-only view).
func (p *Preprocessor) CandidatesForSample(sample int) []int {
	if sample < 0 || sample >= len(p.candidatesPerSample) {
		return nil
	}

	return p.candidatesPerSample[sample]
}

// SamplesForCandidate returns the samples covered by candidate once
// ComputeSamplesPerCandidate has run (read-only view).
func (p *Preprocessor) SamplesForCandidate(candidate int) []int {
	if !p.computed || candidate < 0 || candidate >= len(p.samplesPerCandidate) {
		return nil
	}

	return p.samplesPerCandidate[candidate]
}

// ComputeSamplesPerCandidate derives, for every candidate, the sorted set of
// samples it covers together with its coverage bit mask. The inversion is a
// single pass over the input; mask construction is independent per candidate
// and runs on Options.Workers goroutines.
//
// Errors: ErrConfiguration, ctx errors.
//
// Complexity: O(Σ|candidatesOf(s)| + C·S/8) time, O(C·S/8) space for masks.
func (p *Preprocessor) ComputeSamplesPerCandidate(ctx context.Context) error {
	if err := p.checkCounts(); err != nil {
		return err
	}
	if err := p.opts.Validate(); err != nil {
		return err
	}

	// Stage 1: count then fill, so each list is allocated exactly once.
	counts := make([]int, p.numCandidates)
	for _, list := range p.candidatesPerSample {
		for _, c := range list {
			counts[c]++
		}
	}
	samples := make([][]int, p.numCandidates)
	for c, k := range counts {
		samples[c] = make([]int, 0, k)
	}
	// Samples are visited in ascending order ⇒ every list is already sorted.
	for s, list := range p.candidatesPerSample {
		for _, c := range list {
			samples[c] = append(samples[c], s)
		}
	}

	// Stage 2: per-candidate masks, chunked across workers.
	masks := make([]bitfield.Bitlist, p.numCandidates)
	g, gctx := errgroup.WithContext(ctx)
	workers := p.opts.workers()
	chunk := (p.numCandidates + workers - 1) / workers
	for lo := 0; lo < p.numCandidates; lo += chunk {
		lo, hi := lo, min(lo+chunk, p.numCandidates)
		g.Go(func() error {
			for c := lo; c < hi; c++ {
				if c%1024 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				masks[c] = maskOf(samples[c], p.numSamples)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	p.samplesPerCandidate = samples
	p.masks = masks
	p.computed = true

	return nil
}

// maskOf builds a coverage bit list of length n with the given bits set.
func maskOf(samples []int, n int) bitfield.Bitlist {
	b := bitfield.NewBitlist(uint64(n))
	for _, s := range samples {
		b.SetBitAt(uint64(s), true)
	}

	return b
}

// Build runs the full preprocessing pipeline and returns the immutable Index.
//
// Errors: ErrConfiguration, ErrInfeasibleInstance, ctx errors. An exhausted
// dominance budget is not an error (see Index.DominanceComplete).
func (p *Preprocessor) Build(ctx context.Context) (*Index, error) {
	start := time.Now()

	if !p.computed {
		log.Info("Computing samples per candidate")
		if err := p.ComputeSamplesPerCandidate(ctx); err != nil {
			return nil, err
		}
	}

	dom, err := p.FindDominatedCandidates(ctx, p.opts.PreprocessTimeLimit)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"dominated":  dom.Count,
		"candidates": p.numCandidates,
		"complete":   dom.Complete,
		"pairs":      dom.PairsChecked,
	}).Info("Dominance analysis finished")

	mandatory, err := p.FindMandatoryCandidates(dom.Dominated)
	if err != nil {
		return nil, err
	}
	log.WithField("mandatory", len(mandatory)).Info("Mandatory candidates found")

	ix := &Index{
		numSamples:        p.numSamples,
		numCandidates:     p.numCandidates,
		samplesOf:         p.samplesPerCandidate,
		masks:             p.masks,
		dominated:         dom.Dominated,
		dominatedCount:    dom.Count,
		dominanceComplete: dom.Complete,
		mandatory:         mandatory,
	}
	ix.coverers = nonDominatedCoverers(p.candidatesPerSample, dom.Dominated)
	ix.preprocessTime = time.Since(start)
	log.WithField("elapsed", ix.preprocessTime).Info("Pre-process finished")

	return ix, nil
}
