// SPDX-License-Identifier: MIT

// Package setcover is the problem-specific engine of an Ant Colony heuristic
// for the unicost Set Covering Problem.
//
// 🚀 What is covered?
//
//	Given numSamples samples and numCandidates candidate sets, pick as few
//	candidates as possible so that every sample is covered by at least one
//	of them. The package provides:
//	  • Preprocessor: incidence (candidate↔sample) + dominance + mandatory analysis
//	  • Index: the immutable, shareable result of preprocessing
//	  • Environment: an Index plus a private per-candidate pheromone vector
//	  • Ant: stateful cover construction (Clear / Visit / IsReady …)
//	  • RemoveRedundant / Ant.ApplyLocalSearch: redundancy-elimination pass
//	  • PartialSolution / RandomRemovalPositions: iterated-restart seeding
//	  • GreedyCover: lazy greedy cover used as a first incumbent
//
// ⚙️ Usage:
//
//	p := setcover.NewPreprocessor(setcover.DefaultOptions())
//	p.SetNumberOfSamples(4)
//	p.SetNumberOfCandidates(4)
//	_ = p.AddCandidatesForSample(0, []int{1})
//	// … one call per sample …
//	ix, err := p.Build(ctx)
//	env := setcover.NewEnvironment(ix)
//	ant := setcover.NewAnt(env)
//	ant.Clear() // visits mandatory candidates
//	for !ant.IsReady() {
//	    next := pick(ant.Neighbourhood(), ant.HeuristicValue) // colony driver
//	    _ = ant.Visit(next)
//	}
//	cost, _ := ant.SolutionCost()
//
// Concurrency:
//
//   - Index is immutable after Build and may be read from any goroutine.
//   - Environment.Clone shares the Index and copies the pheromone vector; hand
//     one clone to each parallel run.
//   - Ant, CoverageState and *rand.Rand are single-goroutine objects.
//
// Errors are package sentinels (errors.go) wrapped with context; classify them
// with KindOf.
package setcover
