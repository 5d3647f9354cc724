// SPDX-License-Identifier: MIT

// Package antcover is an Ant Colony Optimization engine for the unicost Set
// Covering Problem: pick the fewest candidates such that every sample is
// covered by at least one of them.
//
// The module is organised as:
//
//	setcover       preprocessing (dominance, mandatory candidates), the frozen
//	               Index, per-run Environment, Ant construction, local search,
//	               partial solutions for iterated ants, greedy cover
//	colony         Ant System driver (τ^α·η^β selection, evaporation, deposit)
//	parallel       best-of-k coordinator over independent colony runs
//	scpio          instance and solution file formats, dense 0/1 matrices
//	store          best known solution per instance (Badger)
//	config         YAML configuration with validation
//	cmd/antcover   command line: solve, validate, preprocess
//
// Minimal pipeline:
//
//	p, _ := scpio.ReadInstanceFile("instance.txt", setcover.DefaultOptions())
//	ix, _ := p.Build(ctx)
//	factory, _ := colony.Factory(colony.DefaultConfig())
//	coord, _ := parallel.NewCoordinator(parallel.Options{Runs: 4})
//	res, _ := coord.Solve(ctx, setcover.NewEnvironment(ix), factory)
//
//	go install github.com/katalvlaran/antcover/cmd/antcover@latest
package antcover
