// SPDX-License-Identifier: MIT

// Package parallel runs several independent construction pipelines against
// one preprocessed instance and keeps the cheapest valid cover.
//
// Every run receives env.Clone() (shared read-only Index, private pheromone)
// and its own seed derived from Options.Seed, so runs never observe each
// other. The shared deadline is a context timeout; runs are expected to
// return their best cover so far when it fires. Each returned cover is
// re-validated against the Index before it may win:
//
//   - an invalid cover aborts the whole solve (setcover.ErrInvalidSolution);
//   - a run error excludes only that run;
//   - no surviving run ⇒ setcover.ErrNoValidSolution.
//
// Ties on cost go to the lower run index, which keeps results reproducible
// for a fixed seed.
package parallel
