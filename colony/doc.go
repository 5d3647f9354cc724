// SPDX-License-Identifier: MIT

// Package colony is a reference Ant System driver for the setcover engine.
//
// 🚀 What it does
//
//	Every iteration each ant Clears (mandatory + seed), then repeatedly picks
//	the next candidate from its neighbourhood with probability
//	    p(c) ∝ τ(c)^α · η(c)^β
//	where τ is the pheromone trail and η the heuristic value, until the cover
//	is complete. Optional local search drops redundant candidates. After all
//	ants finish, the PheromonePolicy evaporates τ ← (1−ρ)·τ and deposits
//	Q / cost on the candidates of every ant's solution.
//
// 🔁 Iterated ants
//
//	With Config.Iterated, every ant is seeded with a partial copy of the best
//	cover so far (RemovalFactor of its members dropped at random). The first
//	incumbent is supplied with WithIncumbent or computed by setcover.GreedyCover.
//
// A Colony is single-goroutine. Parallel runs use Factory together with
// parallel.Coordinator, which hands every run its own Environment clone.
package colony
