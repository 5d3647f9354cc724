// SPDX-License-Identifier: MIT

package colony

import "github.com/katalvlaran/antcover/setcover"

// PheromonePolicy owns the trail arithmetic between iterations.
type PheromonePolicy interface {
	// Start initialises every trail before the first iteration.
	Start(env *setcover.Environment)

	// Update runs after every iteration with the complete covers it produced.
	Update(env *setcover.Environment, solutions [][]int)
}

// AntSystem is the classic offline update: evaporation on every trail, then
// Q / cost on every member of every solution.
type AntSystem struct {
	Initial     float64
	Evaporation float64
	Deposit     float64
}

// NewAntSystem takes its constants from cfg.
func NewAntSystem(cfg Config) AntSystem {
	return AntSystem{
		Initial:     cfg.InitialPheromone,
		Evaporation: cfg.EvaporationRatio,
		Deposit:     cfg.DepositFactor,
	}
}

// Start fills every trail with Initial.
func (p AntSystem) Start(env *setcover.Environment) {
	env.FillPheromone(p.Initial)
}

// Update applies τ ← (1−ρ)·τ and then τ(c) += Q / |S| for c ∈ S.
//
// Complexity: O(C + Σ|S|).
func (p AntSystem) Update(env *setcover.Environment, solutions [][]int) {
	env.ScalePheromone(1 - p.Evaporation)
	for _, sol := range solutions {
		if len(sol) == 0 {
			continue
		}
		deposit := p.Deposit / float64(len(sol))
		for _, c := range sol {
			env.SetPheromoneValue(c, env.PheromoneValue(c)+deposit)
		}
	}
}
