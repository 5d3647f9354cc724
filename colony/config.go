// SPDX-License-Identifier: MIT

package colony

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/antcover/setcover"
)

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New()

// Config carries every tunable of the Ant System.
type Config struct {
	// Ants per iteration.
	Ants int `yaml:"ants" validate:"gte=1"`

	// Iterations of the construct/update cycle.
	Iterations int `yaml:"iterations" validate:"gte=1"`

	// EvaporationRatio is ρ in τ ← (1−ρ)·τ.
	EvaporationRatio float64 `yaml:"evaporation_ratio" validate:"gt=0,lte=1"`

	// InitialPheromone is the trail every candidate starts with.
	InitialPheromone float64 `yaml:"initial_pheromone" validate:"gt=0"`

	// HeuristicImportance is β.
	HeuristicImportance float64 `yaml:"heuristic_importance" validate:"gte=0"`

	// PheromoneImportance is α.
	PheromoneImportance float64 `yaml:"pheromone_importance" validate:"gte=0"`

	// DepositFactor is Q in the Q / cost deposit.
	DepositFactor float64 `yaml:"deposit_factor" validate:"gt=0"`

	// RemovalFactor is the share of the incumbent dropped when seeding an ant.
	RemovalFactor float64 `yaml:"removal_factor" validate:"gte=0,lt=1"`

	// Iterated enables destroy-and-repair seeding from the incumbent.
	Iterated bool `yaml:"iterated"`

	// LocalSearch applies redundancy elimination after every construction.
	LocalSearch bool `yaml:"local_search"`

	// Neighbourhood is "all" or "sample" (see setcover.NeighbourhoodStrategy).
	Neighbourhood string `yaml:"neighbourhood" validate:"oneof=all sample"`
}

// DefaultConfig returns the settings the reference runs use.
func DefaultConfig() Config {
	return Config{
		Ants:                5,
		Iterations:          10,
		EvaporationRatio:    0.8,
		InitialPheromone:    1.0,
		HeuristicImportance: 5.0,
		PheromoneImportance: 0.25,
		DepositFactor:       1.0,
		RemovalFactor:       0.5,
		Iterated:            false,
		LocalSearch:         true,
		Neighbourhood:       "all",
	}
}

// Validate checks every field once; failures wrap setcover.ErrConfiguration.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("colony config: %v: %w", err, setcover.ErrConfiguration)
	}

	return nil
}

// strategy resolves Neighbourhood; Validate guarantees it parses.
func (c Config) strategy() setcover.NeighbourhoodStrategy {
	s, _ := setcover.ParseNeighbourhoodStrategy(c.Neighbourhood)
	return s
}
