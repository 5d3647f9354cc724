// SPDX-License-Identifier: MIT

package colony

import (
	"context"
	"fmt"
	"math/rand"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/antcover/parallel"
	"github.com/katalvlaran/antcover/setcover"
)

var log = logrus.WithField("prefix", "colony")

// ctxCheckEvery is how many visits an ant makes between two ctx checks.
const ctxCheckEvery = 64

// Option customises a Colony.
type Option func(*Colony)

// WithPolicy replaces the default AntSystem pheromone policy.
func WithPolicy(p PheromonePolicy) Option {
	return func(c *Colony) { c.policy = p }
}

// WithIncumbent sets the first cover iterated ants are seeded from. It is
// ignored unless it is a valid cover of the instance.
func WithIncumbent(solution []int) Option {
	return func(c *Colony) { c.incumbent = slices.Clone(solution) }
}

// Colony runs the Ant System on one Environment.
type Colony struct {
	cfg       Config
	env       *setcover.Environment
	rng       *rand.Rand
	policy    PheromonePolicy
	ants      []*setcover.Ant
	incumbent []int

	best       []int
	iterations int
}

// New builds a Colony over env. seed drives every random choice.
//
// Errors: setcover.ErrConfiguration when cfg is invalid.
func New(env *setcover.Environment, cfg Config, seed int64, opts ...Option) (*Colony, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Colony{
		cfg:    cfg,
		env:    env,
		rng:    setcover.NewRand(seed),
		policy: NewAntSystem(cfg),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.ants = make([]*setcover.Ant, cfg.Ants)
	for i := range c.ants {
		c.ants[i] = setcover.NewAnt(env,
			setcover.WithStrategy(cfg.strategy()),
			setcover.WithRand(setcover.NewRand(setcover.DeriveSeed(seed, uint64(i)))))
	}

	return c, nil
}

// Factory adapts Config to the parallel coordinator: every run gets its own
// Colony over its own Environment clone.
//
// Errors: setcover.ErrConfiguration when cfg is invalid.
func Factory(cfg Config, opts ...Option) (parallel.RunnerFactory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return func(env *setcover.Environment, seed int64) parallel.Runner {
		c, _ := New(env, cfg, seed, opts...)
		return c
	}, nil
}

// Best returns the cheapest complete cover found so far (nil before any).
func (c *Colony) Best() []int { return slices.Clone(c.best) }

// Iterations returns how many full iterations have been completed.
func (c *Colony) Iterations() int { return c.iterations }

// Run executes Config.Iterations iterations or stops early when ctx is done,
// and returns the best cover seen.
//
// Errors: setcover.ErrConstruction from a misbehaving neighbourhood;
// setcover.ErrIncompleteSolution when no ant completed a cover before ctx
// ended; setcover.ErrInfeasibleInstance from the greedy incumbent.
func (c *Colony) Run(ctx context.Context) ([]int, error) {
	ix := c.env.Index()
	c.policy.Start(c.env)

	if c.cfg.Iterated {
		if err := c.initIncumbent(ix); err != nil {
			return nil, err
		}
		c.best = slices.Clone(c.incumbent)
	}

	for it := 0; it < c.cfg.Iterations; it++ {
		if ctx.Err() != nil {
			break
		}
		solutions := make([][]int, 0, len(c.ants))
		for _, ant := range c.ants {
			sol, err := c.construct(ctx, ant)
			if err != nil {
				return nil, err
			}
			if sol == nil {
				break // ctx ended mid-construction
			}
			solutions = append(solutions, sol)
			if c.best == nil || len(sol) < len(c.best) {
				c.best = sol
			}
		}
		c.policy.Update(c.env, solutions)
		c.iterations++
		log.WithFields(logrus.Fields{
			"iteration": it,
			"best":      len(c.best),
			"ants":      len(solutions),
		}).Debug("Iteration finished")
	}

	if c.best == nil {
		return nil, fmt.Errorf("no complete cover after %d iterations: %w", c.iterations, setcover.ErrIncompleteSolution)
	}

	return slices.Clone(c.best), nil
}

// initIncumbent validates the supplied incumbent or computes a greedy one.
func (c *Colony) initIncumbent(ix *setcover.Index) error {
	if c.incumbent != nil && ix.IsValidSolution(c.incumbent) {
		return nil
	}
	if c.incumbent != nil {
		log.Warn("Stored incumbent does not cover the instance, falling back to greedy")
	}
	greedy, err := setcover.GreedyCover(ix)
	if err != nil {
		return err
	}
	c.incumbent = greedy

	return nil
}

// construct builds one cover with ant. It returns nil, nil when ctx ends
// before the cover is complete.
func (c *Colony) construct(ctx context.Context, ant *setcover.Ant) ([]int, error) {
	if c.cfg.Iterated && c.best != nil {
		positions := setcover.RandomRemovalPositions(c.rng, len(c.best), c.cfg.RemovalFactor)
		seed, err := setcover.PartialSolution(c.best, positions)
		if err != nil {
			return nil, err
		}
		ant.SetSeed(seed)
	}
	ant.Clear()

	for visits := 0; !ant.IsReady(); visits++ {
		if visits%ctxCheckEvery == 0 && ctx.Err() != nil {
			return nil, nil
		}
		nbh := ant.Neighbourhood()
		if len(nbh) == 0 {
			return nil, fmt.Errorf("empty neighbourhood with %d samples uncovered: %w",
				len(ant.UncoveredSamples()), setcover.ErrConstruction)
		}
		probs := SelectionProbabilities(ant, nbh, c.cfg.PheromoneImportance, c.cfg.HeuristicImportance)
		if err := ant.Visit(nbh[roulette(probs, c.rng)]); err != nil {
			return nil, err
		}
	}

	if c.cfg.LocalSearch {
		if _, err := ant.ApplyLocalSearch(); err != nil {
			return nil, err
		}
	}

	return ant.Solution(), nil
}
