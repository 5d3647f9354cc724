package colony_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/antcover/colony"
	"github.com/katalvlaran/antcover/parallel"
	"github.com/katalvlaran/antcover/setcover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fourByFour: sample 0 ← {1}, 1 ← {0,2}, 2 ← {2,3}, 3 ← {0,3}.
func fourByFour(t testing.TB) *setcover.Index {
	t.Helper()
	return build(t, [][]int{{1}, {0, 2}, {2, 3}, {0, 3}}, 4)
}

// randomIndex builds a feasible instance with the given coverer density.
func randomIndex(t testing.TB, seed int64, samples, candidates int, density float64) *setcover.Index {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	lists := make([][]int, samples)
	for s := range lists {
		lists[s] = append(lists[s], rng.Intn(candidates))
		for c := 0; c < candidates; c++ {
			if rng.Float64() < density {
				lists[s] = append(lists[s], c)
			}
		}
	}

	return build(t, lists, candidates)
}

func build(t testing.TB, coverers [][]int, candidates int) *setcover.Index {
	t.Helper()
	p := setcover.NewPreprocessor(setcover.Options{})
	p.SetNumberOfSamples(len(coverers))
	p.SetNumberOfCandidates(candidates)
	for s, list := range coverers {
		require.NoError(t, p.AddCandidatesForSample(s, list))
	}
	ix, err := p.Build(context.Background())
	require.NoError(t, err)

	return ix
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, colony.DefaultConfig().Validate())

	mutations := map[string]func(*colony.Config){
		"ants":          func(c *colony.Config) { c.Ants = 0 },
		"iterations":    func(c *colony.Config) { c.Iterations = 0 },
		"evaporation":   func(c *colony.Config) { c.EvaporationRatio = 1.5 },
		"pheromone":     func(c *colony.Config) { c.InitialPheromone = 0 },
		"alpha":         func(c *colony.Config) { c.PheromoneImportance = -1 },
		"removal":       func(c *colony.Config) { c.RemovalFactor = 1 },
		"neighbourhood": func(c *colony.Config) { c.Neighbourhood = "ring" },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			cfg := colony.DefaultConfig()
			mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, setcover.ErrConfiguration)

			_, err = colony.New(setcover.NewEnvironment(fourByFour(t)), cfg, 1)
			require.ErrorIs(t, err, setcover.ErrConfiguration)
			_, err = colony.Factory(cfg)
			require.ErrorIs(t, err, setcover.ErrConfiguration)
		})
	}
}

// TestSelectionProbabilities mirrors τ^α·η^β on a two-candidate neighbourhood.
func TestSelectionProbabilities(t *testing.T) {
	env := setcover.NewEnvironment(fourByFour(t))
	env.FillPheromone(1)
	ant := setcover.NewAnt(env)
	cfg := colony.DefaultConfig()

	probs := colony.SelectionProbabilities(ant, []int{1, 3}, cfg.PheromoneImportance, cfg.HeuristicImportance)
	require.Len(t, probs, 2)
	assert.Less(t, probs[0], probs[1])
	assert.InDelta(t, 1.0, probs[0]+probs[1], 1e-9)

	w1, w3 := 1.0/1024, 1.0/32 // 0.25^5, 0.5^5
	assert.InDelta(t, w1/(w1+w3), probs[0], 1e-9)
	assert.InDelta(t, w3/(w1+w3), probs[1], 1e-9)
}

// TestSelectionProbabilities_Uniform falls back when every weight is zero.
func TestSelectionProbabilities_Uniform(t *testing.T) {
	env := setcover.NewEnvironment(fourByFour(t)) // zero pheromone
	ant := setcover.NewAnt(env)

	probs := colony.SelectionProbabilities(ant, []int{0, 2, 3}, 1, 1)
	for _, p := range probs {
		assert.InDelta(t, 1.0/3, p, 1e-9)
	}
}

// TestAntSystem_Update checks evaporation followed by Q / cost deposit.
func TestAntSystem_Update(t *testing.T) {
	env := setcover.NewEnvironment(fourByFour(t))
	p := colony.AntSystem{Initial: 1, Evaporation: 0.8, Deposit: 1}

	p.Start(env)
	assert.Equal(t, 1.0, env.PheromoneValue(3))

	p.Update(env, [][]int{{0, 1}, nil})
	assert.InDelta(t, 0.7, env.PheromoneValue(0), 1e-9)
	assert.InDelta(t, 0.7, env.PheromoneValue(1), 1e-9)
	assert.InDelta(t, 0.2, env.PheromoneValue(2), 1e-9)
}

// TestColony_Run finds a valid cover and is reproducible for a seed.
func TestColony_Run(t *testing.T) {
	ix := randomIndex(t, 5, 60, 90, 0.05)
	cfg := colony.DefaultConfig()

	run := func(strategy string) ([]int, int) {
		cfg.Neighbourhood = strategy
		c, err := colony.New(setcover.NewEnvironment(ix), cfg, 17)
		require.NoError(t, err)
		sol, err := c.Run(context.Background())
		require.NoError(t, err)
		require.NoError(t, ix.ValidateSolution(sol))
		assert.Equal(t, sol, c.Best())
		return sol, c.Iterations()
	}

	for _, strategy := range []string{"all", "sample"} {
		a, iters := run(strategy)
		b, _ := run(strategy)
		assert.Equal(t, a, b, strategy)
		assert.Equal(t, cfg.Iterations, iters)
	}
}

// TestColony_IteratedNeverWorseThanIncumbent seeds from a greedy cover.
func TestColony_IteratedNeverWorseThanIncumbent(t *testing.T) {
	ix := randomIndex(t, 8, 80, 120, 0.04)
	greedy, err := setcover.GreedyCover(ix)
	require.NoError(t, err)

	cfg := colony.DefaultConfig()
	cfg.Iterated = true
	c, err := colony.New(setcover.NewEnvironment(ix), cfg, 3, colony.WithIncumbent(greedy))
	require.NoError(t, err)

	sol, err := c.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, ix.ValidateSolution(sol))
	assert.LessOrEqual(t, len(sol), len(greedy))
}

// TestColony_CancelledContext returns the incumbent only in iterated mode.
func TestColony_CancelledContext(t *testing.T) {
	ix := fourByFour(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := colony.New(setcover.NewEnvironment(ix), colony.DefaultConfig(), 1)
	require.NoError(t, err)
	_, err = c.Run(ctx)
	require.ErrorIs(t, err, setcover.ErrIncompleteSolution)

	cfg := colony.DefaultConfig()
	cfg.Iterated = true
	c, err = colony.New(setcover.NewEnvironment(ix), cfg, 1, colony.WithIncumbent([]int{3, 1}))
	require.NoError(t, err)
	sol, err := c.Run(ctx)
	require.NoError(t, err, "invalid incumbent is replaced by greedy")
	require.NoError(t, ix.ValidateSolution(sol))
	assert.Zero(t, c.Iterations())
}

// recordingPolicy counts Update calls.
type recordingPolicy struct {
	colony.AntSystem
	updates int
}

func (p *recordingPolicy) Update(env *setcover.Environment, solutions [][]int) {
	p.updates++
	p.AntSystem.Update(env, solutions)
}

func TestColony_WithPolicy(t *testing.T) {
	cfg := colony.DefaultConfig()
	policy := &recordingPolicy{AntSystem: colony.NewAntSystem(cfg)}
	c, err := colony.New(setcover.NewEnvironment(fourByFour(t)), cfg, 1, colony.WithPolicy(policy))
	require.NoError(t, err)

	_, err = c.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cfg.Iterations, policy.updates)
}

// TestFactory_WithCoordinator runs the whole pipeline in parallel.
func TestFactory_WithCoordinator(t *testing.T) {
	ix := randomIndex(t, 11, 70, 100, 0.05)
	cfg := colony.DefaultConfig()
	cfg.Iterated = true
	factory, err := colony.Factory(cfg)
	require.NoError(t, err)

	coord, err := parallel.NewCoordinator(parallel.Options{Runs: 4, Seed: 9, Deadline: 30 * time.Second})
	require.NoError(t, err)

	env := setcover.NewEnvironment(ix)
	res, err := coord.Solve(context.Background(), env, factory)
	require.NoError(t, err)
	require.NoError(t, ix.ValidateSolution(res.Solution))
	for _, r := range res.Runs {
		require.NoError(t, r.Err)
		assert.LessOrEqual(t, res.Cost, r.Cost)
	}
	assert.Zero(t, env.PheromoneValue(0), "runs work on clones")
}
