package setcover_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/antcover/setcover"
	"github.com/stretchr/testify/require"
)

// preprocessorFromRows loads a rows=samples × cols=candidates 0/1 matrix.
func preprocessorFromRows(t testing.TB, rows [][]int, opts setcover.Options) *setcover.Preprocessor {
	t.Helper()
	p := setcover.NewPreprocessor(opts)
	p.SetNumberOfSamples(len(rows))
	p.SetNumberOfCandidates(len(rows[0]))
	for s, row := range rows {
		var list []int
		for c, v := range row {
			if v != 0 {
				list = append(list, c)
			}
		}
		require.NoError(t, p.AddCandidatesForSample(s, list))
	}

	return p
}

// indexFromRows runs the full pipeline with an unlimited dominance budget.
func indexFromRows(t testing.TB, rows [][]int) *setcover.Index {
	t.Helper()
	opts := setcover.DefaultOptions()
	opts.PreprocessTimeLimit = 0
	ix, err := preprocessorFromRows(t, rows, opts).Build(context.Background())
	require.NoError(t, err)

	return ix
}

// randomRows builds a feasible random instance: every sample is covered by
// at least one candidate, each entry is set with probability density.
func randomRows(seed int64, samples, candidates int, density float64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int, samples)
	for s := range rows {
		rows[s] = make([]int, candidates)
		for c := range rows[s] {
			if rng.Float64() < density {
				rows[s][c] = 1
			}
		}
		rows[s][rng.Intn(candidates)] = 1
	}

	return rows
}

// fourByFour is the instance whose sample 0 is covered by candidate 1 only.
var fourByFour = [][]int{
	{0, 1, 0, 0},
	{1, 0, 1, 0},
	{0, 0, 1, 1},
	{1, 0, 0, 1},
}

// smallWithRedundancy adds candidate 4 = {0,1} to fourByFour, which
// dominates candidate 1.
var smallWithRedundancy = [][]int{
	{0, 1, 0, 0, 1},
	{1, 0, 1, 0, 1},
	{0, 0, 1, 1, 0},
	{1, 0, 0, 1, 0},
}
