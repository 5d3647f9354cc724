package setcover_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/antcover/setcover"
)

// ExampleAnt builds one cover greedily by heuristic value, the way a colony
// driver would with pheromone switched off.
func ExampleAnt() {
	p := setcover.NewPreprocessor(setcover.DefaultOptions())
	p.SetNumberOfSamples(4)
	p.SetNumberOfCandidates(4)
	_ = p.AddCandidatesForSample(0, []int{1})
	_ = p.AddCandidatesForSample(1, []int{0, 2})
	_ = p.AddCandidatesForSample(2, []int{2, 3})
	_ = p.AddCandidatesForSample(3, []int{0, 3})

	ix, err := p.Build(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}

	ant := setcover.NewAnt(setcover.NewEnvironment(ix))
	ant.Clear()
	for !ant.IsReady() {
		best, bestValue := -1, -1.0
		for _, c := range ant.Neighbourhood() {
			if v := ant.HeuristicValue(c); v > bestValue {
				best, bestValue = c, v
			}
		}
		_ = ant.Visit(best)
	}
	removed, _ := ant.ApplyLocalSearch()
	cost, _ := ant.SolutionCost()
	fmt.Println(ant.Solution(), cost, removed)
	// Output: [1 0 2] 3 0
}

// ExampleGreedyCover computes a first incumbent.
func ExampleGreedyCover() {
	p := setcover.NewPreprocessor(setcover.DefaultOptions())
	p.SetNumberOfSamples(4)
	p.SetNumberOfCandidates(4)
	_ = p.AddCandidatesForSample(0, []int{1})
	_ = p.AddCandidatesForSample(1, []int{0, 2})
	_ = p.AddCandidatesForSample(2, []int{2, 3})
	_ = p.AddCandidatesForSample(3, []int{0, 3})

	ix, _ := p.Build(context.Background())
	sol, _ := setcover.GreedyCover(ix)
	fmt.Println(len(sol), ix.IsValidSolution(sol))
	// Output: 3 true
}
