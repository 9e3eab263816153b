package bfs

import (
	"sort"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"github.com/spectral-conjectures/counterexplore/graph"
	"github.com/spectral-conjectures/counterexplore/harness"
)

func TestInsertionPointMatchesLinearSearch(t *testing.T) {
	weights := []float64{-3, -1, 0, 2, 2, 5, 9}
	var list []weightedState
	for _, w := range weights {
		list = append(list, weightedState{weight: w})
	}

	for _, w := range []float64{-10, -1, 1, 2, 4, 10} {
		got := insertionPoint(list, weightedState{weight: w})

		want := sort.Search(len(list), func(i int) bool { return list[i].weight >= w })
		if got != want {
			t.Errorf("insertionPoint(%v) = %d, want %d (linear/binary reference)", w, got, want)
		}
	}
}

func TestInsertSortedKeepsAscendingOrder(t *testing.T) {
	var list []weightedState
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		list = insertSorted(list, weightedState{weight: rng.Float64()*20 - 10})
	}

	for i := 1; i < len(list); i++ {
		if list[i-1].weight > list[i].weight {
			t.Fatalf("open list not ascending at index %d: %v > %v", i, list[i-1].weight, list[i].weight)
		}
	}
}

func TestRunOnThreeVertexGraphBoundedExploration(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	init := graph.NewState(1, 3)
	ctx := harness.NewContext("bfs", 1, 2*time.Second, harness.NopSink{})

	result := Run(ctx, init, 10.0, -1, false, rng)
	if result.NVertices > 3+1 {
		t.Errorf("BFS explored beyond size_terminal+1: %d vertices", result.NVertices)
	}
}
