package cmaes

import (
	"math"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"github.com/spectral-conjectures/counterexplore/graph"
	"github.com/spectral-conjectures/counterexplore/harness"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	parents := randomParents(1, 5, 1, rng)
	st := parents[0]

	vec := encode(st)
	if len(vec) != 5*5 {
		t.Fatalf("encode returned %d entries, want n*n = 25", len(vec))
	}

	mean := make([]float64, len(vec))
	for i := range mean {
		mean[i] = 0.5
	}
	decoded := decode(1, 5, vec, mean)

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if st.Adj[i][j] != decoded.Adj[i][j] {
				t.Fatalf("decode(encode(st), 0.5) mismatch at (%d,%d): %v != %v", i, j, decoded.Adj[i][j], st.Adj[i][j])
			}
		}
	}
}

// TestDecodeComparesAgainstPerComponentMean exercises a component whose raw
// sample clears a fixed 0.5 threshold but not its own mean, which must
// suppress the edge -- catching a regression to a fixed-threshold decode.
func TestDecodeComparesAgainstPerComponentMean(t *testing.T) {
	n := 2
	vec := []float64{0, 0.6, 0.6, 0}
	mean := []float64{0, 0.8, 0.8, 0}

	decoded := decode(1, n, vec, mean)
	if decoded.Adj[0][1] != 0 {
		t.Fatalf("decode set edge (0,1) even though 0.6 does not exceed its mean 0.8")
	}

	vec[1], vec[2] = 0.9, 0.9
	decoded = decode(1, n, vec, mean)
	if decoded.Adj[0][1] != 1 {
		t.Fatalf("decode did not set edge (0,1) even though 0.9 exceeds its mean 0.8")
	}
}

func TestSelectCandidatesKeepsTopScoring(t *testing.T) {
	conj := 1
	a := graph.NewFixedState(conj, 2)
	b := graph.NewFixedState(conj, 2)
	b.SetEdge(0, 1, true)

	ranked := selectCandidates([]*graph.State{a, b}, 1)
	if len(ranked) != 1 {
		t.Fatalf("selectCandidates returned %d states, want 1", len(ranked))
	}
	if ranked[0].Score() != math.Max(a.Score(), b.Score()) {
		t.Errorf("selectCandidates kept the lower-scoring state")
	}
}

func TestRunRespectsGenerationBound(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ctx := harness.NewContext("cmaes", 1, 5*time.Second, harness.NopSink{})

	result := Run(ctx, 1, 5, 3, 4, rng)
	if result == nil {
		t.Fatalf("Run returned nil")
	}
	if math.IsNaN(result.Score()) {
		t.Errorf("Run result score is NaN")
	}
}
