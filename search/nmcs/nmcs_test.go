package nmcs

import (
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"github.com/spectral-conjectures/counterexplore/graph"
	"github.com/spectral-conjectures/counterexplore/harness"
)

func TestRunReturnsStateWithinSizeTerminalPlusOne(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	init := graph.NewState(1, 4)
	ctx := harness.NewContext("nmcs", 1, time.Second, harness.NopSink{})

	result := Run(ctx, init, 1, 10.0, rng)

	if result.NVertices > 4+1 {
		t.Errorf("NMCS returned %d vertices, want at most size_terminal+1 = 5", result.NVertices)
	}
}

func TestRunScoreMatchesRescoredAdjacency(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	init := graph.NewState(1, 4)
	ctx := harness.NewContext("nmcs", 1, time.Second, harness.NopSink{})

	result := Run(ctx, init, 1, 10.0, rng)

	rescored := result.Clone().Score()
	if rescored != result.Score() {
		t.Errorf("rescored score = %v, result.Score() = %v", rescored, result.Score())
	}
}

func TestRunRespectsTimeout(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	init := graph.NewState(1, 8)
	ctx := harness.NewContext("nmcs", 1, time.Nanosecond, harness.NopSink{})
	time.Sleep(time.Millisecond)

	result := Run(ctx, init, 2, 10.0, rng)
	if result == nil {
		t.Fatalf("Run returned nil after timeout")
	}
}
