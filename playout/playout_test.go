package playout

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/spectral-conjectures/counterexplore/graph"
)

func TestRunReachesTerminalOrDeadEnd(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	init := graph.NewState(5, 4)

	Run(init, 0, rng)
	if !(init.Terminal() || len(init.LegalMoves()) == 0) {
		t.Errorf("playout stopped at a non-terminal state with legal moves remaining")
	}
}

func TestRunScoreMatchesRescoring(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	init := graph.NewState(9, 5)

	result := Run(init, 10.0, rng)

	direct := result.Clone()
	got := direct.Score()
	want := result.Score()
	if got != want {
		t.Errorf("rescored state gives %v, playout state reports %v", got, want)
	}
}

func TestRunHeuristicWeightZeroIsDeterministicSeed(t *testing.T) {
	rng1 := rand.New(rand.NewSource(42))
	rng2 := rand.New(rand.NewSource(42))

	r1 := Run(graph.NewState(1, 4), 0, rng1)
	r2 := Run(graph.NewState(1, 4), 0, rng2)

	if len(r1.Seq) != len(r2.Seq) {
		t.Fatalf("same-seed playouts diverged in length: %d vs %d", len(r1.Seq), len(r2.Seq))
	}
	for i := range r1.Seq {
		if r1.Seq[i] != r2.Seq[i] {
			t.Fatalf("same-seed playouts diverged at move %d: %v vs %v", i, r1.Seq[i], r2.Seq[i])
		}
	}
}
