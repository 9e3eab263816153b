package grave

import (
	"math"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"github.com/spectral-conjectures/counterexplore/graph"
	"github.com/spectral-conjectures/counterexplore/harness"
)

func TestRunRespectsTimeoutAndReturnsFiniteScore(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	init := graph.NewState(1, 4)
	ctx := harness.NewContext("grave", 1, 200*time.Millisecond, harness.NopSink{})

	result := Run(ctx, init, 0, rng)
	if result == nil {
		t.Fatalf("Run returned nil")
	}
	if math.IsNaN(result.Score()) || math.IsInf(result.Score(), 0) {
		t.Errorf("Run result score not finite: %v", result.Score())
	}
}

// TestSelectMoveBlendsWinsAndAmaf checks selectMove against the documented
// Bm-blend formula directly: value = (1-Bm)*mean + Bm*amafMean, with
// mean = entry.wins[m]/entry.playouts[m] and Bm = pa/(pa+p). Both moves
// share identical (and equal) AMAF statistics, so the move with the higher
// node-local mean must win.
func TestSelectMoveBlendsWinsAndAmaf(t *testing.T) {
	s := NewSearcher(rand.New(rand.NewSource(1)))

	moves := []graph.Move{
		{Ind: 1, From: 0, To: 1},
		{Ind: 1, From: 0, To: 2},
	}

	entry := newTransEntry()
	entry.wins[moves[0]] = 2
	entry.playouts[moves[0]] = 4
	entry.wins[moves[1]] = 8
	entry.playouts[moves[1]] = 4

	ref := newTransEntry()
	ref.amafWins[moves[0]] = 100
	ref.amafPlayouts[moves[0]] = 100
	ref.amafWins[moves[1]] = 100
	ref.amafPlayouts[moves[1]] = 100

	// mean[0] = 0.5, mean[1] = 2.0, Bm identical for both (equal p, pa) ->
	// the higher node-local mean must win the blend.
	if got := s.selectMove(moves, entry, ref); got != moves[1] {
		t.Errorf("selectMove = %v, want the higher-mean move %v", got, moves[1])
	}
}

// TestSelectMovePrefersUnexploredMove checks that a move with no AMAF
// experience at all under ref gets unexploredValue, overriding any
// finite blended value from an already-explored move -- the explore-first
// default the reference engine encodes as winsAMAF absent -> value 1e12.
func TestSelectMovePrefersUnexploredMove(t *testing.T) {
	s := NewSearcher(rand.New(rand.NewSource(1)))

	explored := graph.Move{Ind: 1, From: 0, To: 1}
	unexplored := graph.Move{Ind: 1, From: 0, To: 2}
	moves := []graph.Move{explored, unexplored}

	entry := newTransEntry()
	entry.wins[explored] = 1000
	entry.playouts[explored] = 1

	ref := newTransEntry()
	ref.amafWins[explored] = 1000
	ref.amafPlayouts[explored] = 1

	if got := s.selectMove(moves, entry, ref); got != unexplored {
		t.Errorf("selectMove = %v, want the unexplored move %v preferred over any finite value", got, unexplored)
	}
}

// TestTailCreditCoversFullRolloutNotJustImmediateMove exercises the
// all-moves-as-first update: once a node has been visited twice, its entry
// must carry AMAF credit for every move played anywhere in the completed
// rollout beyond that node, not only the single move played directly at
// the node.
func TestTailCreditCoversFullRolloutNotJustImmediateMove(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	root := graph.NewState(1, 3)
	ctx := harness.NewContext("grave", 1, 0, harness.NopSink{})

	s := NewSearcher(rng)
	s.search(ctx, root.Clone(), newTransEntry(), 0)
	s.search(ctx, root.Clone(), newTransEntry(), 0)

	entry, ok := s.table[graph.SeqKey(root.Seq)]
	if !ok {
		t.Fatalf("root key missing from transposition table after two visits")
	}
	if len(entry.amafPlayouts) <= 1 {
		t.Errorf("root entry only credits %d move(s) via AMAF, want credit for the whole rollout tail", len(entry.amafPlayouts))
	}
}
