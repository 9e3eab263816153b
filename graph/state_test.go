package graph

import (
	"math"
	"testing"
)

func isSymmetric(adj [][]float64) bool {
	n := len(adj)
	for i := 0; i < n; i++ {
		if adj[i][i] != 0 {
			return false
		}
		for j := i + 1; j < n; j++ {
			if adj[i][j] != adj[j][i] {
				return false
			}
		}
	}
	return true
}

func countUpperOnes(adj [][]float64) int {
	count := 0
	for i := range adj {
		for j := i + 1; j < len(adj); j++ {
			if adj[i][j] == 1 {
				count++
			}
		}
	}
	return count
}

func TestEmptyStateScore(t *testing.T) {
	st := NewState(1, 10)
	if got := st.Score(); got != 0.0 {
		t.Errorf("empty state score = %v, want 0.0", got)
	}
}

func TestTwoVertexEdgeScore(t *testing.T) {
	st := NewState(1, 10)
	st.Play(Move{Ind: 1, From: 0, To: NewVertex})
	st.Play(Move{Ind: 2, From: 0, To: 1})

	if got := st.Score(); math.Abs(got) > 1e-9 {
		t.Errorf("K2 score = %v, want 0", got)
	}
}

func TestCompleteGraphK5Score(t *testing.T) {
	st := &State{
		Adj:          make([][]float64, 5),
		NVertices:    5,
		SizeTerminal: 5,
		Conj:         1,
	}
	for i := range st.Adj {
		st.Adj[i] = make([]float64, 5)
	}
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			st.Adj[i][j] = 1
			st.Adj[j][i] = 1
		}
	}

	got := st.Score()
	want := -3.0
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("K5 score = %v, want %v", got, want)
	}
}

func TestSymmetryInvariantUnderPlay(t *testing.T) {
	st := NewState(5, 6)
	for !st.Terminal() {
		moves := st.LegalMoves()
		if len(moves) == 0 {
			break
		}
		st.Play(moves[0])
		if !isSymmetric(st.Adj) {
			t.Fatalf("adjacency not symmetric after play: %v", st.Adj)
		}
	}
}

func TestEdgeCountInvariant(t *testing.T) {
	st := NewState(5, 6)
	for !st.Terminal() {
		moves := st.LegalMoves()
		if len(moves) == 0 {
			break
		}
		st.Play(moves[len(moves)-1])
		if got, want := st.NEdges, countUpperOnes(st.Adj); got != want {
			t.Fatalf("NEdges = %d, want %d (counted from adjacency)", got, want)
		}
	}
}

func TestReplay(t *testing.T) {
	st := NewState(5, 6)
	for !st.Terminal() {
		moves := st.LegalMoves()
		if len(moves) == 0 {
			break
		}
		st.Play(moves[len(moves)/2])
	}

	replay := NewState(5, 6)
	for _, m := range st.Seq {
		replay.Play(m)
	}

	if len(replay.Adj) != len(st.Adj) {
		t.Fatalf("replay vertex count = %d, want %d", len(replay.Adj), len(st.Adj))
	}
	for i := range st.Adj {
		for j := range st.Adj[i] {
			if replay.Adj[i][j] != st.Adj[i][j] {
				t.Fatalf("replay adjacency mismatch at (%d,%d): got %v want %v",
					i, j, replay.Adj[i][j], st.Adj[i][j])
			}
		}
	}
}

func TestHeuristicMatchesScoreDelta(t *testing.T) {
	st := NewState(9, 6)
	st.Play(Move{Ind: 1, From: 0, To: NewVertex})
	st.Play(Move{Ind: 2, From: 0, To: 1})

	before := st.Score()
	for _, m := range st.LegalMoves() {
		want := st.Heuristic(m)

		clone := st.Clone()
		clone.Play(m)
		got := clone.Score() - before

		if math.Abs(got-want) > 1e-9 {
			t.Errorf("Heuristic(%v) = %v, want %v", m, want, got)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	st := SeedStar(3)
	a, b := st.Score(), st.Score()
	if a != b {
		t.Errorf("Score() not deterministic: %v != %v", a, b)
	}

	clone := st.Clone()
	if got := clone.Score(); got != a {
		t.Errorf("Score() of a clone = %v, want %v", got, a)
	}
}

func TestTerminalPredicate(t *testing.T) {
	st := NewState(1, 2)
	if st.Terminal() {
		t.Fatalf("state with 1 vertex, size_terminal=2 should not be terminal")
	}
	st.Play(Move{Ind: 1, From: 0, To: NewVertex})
	if st.Terminal() {
		t.Fatalf("state with 2 vertices, size_terminal=2 should not be terminal")
	}
	st.Play(Move{Ind: 2, From: 0, To: NewVertex})
	if !st.Terminal() {
		t.Fatalf("state with 3 vertices, size_terminal=2 should be terminal")
	}
}

func TestSeedStarShape(t *testing.T) {
	st := SeedStar(1)
	if len(st.Adj) != 12 {
		t.Fatalf("SeedStar vertex count = %d, want 12", len(st.Adj))
	}
	if !isSymmetric(st.Adj) {
		t.Fatalf("SeedStar adjacency not symmetric")
	}
	if got, want := countUpperOnes(st.Adj), 21; got != want {
		t.Fatalf("SeedStar upper-triangular edge count = %d, want %d", got, want)
	}
	if math.IsNaN(st.Score()) || math.IsInf(st.Score(), 0) {
		t.Fatalf("SeedStar score not finite: %v", st.Score())
	}
}

func TestSeqKeyDistinguishesSequences(t *testing.T) {
	a := []Move{{Ind: 1, From: 0, To: NewVertex}}
	b := []Move{{Ind: 1, From: 0, To: 1}}
	if SeqKey(a) == SeqKey(b) {
		t.Errorf("SeqKey collided for distinct sequences: %q", SeqKey(a))
	}
	if SeqKey(a) != SeqKey(a) {
		t.Errorf("SeqKey not deterministic for the same sequence")
	}
}
