package graph

import "math"

// NewFixedState returns an n-vertex graph with no further vertex-adding
// moves available (SizeTerminal == n), every edge absent, scored against
// conj. It is used by strategies (ils, cmaes) that search a fixed-size
// graph by toggling edges directly rather than growing the graph through
// Play.
func NewFixedState(conj, n int) *State {
	adj := make([][]float64, n)
	for i := range adj {
		adj[i] = make([]float64, n)
	}
	return &State{
		Adj:          adj,
		NVertices:    n,
		SizeTerminal: n,
		BestScore:    math.Inf(-1),
		Conj:         conj,
	}
}

// SetEdge sets the presence of the edge (i, j) directly, updating NEdges to
// match. Unlike Play, it never grows the graph and has no notion of an
// illegal move -- it is the primitive strategies that operate on a
// fixed-size graph build on.
func (s *State) SetEdge(i, j int, present bool) {
	var v float64
	if present {
		v = 1
	}
	if s.Adj[i][j] != v {
		if present {
			s.NEdges++
		} else {
			s.NEdges--
		}
	}
	s.Adj[i][j] = v
	s.Adj[j][i] = v
}
