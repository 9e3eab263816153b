package graph

// Named 12-vertex fixed graphs, carried over from the reference engine's
// model definitions. The reference driver defines these but never actually
// starts a search from any of them -- every strategy there begins from the
// empty graph -- so these exist here purely as known, non-trivial fixtures
// for exercising Score and the graph invariants against, not as search
// entry points.

func fromEdges(conj, n int, edges [][2]int) *State {
	st := &State{
		Adj:          make([][]float64, n),
		NVertices:    n,
		SizeTerminal: n,
		Conj:         conj,
	}
	for i := range st.Adj {
		st.Adj[i] = make([]float64, n)
	}
	for _, e := range edges {
		from, to := e[0], e[1]
		st.Adj[from][to] = 1
		st.Adj[to][from] = 1
		st.NEdges++
	}
	st.BestScore = st.Score()
	return st
}

// SeedStar returns the 12-vertex "SQ star" seed graph, scored against conj.
func SeedStar(conj int) *State {
	return fromEdges(conj, 12, [][2]int{
		{0, 1}, {0, 5}, {0, 6},
		{1, 2}, {1, 7},
		{2, 3}, {2, 8},
		{3, 4}, {3, 9},
		{4, 5}, {4, 10},
		{5, 11},
		{6, 7}, {6, 9}, {6, 11},
		{7, 8}, {7, 10},
		{8, 9}, {8, 11},
		{9, 10},
		{10, 11},
	})
}

// Seed17 returns the 12-vertex "SQ 17" seed graph, scored against conj.
func Seed17(conj int) *State {
	return fromEdges(conj, 12, [][2]int{
		{0, 1}, {0, 11},
		{1, 2}, {1, 4}, {1, 10},
		{2, 3}, {2, 5}, {2, 11},
		{3, 4},
		{4, 5}, {4, 7},
		{5, 6}, {5, 8},
		{6, 7},
		{7, 8}, {7, 10},
		{8, 9}, {8, 11},
		{9, 10},
		{10, 11},
	})
}

// Seed50 returns the 12-vertex "SQ 50" seed graph, scored against conj.
func Seed50(conj int) *State {
	return fromEdges(conj, 12, [][2]int{
		{0, 1}, {0, 11},
		{1, 2},
		{2, 3}, {2, 9},
		{3, 4}, {3, 8}, {3, 10},
		{4, 5}, {4, 7}, {4, 9},
		{5, 6}, {5, 8},
		{6, 7},
		{7, 8},
		{8, 9},
		{9, 10},
		{10, 11},
	})
}

// Seed66 returns the 12-vertex "SQ 66" seed graph, scored against conj.
func Seed66(conj int) *State {
	return fromEdges(conj, 12, [][2]int{
		{0, 1},
		{1, 2},
		{2, 3},
		{3, 4}, {3, 11},
		{4, 5}, {4, 10},
		{5, 6}, {5, 11},
		{6, 7},
		{7, 8},
		{8, 9},
		{9, 10},
		{10, 11},
	})
}
