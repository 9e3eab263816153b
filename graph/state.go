// Package graph implements the move/state model shared by every search
// strategy: a growable, simple, undirected graph together with the moves
// ("add a vertex", "add an edge") that build it up incrementally.
package graph

import (
	"math"

	"github.com/spectral-conjectures/counterexplore/numeric"
	"github.com/spectral-conjectures/counterexplore/score"
)

// considerNonTerminal mirrors the reference engine's CONSIDER_NON_TERM flag:
// playouts track the best-scoring state seen along a rollout, not just the
// terminal one.
const considerNonTerminal = true

// ConsiderNonTerminal reports whether playouts should track intermediate
// states, not only terminal ones.
func ConsiderNonTerminal() bool { return considerNonTerminal }

// Move either adds a new vertex connected to From (To == NewVertex) or adds
// the edge (From, To) to the graph. Ind records the vertex count at which
// the move was generated, mirroring the reference model's bookkeeping field.
type Move struct {
	Ind  int
	From int
	To   int
}

// NewVertex is the move sentinel meaning "connect From to a freshly created
// vertex" rather than to an existing one.
const NewVertex = -1

// CounterexampleThreshold is the score above which a state counts as an
// actual counterexample to its conjecture, rather than floating-point noise
// around the mu(G) == f_k(G) boundary.
const CounterexampleThreshold = 0.0001

// State is a simple undirected graph under construction, together with the
// conjecture it is being scored against and the move sequence that built it.
type State struct {
	Adj          [][]float64
	NEdges       int
	NVertices    int
	SizeTerminal int
	BestScore    float64
	Seq          []Move
	Conj         int
}

// NewState returns the canonical starting state: a single isolated vertex,
// scored against conjecture conj, terminal once it has grown past
// sizeTerminal vertices.
func NewState(conj, sizeTerminal int) *State {
	return &State{
		Adj:          [][]float64{{0}},
		NVertices:    1,
		SizeTerminal: sizeTerminal,
		BestScore:    math.Inf(-1),
		Conj:         conj,
	}
}

// Clone returns a deep copy of s; no part of the adjacency matrix or move
// sequence is shared between s and its clone.
func (s *State) Clone() *State {
	adj := make([][]float64, len(s.Adj))
	for i, row := range s.Adj {
		adj[i] = append([]float64(nil), row...)
	}
	seq := append([]Move(nil), s.Seq...)
	return &State{
		Adj:          adj,
		NEdges:       s.NEdges,
		NVertices:    s.NVertices,
		SizeTerminal: s.SizeTerminal,
		BestScore:    s.BestScore,
		Seq:          seq,
		Conj:         s.Conj,
	}
}

func (s *State) growTo(n int) {
	for i := range s.Adj {
		for len(s.Adj[i]) < n {
			s.Adj[i] = append(s.Adj[i], 0)
		}
	}
	for len(s.Adj) < n {
		s.Adj = append(s.Adj, make([]float64, n))
	}
}

// addEdge adds the edge (from, to), or a new vertex attached to from when to
// is NewVertex or already out of range. It is a no-op on an illegal request
// (from == to, from not a valid vertex, or the edge already present) --
// callers still record the move in Seq via Play.
func (s *State) addEdge(from, to int) {
	if from == to || from >= s.NVertices {
		return
	}

	var trueTo int
	if to >= s.NVertices || to == NewVertex {
		trueTo = s.NVertices
		s.NVertices++
		s.growTo(s.NVertices)
	} else {
		trueTo = to
		if s.Adj[from][trueTo] != 0 {
			return
		}
	}

	s.NEdges++
	s.Adj[from][trueTo] = 1
	s.Adj[trueTo][from] = 1
}

// Play applies m to s, appending it to Seq regardless of whether it was
// legal -- an illegal or duplicate move is a recorded no-op, not an error.
func (s *State) Play(m Move) {
	s.addEdge(m.From, m.To)
	s.Seq = append(s.Seq, m)
}

// LegalMoves returns every move available from s: "add a vertex" moves
// (only while the graph is still smaller than SizeTerminal) followed by
// "add an edge" moves for every non-adjacent pair.
func (s *State) LegalMoves() []Move {
	var moves []Move
	if s.NVertices < s.SizeTerminal {
		for i := 0; i < s.NVertices; i++ {
			moves = append(moves, Move{Ind: s.NVertices, From: i, To: NewVertex})
		}
	}
	for i := 0; i < s.NVertices; i++ {
		for j := i + 1; j < s.NVertices; j++ {
			if s.Adj[i][j] == 0 {
				moves = append(moves, Move{Ind: s.NVertices, From: i, To: j})
			}
		}
	}
	return moves
}

// Terminal reports whether s has grown past SizeTerminal vertices.
func (s *State) Terminal() bool {
	return s.NVertices > s.SizeTerminal
}

// DegreeVector returns the degree of every vertex in s.
func (s *State) DegreeVector() []float64 {
	return numeric.DegreeVector(s.Adj)
}

// AverageNeighborDegree returns the average neighbor degree of every vertex
// in s.
func (s *State) AverageNeighborDegree(deg []float64) []float64 {
	return numeric.AverageNeighborDegree(s.Adj, deg)
}

// Score evaluates mu(G) - f_k(G) for s's conjecture, where mu(G) is the
// Laplacian spectral radius and f_k is the conjectured bound. A positive
// score is a counterexample.
func (s *State) Score() float64 {
	mu := numeric.LargestLaplacianEigenvalue(s.Adj)
	deg := s.DegreeVector()
	avg := s.AverageNeighborDegree(deg)
	bound := score.Bound(s.Conj, s.NVertices, s.Adj, deg, avg)
	return mu - bound
}

// Heuristic estimates the value of playing m from s as the score delta it
// induces, without mutating s.
func (s *State) Heuristic(m Move) float64 {
	before := s.Score()
	cl := s.Clone()
	cl.Play(m)
	return cl.Score() - before
}

// SeqKey encodes a move sequence as a comparable map key, used by GRAVE's
// transposition table to index state by the path that reached it.
func SeqKey(seq []Move) string {
	buf := make([]byte, 0, len(seq)*12)
	for _, m := range seq {
		buf = appendInt(buf, m.Ind)
		buf = append(buf, ',')
		buf = appendInt(buf, m.From)
		buf = append(buf, ',')
		buf = appendInt(buf, m.To)
		buf = append(buf, ';')
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
