// Package cmaes implements a binary-encoded covariance matrix adaptation
// evolution strategy: a population of fixed-size graphs is encoded as
// vectors, a new generation is sampled from the current mean and covariance,
// thresholded back to graphs, and the best candidates become the next
// generation's parents.
package cmaes

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"

	"github.com/spectral-conjectures/counterexplore/graph"
	"github.com/spectral-conjectures/counterexplore/harness"
	"github.com/spectral-conjectures/counterexplore/numeric"
	"github.com/spectral-conjectures/counterexplore/utils/floatutils"
)

// encode flattens the full n x n adjacency matrix of st in row-major order
// (d = n*n entries, including the always-zero diagonal), matching the
// reference encoder, which flattens the raw matrix wholesale rather than
// just its independent upper-triangle degrees of freedom.
func encode(st *graph.State) []float64 {
	n := st.NVertices
	vec := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		vec = append(vec, st.Adj[i][:n]...)
	}
	return vec
}

// decode builds an n-vertex graph from a flattened row-major n*n vector,
// binarizing each off-diagonal component against the matching component of
// mean: x_k > mean_k becomes an edge. len(vec) must be n*n -- CMA-ES's
// dimensionality is always a perfect square by construction here, since
// every sample is itself an encode() of an n-vertex graph.
//
// Each unordered pair {i, j} gets an edge if either encoded position (i, j)
// or (j, i) binarizes to 1, since SetEdge only ever turns an edge on here
// and the two positions are visited independently -- the same OR-over-both-
// directions behaviour as the reference decoder's construct_state.
func decode(conj, n int, vec, mean []float64) *graph.State {
	if len(vec) != n*n {
		panic("cmaes: decode: len(vec) must be a perfect square (n*n)")
	}
	st := graph.NewFixedState(conj, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			k := i*n + j
			if vec[k] > mean[k] {
				st.SetEdge(i, j, true)
			}
		}
	}
	return st
}

// randomParents seeds the initial population with genuinely random
// Erdos-Renyi graphs, each edge present independently with probability 1/2.
func randomParents(conj, n, count int, rng *rand.Rand) []*graph.State {
	parents := make([]*graph.State, count)
	for i := range parents {
		st := graph.NewFixedState(conj, n)
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				st.SetEdge(a, b, rng.Float64() >= 0.5)
			}
		}
		st.BestScore = st.Score()
		parents[i] = st
	}
	return parents
}

type scored struct {
	state *graph.State
	score float64
}

// selectCandidates truncation-selects the top count candidates by score,
// in descending order.
func selectCandidates(candidates []*graph.State, count int) []*graph.State {
	ranked := make([]scored, len(candidates))
	for i, c := range candidates {
		ranked[i] = scored{c, c.Score()}
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if count > len(ranked) {
		count = len(ranked)
	}
	out := make([]*graph.State, count)
	for i := 0; i < count; i++ {
		out[i] = ranked[i].state
	}
	return out
}

// createChild samples one offspring vector from mean + P . (sqrt(delta) .
// z), z standard normal, where (P, delta) is the spectral decomposition of
// the population covariance.
func createChild(mean []float64, p mat64Like, delta []float64, rng *rand.Rand) []float64 {
	dim := len(mean)
	z := make([]float64, dim)
	for i := range z {
		z[i] = rng.NormFloat64()
	}

	child := make([]float64, dim)
	for i := 0; i < dim; i++ {
		sum := 0.0
		for j := 0; j < dim; j++ {
			d := delta[j]
			if d < 0 {
				d = 0
			}
			sum += p.At(i, j) * math.Sqrt(d) * z[j]
		}
		child[i] = floatutils.Clip(mean[i]+sum, -1, 2)
	}
	return child
}

// mat64Like is the subset of gonum's mat.Dense interface createChild needs;
// it exists only so this file doesn't need to import gonum/mat directly for
// a single At call.
type mat64Like interface {
	At(i, j int) float64
}

// Run performs a CMA-ES search over n-vertex graphs for conj: lambda
// children are sampled each generation from the encoded mean/covariance of
// the current population, the population is extended with them, and the
// top lambda candidates survive to become next generation's population.
// The search runs for up to restarts generations, or until ctx's timeout
// elapses, whichever comes first.
func Run(ctx *harness.Context, conj, n, restarts, lambda int, rng *rand.Rand) *graph.State {
	if ctx.BestState == nil {
		ctx.BestState = graph.NewFixedState(conj, n)
	}

	population := randomParents(conj, n, lambda, rng)

	for gen := 0; gen < restarts; gen++ {
		if ctx.TimedOut() {
			return ctx.BestState
		}

		samples := make([][]float64, len(population))
		for i, p := range population {
			samples[i] = encode(p)
		}

		mean := numeric.RowMeans(samples)
		cov := numeric.SampleCovariance(samples)
		p, delta := numeric.SpectralDecomposition(cov)

		for i := 0; i < lambda; i++ {
			vec := createChild(mean, p, delta, rng)
			child := decode(conj, n, vec, mean)
			child.BestScore = child.Score()
			population = append(population, child)

			if ctx.Offer(child, child.BestScore) {
				return ctx.BestState
			}
		}

		population = selectCandidates(population, lambda)
	}

	return ctx.BestState
}
