// Package ils implements iterated local search over a fixed-size random
// graph: hill-climb by greedily adding improving edges, then escape the
// local optimum by flipping two edges and climbing again.
package ils

import (
	"golang.org/x/exp/rand"

	"github.com/spectral-conjectures/counterexplore/graph"
	"github.com/spectral-conjectures/counterexplore/harness"
)

// RandomGraph returns an Erdos-Renyi-style graph on n vertices scored
// against conj, each edge present independently with probability 1/2.
func RandomGraph(conj, n int, rng *rand.Rand) *graph.State {
	st := graph.NewFixedState(conj, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			st.SetEdge(i, j, rng.Float64() >= 0.5)
		}
	}
	st.BestScore = st.Score()
	return st
}

func allPairs(n int) [][2]int {
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}

// localSearch greedily adds edges while doing so improves the score,
// re-shuffling the candidate order each sweep, until no improving edge is
// left.
func localSearch(st *graph.State, rng *rand.Rand) *graph.State {
	current := st.Clone()
	sc := current.Score()
	pairs := allPairs(current.NVertices)

	improved := true
	for improved {
		rng.Shuffle(len(pairs), func(a, b int) { pairs[a], pairs[b] = pairs[b], pairs[a] })
		improved = false

		for _, p := range pairs {
			candidate := current.Clone()
			candidate.SetEdge(p[0], p[1], true)

			if candidateScore := candidate.Score(); candidateScore > sc {
				sc = candidateScore
				current = candidate
				current.BestScore = sc
				improved = true
				break
			}
		}
	}

	return current
}

// perturbation flips a random edge and then one further edge of the
// opposite state, to kick the search out of the local optimum localSearch
// converges to.
func perturbation(st *graph.State, rng *rand.Rand) *graph.State {
	perturbed := st.Clone()

	pairs := allPairs(st.NVertices)
	rng.Shuffle(len(pairs), func(a, b int) { pairs[a], pairs[b] = pairs[b], pairs[a] })

	i, j := pairs[0][0], pairs[0][1]
	flippedTo := perturbed.Adj[i][j] == 0
	perturbed.SetEdge(i, j, flippedTo)

	for _, p := range pairs[2:] {
		a, b := p[0], p[1]
		if (perturbed.Adj[a][b] == 1) == flippedTo {
			perturbed.SetEdge(a, b, !flippedTo)
			break
		}
	}

	perturbed.BestScore = perturbed.Score()
	return perturbed
}

// Run performs an iterated local search: build a random graph, hill-climb
// it, then repeatedly perturb and re-climb until a counterexample is found
// or ctx's timeout elapses.
func Run(ctx *harness.Context, conj, n int, rng *rand.Rand) *graph.State {
	if ctx.BestState == nil {
		ctx.BestState = graph.NewFixedState(conj, n)
	}

	st := RandomGraph(conj, n, rng)
	best := st.Clone()
	bestScore := best.BestScore

	st = localSearch(st, rng)

	for st.BestScore <= graph.CounterexampleThreshold {
		if ctx.TimedOut() {
			return best
		}

		candidate := perturbation(st, rng)
		candidate = localSearch(candidate, rng)

		if candidate.BestScore > bestScore {
			bestScore = candidate.BestScore
			best = candidate.Clone()
			best.BestScore = bestScore

			if ctx.Offer(best, bestScore) {
				return ctx.BestState
			}
		}

		if candidate.BestScore > st.BestScore {
			st = candidate
		}
	}

	return best
}
