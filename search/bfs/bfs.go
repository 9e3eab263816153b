// Package bfs implements a best-first frontier search: the open list is
// kept sorted by a playout-estimated weight, and the highest-weight node is
// always expanded next.
package bfs

import (
	"golang.org/x/exp/rand"

	"github.com/spectral-conjectures/counterexplore/graph"
	"github.com/spectral-conjectures/counterexplore/harness"
	"github.com/spectral-conjectures/counterexplore/playout"
)

type weightedState struct {
	weight float64
	state  *graph.State
}

// insertionPoint returns the index at which node should land in an
// ascending-by-weight open list via a dichotomous (binary) search. It is
// explicitly guarded against the single-element underflow a naive
// len/2-based search hits when len(l) == 1.
func insertionPoint(l []weightedState, node weightedState) int {
	if len(l) == 0 {
		return 0
	}
	lo, hi := 0, len(l)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if l[mid].weight < node.weight {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if l[lo].weight < node.weight {
		return lo + 1
	}
	return lo
}

func insertSorted(l []weightedState, node weightedState) []weightedState {
	i := insertionPoint(l, node)
	l = append(l, weightedState{})
	copy(l[i+1:], l[i:])
	l[i] = node
	return l
}

// Run performs a best-first search from init. playoutsPerNode >= 0 selects
// the node-value-by-playout mode (estimate a child's value as the best of
// playoutsPerNode+1 rollouts); a negative value scores a child directly
// without playing it out. heuristicWeight biases playouts when
// playoutsPerNode >= 0. skipRepeatingScores discards frontier nodes whose
// playout score has already been seen, to avoid repeatedly expanding
// indistinguishable positions.
func Run(ctx *harness.Context, init *graph.State, heuristicWeight float64, playoutsPerNode int, skipRepeatingScores bool, rng *rand.Rand) *graph.State {
	if ctx.BestState == nil {
		ctx.BestState = init.Clone()
	}

	open := []weightedState{{weight: 0, state: init.Clone()}}
	visited := make(map[int64]bool)

	for len(open) != 0 {
		if ctx.TimedOut() {
			return ctx.BestState
		}

		node := open[len(open)-1]
		open = open[:len(open)-1]

		if skipRepeatingScores {
			for node.weight != 0 && len(open) != 0 {
				if !visited[scoreKey(node.weight)] {
					break
				}
				node = open[len(open)-1]
				open = open[:len(open)-1]
			}
			visited[scoreKey(node.weight)] = true
		}

		for _, mv := range node.state.LegalMoves() {
			candidate := node.state.Clone()
			candidate.Play(mv)

			if playoutsPerNode >= 0 {
				best := playout.Run(candidate.Clone(), heuristicWeight, rng)
				bestScore := best.Score()

				for i := 0; i < playoutsPerNode; i++ {
					alt := playout.Run(candidate.Clone(), heuristicWeight, rng)
					if altScore := alt.Score(); altScore > bestScore {
						best, bestScore = alt, altScore
					}
				}

				if ctx.Offer(best, bestScore) {
					return ctx.BestState
				}

				open = insertSorted(open, weightedState{weight: bestScore, state: candidate})
			} else {
				sc := candidate.Score()
				if ctx.Offer(candidate, sc) {
					return ctx.BestState
				}
				if !candidate.Terminal() {
					open = insertSorted(open, weightedState{weight: sc, state: candidate})
				}
			}
		}
	}

	return ctx.BestState
}

func scoreKey(w float64) int64 {
	return int64(w * 1e10)
}
