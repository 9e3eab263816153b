// Package nmcs implements nested Monte Carlo search: at level n, every
// legal move is explored by recursing at level n-1 (level 0 bottoms out in
// a playout), and the search commits to the best child found so far before
// moving on.
package nmcs

import (
	"golang.org/x/exp/rand"

	"github.com/spectral-conjectures/counterexplore/graph"
	"github.com/spectral-conjectures/counterexplore/harness"
	"github.com/spectral-conjectures/counterexplore/playout"
)

// Run performs a nested Monte Carlo search of the given level starting from
// init, using heuristicWeight to bias playouts. It returns the best state
// found before ctx's timeout elapses or the search tree is exhausted.
func Run(ctx *harness.Context, init *graph.State, level int, heuristicWeight float64, rng *rand.Rand) *graph.State {
	if ctx.BestState == nil {
		ctx.BestState = init.Clone()
	}
	nmcs(ctx, init.Clone(), level, heuristicWeight, rng)
	return ctx.BestState
}

func nmcs(ctx *harness.Context, st *graph.State, level int, heuristicWeight float64, rng *rand.Rand) *graph.State {
	best := st.Clone()
	bestScore := best.Score()

	for !st.Terminal() {
		moves := st.LegalMoves()
		if len(moves) == 0 {
			break
		}

		for _, mv := range moves {
			if ctx.TimedOut() {
				return best
			}

			candidate := st.Clone()
			candidate.Play(mv)
			if level <= 1 {
				candidate = playout.Run(candidate, heuristicWeight, rng)
			} else {
				candidate = nmcs(ctx, candidate, level-1, heuristicWeight, rng)
			}
			candidateScore := candidate.Score()

			if candidateScore > bestScore {
				best = candidate.Clone()
				bestScore = candidateScore
				best.BestScore = bestScore

				if ctx.Offer(best, bestScore) {
					return ctx.BestState
				}
			}
		}

		if graph.ConsiderNonTerminal() && len(best.Seq) == len(st.Seq) {
			break
		}
		st.Play(best.Seq[len(st.Seq)])
	}

	if graph.ConsiderNonTerminal() {
		return ctx.BestState
	}
	return st
}
