// Package playout implements the random/heuristic-guided rollout shared by
// every search strategy: starting from a state, sample legal moves until a
// terminal position (or a dead end) is reached, tracking the best-scoring
// state seen along the way.
package playout

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/spectral-conjectures/counterexplore/graph"
	"github.com/spectral-conjectures/counterexplore/numeric"
)

// Run plays st out to a terminal position (or until no legal moves remain)
// by sampling moves uniformly at random, or -- when heuristicWeight is
// nonzero -- by softmax-sampling over heuristicWeight * st.Heuristic(move).
// It mutates st in place and returns the best-scoring state visited along
// the rollout, short-circuiting as soon as a counterexample is found.
func Run(st *graph.State, heuristicWeight float64, rng *rand.Rand) *graph.State {
	best := st.Clone()
	bestScore := best.Score()

	for !st.Terminal() {
		moves := st.LegalMoves()
		if len(moves) == 0 {
			break
		}

		i := int(float64(len(moves)) * rng.Float64())
		if heuristicWeight != 0 {
			weights := make([]float64, len(moves))
			usable := true
			for k, m := range moves {
				w := heuristicWeight * st.Heuristic(m)
				if math.IsNaN(w) {
					usable = false
					break
				}
				weights[k] = w
			}
			if usable {
				i = numeric.SoftmaxChoice(weights, rng)
			}
		}

		st.Play(moves[i])

		if graph.ConsiderNonTerminal() {
			if sc := st.Score(); sc > bestScore {
				bestScore = sc
				best = st.Clone()
				best.BestScore = sc
			}
		}

		if st.Score() > graph.CounterexampleThreshold {
			return best
		}
	}

	if graph.ConsiderNonTerminal() {
		return best
	}
	return st
}
