// Package nrpa implements Nested Rollout Policy Adaptation: at each level,
// Playouts rollouts are sampled under a softmax move policy, the best one
// adapts the policy towards the moves it played, and the process recurses
// one level deeper.
package nrpa

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/spectral-conjectures/counterexplore/graph"
	"github.com/spectral-conjectures/counterexplore/harness"
)

// Playouts is the number of inner rollouts performed per recursion level
// before the policy is frozen for that level's caller.
const Playouts = 100

type policy map[graph.Move]float64

// Run performs an NRPA search of the given level starting from init,
// returning the best state found before ctx's timeout elapses.
func Run(ctx *harness.Context, init *graph.State, level int, rng *rand.Rand) *graph.State {
	if ctx.BestState == nil {
		ctx.BestState = init.Clone()
	}
	nrpa(ctx, level, make(policy), init, rng)
	return ctx.BestState
}

func nrpa(ctx *harness.Context, level int, pol policy, init *graph.State, rng *rand.Rand) *graph.State {
	st := init.Clone()
	stScore := st.Score()

	if level == 0 || ctx.TimedOut() {
		return rollout(st, pol, rng)
	}

	for i := 0; i < Playouts; i++ {
		child := make(policy, len(pol))
		for k, v := range pol {
			child[k] = v
		}

		s := nrpa(ctx, level-1, child, init, rng)
		sScore := s.Score()

		if stScore < sScore {
			st = s
			stScore = sScore

			ctx.Offer(st, stScore)
			if stScore > graph.CounterexampleThreshold {
				return st
			}
		}
		pol = adapt(pol, st, init)
	}

	return ctx.BestState
}

func randomMove(moves []graph.Move, pol policy, rng *rand.Rand) graph.Move {
	sum := 0.0
	for _, m := range moves {
		if v, ok := pol[m]; ok {
			sum += math.Exp(v)
		} else {
			pol[m] = 0
			sum++
		}
	}

	stop := sum * rng.Float64()
	acc := 0.0
	for _, m := range moves {
		acc += math.Exp(pol[m])
		if acc > stop {
			return m
		}
	}
	return moves[0]
}

func rollout(st *graph.State, pol policy, rng *rand.Rand) *graph.State {
	best := st.Clone()
	bestScore := best.Score()

	for !st.Terminal() {
		moves := st.LegalMoves()
		if len(moves) == 0 {
			break
		}
		st.Play(randomMove(moves, pol, rng))

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

// adapt shifts pol towards the moves played in best (relative to init),
// increasing the weight of each played move and decreasing every
// alternative available at that point in proportion to its current
// softmax mass.
func adapt(pol policy, best *graph.State, init *graph.State) policy {
	working := make(policy, len(pol))
	for k, v := range pol {
		working[k] = v
	}
	result := make(policy, len(pol))
	for k, v := range pol {
		result[k] = v
	}

	s := init.Clone()
	for _, mv := range best.Seq {
		moves := s.LegalMoves()

		sum := 0.0
		for _, m := range moves {
			if v, ok := working[m]; ok {
				sum += math.Exp(v)
			} else {
				working[m] = 0
				sum++
			}
		}

		for _, m := range moves {
			result[m] -= math.Exp(working[m]) / sum
		}
		result[mv]++

		s.Play(mv)
	}

	return result
}
