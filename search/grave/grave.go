// Package grave implements Generalized Rapid Action Value Estimation: an
// MCTS-style search keeping a transposition table of AMAF (all-moves-as-
// first) statistics keyed by move sequence, using the nearest ancestor
// entry with enough playouts as the AMAF reference whenever the current
// node is too sparsely visited to trust its own statistics.
package grave

import (
	"golang.org/x/exp/rand"

	"github.com/spectral-conjectures/counterexplore/graph"
	"github.com/spectral-conjectures/counterexplore/harness"
	"github.com/spectral-conjectures/counterexplore/playout"
)

// RefThreshold is the minimum allplayouts count a transposition entry needs
// before it is trusted as the AMAF reference for its descendants.
const RefThreshold = 50

// unexploredValue is the value assigned to a move with no AMAF statistics
// at all under the current reference, so that selectMove always prefers
// exploring it over any move with a real, finite blended value.
const unexploredValue = 1e12

type transEntry struct {
	wins         map[graph.Move]float64
	playouts     map[graph.Move]int
	amafWins     map[graph.Move]float64
	amafPlayouts map[graph.Move]int
	allplayouts  int
}

func newTransEntry() *transEntry {
	return &transEntry{
		wins:         make(map[graph.Move]float64),
		playouts:     make(map[graph.Move]int),
		amafWins:     make(map[graph.Move]float64),
		amafPlayouts: make(map[graph.Move]int),
	}
}

// cloneMoveFloat and cloneMoveInt copy a move-keyed stats map so a new
// entry seeded from an ancestor's AMAF table doesn't alias it.
func cloneMoveFloat(m map[graph.Move]float64) map[graph.Move]float64 {
	out := make(map[graph.Move]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneMoveInt(m map[graph.Move]int) map[graph.Move]int {
	out := make(map[graph.Move]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Searcher holds the transposition table shared across one search run.
type Searcher struct {
	table map[string]*transEntry
	rng   *rand.Rand
}

// NewSearcher returns a Searcher with a fresh, empty transposition table.
func NewSearcher(rng *rand.Rand) *Searcher {
	return &Searcher{table: make(map[string]*transEntry), rng: rng}
}

// search descends from st, using ref as the AMAF reference entry, and
// returns the score reached and the state it was reached at, so the caller
// can credit every move along the completed rollout's tail as AMAF
// experience, not just the one move it played at this node.
func (s *Searcher) search(ctx *harness.Context, st *graph.State, ref *transEntry, heuristicWeight float64) (float64, *graph.State) {
	if st.Terminal() || ctx.TimedOut() {
		sc := st.Score()
		ctx.Offer(st.Clone(), sc)
		return sc, st
	}

	moves := st.LegalMoves()
	if len(moves) == 0 {
		sc := st.Score()
		ctx.Offer(st.Clone(), sc)
		return sc, st
	}

	key := graph.SeqKey(st.Seq)
	entry, ok := s.table[key]
	if !ok {
		child := st.Clone()
		m := moves[int(float64(len(moves))*s.rng.Float64())]
		child.Play(m)

		rolled := playout.Run(child, heuristicWeight, s.rng)
		sc := rolled.Score()
		ctx.Offer(rolled.Clone(), sc)

		wa := cloneMoveFloat(ref.amafWins)
		pa := cloneMoveInt(ref.amafPlayouts)
		for i := len(st.Seq); i < len(rolled.Seq); i++ {
			tail := rolled.Seq[i]
			wa[tail] += sc
			pa[tail]++
		}

		s.table[key] = &transEntry{
			wins:         map[graph.Move]float64{m: sc},
			playouts:     map[graph.Move]int{m: 1},
			amafWins:     wa,
			amafPlayouts: pa,
			allplayouts:  1,
		}
		return sc, rolled
	}

	nextRef := ref
	if entry.allplayouts > RefThreshold {
		nextRef = entry
	}

	mv := s.selectMove(moves, entry, nextRef)

	child := st.Clone()
	child.Play(mv)
	sc, resState := s.search(ctx, child, nextRef, heuristicWeight)

	entry.wins[mv] += sc
	entry.playouts[mv]++

	for i := len(st.Seq); i < len(resState.Seq); i++ {
		tail := resState.Seq[i]
		entry.amafWins[tail] += sc
		entry.amafPlayouts[tail]++
	}
	entry.allplayouts++

	return sc, resState
}

// selectMove picks the move maximizing the AMAF-blended value
// (1-Bm)*mean + Bm*amafMean, where mean is entry's own win/playout ratio
// for the move, amafMean is ref's AMAF win/playout ratio for it, and
// Bm = playoutsAMAF / (playoutsAMAF + playouts) weighs the AMAF estimate
// more heavily while entry itself has little direct experience with the
// move. A move with no AMAF experience under ref at all gets
// unexploredValue, so GRAVE always prefers exploring it first.
func (s *Searcher) selectMove(moves []graph.Move, entry, ref *transEntry) graph.Move {
	best := moves[0]
	bestValue := -1e18

	for _, mv := range moves {
		mean := 0.0
		p := float64(entry.playouts[mv])
		if p > 0 {
			mean = entry.wins[mv] / p
		}

		value := unexploredValue
		if pa := float64(ref.amafPlayouts[mv]); pa > 0 {
			bm := pa / (pa + p)
			amafMean := ref.amafWins[mv] / pa
			value = (1-bm)*mean + bm*amafMean
		}

		if value > bestValue {
			bestValue = value
			best = mv
		}
	}
	return best
}

// Run performs repeated GRAVE descents from init, restarting at init after
// every descent, until a counterexample is found or ctx's timeout elapses.
// The transposition table accumulates across restarts within one Run call,
// only the AMAF reference handed to the root resets each time. A
// non-positive ctx.Timeout means run unbounded, consistent with every
// other strategy in this package.
func Run(ctx *harness.Context, init *graph.State, heuristicWeight float64, rng *rand.Rand) *graph.State {
	if ctx.BestState == nil {
		ctx.BestState = init.Clone()
	}

	s := NewSearcher(rng)

	for !ctx.TimedOut() {
		s.search(ctx, init.Clone(), newTransEntry(), heuristicWeight)

		if ctx.BestScore > graph.CounterexampleThreshold {
			return ctx.BestState
		}
	}

	return ctx.BestState
}
