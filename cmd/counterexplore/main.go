// Command counterexplore drives all six search strategies against every
// conjecture in turn, writing progress and counterexample events to disk
// and reporting overall progress to the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/exp/rand"

	"github.com/spectral-conjectures/counterexplore/graph"
	"github.com/spectral-conjectures/counterexplore/harness"
	"github.com/spectral-conjectures/counterexplore/persistence"
	"github.com/spectral-conjectures/counterexplore/search/bfs"
	"github.com/spectral-conjectures/counterexplore/search/cmaes"
	"github.com/spectral-conjectures/counterexplore/search/grave"
	"github.com/spectral-conjectures/counterexplore/search/ils"
	"github.com/spectral-conjectures/counterexplore/search/nmcs"
	"github.com/spectral-conjectures/counterexplore/search/nrpa"
	"github.com/spectral-conjectures/counterexplore/utils/matutils"
	"github.com/spectral-conjectures/counterexplore/utils/progressbar"

	"gonum.org/v1/gonum/mat"
)

const sizeTerminal = 20

func main() {
	outDir := flag.String("out", "results", "directory event logs and counterexample artifacts are written under")
	timeout := flag.Duration("timeout", 60*time.Second, "per-strategy search timeout")
	firstConj := flag.Int("from", 1, "first conjecture id to search (inclusive)")
	lastConj := flag.Int("to", 68, "last conjecture id to search (inclusive)")
	seed := flag.Uint64("seed", 1, "PRNG seed")
	verbose := flag.Bool("v", false, "print every counterexample's adjacency matrix to stdout")
	flag.Parse()

	if *firstConj < 1 || *lastConj > 68 || *firstConj > *lastConj {
		log.Fatalf("invalid conjecture range [%d, %d]: must be within [1, 68]", *firstConj, *lastConj)
	}

	sink := persistence.NewFileSink(*outDir)
	rng := rand.New(rand.NewSource(*seed))

	strategies := []string{"nmcs", "nrpa", "grave", "bfs", "ils", "cmaes"}
	total := (*lastConj - *firstConj + 1) * len(strategies)

	bar := progressbar.NewProgressBar(50, total, time.Second)
	bar.Display()

	for conj := *firstConj; conj <= *lastConj; conj++ {
		for _, strategy := range strategies {
			best, found := runStrategy(strategy, conj, *timeout, sink, rng)
			bar.Increment()

			if found && *verbose {
				fmt.Printf("conjecture %d counterexample (%s):\n%s\n", conj, strategy,
					matutils.Format(adjMatrix(best)))
			}
		}
	}

	bar.Close()
}

// runStrategy invokes one search strategy against one conjecture's initial
// state, per the parameter profile fixed for each strategy, returning the
// best state found and whether it clears the counterexample threshold.
func runStrategy(strategy string, conj int, timeout time.Duration, sink *persistence.FileSink, rng *rand.Rand) (*graph.State, bool) {
	ctx := harness.NewContext(strategy, conj, timeout, sink)

	switch strategy {
	case "nmcs":
		init := graph.NewState(conj, sizeTerminal)
		nmcs.Run(ctx, init, 1, 10.0, rng)
	case "nrpa":
		init := graph.NewState(conj, sizeTerminal)
		nrpa.Run(ctx, init, 1, rng)
	case "grave":
		init := graph.NewState(conj, sizeTerminal)
		grave.Run(ctx, init, 10.0, rng)
	case "bfs":
		init := graph.NewState(conj, sizeTerminal)
		bfs.Run(ctx, init, 10.0, -1, false, rng)
	case "ils":
		ils.Run(ctx, conj, sizeTerminal, rng)
	case "cmaes":
		cmaes.Run(ctx, conj, sizeTerminal, 2000, 10, rng) // restarts=2000, lambda=10 per the fixed parameter profile
	default:
		log.Fatalf("unknown strategy %q", strategy)
	}

	return ctx.BestState, ctx.BestScore > graph.CounterexampleThreshold
}

func adjMatrix(st *graph.State) mat.Matrix {
	n := st.NVertices
	data := make([]float64, 0, n*n)
	for _, row := range st.Adj {
		data = append(data, row...)
	}
	return mat.NewDense(n, n, data)
}
