// Package persistence implements the on-disk event sink: progress lines,
// counterexample blocks, and DOT/plain-matrix graph artifacts, written in
// the two file formats the reference engine's resultSaver/graphToDot/
// saveMatrix helpers produced.
package persistence

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/awalterschulze/gographviz"

	"github.com/spectral-conjectures/counterexplore/harness"
)

// FileSink implements harness.EventSink by appending lines to
// "{strategy}_evolution" (progress) and "{strategy}" (counterexample
// blocks) under Dir, and -- on every counterexample -- writing a DOT graph
// and a plain adjacency-matrix artifact to "{strategy}/conj{N}.dot" /
// ".mat".
type FileSink struct {
	Dir string
}

// NewFileSink returns a FileSink rooted at dir. dir is created lazily on
// first write.
func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

// Progress implements harness.EventSink.
func (s *FileSink) Progress(e harness.ProgressEvent) {
	line := fmt.Sprintf("Conjecture %d | %s best score yet : %v after %vs, %d vertices\n",
		e.Conj, e.Strategy, e.Score, e.Elapsed.Seconds(), e.Vertices)
	s.appendLine(e.Strategy+"_evolution", line)
}

// Counterexample implements harness.EventSink.
func (s *FileSink) Counterexample(e harness.CounterexampleEvent) {
	block := fmt.Sprintf("Conjecture %d\n        Counterexample found in %vs: best score = %v\n        With %s, %d vertices\n\n",
		e.Conj, e.Elapsed.Seconds(), e.Score, e.Strategy, e.State.NVertices)
	s.appendLine(e.Strategy, block)

	artifactDir := filepath.Join(s.Dir, e.Strategy)
	if err := os.MkdirAll(artifactDir, 0o755); err != nil {
		return
	}
	base := filepath.Join(artifactDir, fmt.Sprintf("conj%d", e.Conj))
	_ = writeDOT(base+".dot", e.State.Adj)
	_ = writeMatrix(base+".mat", e.State.Adj)
}

func (s *FileSink) appendLine(name, line string) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(s.Dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.WriteString(line)
}

// writeDOT renders adj as an undirected DOT graph.
func writeDOT(path string, adj [][]float64) error {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		return err
	}
	if err := g.SetDir(false); err != nil {
		return err
	}

	n := len(adj)
	for i := 0; i < n; i++ {
		if err := g.AddNode("G", fmt.Sprintf("%d", i), nil); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adj[i][j] == 1 {
				if err := g.AddEdge(fmt.Sprintf("%d", i), fmt.Sprintf("%d", j), false, nil); err != nil {
					return err
				}
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(g.String())
	return err
}

// writeMatrix renders adj as whitespace-separated rows of plain text.
func writeMatrix(path string, adj [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, row := range adj {
		for j, v := range row {
			if j > 0 {
				if _, err := f.WriteString(" "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(f, "%v", v); err != nil {
				return err
			}
		}
		if _, err := f.WriteString("\n"); err != nil {
			return err
		}
	}
	return nil
}
