package persistence

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spectral-conjectures/counterexplore/graph"
	"github.com/spectral-conjectures/counterexplore/harness"
)

func TestProgressAppendsLine(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir)

	sink.Progress(harness.ProgressEvent{
		Strategy: "nmcs",
		Conj:     3,
		Score:    0.5,
		Elapsed:  time.Second,
		Vertices: 4,
	})

	data, err := os.ReadFile(filepath.Join(dir, "nmcs_evolution"))
	if err != nil {
		t.Fatalf("reading evolution log: %v", err)
	}
	if !strings.Contains(string(data), "Conjecture 3") || !strings.Contains(string(data), "nmcs") {
		t.Errorf("evolution log missing expected content: %q", data)
	}
}

func TestCounterexampleWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir)

	st := graph.NewState(1, 4)
	st.Play(graph.Move{Ind: 1, From: 0, To: graph.NewVertex})
	st.Play(graph.Move{Ind: 2, From: 0, To: 1})

	sink.Counterexample(harness.CounterexampleEvent{
		Strategy: "bfs",
		Conj:     1,
		Score:    1.0,
		Elapsed:  time.Second,
		State:    st,
	})

	block, err := os.ReadFile(filepath.Join(dir, "bfs"))
	if err != nil {
		t.Fatalf("reading counterexample log: %v", err)
	}
	if !strings.Contains(string(block), "Counterexample found") {
		t.Errorf("counterexample log missing expected content: %q", block)
	}

	dotPath := filepath.Join(dir, "bfs", "conj1.dot")
	if _, err := os.Stat(dotPath); err != nil {
		t.Errorf("expected DOT artifact at %s: %v", dotPath, err)
	}
	matPath := filepath.Join(dir, "bfs", "conj1.mat")
	if _, err := os.Stat(matPath); err != nil {
		t.Errorf("expected matrix artifact at %s: %v", matPath, err)
	}

	matData, err := os.ReadFile(matPath)
	if err != nil {
		t.Fatalf("reading matrix artifact: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(matData)), "\n")
	if len(lines) != 2 {
		t.Errorf("matrix artifact has %d rows, want 2", len(lines))
	}
}
