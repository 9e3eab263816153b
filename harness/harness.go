// Package harness implements the bookkeeping shared by every search
// strategy: start-time/timeout tracking, best-score-yet tracking, and an
// event sink the strategies report progress and counterexamples through.
// Its bookkeeping is adapted from an episodic RL experiment runner to a
// single-shot graph search.
package harness

import (
	"math"
	"time"

	"github.com/spectral-conjectures/counterexplore/graph"
)

// ProgressEvent reports a new best score found while a strategy runs.
type ProgressEvent struct {
	Strategy string
	Conj     int
	Score    float64
	Elapsed  time.Duration
	Vertices int
}

// CounterexampleEvent reports a state whose score cleared
// graph.CounterexampleThreshold.
type CounterexampleEvent struct {
	Strategy string
	Conj     int
	Score    float64
	Elapsed  time.Duration
	State    *graph.State
	Detail   string
}

// EventSink receives progress and counterexample notifications from a
// running search. Implementations need not be safe for concurrent use: the
// search core is single-threaded.
type EventSink interface {
	Progress(ProgressEvent)
	Counterexample(CounterexampleEvent)
}

// NopSink discards every event. It is the default used when a strategy is
// run without a persistence layer, e.g. in tests.
type NopSink struct{}

// Progress implements EventSink.
func (NopSink) Progress(ProgressEvent) {}

// Counterexample implements EventSink.
func (NopSink) Counterexample(CounterexampleEvent) {}

// Context bundles the timeout and best-result bookkeeping every search
// strategy needs, plus the sink it reports events through.
type Context struct {
	Strategy  string
	Conj      int
	Timeout   time.Duration
	StartTime time.Time
	BestScore float64
	BestState *graph.State
	Sink      EventSink
}

// NewContext returns a Context whose clock starts now. A non-positive
// timeout means "run without a deadline". A nil sink is replaced by
// NopSink.
func NewContext(strategy string, conj int, timeout time.Duration, sink EventSink) *Context {
	if sink == nil {
		sink = NopSink{}
	}
	return &Context{
		Strategy:  strategy,
		Conj:      conj,
		Timeout:   timeout,
		StartTime: time.Now(),
		BestScore: math.Inf(-1),
		Sink:      sink,
	}
}

// Elapsed returns the time elapsed since the context started.
func (c *Context) Elapsed() time.Duration {
	return time.Since(c.StartTime)
}

// TimedOut reports whether Timeout has elapsed.
func (c *Context) TimedOut() bool {
	return c.Timeout > 0 && c.Elapsed() > c.Timeout
}

// Offer reports a newly produced candidate state with its score. If score
// improves on the best seen so far, Offer records it, emits a
// ProgressEvent, and -- if score clears graph.CounterexampleThreshold --
// also emits a CounterexampleEvent. Offer returns true iff score improves
// on the best seen so far and clears graph.CounterexampleThreshold; a
// counterexample that does not beat the current best returns false.
func (c *Context) Offer(st *graph.State, score float64) bool {
	if score <= c.BestScore {
		return false
	}
	c.BestScore = score
	c.BestState = st

	c.Sink.Progress(ProgressEvent{
		Strategy: c.Strategy,
		Conj:     c.Conj,
		Score:    score,
		Elapsed:  c.Elapsed(),
		Vertices: st.NVertices,
	})

	if score <= graph.CounterexampleThreshold {
		return false
	}

	c.Sink.Counterexample(CounterexampleEvent{
		Strategy: c.Strategy,
		Conj:     c.Conj,
		Score:    score,
		Elapsed:  c.Elapsed(),
		State:    st,
	})
	return true
}
