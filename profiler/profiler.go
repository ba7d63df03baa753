// Package profiler provides lightweight operation timing for kernel
// invocations. It is used by the demos to report per-kernel latency and
// frame rates; the library packages never depend on it.
package profiler

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// OperationStats summarizes recorded timings for one named operation.
type OperationStats struct {
	Name  string
	Count int64
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Total time.Duration
}

// timeTracker tracks timing statistics for a single operation.
type timeTracker struct {
	total time.Duration
	min   time.Duration
	max   time.Duration
	count int64
}

// Timer records wall-clock durations of named operations. It is safe for
// concurrent use.
type Timer struct {
	mu  sync.Mutex
	ops map[string]*timeTracker
}

// NewTimer creates an empty Timer.
func NewTimer() *Timer {
	return &Timer{ops: make(map[string]*timeTracker)}
}

// StartOperation begins timing an operation.
//
// Arguments:
// - name: The name of the operation to track
//
// Returns:
// - A function to call when the operation completes
func (t *Timer) StartOperation(name string) func() {
	start := time.Now()
	return func() {
		t.record(name, time.Since(start))
	}
}

// record folds a completed duration into the named tracker.
func (t *Timer) record(name string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tracker, exists := t.ops[name]
	if !exists {
		tracker = &timeTracker{min: d, max: d}
		t.ops[name] = tracker
	}

	tracker.total += d
	tracker.count++
	if d < tracker.min {
		tracker.min = d
	}
	if d > tracker.max {
		tracker.max = d
	}
}

// Stats returns the recorded statistics for one operation.
//
// Arguments:
// - name: The operation name
//
// Returns:
// - OperationStats: The aggregated timings
// - bool: Whether any timing was recorded under that name
func (t *Timer) Stats(name string) (OperationStats, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tracker, exists := t.ops[name]
	if !exists || tracker.count == 0 {
		return OperationStats{}, false
	}
	return OperationStats{
		Name:  name,
		Count: tracker.count,
		Min:   tracker.min,
		Max:   tracker.max,
		Avg:   tracker.total / time.Duration(tracker.count),
		Total: tracker.total,
	}, true
}

// Report renders a one-line-per-operation summary, sorted by name.
func (t *Timer) Report() string {
	t.mu.Lock()
	names := make([]string, 0, len(t.ops))
	for name := range t.ops {
		names = append(names, name)
	}
	t.mu.Unlock()
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		if s, ok := t.Stats(name); ok {
			fmt.Fprintf(&b, "%s: n=%d min=%s avg=%s max=%s\n",
				s.Name, s.Count, s.Min, s.Avg, s.Max)
		}
	}
	return b.String()
}
