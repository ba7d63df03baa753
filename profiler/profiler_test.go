package profiler

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerRecordsOperations(t *testing.T) {
	timer := NewTimer()

	stop := timer.StartOperation("kernel")
	time.Sleep(time.Millisecond)
	stop()

	stats, ok := timer.Stats("kernel")
	if !ok {
		t.Fatal("expected stats for recorded operation")
	}
	if stats.Count != 1 {
		t.Fatalf("count: got %d, want 1", stats.Count)
	}
	if stats.Min <= 0 || stats.Max < stats.Min || stats.Avg < stats.Min {
		t.Fatalf("inconsistent stats: %+v", stats)
	}
}

func TestTimerUnknownOperation(t *testing.T) {
	timer := NewTimer()
	if _, ok := timer.Stats("nope"); ok {
		t.Fatal("expected no stats for unrecorded operation")
	}
}

func TestTimerConcurrentUse(t *testing.T) {
	timer := NewTimer()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				timer.StartOperation("op")()
			}
		}()
	}
	wg.Wait()

	stats, ok := timer.Stats("op")
	if !ok || stats.Count != 1600 {
		t.Fatalf("count: got %d, want 1600", stats.Count)
	}
}

func TestTimerReport(t *testing.T) {
	timer := NewTimer()
	timer.StartOperation("b")()
	timer.StartOperation("a")()

	report := timer.Report()
	if !strings.Contains(report, "a:") || !strings.Contains(report, "b:") {
		t.Fatalf("report missing operations: %q", report)
	}
	if strings.Index(report, "a:") > strings.Index(report, "b:") {
		t.Fatalf("report not sorted: %q", report)
	}
}
