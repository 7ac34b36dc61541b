package perf

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// TestCollector_RecordAndSnapshot verifies aggregation over recorded entries.
func TestCollector_RecordAndSnapshot(t *testing.T) {
	c := NewCollector(16)
	for i := 0; i < 4; i++ {
		c.Record(Entry{
			Kind:       KindRequest,
			Path:       "GET /liked-videos",
			StatusCode: 200,
			DurationMs: float64(10 * (i + 1)),
			Timestamp:  time.Now(),
		})
	}
	c.Record(Entry{Kind: KindQuery, Path: "likedvideo.ListIDsByOwner", DurationMs: 2})

	snap := c.Snapshot()
	if snap.TotalRequests != 5 {
		t.Errorf("TotalRequests = %d, want 5", snap.TotalRequests)
	}
	if snap.RequestP50Ms != 20 {
		t.Errorf("RequestP50Ms = %v, want 20", snap.RequestP50Ms)
	}
	if len(snap.SlowestPaths) != 2 {
		t.Fatalf("SlowestPaths count = %d, want 2", len(snap.SlowestPaths))
	}
	if snap.SlowestPaths[0].Path != "GET /liked-videos" || snap.SlowestPaths[0].MaxMs != 40 {
		t.Errorf("slowest = %+v, want GET /liked-videos with max 40", snap.SlowestPaths[0])
	}
}

// TestCollector_RingOverwrite verifies old entries are overwritten when full.
func TestCollector_RingOverwrite(t *testing.T) {
	c := NewCollector(4)
	for i := 0; i < 10; i++ {
		c.Record(Entry{Kind: KindRequest, Path: fmt.Sprintf("GET /p%d", i), DurationMs: 1})
	}
	if got := c.TotalRecorded(); got != 10 {
		t.Errorf("TotalRecorded = %d, want 10", got)
	}
	snap := c.Snapshot()
	// Only the last 4 entries remain in the ring
	if len(snap.SlowestPaths) != 4 {
		t.Errorf("SlowestPaths count = %d, want 4", len(snap.SlowestPaths))
	}
}

// TestCollector_ConcurrentRecord exercises Record under parallel writers.
func TestCollector_ConcurrentRecord(t *testing.T) {
	c := NewCollector(64)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Record(Entry{Kind: KindRequest, Path: "GET /trending", DurationMs: 1})
			}
		}()
	}
	wg.Wait()
	if got := c.TotalRecorded(); got != 800 {
		t.Errorf("TotalRecorded = %d, want 800", got)
	}
}
