package metrics

import (
	"testing"
	"time"
)

func TestCollectorSnapshot(t *testing.T) {
	c := New()
	c.Record(200, 10*time.Millisecond)
	c.Record(400, 20*time.Millisecond)
	c.Record(429, 0)
	c.Record(500, 30*time.Millisecond)
	c.RecordSimulation("json")
	c.RecordSimulation("json")
	c.RecordSimulation("pdf")

	snap := c.Snapshot()
	if snap["requestsTotal"].(uint64) != 4 {
		t.Fatalf("expected 4 requests, got %v", snap["requestsTotal"])
	}
	if snap["errorsTotal"].(uint64) != 1 {
		t.Fatalf("expected 1 error, got %v", snap["errorsTotal"])
	}
	if snap["clientErrorsTotal"].(uint64) != 2 {
		t.Fatalf("expected 2 client errors, got %v", snap["clientErrorsTotal"])
	}
	if snap["rateLimitedTotal"].(uint64) != 1 {
		t.Fatalf("expected 1 rate limited, got %v", snap["rateLimitedTotal"])
	}
	if snap["avgDurationMs"].(float64) != 15 {
		t.Fatalf("expected avg 15ms, got %v", snap["avgDurationMs"])
	}
	sims := snap["simulationsTotal"].(map[string]uint64)
	if sims["json"] != 2 || sims["pdf"] != 1 {
		t.Fatalf("unexpected simulation counts %v", sims)
	}
}
