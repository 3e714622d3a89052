package telemetry

import (
	"testing"

	"github.com/replayctl/pagesim/internal/cache"
	"github.com/replayctl/pagesim/internal/policy"
)

func TestReferenceTracker_ProcessedCountsEveryAdvanceRegardlessOfWindow(t *testing.T) {
	states := map[byte]*cache.PolicyState{
		policy.FIFO.Code(): cache.NewPolicyState(2),
	}
	tracker := NewLog().NewReferenceTracker([]policy.Policy{policy.FIFO}, states, 1000)

	for i := 0; i < 5; i++ {
		tracker.Advance()
	}

	if tracker.Processed() != 5 {
		t.Fatalf("Processed() = %d, want 5", tracker.Processed())
	}
}

func TestReferenceTracker_ReportResetsSinceReportWithoutLosingProcessedTotal(t *testing.T) {
	states := map[byte]*cache.PolicyState{
		policy.FIFO.Code(): cache.NewPolicyState(2),
	}
	tracker := NewLog().NewReferenceTracker([]policy.Policy{policy.FIFO}, states, 3)

	for i := 0; i < 7; i++ {
		tracker.Advance()
	}

	if tracker.Processed() != 7 {
		t.Fatalf("Processed() = %d, want 7 after two report cycles plus a partial window", tracker.Processed())
	}
	if tracker.sinceReport != 1 {
		t.Fatalf("sinceReport = %d, want 1 (7 mod window 3)", tracker.sinceReport)
	}
}
