// Package telemetry provides the elapsed-time logger pagesim uses for
// AdjustedConfiguration warnings, interrupted-run notices, and periodic
// per-policy hit-ratio reporting while a run is in progress.
package telemetry

import (
	"fmt"
	"log"
	"time"

	"github.com/replayctl/pagesim/internal/cache"
	"github.com/replayctl/pagesim/internal/policy"
)

// Log is a logger that prefixes every message with the time elapsed since
// the log was created.
type Log struct {
	start  time.Time
	logger *log.Logger
}

// NewLog creates a new Log starting its elapsed-time clock now.
func NewLog() *Log {
	return &Log{start: time.Now(), logger: log.Default()}
}

// Print logs msg with an elapsed-time prefix.
func (l *Log) Print(msg string) {
	now := time.Now()
	t := uint64(now.Sub(l.start).Seconds())
	l.logger.Printf("[t=%4d:%02d] %s\n", t/60, t%60, msg)
}

// Printf formats and logs a message with an elapsed-time prefix.
func (l *Log) Printf(format string, v ...any) {
	l.Print(fmt.Sprintf(format, v...))
}

// ReferenceTracker reports throughput and every selected policy's running
// hit ratio once every window references, so --show-process's per-
// reference page-table snapshots (see internal/sim.SnapshotSink) aren't
// the only signal a long run produces. Unlike a raw progress bar, it
// speaks in the engine's own terms: references processed and hit ratio
// per policy, not an opaque percentage.
type ReferenceTracker struct {
	log      *Log
	policies []policy.Policy
	states   map[byte]*cache.PolicyState

	window            int
	processed         int
	sinceReport       int
	reportIntervalEnd time.Time
}

// NewReferenceTracker creates a ReferenceTracker that logs via l every
// window references, reading hit ratios out of states as the engine
// advances them.
func (l *Log) NewReferenceTracker(policies []policy.Policy, states map[byte]*cache.PolicyState, window int) *ReferenceTracker {
	return &ReferenceTracker{
		log:               l,
		policies:          policies,
		states:            states,
		window:            window,
		reportIntervalEnd: time.Now(),
	}
}

// Advance records that one more reference was processed against every
// tracked policy. Once window references have accumulated since the last
// report, it logs throughput and each policy's current hit ratio, in
// declaration order, then resets its own window.
func (t *ReferenceTracker) Advance() {
	t.processed++
	t.sinceReport++
	if t.sinceReport < t.window {
		return
	}

	now := time.Now()
	rate := float64(t.sinceReport) / now.Sub(t.reportIntervalEnd).Seconds()
	t.log.Printf("processed %d references (%.0f/s)", t.processed, rate)
	for _, p := range t.policies {
		t.log.Printf("  %-8s hit ratio %.4f", p.Label(), t.states[p.Code()].HitRatio())
	}

	t.sinceReport = 0
	t.reportIntervalEnd = now
}

// Processed returns the number of references advanced so far.
func (t *ReferenceTracker) Processed() int {
	return t.processed
}
