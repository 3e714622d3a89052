package main

import (
	"fmt"
	"io"

	"github.com/replayctl/pagesim/internal/report"
	"github.com/replayctl/pagesim/internal/sim"
)

// stdoutSnapshots implements sim.SnapshotSink, printing one page-table
// snapshot per policy per reference to w when --show-process is set
// (spec.md §4.4 step (d)).
type stdoutSnapshots struct {
	w        io.Writer
	reporter *report.Reporter
}

func (s *stdoutSnapshots) Snapshot(t int, pr sim.PolicyResult) {
	fmt.Fprintf(s.w, "-- reference %d: %s --\n", t, pr.Policy.Label())
	s.reporter.Snapshot(s.w, pr)
}
