package cache

// PolicyState is the per-policy working set the engine drives one
// reference at a time: hit/miss counters, the resident frame table, the
// log of evicted frames, accumulated decision-function time, and (for
// LFRU only) the two-partition substate.
//
// A PolicyState is owned exclusively by the policy that steps it: only that
// policy mutates its Table, VictimLog, Hand, and LFRU substate. The engine
// touches only the accounting fields, updating Hits/Misses from each Step's
// result and adding the call's duration to ExecTimeNanos.
type PolicyState struct {
	Hits   int
	Misses int

	Table     []Frame
	VictimLog []Frame

	// ExecTimeNanos accumulates wall-clock nanoseconds spent inside Step
	// calls, summed by the engine after each call.
	ExecTimeNanos int64

	// Hand is CLOCK's cursor into Table. It lives here, not in a
	// package-level variable, so two engines (or two runs) never share
	// eviction state.
	Hand int

	// LFRU is non-nil only for the LFRU policy's state.
	LFRU *PartitionPair
}

// NewPolicyState allocates a PolicyState with frames empty slots.
func NewPolicyState(frames int) *PolicyState {
	return &PolicyState{Table: NewTable(frames)}
}

// NewLFRUPolicyState allocates a PolicyState whose Table mirrors the
// combined privileged+unprivileged partitions, plus the LFRU substate
// itself. Table is kept in sync only for reporting purposes (Snapshot);
// LFRU's own Step logic operates on LFRU.Privileged/Unprivileged directly.
func NewLFRUPolicyState(privileged, unprivileged int) *PolicyState {
	return &PolicyState{
		Table: NewTable(privileged + unprivileged),
		LFRU:  NewPartitionPair(privileged, unprivileged),
	}
}

// RecordVictim appends a snapshot of the evicted frame to the victim log.
// Callers pass the frame's state immediately before it is overwritten.
func (s *PolicyState) RecordVictim(evicted Frame) {
	s.VictimLog = append(s.VictimLog, evicted)
}

// HitRatio returns Hits / (Hits + Misses), or 0 if nothing was processed
// yet.
func (s *PolicyState) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// ResidentPages returns the set of pages currently resident across the
// state's frames (both partitions, for LFRU). Used by tests asserting the
// "resident set is a set" invariant.
func (s *PolicyState) ResidentPages() map[int]struct{} {
	pages := make(map[int]struct{})
	if s.LFRU != nil {
		for _, f := range s.LFRU.Privileged.Frames {
			if !f.IsEmpty() {
				pages[f.Page] = struct{}{}
			}
		}
		for _, f := range s.LFRU.Unprivileged.Frames {
			if !f.IsEmpty() {
				pages[f.Page] = struct{}{}
			}
		}
		return pages
	}
	for _, f := range s.Table {
		if !f.IsEmpty() {
			pages[f.Page] = struct{}{}
		}
	}
	return pages
}

// SyncLFRUTableForReporting rewrites Table from the current partition
// contents so Snapshot/tests can treat LFRU the same as every other
// policy: privileged frames first (indices 0..P1-1), then unprivileged
// (P1..P1+P2-1). LFRU calls this after every Step; it plays no part in
// the eviction logic itself.
func (s *PolicyState) SyncLFRUTableForReporting() {
	if s.LFRU == nil {
		return
	}
	i := 0
	for _, f := range s.LFRU.Privileged.Frames {
		f.Index = i
		s.Table[i] = f
		i++
	}
	for _, f := range s.LFRU.Unprivileged.Frames {
		f.Index = i
		s.Table[i] = f
		i++
	}
}
