// Package policy implements the twelve reference-string replacement
// policies and the LFRU two-partition hybrid described by the
// specification, each as a pure function of its own PolicyState, the
// requested page, and a per-step Context.
package policy

import "github.com/replayctl/pagesim/internal/cache"

// Result is the outcome of a single policy Step: the requested page was
// either already resident (Hit) or had to be loaded (Fault), possibly by
// evicting a resident frame.
type Result int

const (
	Hit Result = iota
	Fault
)

func (r Result) String() string {
	if r == Hit {
		return "hit"
	}
	return "fault"
}

// StateConfig carries the sizing information a policy needs to allocate
// its PolicyState. Frames is the effective table size after any
// LFRU-driven adjustment (see internal/sim.Validate); Privileged and
// Unprivileged are only meaningful for LFRU.
type StateConfig struct {
	Frames       int
	Privileged   int
	Unprivileged int
}

// Policy is the per-reference decision procedure shared by every
// replacement algorithm: a pure function of its own PolicyState, the
// requested page, and the step Context, returning Hit or Fault and
// mutating the PolicyState in place (updating Table metadata and, on
// eviction, appending to VictimLog).
//
// Policies never touch Hits/Misses themselves -- the engine accounts them
// from the returned Result.
type Policy interface {
	// Code is the one-character algorithm code from the invocation
	// surface (spec.md §6): O, R, F, L, C, N, A, M, n, m, l, f.
	Code() byte

	// Label is the human-readable name used in Reporter output.
	Label() string

	// NewState allocates this policy's PolicyState.
	NewState(cfg StateConfig) *cache.PolicyState

	// Step processes one reference against state, returning Hit or Fault.
	Step(state *cache.PolicyState, page int, ctx *Context) Result
}

// defaultNewState is the allocation shared by every policy except LFRU.
func defaultNewState(cfg StateConfig) *cache.PolicyState {
	return cache.NewPolicyState(cfg.Frames)
}

// hitScan locates the frame holding page, if resident.
func hitScan(table []cache.Frame, page int) (int, bool) {
	for i := range table {
		if !table[i].IsEmpty() && table[i].Page == page {
			return i, true
		}
	}
	return -1, false
}

// emptyScan locates the lowest-indexed empty frame, if any.
func emptyScan(table []cache.Frame) (int, bool) {
	for i := range table {
		if table[i].IsEmpty() {
			return i, true
		}
	}
	return -1, false
}
