package sim

import (
	"context"
	"math/rand"
	"time"

	"github.com/replayctl/pagesim/internal/cache"
	"github.com/replayctl/pagesim/internal/policy"
	"github.com/replayctl/pagesim/internal/telemetry"
	"github.com/replayctl/pagesim/internal/trace"
)

// PolicyResult bundles one selected policy with the PolicyState the
// engine drove it against, ready for internal/report to rank and render.
type PolicyResult struct {
	Policy policy.Policy
	State  *cache.PolicyState
}

// Result is everything a completed (or cancelled) Engine.Run produced:
// one PolicyResult per selected policy, plus the number of references
// actually processed (which may be less than the trace length if the
// context was cancelled or MaxCalls was reached first).
type Result struct {
	Policies  []PolicyResult
	Processed int
	Cancelled bool
}

// SnapshotSink receives one page-table snapshot per selected policy after
// every reference the engine processes, when the caller has enabled
// per-reference tracing (spec.md §4.4 step (d), the --show-process flag).
// Run calls Snapshot from inside its hot loop, so implementations must be
// cheap. internal/report can't be imported here (it already imports sim
// to render a Result), so this interface is how cmd/pagesim wires
// Reporter.Snapshot into the engine without an import cycle.
type SnapshotSink interface {
	Snapshot(t int, pr PolicyResult)
}

// Engine drives a Trace against every policy named by a Resolved
// configuration, one reference at a time, per spec.md §4.4.
type Engine struct {
	resolved  *Resolved
	trace     *trace.Trace
	log       *telemetry.Log
	snapshots SnapshotSink
}

// New builds an Engine for one run. log may be nil, in which case
// AdjustedConfiguration warnings and periodic hit-ratio reports are
// discarded. snapshots may be nil, in which case no per-reference
// snapshots are emitted even if ShowProcess is set.
func New(resolved *Resolved, tr *trace.Trace, log *telemetry.Log, snapshots SnapshotSink) *Engine {
	return &Engine{resolved: resolved, trace: tr, log: log, snapshots: snapshots}
}

// Run processes the trace against every selected policy in fixed
// declaration order, honoring ctx cancellation at reference boundaries
// only -- never inside a policy's Step. A cancelled run is not an error:
// Result.Cancelled is set and whatever was accumulated so far is
// returned.
func (e *Engine) Run(ctx context.Context) *Result {
	for _, adj := range e.resolved.Adjustments {
		if e.log != nil {
			e.log.Print(adj.Message)
		}
	}

	states := make(map[byte]*cache.PolicyState, len(e.resolved.Policies))
	stateCfg := policy.StateConfig{
		Frames:       e.resolved.Frames,
		Privileged:   e.resolved.Privileged,
		Unprivileged: e.resolved.Unprivileged,
	}
	for _, p := range e.resolved.Policies {
		states[p.Code()] = p.NewState(stateCfg)
	}

	tick := &tickSource{}
	rng := rand.New(rand.NewSource(e.resolved.Seed))

	var nextUse *policy.NextUseIndex
	for _, p := range e.resolved.Policies {
		if p.Code() == policy.Optimal.Code() {
			nextUse = policy.BuildNextUseIndex(e.trace)
			break
		}
	}

	pctx := &policy.Context{
		Trace:   e.trace,
		NextUse: nextUse,
		RNG:     rng,
		Tick:    tick.tick,
		Now:     func() int64 { return time.Now().UnixNano() },
	}

	var tracker *telemetry.ReferenceTracker
	if e.log != nil && e.resolved.ShowProcess {
		tracker = e.log.NewReferenceTracker(e.resolved.Policies, states, 1000)
	}

	limit := e.trace.Len()
	if e.resolved.MaxCalls > 0 && e.resolved.MaxCalls < limit {
		limit = e.resolved.MaxCalls
	}

	cancelled := false
	processed := 0

	for t := 0; t < limit; t++ {
		select {
		case <-ctx.Done():
			cancelled = true
		default:
		}
		if cancelled {
			break
		}

		page, ok := e.trace.PageAt(t)
		if !ok {
			break
		}

		pctx.T = t

		for _, p := range e.resolved.Policies {
			state := states[p.Code()]

			start := time.Now()
			result := p.Step(state, page, pctx)
			state.ExecTimeNanos += time.Since(start).Nanoseconds()

			if result == policy.Hit {
				state.Hits++
			} else {
				state.Misses++
			}

			if e.snapshots != nil && e.resolved.ShowProcess {
				e.snapshots.Snapshot(t, PolicyResult{Policy: p, State: state})
			}
		}

		processed++
		if tracker != nil {
			tracker.Advance()
		}
	}

	results := make([]PolicyResult, 0, len(e.resolved.Policies))
	for _, p := range e.resolved.Policies {
		results = append(results, PolicyResult{Policy: p, State: states[p.Code()]})
	}

	return &Result{Policies: results, Processed: processed, Cancelled: cancelled}
}
