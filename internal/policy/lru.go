package policy

import "github.com/replayctl/pagesim/internal/cache"

// lruPolicy evicts the least recently touched resident frame. Ordering is
// carried by Extra (the logical reference-counter value at last touch),
// not by WallTime: spec.md §9 requires the logical counter for
// determinism, reserving WallTime for human-readable snapshots only (see
// DESIGN.md's FIFO tie-break decision, which applies equally here).
type lruPolicy struct {
	code  byte
	label string
	// mostRecent, when true, evicts the *largest* Extra instead of the
	// smallest, turning this same scan into MRU. NRU is the plain LRU
	// case wearing a different label, per spec.md §4.2.
	mostRecent bool
}

// LRU is the LRU policy.
var LRU Policy = &lruPolicy{code: 'L', label: "LRU"}

// NRU is specified to behave identically to LRU; a true reference/modify
// bit NRU is an explicit non-goal.
var NRU Policy = &lruPolicy{code: 'n', label: "NRU"}

// MRU shares LRU's touch bookkeeping but evicts the *most* recently used
// frame instead of the least.
var MRU Policy = &lruPolicy{code: 'M', label: "MRU", mostRecent: true}

func (p *lruPolicy) Code() byte    { return p.code }
func (p *lruPolicy) Label() string { return p.label }

func (p *lruPolicy) NewState(cfg StateConfig) *cache.PolicyState {
	return defaultNewState(cfg)
}

func (p *lruPolicy) Step(state *cache.PolicyState, page int, ctx *Context) Result {
	if i, ok := hitScan(state.Table, page); ok {
		state.Table[i].WallTime = ctx.Now()
		state.Table[i].Extra = int64(ctx.T)
		return Hit
	}

	if i, ok := emptyScan(state.Table); ok {
		state.Table[i] = cache.Frame{Index: i, Page: page, WallTime: ctx.Now(), Extra: int64(ctx.T)}
		return Fault
	}

	victim := 0
	for i := 1; i < len(state.Table); i++ {
		if p.mostRecent {
			if state.Table[i].Extra > state.Table[victim].Extra {
				victim = i
			}
		} else {
			if state.Table[i].Extra < state.Table[victim].Extra {
				victim = i
			}
		}
	}

	state.RecordVictim(state.Table[victim])
	state.Table[victim] = cache.Frame{Index: victim, Page: page, WallTime: ctx.Now(), Extra: int64(ctx.T)}
	return Fault
}
