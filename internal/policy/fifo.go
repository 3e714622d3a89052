package policy

import "github.com/replayctl/pagesim/internal/cache"

// fifoPolicy evicts the resident frame with the oldest insertion tick.
// Grounded on the teacher's backend/store/pagedfile/eviction.LRUPolicy's
// doubly-linked-list technique, generalized here to an index-scan since
// spec.md §9 mandates a flat frame vector as the canonical representation.
type fifoPolicy struct{}

// FIFO is the FIFO policy.
var FIFO Policy = fifoPolicy{}

func (fifoPolicy) Code() byte    { return 'F' }
func (fifoPolicy) Label() string { return "FIFO" }

func (fifoPolicy) NewState(cfg StateConfig) *cache.PolicyState {
	return defaultNewState(cfg)
}

// Step never mutates metadata on a hit -- that is FIFO's defining
// property: insertion order, once recorded, is never disturbed by later
// accesses.
func (fifoPolicy) Step(state *cache.PolicyState, page int, ctx *Context) Result {
	if _, ok := hitScan(state.Table, page); ok {
		return Hit
	}

	if i, ok := emptyScan(state.Table); ok {
		state.Table[i] = cache.Frame{Index: i, Page: page, WallTime: ctx.Now(), Extra: int64(ctx.T)}
		return Fault
	}

	victim := 0
	for i := 1; i < len(state.Table); i++ {
		if state.Table[i].Extra < state.Table[victim].Extra {
			victim = i
		}
	}

	state.RecordVictim(state.Table[victim])
	state.Table[victim] = cache.Frame{Index: victim, Page: page, WallTime: ctx.Now(), Extra: int64(ctx.T)}
	return Fault
}
