package policy

import "github.com/replayctl/pagesim/internal/cache"

// mfuPolicy evicts the resident frame with the largest hit count.
type mfuPolicy struct{}

// MFU is the MFU policy.
var MFU Policy = mfuPolicy{}

func (mfuPolicy) Code() byte    { return 'm' }
func (mfuPolicy) Label() string { return "MFU" }

func (mfuPolicy) NewState(cfg StateConfig) *cache.PolicyState {
	return defaultNewState(cfg)
}

func (mfuPolicy) Step(state *cache.PolicyState, page int, ctx *Context) Result {
	if i, ok := hitScan(state.Table, page); ok {
		state.Table[i].Extra++
		state.Table[i].WallTime = ctx.Now()
		return Hit
	}

	if i, ok := emptyScan(state.Table); ok {
		state.Table[i] = cache.Frame{Index: i, Page: page, Extra: 1, WallTime: ctx.Now()}
		return Fault
	}

	victim := 0
	for i := 1; i < len(state.Table); i++ {
		if state.Table[i].Extra > state.Table[victim].Extra {
			victim = i
		}
	}

	state.RecordVictim(state.Table[victim])
	state.Table[victim] = cache.Frame{Index: victim, Page: page, Extra: 1, WallTime: ctx.Now()}
	return Fault
}
