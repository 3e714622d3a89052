package policy

import "github.com/replayctl/pagesim/internal/cache"

// nfuPolicy implements not-frequently-used replacement: Extra counts
// hits since insertion, never decayed, and the smallest count is evicted.
type nfuPolicy struct{}

// NFU is the NFU policy.
var NFU Policy = nfuPolicy{}

func (nfuPolicy) Code() byte    { return 'N' }
func (nfuPolicy) Label() string { return "NFU" }

func (nfuPolicy) NewState(cfg StateConfig) *cache.PolicyState {
	return defaultNewState(cfg)
}

func (nfuPolicy) Step(state *cache.PolicyState, page int, ctx *Context) Result {
	if i, ok := hitScan(state.Table, page); ok {
		state.Table[i].Extra++
		state.Table[i].WallTime = ctx.Now()
		return Hit
	}

	if i, ok := emptyScan(state.Table); ok {
		state.Table[i] = cache.Frame{Index: i, Page: page, Extra: 0, WallTime: ctx.Now()}
		return Fault
	}

	victim := 0
	for i := 1; i < len(state.Table); i++ {
		if state.Table[i].Extra < state.Table[victim].Extra {
			victim = i
		}
	}

	state.RecordVictim(state.Table[victim])
	state.Table[victim] = cache.Frame{Index: victim, Page: page, Extra: 0, WallTime: ctx.Now()}
	return Fault
}
