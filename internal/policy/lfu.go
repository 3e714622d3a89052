package policy

import "github.com/replayctl/pagesim/internal/cache"

// lfuPolicy evicts the resident frame with the smallest hit frequency,
// breaking ties in favor of the older (smaller LastUsed) frame.
type lfuPolicy struct{}

// LFU is the LFU policy.
var LFU Policy = lfuPolicy{}

func (lfuPolicy) Code() byte    { return 'l' }
func (lfuPolicy) Label() string { return "LFU" }

func (lfuPolicy) NewState(cfg StateConfig) *cache.PolicyState {
	return defaultNewState(cfg)
}

func (lfuPolicy) Step(state *cache.PolicyState, page int, ctx *Context) Result {
	if i, ok := hitScan(state.Table, page); ok {
		state.Table[i].Frequency++
		state.Table[i].LastUsed = ctx.Tick()
		return Hit
	}

	if i, ok := emptyScan(state.Table); ok {
		state.Table[i] = cache.Frame{Index: i, Page: page, Frequency: 1, LastUsed: ctx.Tick()}
		return Fault
	}

	victim := 0
	for i := 1; i < len(state.Table); i++ {
		cur, best := state.Table[i], state.Table[victim]
		if cur.Frequency < best.Frequency ||
			(cur.Frequency == best.Frequency && cur.LastUsed < best.LastUsed) {
			victim = i
		}
	}

	state.RecordVictim(state.Table[victim])
	state.Table[victim] = cache.Frame{Index: victim, Page: page, Frequency: 1, LastUsed: ctx.Tick()}
	return Fault
}
