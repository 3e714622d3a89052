package policy

import "github.com/replayctl/pagesim/internal/cache"

// clockPolicy implements second-chance / CLOCK replacement. The sweep
// cursor (Hand) lives inside the PolicyState, not a package or engine
// global, so two runs never leak state into each other (a fix relative to
// the source's process-global hand, per spec.md §9).
type clockPolicy struct{}

// Clock is the CLOCK policy.
var Clock Policy = clockPolicy{}

func (clockPolicy) Code() byte    { return 'C' }
func (clockPolicy) Label() string { return "CLOCK" }

func (clockPolicy) NewState(cfg StateConfig) *cache.PolicyState {
	return defaultNewState(cfg)
}

func (clockPolicy) Step(state *cache.PolicyState, page int, ctx *Context) Result {
	if i, ok := hitScan(state.Table, page); ok {
		state.Table[i].Extra = 1
		return Hit
	}

	if i, ok := emptyScan(state.Table); ok {
		state.Table[i] = cache.Frame{Index: i, Page: page, Extra: 1, WallTime: ctx.Now()}
		return Fault
	}

	n := len(state.Table)
	for {
		f := &state.Table[state.Hand]
		if f.Extra == 0 {
			victim := f.Index
			state.RecordVictim(*f)
			state.Table[victim] = cache.Frame{Index: victim, Page: page, Extra: 1, WallTime: ctx.Now()}
			state.Hand = (state.Hand + 1) % n
			return Fault
		}
		f.Extra = 0
		state.Hand = (state.Hand + 1) % n
	}
}
