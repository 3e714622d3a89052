package policy

import "github.com/replayctl/pagesim/internal/cache"

// agingHighBit is the most significant bit of the 8-bit aging register
// (see DESIGN.md's Open Question decision #1: the shift-register form is
// used instead of the source's large decimal constant).
const agingHighBit = 1 << 7

// agingRegisterMask keeps Extra within an 8-bit register width.
const agingRegisterMask = 0xFF

// agingPolicy ages every resident frame's register down by one bit before
// processing each reference, then sets the high bit on a hit. The
// smallest register value is evicted.
type agingPolicy struct{}

// Aging is the AGING policy.
var Aging Policy = agingPolicy{}

func (agingPolicy) Code() byte    { return 'A' }
func (agingPolicy) Label() string { return "AGING" }

func (agingPolicy) NewState(cfg StateConfig) *cache.PolicyState {
	return defaultNewState(cfg)
}

func (agingPolicy) Step(state *cache.PolicyState, page int, ctx *Context) Result {
	for i := range state.Table {
		if !state.Table[i].IsEmpty() {
			state.Table[i].Extra = (state.Table[i].Extra >> 1) & agingRegisterMask
		}
	}

	if i, ok := hitScan(state.Table, page); ok {
		state.Table[i].Extra = (state.Table[i].Extra + agingHighBit) & agingRegisterMask
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
