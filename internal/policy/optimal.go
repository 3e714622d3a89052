package policy

import "github.com/replayctl/pagesim/internal/cache"

// optimalPolicy implements Belady's optimal (clairvoyant) replacement: on
// eviction it evicts the resident page whose next use lies furthest in
// the future (or never again).
type optimalPolicy struct{}

// Optimal is the OPTIMAL policy.
var Optimal Policy = optimalPolicy{}

func (optimalPolicy) Code() byte    { return 'O' }
func (optimalPolicy) Label() string { return "OPTIMAL" }

func (optimalPolicy) NewState(cfg StateConfig) *cache.PolicyState {
	return defaultNewState(cfg)
}

func (optimalPolicy) Step(state *cache.PolicyState, page int, ctx *Context) Result {
	if i, ok := hitScan(state.Table, page); ok {
		state.Table[i].WallTime = ctx.Now()
		state.Table[i].Extra = int64(ctx.T)
		return Hit
	}

	if i, ok := emptyScan(state.Table); ok {
		state.Table[i] = cache.Frame{Index: i, Page: page, WallTime: ctx.Now(), Extra: int64(ctx.T)}
		return Fault
	}

	victim, worst := 0, int64(-1)
	for i := range state.Table {
		nextUse := ctx.NextUse.NextUse(state.Table[i].Page, ctx.T)
		if nextUse > worst {
			worst = nextUse
			victim = i
		}
	}

	state.RecordVictim(state.Table[victim])
	state.Table[victim] = cache.Frame{Index: victim, Page: page, WallTime: ctx.Now(), Extra: int64(ctx.T)}
	return Fault
}
