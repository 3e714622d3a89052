package policy

import "github.com/replayctl/pagesim/internal/cache"

// randomPolicy evicts a uniformly random resident frame. Its source of
// randomness is the engine-owned, seedable PRNG threaded through Context,
// so runs are reproducible given a fixed seed.
type randomPolicy struct{}

// Random is the RANDOM policy.
var Random Policy = randomPolicy{}

func (randomPolicy) Code() byte    { return 'R' }
func (randomPolicy) Label() string { return "RANDOM" }

func (randomPolicy) NewState(cfg StateConfig) *cache.PolicyState {
	return defaultNewState(cfg)
}

func (randomPolicy) Step(state *cache.PolicyState, page int, ctx *Context) Result {
	if i, ok := hitScan(state.Table, page); ok {
		state.Table[i].WallTime = ctx.Now()
		state.Table[i].Extra = int64(ctx.T)
		return Hit
	}

	if i, ok := emptyScan(state.Table); ok {
		state.Table[i] = cache.Frame{Index: i, Page: page, WallTime: ctx.Now(), Extra: int64(ctx.T)}
		return Fault
	}

	victim := ctx.RNG.Intn(len(state.Table))
	state.RecordVictim(state.Table[victim])
	state.Table[victim] = cache.Frame{Index: victim, Page: page, WallTime: ctx.Now(), Extra: int64(ctx.T)}
	return Fault
}
