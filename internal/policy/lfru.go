package policy

import "github.com/replayctl/pagesim/internal/cache"

// lfruPolicy implements the LFRU two-partition hybrid described in
// spec.md §4.3: an LRU-managed "privileged" partition backed by an
// LFU-managed "unprivileged" partition, with promotion on a bottom-tier
// hit and demotion to make room in the top tier.
type lfruPolicy struct{}

// LFRU is the LFRU policy.
var LFRU Policy = lfruPolicy{}

func (lfruPolicy) Code() byte    { return 'f' }
func (lfruPolicy) Label() string { return "LFRU" }

func (lfruPolicy) NewState(cfg StateConfig) *cache.PolicyState {
	return cache.NewLFRUPolicyState(cfg.Privileged, cfg.Unprivileged)
}

func (lfruPolicy) Step(state *cache.PolicyState, page int, ctx *Context) Result {
	result := lfruStep(state, page, ctx)
	state.SyncLFRUTableForReporting()
	return result
}

func lfruStep(state *cache.PolicyState, page int, ctx *Context) Result {
	pp := state.LFRU
	priv, unpriv := pp.Privileged, pp.Unprivileged

	// 1. Top-tier hit.
	if i, ok := priv.IndexOf(page); ok {
		priv.Frames[i].LastUsed = ctx.Tick()
		return Hit
	}

	// 2. Bottom-tier hit: promote.
	if i, ok := unpriv.IndexOf(page); ok {
		removed := unpriv.Frames[i]
		unpriv.Frames[i] = cache.Frame{Index: removed.Index, Page: cache.Empty}

		if !priv.HasSpace() {
			demoteLRUVictim(state, ctx)
		}

		slot, _ := priv.EmptySlot()
		priv.Frames[slot] = cache.Frame{
			Index:     slot,
			Page:      page,
			Frequency: 1,
			LastUsed:  ctx.Tick(),
		}
		return Hit
	}

	// 3. Miss.
	if priv.HasSpace() {
		slot, _ := priv.EmptySlot()
		priv.Frames[slot] = cache.Frame{
			Index:     slot,
			Page:      page,
			Frequency: 1,
			LastUsed:  ctx.Tick(),
		}
		return Fault
	}

	demoteLRUVictim(state, ctx)
	slot, _ := priv.EmptySlot()
	priv.Frames[slot] = cache.Frame{
		Index:     slot,
		Page:      page,
		Frequency: 1,
		LastUsed:  ctx.Tick(),
	}
	return Fault
}

// demoteLRUVictim evicts the LRU victim of the privileged partition and
// moves it into the unprivileged partition, itself evicting the LFU
// victim of the unprivileged partition first if that partition is full.
// The privileged partition is left with exactly one free slot on return.
func demoteLRUVictim(state *cache.PolicyState, ctx *Context) {
	pp := state.LFRU
	priv, unpriv := pp.Privileged, pp.Unprivileged

	victimIdx := 0
	for i := 1; i < len(priv.Frames); i++ {
		if priv.Frames[i].LastUsed < priv.Frames[victimIdx].LastUsed {
			victimIdx = i
		}
	}
	demoted := priv.Frames[victimIdx]
	priv.Frames[victimIdx] = cache.Frame{Index: victimIdx, Page: cache.Empty}

	if !unpriv.HasSpace() {
		evictLFUVictim(state, unpriv)
	}

	slot, _ := unpriv.EmptySlot()
	unpriv.Frames[slot] = cache.Frame{
		Index:     slot,
		Page:      demoted.Page,
		Frequency: 1,
		LastUsed:  ctx.Tick(),
	}
}

// evictLFUVictim permanently removes the LFU victim (smallest frequency,
// tie-broken by smallest LastUsed) from an unprivileged partition that is
// full. This is the only place an LFRU page actually leaves the cache, so
// it is the only place that appends to the victim log.
func evictLFUVictim(state *cache.PolicyState, p *cache.Partition) {
	victimIdx := 0
	for i := 1; i < len(p.Frames); i++ {
		cur, best := p.Frames[i], p.Frames[victimIdx]
		if cur.Frequency < best.Frequency ||
			(cur.Frequency == best.Frequency && cur.LastUsed < best.LastUsed) {
			victimIdx = i
		}
	}
	state.RecordVictim(p.Frames[victimIdx])
	p.Frames[victimIdx] = cache.Frame{Index: victimIdx, Page: cache.Empty}
}
