package policy

import "testing"

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	state := LRU.NewState(StateConfig{Frames: 2})
	ctx := &Context{Now: func() int64 { return 0 }}

	for i, page := range []int{1, 2} {
		ctx.T = i
		LRU.Step(state, page, ctx)
	}
	ctx.T = 2
	LRU.Step(state, 1, ctx) // touch 1, making 2 the LRU victim

	ctx.T = 3
	LRU.Step(state, 3, ctx)

	resident := state.ResidentPages()
	if _, ok := resident[2]; ok {
		t.Fatalf("page 2 should have been evicted as least recently used, resident = %v", resident)
	}
	if _, ok := resident[1]; !ok {
		t.Fatalf("page 1 should remain resident, resident = %v", resident)
	}
}

func TestNRU_MatchesLRUExactly(t *testing.T) {
	run := func(p Policy) []Result {
		state := p.NewState(StateConfig{Frames: 2})
		ctx := &Context{Now: func() int64 { return 0 }}
		var results []Result
		for i, page := range []int{1, 2, 1, 3, 2, 1} {
			ctx.T = i
			results = append(results, p.Step(state, page, ctx))
		}
		return results
	}

	lruResults := run(LRU)
	nruResults := run(NRU)
	for i := range lruResults {
		if lruResults[i] != nruResults[i] {
			t.Fatalf("NRU diverged from LRU at step %d: LRU=%s NRU=%s", i, lruResults[i], nruResults[i])
		}
	}
}

func TestMRU_EvictsMostRecentlyUsed(t *testing.T) {
	state := MRU.NewState(StateConfig{Frames: 2})
	ctx := &Context{Now: func() int64 { return 0 }}

	for i, page := range []int{1, 2} {
		ctx.T = i
		MRU.Step(state, page, ctx)
	}
	ctx.T = 2
	MRU.Step(state, 1, ctx) // touch 1, making it the MRU victim

	ctx.T = 3
	MRU.Step(state, 3, ctx)

	resident := state.ResidentPages()
	if _, ok := resident[1]; ok {
		t.Fatalf("page 1 should have been evicted as most recently used, resident = %v", resident)
	}
	if _, ok := resident[2]; !ok {
		t.Fatalf("page 2 should remain resident, resident = %v", resident)
	}
}
