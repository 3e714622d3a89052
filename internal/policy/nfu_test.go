package policy

import "testing"

func TestNFU_HitIncrementsCountNeverDecayed(t *testing.T) {
	state := NFU.NewState(StateConfig{Frames: 2})
	ctx := &Context{Now: func() int64 { return 0 }}

	ctx.T = 0
	NFU.Step(state, 1, ctx)
	ctx.T = 1
	NFU.Step(state, 1, ctx)
	ctx.T = 2
	NFU.Step(state, 1, ctx)

	i, _ := hitScan(state.Table, 1)
	if state.Table[i].Extra != 2 {
		t.Fatalf("Extra = %d after two hits, want 2", state.Table[i].Extra)
	}
}

func TestNFU_EvictsSmallestCount(t *testing.T) {
	state := NFU.NewState(StateConfig{Frames: 2})
	ctx := &Context{Now: func() int64 { return 0 }}

	ctx.T = 0
	NFU.Step(state, 1, ctx)
	ctx.T = 1
	NFU.Step(state, 2, ctx)
	ctx.T = 2
	NFU.Step(state, 1, ctx) // page 1's count is now 1, page 2's is 0

	ctx.T = 3
	NFU.Step(state, 3, ctx)

	resident := state.ResidentPages()
	if _, ok := resident[2]; ok {
		t.Fatalf("page 2 (lowest count) should have been evicted, resident = %v", resident)
	}
}
