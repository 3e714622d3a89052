package policy

import "testing"

func TestAging_HitSetsHighBit(t *testing.T) {
	state := Aging.NewState(StateConfig{Frames: 2})
	ctx := &Context{Now: func() int64 { return 0 }}

	ctx.T = 0
	Aging.Step(state, 1, ctx) // insertion is a fault: Extra starts at 0
	ctx.T = 1
	Aging.Step(state, 1, ctx) // hit: shift (0>>1=0), then set the high bit

	i, _ := hitScan(state.Table, 1)
	if state.Table[i].Extra != agingHighBit {
		t.Fatalf("Extra = %#x after a hit, want %#x", state.Table[i].Extra, agingHighBit)
	}
}

func TestAging_RegisterDecaysWhenNotReferenced(t *testing.T) {
	state := Aging.NewState(StateConfig{Frames: 2})
	ctx := &Context{Now: func() int64 { return 0 }}

	ctx.T = 0
	Aging.Step(state, 1, ctx) // insert page 1, Extra=0
	ctx.T = 1
	Aging.Step(state, 1, ctx) // hit sets Extra=0x80
	ctx.T = 2
	Aging.Step(state, 2, ctx) // page 1 ages once (shift before the reference is processed)

	i, _ := hitScan(state.Table, 1)
	if state.Table[i].Extra != agingHighBit>>1 {
		t.Fatalf("page 1's register = %#x after one unreferenced step, want %#x", state.Table[i].Extra, agingHighBit>>1)
	}
}

func TestAging_EvictsSmallestRegister(t *testing.T) {
	state := Aging.NewState(StateConfig{Frames: 2})
	ctx := &Context{Now: func() int64 { return 0 }}

	ctx.T = 0
	Aging.Step(state, 1, ctx) // page 1 register: 0000 0000
	ctx.T = 1
	Aging.Step(state, 1, ctx) // hit: 1000 0000
	ctx.T = 2
	Aging.Step(state, 2, ctx) // page 1 ages to 0100 0000; page 2 inserted at 0000 0000
	ctx.T = 3
	Aging.Step(state, 1, ctx) // both age, then page 1's hit sets its high bit: page 1 = 1010 0000, page 2 = 0000 0000
	ctx.T = 4
	Aging.Step(state, 3, ctx) // both age once more (page 1 = 0101 0000, page 2 = 0000 0000); page 2 evicted

	resident := state.ResidentPages()
	if _, ok := resident[2]; ok {
		t.Fatalf("page 2 (smallest register) should have been evicted, resident = %v", resident)
	}
	if _, ok := resident[1]; !ok {
		t.Fatalf("page 1 should remain resident, resident = %v", resident)
	}
}
