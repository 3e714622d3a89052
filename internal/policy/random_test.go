package policy

import (
	"math/rand"
	"testing"
)

func TestRandom_FillsEmptyFramesBeforeEvicting(t *testing.T) {
	state := Random.NewState(StateConfig{Frames: 3})
	ctx := &Context{Now: func() int64 { return 0 }, RNG: rand.New(rand.NewSource(1))}

	for i, page := range []int{1, 2, 3} {
		ctx.T = i
		if result := Random.Step(state, page, ctx); result != Fault {
			t.Fatalf("reference %d: expected fault filling an empty frame, got %s", i, result)
		}
	}
	if len(state.VictimLog) != 0 {
		t.Fatalf("filling empty frames should never evict, got victim log %+v", state.VictimLog)
	}
}

func TestRandom_IsDeterministicForAFixedSeed(t *testing.T) {
	run := func(seed int64) []Result {
		state := Random.NewState(StateConfig{Frames: 2})
		ctx := &Context{Now: func() int64 { return 0 }, RNG: rand.New(rand.NewSource(seed))}
		var results []Result
		for i, page := range []int{1, 2, 3, 4, 1, 2} {
			ctx.T = i
			results = append(results, Random.Step(state, page, ctx))
		}
		return results
	}

	a := run(99)
	b := run(99)
	if len(a) != len(b) {
		t.Fatalf("mismatched lengths")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different result at step %d: %s vs %s", i, a[i], b[i])
		}
	}
}
