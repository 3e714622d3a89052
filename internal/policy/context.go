package policy

import "math/rand"

// TraceView is the read-only, random-access view of the reference stream
// a Context exposes to policies. OPTIMAL is the only policy that consults
// it directly (via NextUse); every other policy only sees the current
// page, per spec.md §4.1.
type TraceView interface {
	PageAt(i int) (int, bool)
	Len() int
}

// Context bundles everything a Step call needs beyond its own
// PolicyState: the current reference counter, the shared PRNG, the
// monotonic logical tick source, and (for OPTIMAL) the precomputed
// next-use index.
type Context struct {
	// T is the zero-based reference counter of the current step.
	T int

	// Trace is the full reference stream; OPTIMAL uses it (via NextUse)
	// to look into the future. Never mutated.
	Trace TraceView

	// NextUse is nil unless the engine is running OPTIMAL.
	NextUse *NextUseIndex

	// RNG is the engine-owned PRNG RANDOM reads and advances. No other
	// policy touches it.
	RNG *rand.Rand

	// Tick returns the next value of the global monotonic logical
	// counter (spec.md §3's tick()), used by LFU and LFRU.
	Tick func() int64

	// Now returns the wall-clock timestamp written to Frame.WallTime for
	// display purposes. Injectable so tests are deterministic.
	Now func() int64
}
