package policy

import "math"

// Infinite represents "this page is never referenced again" for the
// purposes of OPTIMAL's victim rule.
const Infinite = math.MaxInt64

// NextUseIndex amortises OPTIMAL's lookahead as permitted by spec.md §5:
// instead of rescanning the trace suffix from scratch on every reference
// (O(F·N_remaining) worst case), it precomputes, once per Engine.Run, the
// sorted list of future occurrences of every page, then answers each
// "when is this page used next" query in amortised O(1) via a
// monotonically advancing per-page cursor.
type NextUseIndex struct {
	occurrences map[int][]int
	cursor      map[int]int
}

// BuildNextUseIndex scans trace once and records, for every page, the
// sorted list of indices at which it occurs.
func BuildNextUseIndex(trace TraceView) *NextUseIndex {
	idx := &NextUseIndex{
		occurrences: make(map[int][]int),
		cursor:      make(map[int]int),
	}
	for i := 0; i < trace.Len(); i++ {
		page, ok := trace.PageAt(i)
		if !ok {
			break
		}
		idx.occurrences[page] = append(idx.occurrences[page], i)
	}
	return idx
}

// NextUse returns the smallest index strictly greater than afterT at
// which page occurs, or Infinite if it never occurs again. Successive
// calls must be made with non-decreasing afterT for the same page (which
// the engine's single forward pass guarantees): the internal cursor only
// ever advances.
func (idx *NextUseIndex) NextUse(page, afterT int) int64 {
	occ := idx.occurrences[page]
	c := idx.cursor[page]
	for c < len(occ) && occ[c] <= afterT {
		c++
	}
	idx.cursor[page] = c
	if c >= len(occ) {
		return Infinite
	}
	return int64(occ[c])
}
