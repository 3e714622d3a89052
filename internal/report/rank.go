package report

import (
	"github.com/replayctl/pagesim/internal/cache"
	"github.com/replayctl/pagesim/internal/sim"
)

// Rank returns the indices into results in descending-hit-ratio order,
// ties broken by declaration order (the order results already appears
// in). It never reorders results itself: spec.md §4.4 flags the source's
// sort-before-print as a bug because it shuffles "selected" markers away
// from the handle a caller may still be holding, so here the ranking is
// a separate view -- a permutation of indices -- rather than an in-place
// sort of the PolicyResult slice.
func Rank(results []sim.PolicyResult) []int {
	h := cache.New(func(a, b int) int {
		ra, rb := results[a].State.HitRatio(), results[b].State.HitRatio()
		switch {
		case ra > rb:
			return 1
		case ra < rb:
			return -1
		case a < b:
			return 1
		default:
			return -1
		}
	})

	for i := range results {
		h.Add(i)
	}

	order := make([]int, 0, len(results))
	for {
		i, ok := h.Pop()
		if !ok {
			break
		}
		order = append(order, i)
	}
	return order
}
