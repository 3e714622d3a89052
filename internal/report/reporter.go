// Package report renders per-policy results (spec.md §4.5) and persists
// run summaries to an embedded run-history archive.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/replayctl/pagesim/internal/cache"
	"github.com/replayctl/pagesim/internal/sim"
)

// Reporter renders sim.Engine.Run results. It holds no state of its own;
// every method is a pure function of its arguments.
type Reporter struct{}

// New creates a Reporter.
func New() *Reporter {
	return &Reporter{}
}

// Summary writes one row per policy result: label, frame count, hits,
// misses, hit ratio to six decimal places, and accumulated step time in
// seconds to six decimal places. Rows are ordered by descending hit
// ratio (ties broken by declaration order), per spec.md §4.4 -- ranking
// is computed by Rank and never mutates the input slice, so the caller's
// own view of "which PolicyResult is which policy" is never disturbed by
// printing.
func (Reporter) Summary(w io.Writer, results []sim.PolicyResult) {
	order := Rank(results)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"policy", "frames", "hits", "misses", "hit ratio", "exec time (s)"})
	table.SetAutoFormatHeaders(false)

	for _, i := range order {
		pr := results[i]
		table.Append([]string{
			pr.Policy.Label(),
			strconv.Itoa(len(pr.State.Table)),
			strconv.Itoa(pr.State.Hits),
			strconv.Itoa(pr.State.Misses),
			fmt.Sprintf("%.6f", pr.State.HitRatio()),
			fmt.Sprintf("%.6f", float64(pr.State.ExecTimeNanos)/1e9),
		})
	}
	table.Render()
}

// snapshotWallTimeModulus keeps the wall-time column readable: spec.md
// §4.5 calls for "wall-time-mod-large-constant" display, not the raw
// nanosecond epoch value.
const snapshotWallTimeModulus = 1_000_000

// Snapshot renders one policy's page table as a four-row grid: index,
// page-or-underscore, extra, and wall-time-mod-large-constant, one
// column per frame.
func (Reporter) Snapshot(w io.Writer, pr sim.PolicyResult) {
	table := tablewriter.NewWriter(w)

	headers := make([]string, len(pr.State.Table))
	indexRow := make([]string, len(pr.State.Table))
	pageRow := make([]string, len(pr.State.Table))
	extraRow := make([]string, len(pr.State.Table))
	wallRow := make([]string, len(pr.State.Table))

	for i, f := range pr.State.Table {
		headers[i] = fmt.Sprintf("f%d", i)
		indexRow[i] = strconv.Itoa(f.Index)
		if f.IsEmpty() {
			pageRow[i] = "_"
		} else {
			pageRow[i] = strconv.Itoa(f.Page)
		}
		extraRow[i] = strconv.FormatInt(f.Extra, 10)
		wallRow[i] = strconv.FormatInt(f.WallTime%snapshotWallTimeModulus, 10)
	}

	table.SetHeader(headers)
	table.Append(indexRow)
	table.Append(pageRow)
	table.Append(extraRow)
	table.Append(wallRow)
	table.Render()

	fmt.Fprintf(w, "resident pages: %v\n", resident(pr.State))
}

// resident is a small helper Snapshot callers occasionally want alongside
// the raw table: the set of pages currently in cache, sorted for
// deterministic display.
func resident(state *cache.PolicyState) []int {
	set := state.ResidentPages()
	pages := make([]int, 0, len(set))
	for p := range set {
		pages = append(pages, p)
	}
	for i := 1; i < len(pages); i++ {
		for j := i; j > 0 && pages[j-1] > pages[j]; j-- {
			pages[j-1], pages[j] = pages[j], pages[j-1]
		}
	}
	return pages
}
