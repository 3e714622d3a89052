package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/replayctl/pagesim/internal/report"
)

var historyCommand = &cli.Command{
	Name:  "history",
	Usage: "list past pagesim run invocations",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "db", Value: defaultHistoryDir(), Usage: "run-history archive directory"},
		&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum number of runs to show (0 = no limit)"},
	},
	Action: historyAction,
}

func historyAction(c *cli.Context) error {
	h, err := report.OpenHistory(c.String("db"))
	if err != nil {
		return err
	}
	defer h.Close()

	records, err := h.List(c.Int("limit"))
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	for _, r := range records {
		fmt.Printf("run %d  %s  trace=%s frames=%d\n", r.ID, r.Timestamp.Format("2006-01-02 15:04:05"), r.TracePath, r.Frames)
		for label, ratio := range r.HitRatios {
			fmt.Printf("    %-8s hit ratio %.6f\n", label, ratio)
		}
	}
	return nil
}
