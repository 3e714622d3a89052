package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/replayctl/pagesim/internal/workload"
)

var genCommand = &cli.Command{
	Name:  "gen",
	Usage: "generate a synthetic trace file",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "kind", Required: true, Usage: "sequential, locality, or zipf"},
		&cli.StringFlag{Name: "out", Required: true, Usage: "output trace file path"},
		&cli.IntFlag{Name: "length", Value: 100000, Usage: "number of references to generate"},
		&cli.IntFlag{Name: "pages", Usage: "address space size (defaults vary by kind)"},
		&cli.IntFlag{Name: "locality", Usage: "hot-set access percentage for locality kind (default 80)"},
		&cli.Float64Flag{Name: "skew", Usage: "Zipf skew parameter for zipf kind (default 1.5)"},
		&cli.Int64Flag{Name: "seed", Value: 1, Usage: "PRNG seed"},
	},
	Action: genAction,
}

func genAction(c *cli.Context) error {
	kind := workload.Kind(c.String("kind"))

	f, err := os.Create(c.String("out"))
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	err = workload.Generate(f, workload.Options{
		Kind:          kind,
		Length:        c.Int("length"),
		Pages:         c.Int("pages"),
		HotSetPercent: c.Int("locality"),
		Skew:          c.Float64("skew"),
		Seed:          c.Int64("seed"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("wrote %d references to %s\n", c.Int("length"), c.String("out"))
	return nil
}
