package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/urfave/cli/v2"

	"github.com/replayctl/pagesim/internal/report"
	"github.com/replayctl/pagesim/internal/sim"
	"github.com/replayctl/pagesim/internal/telemetry"
	"github.com/replayctl/pagesim/internal/trace"
)

var runCommand = &cli.Command{
	Name:  "run",
	Usage: "run one or more replacement policies against a trace file",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "trace", Required: true, Usage: "path to a trace file"},
		&cli.StringFlag{Name: "algo", Value: "a", Usage: "algorithm code, or 'a' for all"},
		&cli.IntFlag{Name: "frames", Value: 4, Usage: "cache frame count"},
		&cli.IntFlag{Name: "privileged", Value: sim.DefaultPrivilegedPartitionSize, Usage: "LFRU privileged partition size"},
		&cli.IntFlag{Name: "unprivileged", Value: sim.DefaultUnprivilegedPartitionSize, Usage: "LFRU unprivileged partition size"},
		&cli.Int64Flag{Name: "seed", Value: 1, Usage: "PRNG seed for RANDOM"},
		&cli.IntFlag{Name: "max-calls", Usage: "cap on references processed (0 = whole trace)"},
		&cli.BoolFlag{Name: "show-process", Usage: "print a page-table snapshot after each reference"},
		&cli.BoolFlag{Name: "debug", Usage: "verbose diagnostics, no semantic effect"},
		&cli.StringFlag{Name: "cpu-profile", Usage: "write a pprof CPU profile to this path"},
		&cli.StringFlag{Name: "db", Value: defaultHistoryDir(), Usage: "run-history archive directory"},
		&cli.BoolFlag{Name: "no-history", Usage: "skip recording this run in the history archive"},
	},
	Action: runAction,
}

func runAction(c *cli.Context) error {
	if profilePath := c.String("cpu-profile"); profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			return fmt.Errorf("%w: creating cpu profile %s: %v", sim.ErrIO, profilePath, err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("starting cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	tracePath := c.String("trace")
	tr, err := trace.Load(tracePath)
	if err != nil && !errors.Is(err, trace.ErrPartial) {
		return fmt.Errorf("%w: %v", sim.ErrIO, err)
	}
	log := telemetry.NewLog()
	if errors.Is(err, trace.ErrPartial) {
		log.Printf("warning: %v", err)
	}

	algoFlag := c.String("algo")
	if algoFlag == "" {
		return fmt.Errorf("%w: --algo is required", sim.ErrConfig)
	}

	resolved, err := sim.Validate(sim.Config{
		Frames:       c.Int("frames"),
		Privileged:   c.Int("privileged"),
		Unprivileged: c.Int("unprivileged"),
		Algorithms:   []byte(algoFlag),
		Seed:         c.Int64("seed"),
		MaxCalls:     c.Int("max-calls"),
		ShowProcess:  c.Bool("show-process"),
		Debug:        c.Bool("debug"),
	})
	if err != nil {
		return err
	}

	ctx, cancel := withInterruptHandling(context.Background())
	defer cancel()

	reporter := report.New()

	var snapshots sim.SnapshotSink
	if c.Bool("show-process") {
		snapshots = &stdoutSnapshots{w: os.Stdout, reporter: reporter}
	}

	engine := sim.New(resolved, tr, log, snapshots)
	result := engine.Run(ctx)
	if result.Cancelled {
		log.Print("run interrupted; reporting counts accumulated so far")
	}

	reporter.Summary(os.Stdout, result.Policies)

	if !c.Bool("no-history") {
		if err := recordHistory(c.String("db"), tracePath, resolved.Frames, result.Policies, log); err != nil {
			log.Printf("warning: could not record run history: %v", err)
		}
	}

	return nil
}

func recordHistory(dir, tracePath string, frames int, results []sim.PolicyResult, log *telemetry.Log) error {
	h, err := report.OpenHistory(dir)
	if err != nil {
		return err
	}
	defer h.Close()

	id, err := h.Append(tracePath, frames, results)
	if err != nil {
		return err
	}
	log.Printf("recorded run %d", id)
	return nil
}

func defaultHistoryDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pagesim/history.ldb"
	}
	return home + "/.pagesim/history.ldb"
}
