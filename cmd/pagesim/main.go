// Command pagesim runs and compares page-replacement policies against a
// trace file, generates synthetic workloads, and inspects the history of
// past runs.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "pagesim",
		Usage: "trace-driven page-replacement policy simulator",
		Commands: []*cli.Command{
			runCommand,
			genCommand,
			historyCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "pagesim:", err)
		os.Exit(1)
	}
}
