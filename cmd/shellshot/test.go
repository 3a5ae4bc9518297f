package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vektra-labs/shellshot/internal/snapshot"
	"github.com/vektra-labs/shellshot/internal/snapshottest"
)

// runTest replays the snapshot's recorded inputs through a live shell and
// reports whether the output still matches. Exit codes: 0 every
// interaction passed, 1 at least one failed or panicked, 2 a usage or I/O
// error kept the test from running at all.
func runTest(args []string) int {
	f := &commonFlags{}
	fs := newFlagSet("test")
	registerEngineFlags(fs, f)
	verbose := fs.Bool("v", false, "print a diff for every mismatched interaction")
	precise := fs.Bool("precise", false, "compare per-span style, not just plain text")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: shellshot test [flags] <path|->")
		return 2
	}

	r, err := openSnapshotInput(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "shellshot test: %v\n", err)
		return 2
	}
	if c, ok := r.(interface{ Close() error }); ok {
		defer c.Close()
	}

	want, err := snapshot.Parse(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shellshot test: %v\n", err)
		return 2
	}

	cfg, err := f.engineConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "shellshot test: %v\n", err)
		return 2
	}

	kind := snapshottest.TextOnly
	if *precise {
		kind = snapshottest.Precise
	}

	report, err := snapshottest.Test(context.Background(), want, cfg, kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shellshot test: %v\n", err)
		return 2
	}

	for _, res := range report.Results {
		switch res.Status {
		case snapshottest.StatusPassed:
			if *verbose {
				fmt.Printf("ok   interaction %d\n", res.Index)
			}
		case snapshottest.StatusFailed:
			fmt.Printf("FAIL interaction %d\n", res.Index)
			if *verbose {
				fmt.Print(res.Diff)
			}
		case snapshottest.StatusPanicked:
			fmt.Printf("ERR  interaction %d: %s\n", res.Index, res.Diff)
		}
	}

	fmt.Printf("%d passed, %d failed, %d panicked\n", report.Passed, report.Failed, report.Panicked)

	if report.Failed > 0 || report.Panicked > 0 {
		return 1
	}
	return 0
}
