package main

import (
	"fmt"
	"io"
	"os"

	"github.com/vektra-labs/shellshot/internal/ansi"
	"github.com/vektra-labs/shellshot/internal/transcript"
)

// runCapture wraps pre-recorded raw output (read from stdin) with a single
// synthetic user input label, and renders the pair as a snapshot. It never
// spawns a shell: the caller is responsible for having produced the bytes
// some other way (e.g. piping a real session's output through shellshot).
func runCapture(args []string) int {
	f := &commonFlags{}
	fs := newFlagSet("capture")
	registerRenderFlags(fs, f)
	output := fs.String("o", "-", "output path, or - for stdout")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	label := "$"
	if fs.NArg() > 0 {
		label = fs.Arg(0)
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shellshot capture: reading stdin: %v\n", err)
		return 2
	}

	captured, err := ansi.Parse(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shellshot capture: %v\n", err)
		return 2
	}

	tr := transcript.Transcript{{
		Input:      transcript.NewUserInput(label),
		Output:     captured,
		ExitStatus: transcript.ExitStatus{},
	}}

	opts, err := f.templateOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "shellshot capture: %v\n", err)
		return 2
	}

	return writeSnapshot(tr, opts, *output)
}
