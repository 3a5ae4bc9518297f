package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vektra-labs/shellshot/internal/engine"
	"github.com/vektra-labs/shellshot/internal/render"
	"github.com/vektra-labs/shellshot/internal/transcript"
)

// runExec drives a shell through one or more commands and renders the
// resulting transcript as an SVG snapshot.
func runExec(args []string) int {
	f := &commonFlags{}
	fs := newFlagSet("exec")
	registerEngineFlags(fs, f)
	registerRenderFlags(fs, f)
	output := fs.String("o", "-", "output path, or - for stdout")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	inputs := make([]transcript.UserInput, len(fs.Args()))
	for i, cmd := range fs.Args() {
		inputs[i] = transcript.NewUserInput(cmd)
	}
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "shellshot exec: at least one command is required")
		return 2
	}

	cfg, err := f.engineConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "shellshot exec: %v\n", err)
		return 2
	}

	tr, err := engine.New(cfg).Run(context.Background(), inputs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shellshot exec: %v\n", err)
		return 2
	}

	opts, err := f.templateOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "shellshot exec: %v\n", err)
		return 2
	}

	return writeSnapshot(tr, opts, *output)
}

func writeSnapshot(tr transcript.Transcript, opts render.TemplateOptions, output string) int {
	if output == "-" {
		if err := render.Render(tr, opts, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "shellshot: rendering: %v\n", err)
			return 2
		}
		return 0
	}

	f, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shellshot: creating %s: %v\n", output, err)
		return 2
	}
	defer f.Close()

	if err := render.Render(tr, opts, f); err != nil {
		fmt.Fprintf(os.Stderr, "shellshot: rendering: %v\n", err)
		return 2
	}
	return 0
}
