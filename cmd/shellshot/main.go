// Command shellshot captures shell interactions and renders them as
// self-contained SVG snapshots, then replays them to catch regressions.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

func main() {
	configureLogging()
	os.Exit(run(os.Args[1:]))
}

// configureLogging sets the default slog level from SHELLSHOT_LOG (debug,
// info, warn, error).
func configureLogging() {
	level := slog.LevelInfo
	switch os.Getenv("SHELLSHOT_LOG") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

type subcommand struct {
	name string
	run  func(args []string) int
}

func run(args []string) int {
	subs := []subcommand{
		{"exec", runExec},
		{"capture", runCapture},
		{"print", runPrint},
		{"test", runTest},
	}

	if len(args) == 0 {
		usage(subs)
		return 2
	}

	if args[0] == "-h" || args[0] == "--help" {
		usage(subs)
		return 0
	}

	for _, s := range subs {
		if s.name == args[0] {
			return s.run(args[1:])
		}
	}

	fmt.Fprintf(os.Stderr, "shellshot: unknown subcommand %q\n", args[0])
	usage(subs)
	return 2
}

func usage(subs []subcommand) {
	fmt.Fprintln(os.Stderr, "usage: shellshot <subcommand> [flags]")
	fmt.Fprintln(os.Stderr, "\nsubcommands:")
	for _, s := range subs {
		fmt.Fprintf(os.Stderr, "  %s\n", s.name)
	}
}

// newFlagSet builds a FlagSet that reports errors itself (ContinueOnError)
// so subcommands can return a proper exit code instead of os.Exit(2) from
// inside flag parsing.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}
