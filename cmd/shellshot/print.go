package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vektra-labs/shellshot/internal/snapshot"
	"github.com/vektra-labs/shellshot/internal/style"
	"github.com/vektra-labs/shellshot/internal/transcript"
)

// runPrint parses a snapshot back into a transcript and writes it to
// stdout as plain text, colorized with SGR sequences when COLOR=always or
// stdout is a terminal.
func runPrint(args []string) int {
	fs := newFlagSet("print")
	palette := fs.String("palette", "gjm8", "gjm8, xterm, powershell, or ubuntu")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: shellshot print <path|->")
		return 2
	}

	pal, err := style.ByName(*palette)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shellshot print: %v\n", err)
		return 2
	}

	r, err := openSnapshotInput(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "shellshot print: %v\n", err)
		return 2
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	tr, err := snapshot.Parse(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shellshot print: %v\n", err)
		return 2
	}

	printTranscript(os.Stdout, tr, pal, colorEnabled())
	return 0
}

func openSnapshotInput(path string) (io.Reader, error) {
	if path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

// colorEnabled honors COLOR=always/auto/never, falling back to TTY
// detection when COLOR is unset or "auto".
func colorEnabled() bool {
	switch os.Getenv("COLOR") {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

func printTranscript(w io.Writer, tr transcript.Transcript, pal style.Palette, color bool) {
	for _, interaction := range tr {
		fmt.Fprintf(w, "%s %s\n", interaction.Input.Prompt, interaction.Input.Text)
		for _, line := range interaction.Output.Lines {
			if color {
				fmt.Fprintln(w, renderLine(line, pal))
			} else {
				fmt.Fprintln(w, line.PlainText())
			}
		}
		if interaction.ExitStatus.Known && interaction.ExitStatus.Code != 0 {
			fmt.Fprintf(w, "[exit %d]\n", interaction.ExitStatus.Code)
		}
	}
}

func renderLine(line transcript.StyledLine, pal style.Palette) string {
	var b strings.Builder
	for _, sp := range line {
		st := lipgloss.NewStyle()
		if !sp.Fg.IsDefault() {
			st = st.Foreground(lipgloss.Color(pal.Resolve(sp.Fg, false).String()))
		}
		if !sp.Bg.IsDefault() {
			st = st.Background(lipgloss.Color(pal.Resolve(sp.Bg, true).String()))
		}
		if sp.Attrs.Has(style.Bold) {
			st = st.Bold(true)
		}
		if sp.Attrs.Has(style.Italic) {
			st = st.Italic(true)
		}
		if sp.Attrs.Has(style.Underline) {
			st = st.Underline(true)
		}
		if sp.Attrs.Has(style.Dim) {
			st = st.Faint(true)
		}
		b.WriteString(st.Render(sp.Text))
	}
	return b.String()
}
