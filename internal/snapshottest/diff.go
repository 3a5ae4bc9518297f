package snapshottest

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vektra-labs/shellshot/internal/style"
	"github.com/vektra-labs/shellshot/internal/transcript"
)

var (
	expectedLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff005b"))
	actualLineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#cee318"))
	statusLabelStyle  = lipgloss.NewStyle().Bold(true)
)

// renderDiff produces a human-readable, color-annotated description of
// how got diverged from want, for a single mismatched interaction.
func renderDiff(want, got transcript.Interaction, kind MatchKind) string {
	var b strings.Builder

	if want.ExitStatus.Known && got.ExitStatus.Known && want.ExitStatus.Code != got.ExitStatus.Code {
		fmt.Fprintf(&b, "%s exit status %d, %s %d\n",
			statusLabelStyle.Render("expected"), want.ExitStatus.Code,
			statusLabelStyle.Render("got"), got.ExitStatus.Code)
	}

	wantLines := strings.Split(want.Output.PlainText, "\n")
	gotLines := strings.Split(got.Output.PlainText, "\n")

	max := len(wantLines)
	if len(gotLines) > max {
		max = len(gotLines)
	}

	for i := 0; i < max; i++ {
		var wantLine, gotLine string
		if i < len(wantLines) {
			wantLine = wantLines[i]
		}
		if i < len(gotLines) {
			gotLine = gotLines[i]
		}
		if wantLine == gotLine && kind == TextOnly {
			continue
		}

		var wantStyled, gotStyled transcript.StyledLine
		if kind == Precise {
			if i < len(want.Output.Lines) {
				wantStyled = want.Output.Lines[i]
			}
			if i < len(got.Output.Lines) {
				gotStyled = got.Output.Lines[i]
			}
			if wantLine == gotLine && linesStyleMatch(wantStyled, gotStyled) {
				continue
			}
		}

		if kind == Precise {
			fmt.Fprintf(&b, "%s %s\n", expectedLineStyle.Render("-"), renderStyledLine(wantStyled))
			fmt.Fprintf(&b, "%s %s\n", actualLineStyle.Render("+"), renderStyledLine(gotStyled))
		} else {
			fmt.Fprintf(&b, "%s %s\n", expectedLineStyle.Render("-"), wantLine)
			fmt.Fprintf(&b, "%s %s\n", actualLineStyle.Render("+"), gotLine)
		}
	}

	return b.String()
}

func linesStyleMatch(a, b transcript.StyledLine) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// renderStyledLine renders a styled line for terminal display, resolving
// each span's ColorSpec against the standard palette.
func renderStyledLine(line transcript.StyledLine) string {
	var b strings.Builder
	for _, sp := range line {
		st := lipgloss.NewStyle()
		if !sp.Fg.IsDefault() {
			st = st.Foreground(lipgloss.Color(style.PaletteGJM8.Resolve(sp.Fg, false).String()))
		}
		if !sp.Bg.IsDefault() {
			st = st.Background(lipgloss.Color(style.PaletteGJM8.Resolve(sp.Bg, true).String()))
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
