package render

import (
	"github.com/rivo/uniseg"

	"github.com/vektra-labs/shellshot/internal/style"
	"github.com/vektra-labs/shellshot/internal/transcript"
)

// hardWrapArrow marks the synthetic span inserted at the end of a line
// broken by hard-wrapping.
const hardWrapArrow = "↵"

// applyWrap splits each line whose visual width exceeds n columns,
// grapheme-cluster aware (so combining marks and wide CJK glyphs are
// measured correctly via uniseg), inserting a HardBreak-attributed arrow
// span on the line that was broken.
func applyWrap(lines []transcript.StyledLine, w Wrap) []transcript.StyledLine {
	if w.Disabled || w.HardWrapAtChar <= 0 {
		return lines
	}

	var out []transcript.StyledLine
	for _, line := range lines {
		out = append(out, wrapLine(line, w.HardWrapAtChar)...)
	}
	return out
}

func wrapLine(line transcript.StyledLine, n int) []transcript.StyledLine {
	if lineWidth(line) <= n {
		return []transcript.StyledLine{line}
	}

	var result []transcript.StyledLine
	var current transcript.StyledLine
	col := 0

	flush := func(broken bool) {
		if broken {
			current = append(current, transcript.StyledSpan{
				Text:  hardWrapArrow,
				Attrs: style.HardBreak,
			})
		}
		result = append(result, current)
		current = nil
		col = 0
	}

	for _, span := range line {
		gr := uniseg.NewGraphemes(span.Text)
		var runBuf []rune
		runStart := 0
		flushRun := func(end int) {
			if len(runBuf) == 0 {
				return
			}
			current = append(current, transcript.StyledSpan{
				Text:  string(runBuf),
				Fg:    span.Fg,
				Bg:    span.Bg,
				Attrs: span.Attrs,
			})
			runBuf = nil
			_ = end
		}

		for gr.Next() {
			cluster := gr.Runes()
			w := uniseg.StringWidth(string(cluster))
			if col+w > n {
				flushRun(runStart)
				flush(true)
			}
			runBuf = append(runBuf, cluster...)
			col += w
		}
		flushRun(runStart)
	}
	flush(false)
	return result
}

// lineWidth returns a StyledLine's visual (grapheme-cluster, double-width
// aware) column width.
func lineWidth(line transcript.StyledLine) int {
	total := 0
	for _, span := range line {
		total += uniseg.StringWidth(span.Text)
	}
	return total
}
