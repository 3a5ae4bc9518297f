// Package render turns a transcript.Transcript into a self-contained SVG
// document: either a "rich" variant that delegates text layout to an
// embedded HTML fragment, or a "pure" variant that lays out individual
// glyphs at fixed advance widths.
package render

import "github.com/vektra-labs/shellshot/internal/style"

// Wrap configures hard-wrapping of overlong lines.
type Wrap struct {
	Disabled       bool
	HardWrapAtChar int
}

// ScrollOptions configures the scroll-keyframe animation emitted when
// rendered content exceeds MaxHeightPx.
type ScrollOptions struct {
	MaxHeightPx        int
	MinScrollbarHeight int
	PixelsPerScroll    int
	Interval           float64 // seconds per keyframe step
}

// WindowFrameMode selects whether a synthetic terminal window chrome is
// drawn around the content.
type WindowFrameMode int

const (
	WindowFrameOff WindowFrameMode = iota
	WindowFrameOn
	WindowFrameOnTitled
)

// WindowFrame bundles the frame mode with its optional title.
type WindowFrame struct {
	Mode  WindowFrameMode
	Title string
}

// LineNumbers selects how output lines are numbered.
type LineNumbers int

const (
	LineNumbersNone LineNumbers = iota
	LineNumbersEachOutput
	LineNumbersContinuousOutputs
	LineNumbersContinuous
)

// TemplateOptions controls every aspect of Render's output.
type TemplateOptions struct {
	Palette          style.Palette
	FontFamily       string
	AdditionalStyles string
	WidthPx          int
	LineHeight       float64
	AdvanceWidth     float64
	Wrap             Wrap
	Scroll           *ScrollOptions
	WindowFrame      WindowFrame
	LineNumbers      LineNumbers
	HiddenInputs     bool
	PureSVG          bool
}

// DefaultTemplateOptions returns the options used when the caller supplies
// none explicitly: the default palette, a monospace font stack, an 80-char
// wide terminal, and hard-wrap disabled.
func DefaultTemplateOptions() TemplateOptions {
	return TemplateOptions{
		Palette:      style.PaletteGJM8,
		FontFamily:   "Menlo, DejaVu Sans Mono, Consolas, monospace",
		WidthPx:      720,
		LineHeight:   1.3,
		AdvanceWidth: 8.4,
		Wrap:         Wrap{Disabled: true},
		LineNumbers:  LineNumbersNone,
	}
}
