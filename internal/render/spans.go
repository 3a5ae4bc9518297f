package render

import (
	"strconv"

	"github.com/vektra-labs/shellshot/internal/style"
)

// spanView is a single styled run, pre-resolved into the data a template
// can drop straight into markup: a CSS class for one of the 16 palette
// colors when possible, falling back to an inline hex style otherwise.
type spanView struct {
	Text     string
	Class    string
	HasClass bool
	Style    string
	HasStyle bool

	// Pure-SVG-only: the tspan's absolute baseline position.
	X float64
	Y float64
}

// classIndex maps a ColorSpec onto one of the 16 standard palette slots
// (0-7 normal, 8-15 intense), when it names one directly.
func classIndex(spec style.ColorSpec) (int, bool) {
	switch spec.Kind {
	case style.KindNamed:
		idx := int(spec.Named)
		if spec.Intense {
			idx += 8
		}
		return idx, true
	case style.KindIndexed:
		if spec.Index < 16 {
			return int(spec.Index), true
		}
	}
	return 0, false
}

// buildSpanView resolves a StyledSpan's fg/bg/attrs into CSS classes and/or
// an inline style, per the shared class scheme documented for C6:
// fgN/bgN (N 0..15), bold, italic, underline, dimmed, hard-br.
func buildSpanView(text string, fg, bg style.ColorSpec, attrs style.TextAttrs, palette style.Palette) spanView {
	var classes []string
	var inline string

	if idx, ok := classIndex(fg); ok {
		classes = append(classes, cssClass("fg", idx))
	} else if !fg.IsDefault() {
		inline += "color:" + palette.Resolve(fg, false).String() + ";"
	}

	if idx, ok := classIndex(bg); ok {
		classes = append(classes, cssClass("bg", idx))
	} else if !bg.IsDefault() {
		inline += "background-color:" + palette.Resolve(bg, true).String() + ";"
	}

	if attrs.Has(style.Bold) {
		classes = append(classes, "bold")
	}
	if attrs.Has(style.Italic) {
		classes = append(classes, "italic")
	}
	if attrs.Has(style.Underline) {
		classes = append(classes, "underline")
	}
	if attrs.Has(style.Dim) {
		classes = append(classes, "dimmed")
	}
	if attrs.Has(style.HardBreak) {
		classes = append(classes, "hard-br")
	}

	class := joinClasses(classes)
	return spanView{
		Text:     text,
		Class:    class,
		HasClass: class != "",
		Style:    inline,
		HasStyle: inline != "",
	}
}

func cssClass(prefix string, idx int) string {
	return prefix + strconv.Itoa(idx)
}

func joinClasses(classes []string) string {
	out := ""
	for i, c := range classes {
		if i > 0 {
			out += " "
		}
		out += c
	}
	return out
}
