package snapshot

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vektra-labs/shellshot/internal/style"
)

var (
	fgClassPattern = regexp.MustCompile(`^fg(\d+)$`)
	bgClassPattern = regexp.MustCompile(`^bg(\d+)$`)
)

// paletteSlotToSpec inverts render.classIndex: slots 0-7 are the ordinary
// named colors, 8-15 their intense counterparts.
func paletteSlotToSpec(slot int) style.ColorSpec {
	if slot >= 8 {
		return style.NamedSpec(style.NamedColor(slot-8), true)
	}
	return style.NamedSpec(style.NamedColor(slot), false)
}

// classesAndStyle maps a span's CSS classes and inline style attribute back
// to a ColorSpec/TextAttrs pair, reading render.buildSpanView's shared class
// scheme (fgN/bgN, bold, italic, underline, dimmed, hard-br). The mapping is
// not lossless for indexed colors: an fgN/bgN class always yields a named
// color, so an indexed color 0-15 comes back as the matching named color,
// and an inline hex color always yields an RGB spec, so an indexed color
// 16-255 comes back as its resolved RGB value.
func classesAndStyle(class, inlineStyle string) (fg, bg style.ColorSpec, attrs style.TextAttrs) {
	fg, bg = style.DefaultColor(), style.DefaultColor()

	for _, token := range strings.Fields(class) {
		switch {
		case fgClassPattern.MatchString(token):
			n, _ := strconv.Atoi(fgClassPattern.FindStringSubmatch(token)[1])
			fg = paletteSlotToSpec(n)
		case bgClassPattern.MatchString(token):
			n, _ := strconv.Atoi(bgClassPattern.FindStringSubmatch(token)[1])
			bg = paletteSlotToSpec(n)
		case token == "bold":
			attrs = attrs.Set(style.Bold)
		case token == "italic":
			attrs = attrs.Set(style.Italic)
		case token == "underline":
			attrs = attrs.Set(style.Underline)
		case token == "dimmed":
			attrs = attrs.Set(style.Dim)
		case token == "hard-br":
			attrs = attrs.Set(style.HardBreak)
		}
	}

	for _, decl := range strings.Split(inlineStyle, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop, value = strings.TrimSpace(prop), strings.TrimSpace(value)
		rgb, err := style.ParseRgbColor(value)
		if err != nil {
			continue
		}
		switch prop {
		case "color":
			fg = style.RGBSpec(rgb)
		case "background-color":
			bg = style.RGBSpec(rgb)
		}
	}

	return fg, bg, attrs
}
