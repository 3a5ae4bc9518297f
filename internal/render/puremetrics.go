package render

import "github.com/mattn/go-runewidth"

// glyphWidth returns text's total advance width in character cells (1 per
// narrow glyph, 2 per East Asian wide glyph), used to lay out the pure-SVG
// variant's tspans when no explicit AdvanceWidth or embedded font metrics
// are supplied.
func glyphWidth(text string) int {
	return runewidth.StringWidth(text)
}
