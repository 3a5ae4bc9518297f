// Package style implements the color and attribute model shared by the
// ANSI reducer, the snapshot renderer and the snapshot parser: RGB colors,
// the 16-color named palette, 256-color indexing, and per-span text
// attributes.
package style

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RgbColor is a 24-bit color with 8-bit channels.
type RgbColor struct {
	R, G, B uint8
}

// ParseRgbColor parses a color from a `#rgb` or `#rrggbb` hex string.
func ParseRgbColor(s string) (RgbColor, error) {
	if len(s) == 0 || s[0] != '#' {
		return RgbColor{}, fmt.Errorf("style: color %q missing '#' prefix", s)
	}
	switch len(s) {
	case 4:
		c, err := colorful.Hex("#" + string(s[1]) + string(s[1]) + string(s[2]) + string(s[2]) + string(s[3]) + string(s[3]))
		if err != nil {
			return RgbColor{}, fmt.Errorf("style: parsing color %q: %w", s, err)
		}
		return fromColorful(c), nil
	case 7:
		c, err := colorful.Hex(s)
		if err != nil {
			return RgbColor{}, fmt.Errorf("style: parsing color %q: %w", s, err)
		}
		return fromColorful(c), nil
	default:
		return RgbColor{}, fmt.Errorf("style: color %q has unexpected length %d, want 4 or 7", s, len(s))
	}
}

func fromColorful(c colorful.Color) RgbColor {
	r, g, b := c.RGB255()
	return RgbColor{R: r, G: g, B: b}
}

// String renders the color as lowercase `#rrggbb`.
func (c RgbColor) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NamedColor is one of the 8 standard ANSI color names.
type NamedColor int

const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var namedColorNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func (n NamedColor) String() string {
	if n < 0 || int(n) >= len(namedColorNames) {
		return "unknown"
	}
	return namedColorNames[n]
}

// ParseNamedColor parses one of the 8 standard color names (case-insensitive).
func ParseNamedColor(s string) (NamedColor, error) {
	for i, name := range namedColorNames {
		if strings.EqualFold(name, s) {
			return NamedColor(i), nil
		}
	}
	return 0, fmt.Errorf("style: unrecognized color name %q", s)
}

// ColorSpecKind discriminates the variants of ColorSpec.
type ColorSpecKind int

const (
	KindDefault ColorSpecKind = iota
	KindNamed
	KindIndexed
	KindRGB
)

// ColorSpec is a terminal color specification, prior to palette resolution.
type ColorSpec struct {
	Kind    ColorSpecKind
	Named   NamedColor
	Intense bool
	Index   uint8
	RGB     RgbColor
}

// DefaultColor returns the "unset" color spec.
func DefaultColor() ColorSpec { return ColorSpec{Kind: KindDefault} }

// NamedSpec returns a named-color spec, optionally intense (bright).
func NamedSpec(n NamedColor, intense bool) ColorSpec {
	return ColorSpec{Kind: KindNamed, Named: n, Intense: intense}
}

// IndexedSpec returns a 256-color indexed spec.
func IndexedSpec(index uint8) ColorSpec {
	return ColorSpec{Kind: KindIndexed, Index: index}
}

// RGBSpec returns a 24-bit true-color spec.
func RGBSpec(c RgbColor) ColorSpec {
	return ColorSpec{Kind: KindRGB, RGB: c}
}

// IsDefault reports whether the spec is the unset/default color.
func (c ColorSpec) IsDefault() bool { return c.Kind == KindDefault }
