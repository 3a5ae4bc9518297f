package style

import "fmt"

// Palette holds the 16 standard terminal colors (8 ordinary + 8 intense)
// used to resolve a ColorSpec to a concrete RgbColor.
type Palette struct {
	Colors, IntenseColors [8]RgbColor
}

func rgb(r, g, b uint8) RgbColor { return RgbColor{R: r, G: g, B: b} }

// PaletteGJM8 is the default palette (https://terminal.sexy/ "gjm8" scheme).
var PaletteGJM8 = Palette{
	Colors: [8]RgbColor{
		Black: rgb(0x1c, 0x1c, 0x1c), Red: rgb(0xff, 0x00, 0x5b), Green: rgb(0xce, 0xe3, 0x18), Yellow: rgb(0xff, 0xe7, 0x55),
		Blue: rgb(0x04, 0x8a, 0xc7), Magenta: rgb(0x83, 0x3c, 0x9f), Cyan: rgb(0x0a, 0xc1, 0xcd), White: rgb(0xe5, 0xe5, 0xe5),
	},
	IntenseColors: [8]RgbColor{
		Black: rgb(0x66, 0x66, 0x66), Red: rgb(0xff, 0x00, 0xa0), Green: rgb(0xcc, 0xff, 0x00), Yellow: rgb(0xff, 0x9f, 0x00),
		Blue: rgb(0x48, 0xc6, 0xff), Magenta: rgb(0xbe, 0x67, 0xe1), Cyan: rgb(0x63, 0xe7, 0xf0), White: rgb(0xf3, 0xf3, 0xf3),
	},
}

// PaletteXterm mirrors the conventional xterm 16-color scheme.
var PaletteXterm = Palette{
	Colors: [8]RgbColor{
		Black: rgb(0, 0, 0), Red: rgb(0xcd, 0, 0), Green: rgb(0, 0xcd, 0), Yellow: rgb(0xcd, 0xcd, 0),
		Blue: rgb(0, 0, 0xee), Magenta: rgb(0xcd, 0, 0xcd), Cyan: rgb(0, 0xcd, 0xcd), White: rgb(0xe5, 0xe5, 0xe5),
	},
	IntenseColors: [8]RgbColor{
		Black: rgb(0x7f, 0x7f, 0x7f), Red: rgb(0xff, 0, 0), Green: rgb(0, 0xff, 0), Yellow: rgb(0xff, 0xff, 0),
		Blue: rgb(0x5c, 0x5c, 0xff), Magenta: rgb(0xff, 0, 0xff), Cyan: rgb(0, 0xff, 0xff), White: rgb(0xff, 0xff, 0xff),
	},
}

// PalettePowerShell mirrors the PowerShell 6 / Windows 10 console scheme.
var PalettePowerShell = Palette{
	Colors: [8]RgbColor{
		Black: rgb(0x0c, 0x0c, 0x0c), Red: rgb(0xc5, 0x0f, 0x1f), Green: rgb(0x13, 0xa1, 0x0e), Yellow: rgb(0xc1, 0x9c, 0x00),
		Blue: rgb(0x00, 0x37, 0xda), Magenta: rgb(0x88, 0x17, 0x98), Cyan: rgb(0x3a, 0x96, 0xdd), White: rgb(0xcc, 0xcc, 0xcc),
	},
	IntenseColors: [8]RgbColor{
		Black: rgb(0x76, 0x76, 0x76), Red: rgb(0xe7, 0x48, 0x56), Green: rgb(0x16, 0xc6, 0x0c), Yellow: rgb(0xf9, 0xf1, 0xa5),
		Blue: rgb(0x3b, 0x78, 0xff), Magenta: rgb(0xb4, 0x00, 0x9e), Cyan: rgb(0x61, 0xd6, 0xd6), White: rgb(0xf2, 0xf2, 0xf2),
	},
}

// PaletteUbuntu mirrors the default Ubuntu terminal scheme.
var PaletteUbuntu = Palette{
	Colors: [8]RgbColor{
		Black: rgb(0x01, 0x01, 0x01), Red: rgb(0xde, 0x38, 0x2b), Green: rgb(0x38, 0xb5, 0x4a), Yellow: rgb(0xff, 0xc7, 0x06),
		Blue: rgb(0, 0x6f, 0xb8), Magenta: rgb(0x76, 0x26, 0x71), Cyan: rgb(0x2c, 0xb5, 0xe9), White: rgb(0xcc, 0xcc, 0xcc),
	},
	IntenseColors: [8]RgbColor{
		Black: rgb(0x80, 0x80, 0x80), Red: rgb(0xff, 0, 0), Green: rgb(0, 0xff, 0), Yellow: rgb(0xff, 0xff, 0),
		Blue: rgb(0, 0, 0xff), Magenta: rgb(0xff, 0, 0xff), Cyan: rgb(0, 0xff, 0xff), White: rgb(0xff, 0xff, 0xff),
	},
}

// ByName resolves one of the four built-in palettes by name, as accepted by
// the --palette flag and the config file's render palette key.
func ByName(name string) (Palette, error) {
	switch name {
	case "", "gjm8":
		return PaletteGJM8, nil
	case "xterm":
		return PaletteXterm, nil
	case "powershell":
		return PalettePowerShell, nil
	case "ubuntu":
		return PaletteUbuntu, nil
	default:
		return Palette{}, fmt.Errorf("style: unrecognized palette %q", name)
	}
}

// colorCube maps a 0..5 cube coordinate to its 256-color channel value.
var colorCube = [6]uint8{0, 95, 135, 175, 215, 255}

// Resolve maps a ColorSpec to a concrete RgbColor, per the 16/256/rgb
// resolution rule: named(n, intense) picks the palette row; indexed(k)
// maps 0..15 to the named rows, 16..231 to the 6x6x6 cube, 232..255 to a
// 24-step grayscale ramp; default resolves to white (foreground) or black
// (background).
func (p Palette) Resolve(spec ColorSpec, isBackground bool) RgbColor {
	switch spec.Kind {
	case KindNamed:
		if spec.Intense {
			return p.IntenseColors[spec.Named]
		}
		return p.Colors[spec.Named]
	case KindIndexed:
		return p.resolveIndex(spec.Index)
	case KindRGB:
		return spec.RGB
	default:
		if isBackground {
			return p.Colors[Black]
		}
		return p.Colors[White]
	}
}

func (p Palette) resolveIndex(index uint8) RgbColor {
	switch {
	case index < 8:
		return p.Colors[index]
	case index < 16:
		return p.IntenseColors[index-8]
	case index < 232:
		i := index - 16
		r := colorCube[(i/36)%6]
		g := colorCube[(i/6)%6]
		b := colorCube[i%6]
		return rgb(r, g, b)
	default:
		gray := uint8(8 + 10*int(index-232))
		return rgb(gray, gray, gray)
	}
}
