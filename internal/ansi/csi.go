package ansi

import (
	"bytes"
	"strconv"

	"github.com/vektra-labs/shellshot/internal/style"
)

// curState is the running SGR state threaded through a parse, carried
// across lines since color/attribute state in a real terminal persists
// until explicitly changed or reset.
type curState struct {
	fg, bg style.ColorSpec
	attrs  style.TextAttrs
}

func defaultState() curState {
	return curState{fg: style.DefaultColor(), bg: style.DefaultColor()}
}

// csi is a parsed Control Sequence Introducer: the byte range between
// "ESC [" and the final byte, plus how many bytes (after the '[') it
// occupies in the source buffer.
type csi struct {
	parameters []byte
	finalByte  byte
	len        int
}

// parseCsi parses a CSI sequence starting right after "ESC [", per
// ECMA-48: a run of parameter bytes (0x30-0x3f), then intermediate bytes
// (0x20-0x2f), then a single final byte (0x40-0x7e).
func parseCsi(buf []byte) (csi, error) {
	intermediatesStart := -1
	for i, b := range buf {
		if b < 0x30 || b > 0x3f {
			intermediatesStart = i
			break
		}
	}
	if intermediatesStart == -1 {
		return csi{}, ErrUnfinishedSequence
	}

	finalBytePos := -1
	for i, b := range buf[intermediatesStart:] {
		if b < 0x20 || b > 0x2f {
			finalBytePos = i
			break
		}
	}
	if finalBytePos == -1 {
		return csi{}, ErrUnfinishedSequence
	}
	finalBytePos += intermediatesStart

	finalByte := buf[finalBytePos]
	if finalByte < 0x40 || finalByte > 0x7e {
		return csi{}, &InvalidSgrFinalByteError{Byte: finalByte}
	}
	return csi{
		parameters: buf[:intermediatesStart],
		finalByte:  finalByte,
		len:        finalBytePos + 1,
	}, nil
}

// updateStyle applies an SGR ('m') sequence's parameters to st in place.
// Non-'m' sequences (cursor movement, erase, etc.) are recognized as valid
// CSI sequences but otherwise ignored — this parser only tracks style.
func (c csi) updateStyle(st *curState) error {
	if c.finalByte != 'm' {
		return nil
	}
	params := bytes.Split(c.parameters, []byte{';'})
	for i := 0; i < len(params); {
		next, err := processParam(st, params, i)
		if err != nil {
			return err
		}
		i = next
	}
	return nil
}

func processParam(st *curState, params [][]byte, i int) (int, error) {
	p := params[i]
	i++

	if fg, ok := simpleFgColor(p); ok {
		st.fg = fg
		return i, nil
	}
	if bg, ok := simpleBgColor(p); ok {
		st.bg = bg
		return i, nil
	}

	switch string(p) {
	case "", "0":
		*st = defaultState()
	case "1":
		st.attrs = st.attrs.Set(style.Bold)
	case "2":
		st.attrs = st.attrs.Set(style.Dim)
	case "3":
		st.attrs = st.attrs.Set(style.Italic)
	case "4":
		st.attrs = st.attrs.Set(style.Underline)
	case "22":
		st.attrs = st.attrs.Clear(style.Bold).Clear(style.Dim)
	case "23":
		st.attrs = st.attrs.Clear(style.Italic)
	case "24":
		st.attrs = st.attrs.Clear(style.Underline)
	case "38":
		color, next, err := readColor(params, i)
		if err != nil {
			return 0, err
		}
		st.fg = color
		i = next
	case "39":
		st.fg = style.DefaultColor()
	case "48":
		color, next, err := readColor(params, i)
		if err != nil {
			return 0, err
		}
		st.bg = color
		i = next
	case "49":
		st.bg = style.DefaultColor()
	default:
		// Unrecognized SGR code: ignored, matching real terminals' tolerance
		// of codes they don't implement.
	}
	return i, nil
}

func simpleFgColor(p []byte) (style.ColorSpec, bool) {
	switch string(p) {
	case "30":
		return style.NamedSpec(style.Black, false), true
	case "31":
		return style.NamedSpec(style.Red, false), true
	case "32":
		return style.NamedSpec(style.Green, false), true
	case "33":
		return style.NamedSpec(style.Yellow, false), true
	case "34":
		return style.NamedSpec(style.Blue, false), true
	case "35":
		return style.NamedSpec(style.Magenta, false), true
	case "36":
		return style.NamedSpec(style.Cyan, false), true
	case "37":
		return style.NamedSpec(style.White, false), true
	case "90":
		return style.NamedSpec(style.Black, true), true
	case "91":
		return style.NamedSpec(style.Red, true), true
	case "92":
		return style.NamedSpec(style.Green, true), true
	case "93":
		return style.NamedSpec(style.Yellow, true), true
	case "94":
		return style.NamedSpec(style.Blue, true), true
	case "95":
		return style.NamedSpec(style.Magenta, true), true
	case "96":
		return style.NamedSpec(style.Cyan, true), true
	case "97":
		return style.NamedSpec(style.White, true), true
	default:
		return style.ColorSpec{}, false
	}
}

func simpleBgColor(p []byte) (style.ColorSpec, bool) {
	switch string(p) {
	case "40":
		return style.NamedSpec(style.Black, false), true
	case "41":
		return style.NamedSpec(style.Red, false), true
	case "42":
		return style.NamedSpec(style.Green, false), true
	case "43":
		return style.NamedSpec(style.Yellow, false), true
	case "44":
		return style.NamedSpec(style.Blue, false), true
	case "45":
		return style.NamedSpec(style.Magenta, false), true
	case "46":
		return style.NamedSpec(style.Cyan, false), true
	case "47":
		return style.NamedSpec(style.White, false), true
	case "100":
		return style.NamedSpec(style.Black, true), true
	case "101":
		return style.NamedSpec(style.Red, true), true
	case "102":
		return style.NamedSpec(style.Green, true), true
	case "103":
		return style.NamedSpec(style.Yellow, true), true
	case "104":
		return style.NamedSpec(style.Blue, true), true
	case "105":
		return style.NamedSpec(style.Magenta, true), true
	case "106":
		return style.NamedSpec(style.Cyan, true), true
	case "107":
		return style.NamedSpec(style.White, true), true
	default:
		return style.ColorSpec{}, false
	}
}

// readColor parses a compound color spec (38/48;...) starting at params[i],
// returning the resolved ColorSpec and the index just past the consumed
// parameters.
func readColor(params [][]byte, i int) (style.ColorSpec, int, error) {
	if i >= len(params) {
		return style.ColorSpec{}, 0, ErrUnfinishedColor
	}
	colorType := params[i]
	i++
	switch string(colorType) {
	case "5":
		if i >= len(params) {
			return style.ColorSpec{}, 0, ErrUnfinishedColor
		}
		idx, err := parseColorIndex(params[i])
		i++
		if err != nil {
			return style.ColorSpec{}, 0, err
		}
		return style.IndexedSpec(idx), i, nil
	case "2":
		if i+3 > len(params) {
			return style.ColorSpec{}, 0, ErrUnfinishedColor
		}
		r, err := parseColorIndex(params[i])
		if err != nil {
			return style.ColorSpec{}, 0, err
		}
		g, err := parseColorIndex(params[i+1])
		if err != nil {
			return style.ColorSpec{}, 0, err
		}
		b, err := parseColorIndex(params[i+2])
		if err != nil {
			return style.ColorSpec{}, 0, err
		}
		i += 3
		return style.RGBSpec(style.RgbColor{R: r, G: g, B: b}), i, nil
	default:
		return style.ColorSpec{}, 0, &InvalidColorTypeError{Type: string(colorType)}
	}
}

func parseColorIndex(p []byte) (uint8, error) {
	if len(p) == 0 {
		// Per ANSI conventions, an empty parameter is treated as 0.
		return 0, nil
	}
	v, err := strconv.ParseUint(string(p), 10, 8)
	if err != nil {
		return 0, &InvalidColorIndexError{Value: string(p), Err: err}
	}
	return uint8(v), nil
}
