// Package ansi decodes raw terminal output (text interleaved with ANSI
// CSI/SGR escape sequences and OSC commands) into a styled
// transcript.Captured. It implements the same carriage-return "stopgap" trimming that
// real terminals exhibit: on each line, only the text after the last '\r'
// that is followed by visible output survives.
package ansi

import (
	"bytes"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/vektra-labs/shellshot/internal/transcript"
)

const (
	esc       = 0x1b
	bel       = 0x07
	tab       = '\t'
	csiByte   = '['
	oscByte   = ']'
	tabStride = 8
)

// Parse decodes raw terminal bytes into a Captured value. SGR state
// (colors, bold, italic, underline, dim) carries across lines, matching a
// real terminal's persistent cursor attributes.
func Parse(data []byte) (transcript.Captured, error) {
	// bytes.Split on a trailing '\n' yields a spurious empty final element
	// ("a\n" -> ["a", ""]); drop exactly that one element, not every
	// trailing blank line, mirroring a single truncate of one '\n' off the
	// end of the raw stream.
	trailingNewline := len(data) > 0 && data[len(data)-1] == '\n'
	rawLines := bytes.Split(data, []byte{'\n'})
	if trailingNewline {
		rawLines = rawLines[:len(rawLines)-1]
	}
	lines := make([]transcript.StyledLine, 0, len(rawLines))

	st := defaultState()
	for _, raw := range rawLines {
		trimmed, err := trimCR(raw)
		if err != nil {
			return transcript.Captured{}, err
		}
		line, next, err := parseLine(trimmed, st)
		if err != nil {
			return transcript.Captured{}, err
		}
		lines = append(lines, line)
		st = next
	}
	return transcript.NewCaptured(lines), nil
}

// trimCR finds the last '\r' in line that has visible (non-escape-only)
// output following it, and drops everything before it. A line with no such
// '\r' is returned unchanged.
func trimCR(line []byte) ([]byte, error) {
	chunks := bytes.Split(line, []byte{'\r'})
	processedLen := 0
	for i := len(chunks) - 1; i >= 0; i-- {
		chunk := chunks[i]
		processedLen += len(chunk) + 1
		has, err := hasPlaintext(chunk)
		if err != nil {
			return nil, err
		}
		if has {
			break
		}
	}
	startPos := len(line) - processedLen
	if startPos < 0 {
		startPos = 0
	}
	return line[startPos:], nil
}

// hasPlaintext reports whether b contains any byte that isn't part of a
// recognized escape sequence.
func hasPlaintext(b []byte) (bool, error) {
	i := 0
	for i < len(b) {
		if b[i] != esc {
			return true, nil
		}
		i++
		if i >= len(b) {
			return false, ErrUnfinishedSequence
		}
		switch b[i] {
		case csiByte:
			i++
			c, err := parseCsi(b[i:])
			if err != nil {
				return false, err
			}
			i += c.len
		case oscByte:
			var err error
			i, err = skipOSC(b, i)
			if err != nil {
				return false, err
			}
		default:
			return false, &UnrecognizedSequenceError{Byte: b[i]}
		}
	}
	return false, nil
}

// skipOSC scans an Operating System Command starting at b[i] (the ']'
// introducer) up to and including its BEL or ESC '\' (ST) terminator,
// returning the index just past it.
func skipOSC(b []byte, i int) (int, error) {
	for i < len(b) && b[i] != bel && b[i] != esc {
		i++
	}
	if i == len(b) {
		return i, ErrUnfinishedSequence
	}
	if b[i] == esc {
		i++
		if i == len(b) {
			return i, ErrUnfinishedSequence
		}
		if b[i] != '\\' {
			return i, &UnrecognizedSequenceError{Byte: b[i]}
		}
	}
	i++
	return i, nil
}

// parseLine decodes a single (already CR-trimmed) line, returning its
// styled spans and the SGR state in effect at its end. Tabs are expanded
// to stops of 8 columns so C5's wrap computation can work from span text
// alone, without re-deriving tab stops from column position.
func parseLine(line []byte, st curState) (transcript.StyledLine, curState, error) {
	var spans []transcript.StyledSpan
	col := 0

	flush := func(text []byte) {
		col += appendSpan(&spans, text, st)
	}

	i := 0
	writtenEnd := 0
	for i < len(line) {
		switch line[i] {
		case esc:
			flush(line[writtenEnd:i])
			i++
			if i >= len(line) {
				return nil, st, ErrUnfinishedSequence
			}
			switch line[i] {
			case csiByte:
				i++
				c, err := parseCsi(line[i:])
				if err != nil {
					return nil, st, err
				}
				if err := c.updateStyle(&st); err != nil {
					return nil, st, err
				}
				i += c.len
			case oscByte:
				var err error
				i, err = skipOSC(line, i)
				if err != nil {
					return nil, st, err
				}
			default:
				return nil, st, &UnrecognizedSequenceError{Byte: line[i]}
			}
			writtenEnd = i
		case '\r':
			flush(line[writtenEnd:i])
			i++
			writtenEnd = i
		case tab:
			flush(line[writtenEnd:i])
			next := (col/tabStride + 1) * tabStride
			appendSpan(&spans, []byte(strings.Repeat(" ", next-col)), st)
			col = next
			i++
			writtenEnd = i
		default:
			i++
		}
	}
	flush(line[writtenEnd:i])
	return spans, st, nil
}

// appendSpan appends text (if non-empty) as a styled span and returns its
// visual column width.
func appendSpan(spans *[]transcript.StyledSpan, text []byte, st curState) int {
	if len(text) == 0 {
		return 0
	}
	clean := strings.ToValidUTF8(string(text), "�")
	*spans = append(*spans, transcript.StyledSpan{
		Text:  clean,
		Fg:    st.fg,
		Bg:    st.bg,
		Attrs: st.attrs,
	})
	return uniseg.StringWidth(clean)
}
