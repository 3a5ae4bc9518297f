package snapshot

import (
	"encoding/xml"
	"errors"
	"strconv"

	"github.com/vektra-labs/shellshot/internal/style"
	"github.com/vektra-labs/shellshot/internal/transcript"
)

// parseRichVariant is called with dec positioned just after the
// foreignObject start tag. It locates the xhtml container div and reads
// each interaction div in document order.
func parseRichVariant(dec *xml.Decoder) (transcript.Transcript, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, &ParseError{At: "foreignObject", Offset: dec.InputOffset(), Cause: err}
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Local == "div" && hasClass(se, "container") {
			return readRichContainer(dec)
		}
		if err := skipElement(dec); err != nil {
			return nil, &ParseError{At: se.Name.Local, Offset: dec.InputOffset(), Cause: err}
		}
	}
}

func readRichContainer(dec *xml.Decoder) (transcript.Transcript, error) {
	var tr transcript.Transcript
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, &ParseError{At: "div.container", Offset: dec.InputOffset(), Cause: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "div" && hasClass(t, "interaction") {
				interaction, err := readRichInteraction(dec)
				if err != nil {
					return nil, err
				}
				tr = tr.Push(interaction)
				continue
			}
			if err := skipElement(dec); err != nil {
				return nil, &ParseError{At: t.Name.Local, Offset: dec.InputOffset(), Cause: err}
			}
		case xml.EndElement:
			return tr, nil
		}
	}
}

func readRichInteraction(dec *xml.Decoder) (transcript.Interaction, error) {
	var interaction transcript.Interaction
	for {
		tok, err := dec.Token()
		if err != nil {
			return interaction, &ParseError{At: "div.interaction", Offset: dec.InputOffset(), Cause: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Local == "div" && hasClass(t, "input"):
				prompt, text, err := readRichInput(dec)
				if err != nil {
					return interaction, err
				}
				interaction.Input = transcript.UserInput{Prompt: prompt, Text: text}
			case t.Name.Local == "div" && hasClass(t, "output"):
				captured, exitStatus, err := readRichOutput(dec, t)
				if err != nil {
					return interaction, err
				}
				interaction.Output = captured
				interaction.ExitStatus = exitStatus
			default:
				if err := skipElement(dec); err != nil {
					return interaction, &ParseError{At: t.Name.Local, Offset: dec.InputOffset(), Cause: err}
				}
			}
		case xml.EndElement:
			return interaction, nil
		}
	}
}

func readRichInput(dec *xml.Decoder) (prompt, text string, err error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return prompt, text, &ParseError{At: "div.input", Offset: dec.InputOffset(), Cause: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Local == "span" && hasClass(t, "prompt"):
				prompt, err = readText(dec)
				if err != nil {
					return prompt, text, &ParseError{At: "span.prompt", Offset: dec.InputOffset(), Cause: err}
				}
			case t.Name.Local == "span" && hasClass(t, "input-text"):
				raw, err := readText(dec)
				if err != nil {
					return prompt, text, &ParseError{At: "span.input-text", Offset: dec.InputOffset(), Cause: err}
				}
				text = trimOneLeadingSpace(raw)
			default:
				if err := skipElement(dec); err != nil {
					return prompt, text, &ParseError{At: t.Name.Local, Offset: dec.InputOffset(), Cause: err}
				}
			}
		case xml.EndElement:
			return prompt, text, nil
		}
	}
}

func readRichOutput(dec *xml.Decoder, open xml.StartElement) (transcript.Captured, transcript.ExitStatus, error) {
	var exitStatus transcript.ExitStatus
	if raw, ok := attr(open, "data-exit-status"); ok {
		code, err := strconv.Atoi(raw)
		if err != nil {
			return transcript.Captured{}, exitStatus, &ParseError{At: "div.output[data-exit-status]", Offset: dec.InputOffset(), Cause: err}
		}
		exitStatus = transcript.ExitStatus{Code: code, Known: true}
	}

	var lines []transcript.StyledLine
	for {
		tok, err := dec.Token()
		if err != nil {
			return transcript.Captured{}, exitStatus, &ParseError{At: "div.output", Offset: dec.InputOffset(), Cause: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "div" && hasClass(t, "line") {
				line, err := readRichLine(dec)
				if err != nil {
					return transcript.Captured{}, exitStatus, err
				}
				lines = append(lines, line)
				continue
			}
			if err := skipElement(dec); err != nil {
				return transcript.Captured{}, exitStatus, &ParseError{At: t.Name.Local, Offset: dec.InputOffset(), Cause: err}
			}
		case xml.EndElement:
			return transcript.NewCaptured(lines), exitStatus, nil
		}
	}
}

func readRichLine(dec *xml.Decoder) (transcript.StyledLine, error) {
	var line transcript.StyledLine
	for {
		tok, err := dec.Token()
		if err != nil {
			return line, &ParseError{At: "div.line", Offset: dec.InputOffset(), Cause: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "span" {
				if err := skipElement(dec); err != nil {
					return line, &ParseError{At: t.Name.Local, Offset: dec.InputOffset(), Cause: err}
				}
				continue
			}
			if hasClass(t, "line-number") {
				if err := skipElement(dec); err != nil {
					return line, &ParseError{At: "span.line-number", Offset: dec.InputOffset(), Cause: err}
				}
				continue
			}
			text, err := readText(dec)
			if err != nil {
				return line, &ParseError{At: "span", Offset: dec.InputOffset(), Cause: err}
			}
			class, _ := attr(t, "class")
			inlineStyle, _ := attr(t, "style")
			fg, bg, attrs := classesAndStyle(class, inlineStyle)
			if attrs.Has(style.HardBreak) {
				continue
			}
			line = append(line, transcript.StyledSpan{Text: text, Fg: fg, Bg: bg, Attrs: attrs})
		case xml.EndElement:
			return line, nil
		}
	}
}

func trimOneLeadingSpace(s string) string {
	if len(s) > 0 && s[0] == ' ' {
		return s[1:]
	}
	return s
}

var errNoContainer = errors.New("no transcript container found before end of document")
