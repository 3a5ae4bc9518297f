package snapshot

import (
	"encoding/xml"
	"strconv"

	"github.com/vektra-labs/shellshot/internal/style"
	"github.com/vektra-labs/shellshot/internal/transcript"
)

// parsePureVariant is called with dec positioned just after the
// top-level <text class="container"> start tag.
func parsePureVariant(dec *xml.Decoder) (transcript.Transcript, error) {
	var tr transcript.Transcript
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, &ParseError{At: "text.container", Offset: dec.InputOffset(), Cause: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "tspan" && hasClass(t, "interaction") {
				interaction, err := readPureInteraction(dec, t)
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

func readPureInteraction(dec *xml.Decoder, open xml.StartElement) (transcript.Interaction, error) {
	var interaction transcript.Interaction
	if raw, ok := attr(open, "data-exit-status"); ok {
		code, err := strconv.Atoi(raw)
		if err != nil {
			return interaction, &ParseError{At: "tspan.interaction[data-exit-status]", Offset: dec.InputOffset(), Cause: err}
		}
		interaction.ExitStatus = transcript.ExitStatus{Code: code, Known: true}
	}

	var lines []transcript.StyledLine
	for {
		tok, err := dec.Token()
		if err != nil {
			return interaction, &ParseError{At: "tspan.interaction", Offset: dec.InputOffset(), Cause: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Local == "tspan" && hasClass(t, "prompt"):
				prompt, err := readText(dec)
				if err != nil {
					return interaction, &ParseError{At: "tspan.prompt", Offset: dec.InputOffset(), Cause: err}
				}
				interaction.Input.Prompt = prompt
			case t.Name.Local == "tspan" && hasClass(t, "input-text"):
				raw, err := readText(dec)
				if err != nil {
					return interaction, &ParseError{At: "tspan.input-text", Offset: dec.InputOffset(), Cause: err}
				}
				interaction.Input.Text = trimOneLeadingSpace(raw)
			case t.Name.Local == "tspan" && hasClass(t, "line"):
				line, err := readPureLine(dec)
				if err != nil {
					return interaction, err
				}
				lines = append(lines, line)
			default:
				if err := skipElement(dec); err != nil {
					return interaction, &ParseError{At: t.Name.Local, Offset: dec.InputOffset(), Cause: err}
				}
			}
		case xml.EndElement:
			interaction.Output = transcript.NewCaptured(lines)
			return interaction, nil
		}
	}
}

func readPureLine(dec *xml.Decoder) (transcript.StyledLine, error) {
	var line transcript.StyledLine
	for {
		tok, err := dec.Token()
		if err != nil {
			return line, &ParseError{At: "tspan.line", Offset: dec.InputOffset(), Cause: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "tspan" {
				if err := skipElement(dec); err != nil {
					return line, &ParseError{At: t.Name.Local, Offset: dec.InputOffset(), Cause: err}
				}
				continue
			}
			text, err := readText(dec)
			if err != nil {
				return line, &ParseError{At: "tspan", Offset: dec.InputOffset(), Cause: err}
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
