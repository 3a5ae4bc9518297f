// Package snapshot reconstructs a transcript from the SVG documents
// produced by the render package, inverting its CSS class/inline-style
// scheme to recover ColorSpec and TextAttrs.
package snapshot

import (
	"encoding/xml"
	"io"

	"github.com/vektra-labs/shellshot/internal/transcript"
)

// Parse reads a document produced by render.Render (either the rich or
// pure-SVG variant) and reconstructs its Transcript. Variant is detected
// by the presence of a <foreignObject> (rich) versus a top-level
// <text class="container"> (pure).
func Parse(r io.Reader) (transcript.Transcript, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return nil, &ParseError{At: "document", Offset: dec.InputOffset(), Cause: errNoContainer}
			}
			return nil, &ParseError{At: "document", Offset: dec.InputOffset(), Cause: err}
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch {
		case se.Name.Local == "foreignObject":
			return parseRichVariant(dec)
		case se.Name.Local == "text" && hasClass(se, "container"):
			return parsePureVariant(dec)
		}
	}
}
