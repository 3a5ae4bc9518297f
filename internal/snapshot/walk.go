package snapshot

import (
	"encoding/xml"
	"strings"
)

// attr looks up a start element's attribute by local name, ignoring
// namespace; the documents this package parses never rely on attribute
// namespacing.
func attr(se xml.StartElement, local string) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// hasClass reports whether se's class attribute contains token as one of
// its whitespace-separated entries.
func hasClass(se xml.StartElement, token string) bool {
	class, _ := attr(se, "class")
	for _, c := range strings.Fields(class) {
		if c == token {
			return true
		}
	}
	return false
}

// skipElement consumes tokens up to and including the EndElement that
// closes the element whose StartElement was just read.
func skipElement(dec *xml.Decoder) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return nil
}

// readText consumes tokens up to and including the matching EndElement,
// concatenating all character data encountered (including inside any
// nested elements, which are otherwise ignored).
func readText(dec *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			sb.Write(t)
		}
	}
	return sb.String(), nil
}
