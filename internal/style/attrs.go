package style

// TextAttrs is a bitmask of style attributes carried by a StyledSpan.
type TextAttrs uint8

const (
	Bold TextAttrs = 1 << iota
	Italic
	Underline
	Dim
	// HardBreak marks a synthetic break inserted by the renderer when a line
	// is wrapped, or at a configured hard-wrap column. It is styling
	// metadata only and carries no text of its own beyond the break marker.
	HardBreak
)

func (a TextAttrs) Has(flag TextAttrs) bool { return a&flag != 0 }

func (a TextAttrs) Set(flag TextAttrs) TextAttrs { return a | flag }

func (a TextAttrs) Clear(flag TextAttrs) TextAttrs { return a &^ flag }
