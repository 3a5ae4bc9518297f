package snapshot

import "fmt"

// ParseError describes a structural problem found while parsing a
// rendered transcript document. At names the element or section where
// the problem was found; Offset is the byte offset into the input at
// the point of failure.
type ParseError struct {
	At     string
	Offset int64
	Cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("snapshot: parse error at %s (offset %d): %v", e.At, e.Offset, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }
