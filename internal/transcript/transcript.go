// Package transcript holds the in-memory representation shared by the
// capture engine, the snapshot renderer, the snapshot parser and the
// snapshot tester: styled spans and lines, captured output, user input,
// exit status, and the ordered list of interactions that make up a
// transcript.
package transcript

import (
	"strings"

	"github.com/vektra-labs/shellshot/internal/style"
)

// StyledSpan is a run of text carrying a single, uniform style. Text never
// contains a newline; newlines separate spans into distinct StyledLines.
type StyledSpan struct {
	Text  string
	Fg    style.ColorSpec
	Bg    style.ColorSpec
	Attrs style.TextAttrs
}

// StyledLine is an ordered sequence of spans. Adjacent spans with identical
// style are not required to be merged. A line with no content is
// represented by a StyledLine with zero spans.
type StyledLine []StyledSpan

// PlainText concatenates the text of every span in the line.
func (l StyledLine) PlainText() string {
	var b strings.Builder
	for _, sp := range l {
		b.WriteString(sp.Text)
	}
	return b.String()
}

// Captured is the styled output produced by running a single input, plus
// its raw concatenated plain text. PlainText always equals the
// concatenation of every line's plain text interleaved with "\n", with the
// trailing newline of the captured stream trimmed.
type Captured struct {
	Lines     []StyledLine
	PlainText string
}

// NewCaptured builds a Captured from lines, deriving PlainText.
func NewCaptured(lines []StyledLine) Captured {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.PlainText()
	}
	return Captured{Lines: lines, PlainText: strings.Join(texts, "\n")}
}

// UserInput is a single line (or multi-line block) of text sent to the
// shell, tagged with a short prompt label and an optional "hidden" bit that
// suppresses rendering while preserving the input's role in execution.
type UserInput struct {
	Prompt string
	Text   string
	Hidden bool
}

// NewUserInput builds a UserInput with the default "$" prompt.
func NewUserInput(text string) UserInput {
	return UserInput{Prompt: "$", Text: text}
}

// ExitStatus is an optional signed exit code; Known is false when the
// shell configuration doesn't support extracting one.
type ExitStatus struct {
	Code  int
	Known bool
}

// Failed reports whether the exit status is known and non-zero.
func (e ExitStatus) Failed() bool { return e.Known && e.Code != 0 }

// Interaction is one (input, captured output, exit status) triple.
type Interaction struct {
	Input      UserInput
	Output     Captured
	ExitStatus ExitStatus
}

// Transcript is an ordered sequence of Interactions. It is a plain,
// single-owner value object; there is no shared mutable state between
// transcripts.
type Transcript []Interaction

// Push appends an interaction and returns the resulting transcript.
func (t Transcript) Push(i Interaction) Transcript {
	return append(t, i)
}

// Transform maps f over every interaction's captured output, returning a
// new transcript. Useful for test-time sanitization, e.g. stripping
// volatile timestamps before comparing snapshots.
func (t Transcript) Transform(f func(Captured) Captured) Transcript {
	out := make(Transcript, len(t))
	for i, interaction := range t {
		interaction.Output = f(interaction.Output)
		out[i] = interaction
	}
	return out
}
