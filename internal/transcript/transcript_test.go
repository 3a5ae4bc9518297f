package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vektra-labs/shellshot/internal/style"
)

func TestStyledLinePlainText(t *testing.T) {
	l := StyledLine{
		{Text: "foo", Fg: style.NamedSpec(style.Red, false)},
		{Text: "bar"},
	}
	assert.Equal(t, "foobar", l.PlainText())
}

func TestNewCaptured(t *testing.T) {
	c := NewCaptured([]StyledLine{
		{{Text: "one"}},
		{{Text: "two"}},
	})
	assert.Equal(t, "one\ntwo", c.PlainText)
}

func TestExitStatusFailed(t *testing.T) {
	assert.False(t, ExitStatus{}.Failed())
	assert.False(t, ExitStatus{Code: 1}.Failed())
	assert.True(t, ExitStatus{Code: 1, Known: true}.Failed())
	assert.False(t, ExitStatus{Code: 0, Known: true}.Failed())
}

func TestTranscriptPushAndTransform(t *testing.T) {
	var tr Transcript
	tr = tr.Push(Interaction{
		Input:  NewUserInput("echo hi"),
		Output: NewCaptured([]StyledLine{{{Text: "hi"}}}),
	})
	assert.Len(t, tr, 1)

	tr2 := tr.Transform(func(c Captured) Captured {
		c.PlainText = c.PlainText + "!"
		return c
	})
	assert.Equal(t, "hi!", tr2[0].Output.PlainText)
	assert.Equal(t, "hi", tr[0].Output.PlainText, "Transform must not mutate the original transcript")
}
