package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vektra-labs/shellshot/internal/style"
	"github.com/vektra-labs/shellshot/internal/transcript"
)

func sampleTranscript() transcript.Transcript {
	var tr transcript.Transcript
	tr = tr.Push(transcript.Interaction{
		Input:      transcript.NewUserInput("echo Hello"),
		Output:     transcript.NewCaptured([]transcript.StyledLine{{{Text: "Hello"}}}),
		ExitStatus: transcript.ExitStatus{Code: 0, Known: true},
	})
	return tr
}

func TestRenderRichProducesSVGAndForeignObject(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultTemplateOptions()
	err := Render(sampleTranscript(), opts, &buf)
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, "<foreignObject")
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "echo Hello")
}

func TestRenderPureSVGProducesTspans(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultTemplateOptions()
	opts.PureSVG = true
	err := Render(sampleTranscript(), opts, &buf)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `class="container"`)
	assert.Contains(t, out, "<tspan")
	assert.NotContains(t, out, "<foreignObject")
}

func TestRenderMarksFailures(t *testing.T) {
	var tr transcript.Transcript
	tr = tr.Push(transcript.Interaction{
		Input:      transcript.NewUserInput("false"),
		Output:     transcript.NewCaptured(nil),
		ExitStatus: transcript.ExitStatus{Code: 1, Known: true},
	})

	var buf bytes.Buffer
	err := Render(tr, DefaultTemplateOptions(), &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `data-has-failures="true"`)
	assert.Contains(t, buf.String(), `data-exit-status="1"`)
}

func TestRenderHiddenInputsOmitsInputBlock(t *testing.T) {
	opts := DefaultTemplateOptions()
	opts.HiddenInputs = true

	var buf bytes.Buffer
	err := Render(sampleTranscript(), opts, &buf)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "echo Hello")
}

func TestRenderPerInputHiddenOmitsOnlyThatInput(t *testing.T) {
	var tr transcript.Transcript
	tr = tr.Push(transcript.Interaction{
		Input:  transcript.UserInput{Prompt: "$", Text: "secret thing", Hidden: true},
		Output: transcript.NewCaptured([]transcript.StyledLine{{{Text: "shown"}}}),
	})
	tr = tr.Push(transcript.Interaction{
		Input:  transcript.NewUserInput("visible thing"),
		Output: transcript.NewCaptured([]transcript.StyledLine{{{Text: "also shown"}}}),
	})

	var buf bytes.Buffer
	err := Render(tr, DefaultTemplateOptions(), &buf)
	require.NoError(t, err)
	out := buf.String()
	assert.NotContains(t, out, "secret thing")
	assert.Contains(t, out, "visible thing")
}

func TestRenderContinuousLineNumbersCountInputsAndOutputs(t *testing.T) {
	var tr transcript.Transcript
	tr = tr.Push(transcript.Interaction{
		Input:  transcript.NewUserInput("echo a"),
		Output: transcript.NewCaptured([]transcript.StyledLine{{{Text: "a"}}}),
	})
	tr = tr.Push(transcript.Interaction{
		Input:  transcript.NewUserInput("echo b"),
		Output: transcript.NewCaptured([]transcript.StyledLine{{{Text: "b"}}}),
	})

	opts := DefaultTemplateOptions()
	opts.LineNumbers = LineNumbersContinuous
	var buf bytes.Buffer
	require.NoError(t, Render(tr, opts, &buf))
	out := buf.String()
	// Input, output, input, output: 1, 2, 3, 4.
	assert.Contains(t, out, `<xhtml:span class="line-number">1</xhtml:span><xhtml:span class="prompt">`)
	assert.Contains(t, out, `<xhtml:span class="line-number">3</xhtml:span><xhtml:span class="prompt">`)
	assert.Contains(t, out, `<xhtml:span class="line-number">2</xhtml:span>`)
	assert.Contains(t, out, `<xhtml:span class="line-number">4</xhtml:span>`)
}

func TestRenderContinuousOutputsLineNumbersSkipInputs(t *testing.T) {
	opts := DefaultTemplateOptions()
	opts.LineNumbers = LineNumbersContinuousOutputs
	var buf bytes.Buffer
	require.NoError(t, Render(sampleTranscript(), opts, &buf))
	out := buf.String()
	assert.NotContains(t, out, `<xhtml:span class="line-number">1</xhtml:span><xhtml:span class="prompt">`)
	assert.Contains(t, out, `<xhtml:span class="line-number">1</xhtml:span>`)
}

func TestApplyWrapSplitsLongLines(t *testing.T) {
	line := transcript.StyledLine{{Text: "0123456789"}}
	wrapped := applyWrap([]transcript.StyledLine{line}, Wrap{HardWrapAtChar: 5})
	require.Len(t, wrapped, 2)
	assert.Equal(t, "01234"+hardWrapArrow, wrapped[0].PlainText())
	assert.Equal(t, "56789", wrapped[1].PlainText())
}

func TestApplyWrapLeavesShortLines(t *testing.T) {
	line := transcript.StyledLine{{Text: "short"}}
	wrapped := applyWrap([]transcript.StyledLine{line}, Wrap{HardWrapAtChar: 80})
	require.Len(t, wrapped, 1)
	assert.Equal(t, "short", wrapped[0].PlainText())
}

func TestBuildSpanViewNamedColorUsesClass(t *testing.T) {
	sv := buildSpanView("x", style.NamedSpec(style.Red, false), style.DefaultColor(), 0, style.PaletteGJM8)
	assert.True(t, sv.HasClass)
	assert.Equal(t, "fg1", sv.Class)
	assert.False(t, sv.HasStyle)
}

func TestBuildSpanViewRGBUsesInlineStyle(t *testing.T) {
	sv := buildSpanView("x", style.RGBSpec(style.RgbColor{R: 1, G: 2, B: 3}), style.DefaultColor(), 0, style.PaletteGJM8)
	assert.False(t, sv.HasClass)
	assert.True(t, sv.HasStyle)
	assert.Contains(t, sv.Style, "#010203")
}

func TestComputeScrollAnimationNoneWhenFits(t *testing.T) {
	anim := computeScrollAnimation(100, 80, ScrollOptions{MaxHeightPx: 200})
	assert.Nil(t, anim)
}

func TestComputeScrollAnimationSteps(t *testing.T) {
	anim := computeScrollAnimation(300, 80, ScrollOptions{MaxHeightPx: 100, PixelsPerScroll: 50, Interval: 2})
	require.NotNil(t, anim)
	assert.Equal(t, 4, anim.Steps) // ceil((300-100)/50)
	assert.Equal(t, 8.0, anim.DurationSeconds)
}
