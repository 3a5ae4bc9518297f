package snapshot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vektra-labs/shellshot/internal/render"
	"github.com/vektra-labs/shellshot/internal/style"
	"github.com/vektra-labs/shellshot/internal/transcript"
)

func sampleTranscript() transcript.Transcript {
	var tr transcript.Transcript
	tr = tr.Push(transcript.Interaction{
		Input: transcript.UserInput{Prompt: "$", Text: "ls -al"},
		Output: transcript.NewCaptured([]transcript.StyledLine{
			{
				{Text: "total 4"},
			},
			{
				{Text: "drwxr-xr-x "},
				{Text: "dir", Fg: style.NamedSpec(style.Blue, false)},
				{Text: " plain"},
			},
		}),
		ExitStatus: transcript.ExitStatus{Code: 0, Known: true},
	})
	tr = tr.Push(transcript.Interaction{
		Input:      transcript.UserInput{Prompt: ">", Text: "false"},
		Output:     transcript.NewCaptured(nil),
		ExitStatus: transcript.ExitStatus{Code: 1, Known: true},
	})
	return tr
}

func renderAndParse(t *testing.T, opts render.TemplateOptions) transcript.Transcript {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, render.Render(sampleTranscript(), opts, &buf))
	got, err := Parse(&buf)
	require.NoError(t, err)
	return got
}

func TestRoundTripRich(t *testing.T) {
	opts := render.DefaultTemplateOptions()
	opts.Wrap.Disabled = true
	got := renderAndParse(t, opts)
	want := sampleTranscript()

	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Input.Prompt, got[i].Input.Prompt, "interaction %d prompt", i)
		assert.Equal(t, want[i].Input.Text, got[i].Input.Text, "interaction %d input text", i)
		assert.Equal(t, want[i].ExitStatus, got[i].ExitStatus, "interaction %d exit status", i)
		assert.Equal(t, want[i].Output.PlainText, got[i].Output.PlainText, "interaction %d plaintext", i)
	}

	assert.Equal(t, style.NamedSpec(style.Blue, false), got[0].Output.Lines[1][1].Fg)
}

func TestRoundTripPureSVG(t *testing.T) {
	opts := render.DefaultTemplateOptions()
	opts.Wrap.Disabled = true
	opts.PureSVG = true
	got := renderAndParse(t, opts)
	want := sampleTranscript()

	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Input.Prompt, got[i].Input.Prompt, "interaction %d prompt", i)
		assert.Equal(t, want[i].Input.Text, got[i].Input.Text, "interaction %d input text", i)
		assert.Equal(t, want[i].ExitStatus, got[i].ExitStatus, "interaction %d exit status", i)
		assert.Equal(t, want[i].Output.PlainText, got[i].Output.PlainText, "interaction %d plaintext", i)
	}
}

func TestRoundTripRGBColorViaInlineStyle(t *testing.T) {
	var tr transcript.Transcript
	tr = tr.Push(transcript.Interaction{
		Input: transcript.NewUserInput("printf"),
		Output: transcript.NewCaptured([]transcript.StyledLine{
			{{Text: "custom", Fg: style.RGBSpec(style.RgbColor{R: 10, G: 20, B: 30})}},
		}),
		ExitStatus: transcript.ExitStatus{Code: 0, Known: true},
	})

	var buf bytes.Buffer
	require.NoError(t, render.Render(tr, render.DefaultTemplateOptions(), &buf))
	got, err := Parse(&buf)
	require.NoError(t, err)

	require.Len(t, got, 1)
	require.Len(t, got[0].Output.Lines, 1)
	require.Len(t, got[0].Output.Lines[0], 1)
	assert.Equal(t, style.RGBSpec(style.RgbColor{R: 10, G: 20, B: 30}), got[0].Output.Lines[0][0].Fg)
}

func TestParseRejectsDocumentWithoutContainer(t *testing.T) {
	_, err := Parse(bytes.NewReader([]byte(`<svg xmlns="http://www.w3.org/2000/svg"><rect/></svg>`)))
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseHiddenInputsLeavesInputEmpty(t *testing.T) {
	opts := render.DefaultTemplateOptions()
	opts.HiddenInputs = true

	var buf bytes.Buffer
	require.NoError(t, render.Render(sampleTranscript(), opts, &buf))
	got, err := Parse(&buf)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "", got[0].Input.Text)
}
