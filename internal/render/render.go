package render

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/cbroglie/mustache"

	"github.com/vektra-labs/shellshot/internal/transcript"
)

//go:embed templates/rich.mustache
var richTemplate string

//go:embed templates/pure.mustache
var pureTemplate string

const (
	blockMarginPx   = 16.0
	inputPaddingPx  = 6.0
	creatorBanner   = "shellshot"
)

type rootView struct {
	Creator             string
	WidthPx             int
	HeightPx            int
	FontFamily          string
	AdditionalStyles    string
	HasAdditionalStyles bool
	WindowFrame         bool
	WindowTitle         string
	HasWindowTitle      bool
	HasFailures         bool
	PureSVG             bool
	LineHeightPx        float64
	AdvanceWidth        float64
	Palette             []paletteEntryView
	Interactions        []interactionView
	ScrollAnimation     *ScrollAnimation
	HasScroll           bool
}

type paletteEntryView struct {
	Index int
	Hex   string
}

type interactionView struct {
	HasInput       bool
	Prompt         string
	InputText      string
	InputNumber    int
	InputHasNumber bool
	HasExitStatus  bool
	ExitCode       int
	Failure        bool
	OutputLines    []lineView
}

type lineView struct {
	Spans     []spanView
	Number    int
	HasNumber bool
	Y         float64
}

// Render renders t as a self-contained SVG document into w, per opts. It
// is total given a valid transcript and options: the only error path is a
// genuine write failure against w.
func Render(t transcript.Transcript, opts TemplateOptions, w io.Writer) error {
	view, err := buildView(t, opts)
	if err != nil {
		return err
	}

	tpl := richTemplate
	if opts.PureSVG {
		tpl = pureTemplate
	}

	rendered, err := mustache.Render(tpl, view)
	if err != nil {
		return fmt.Errorf("render: template execution failed: %w", err)
	}
	if _, err := io.WriteString(w, rendered); err != nil {
		return fmt.Errorf("render: write failed: %w", err)
	}
	return nil
}

func buildView(t transcript.Transcript, opts TemplateOptions) (rootView, error) {
	numberer := newLineNumberer(opts.LineNumbers)

	var interactions []interactionView
	hasFailures := false
	lineY := 0.0
	lineHeight := opts.LineHeight
	if lineHeight <= 0 {
		lineHeight = 1.3
	}
	lineHeightPx := lineHeight * 16

	for _, interaction := range t {
		numberer.startOutput()

		failure := interaction.ExitStatus.Failed()
		hasFailures = hasFailures || failure

		hasInput := !opts.HiddenInputs && !interaction.Input.Hidden
		var inputNumber int
		var inputHasNumber bool
		if hasInput {
			inputNumber, inputHasNumber = numberer.nextInput()
		}

		lines := applyWrap(interaction.Output.Lines, opts.Wrap)
		var outLines []lineView
		for _, line := range lines {
			number, hasNumber := numberer.next()
			var spans []spanView
			x := 0.0
			for _, sp := range line {
				sv := buildSpanView(sp.Text, sp.Fg, sp.Bg, sp.Attrs, opts.Palette)
				if opts.PureSVG {
					sv.X = x
					sv.Y = lineY + lineHeightPx*0.8
					x += advanceWidthOf(sp.Text, opts)
				}
				spans = append(spans, sv)
			}
			outLines = append(outLines, lineView{
				Spans:     spans,
				Number:    number,
				HasNumber: hasNumber,
				Y:         lineY,
			})
			lineY += lineHeightPx
		}
		lineY += blockMarginPx

		iv := interactionView{
			HasInput:       hasInput,
			Prompt:         interaction.Input.Prompt,
			InputText:      interaction.Input.Text,
			InputNumber:    inputNumber,
			InputHasNumber: inputHasNumber,
			Failure:        failure,
			OutputLines:    outLines,
		}
		if interaction.ExitStatus.Known {
			iv.HasExitStatus = true
			iv.ExitCode = interaction.ExitStatus.Code
		}
		interactions = append(interactions, iv)
	}

	contentHeight := int(lineY)
	var scrollAnim *ScrollAnimation
	if opts.Scroll != nil {
		scrollAnim = computeScrollAnimation(contentHeight, opts.WidthPx, *opts.Scroll)
	}

	heightPx := contentHeight
	if scrollAnim != nil {
		heightPx = opts.Scroll.MaxHeightPx
	}

	palette := make([]paletteEntryView, 0, 16)
	for i := 0; i < 8; i++ {
		palette = append(palette, paletteEntryView{Index: i, Hex: opts.Palette.Colors[i].String()})
	}
	for i := 0; i < 8; i++ {
		palette = append(palette, paletteEntryView{Index: i + 8, Hex: opts.Palette.IntenseColors[i].String()})
	}

	v := rootView{
		Creator:             creatorBanner,
		WidthPx:             opts.WidthPx,
		HeightPx:            heightPx,
		FontFamily:          opts.FontFamily,
		AdditionalStyles:    opts.AdditionalStyles,
		HasAdditionalStyles: opts.AdditionalStyles != "",
		WindowFrame:         opts.WindowFrame.Mode != WindowFrameOff,
		WindowTitle:         opts.WindowFrame.Title,
		HasWindowTitle:      opts.WindowFrame.Mode == WindowFrameOnTitled,
		HasFailures:         hasFailures,
		PureSVG:             opts.PureSVG,
		LineHeightPx:        lineHeightPx,
		AdvanceWidth:        opts.AdvanceWidth,
		Palette:             palette,
		Interactions:        interactions,
		ScrollAnimation:     scrollAnim,
		HasScroll:           scrollAnim != nil,
	}
	return v, nil
}

func advanceWidthOf(text string, opts TemplateOptions) float64 {
	if opts.AdvanceWidth > 0 {
		return float64(len([]rune(text))) * opts.AdvanceWidth
	}
	return float64(glyphWidth(text)) * 8.4
}
