package render

import (
	"math"
	"strconv"
)

// ScrollAnimation is the pre-computed keyframe sequence for a scrolled SVG:
// a discrete-stepped viewBox pan plus a matching scrollbar thumb position,
// both expressed as SMIL `values` strings ready to drop into a template.
type ScrollAnimation struct {
	Steps           int
	DurationSeconds float64
	ViewBoxYValues  string
	ThumbYValues    string
	ThumbHeightPx   float64
	TrackHeightPx   float64
}

// computeScrollAnimation derives a discrete-keyframe scroll animation:
// steps = ceil((contentHeight-maxHeight)/pixelsPerScroll); steps+1 discrete
// keyframes for the viewBox y-offset and for a synthetic scrollbar thumb,
// the thumb geometry sized proportionally to the visible fraction of the
// content, the way a live scrollbar's thumb tracks viewport coverage.
func computeScrollAnimation(contentHeightPx, widthPx int, opts ScrollOptions) *ScrollAnimation {
	if opts.MaxHeightPx <= 0 || contentHeightPx <= opts.MaxHeightPx {
		return nil
	}
	overflow := contentHeightPx - opts.MaxHeightPx
	pixelsPerScroll := opts.PixelsPerScroll
	if pixelsPerScroll <= 0 {
		pixelsPerScroll = 1
	}
	steps := int(math.Ceil(float64(overflow) / float64(pixelsPerScroll)))
	if steps < 1 {
		steps = 1
	}

	viewBoxY := make([]float64, steps+1)
	for i := 0; i <= steps; i++ {
		y := float64(i) * float64(pixelsPerScroll)
		if y > float64(overflow) {
			y = float64(overflow)
		}
		viewBoxY[i] = y
	}

	trackHeight := float64(opts.MaxHeightPx)
	thumbHeight := trackHeight * (trackHeight / float64(contentHeightPx))
	if min := float64(opts.MinScrollbarHeight); min > 0 && thumbHeight < min {
		thumbHeight = min
	}
	if thumbHeight > trackHeight {
		thumbHeight = trackHeight
	}
	maxTop := trackHeight - thumbHeight

	thumbY := make([]float64, steps+1)
	for i, y := range viewBoxY {
		if overflow == 0 {
			thumbY[i] = 0
			continue
		}
		thumbY[i] = (y / float64(overflow)) * maxTop
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = 1
	}

	return &ScrollAnimation{
		Steps:           steps,
		DurationSeconds: interval * float64(steps),
		ViewBoxYValues:  joinFloats(viewBoxY),
		ThumbYValues:    joinFloats(thumbY),
		ThumbHeightPx:   thumbHeight,
		TrackHeightPx:   trackHeight,
	}
}

func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'f', 1, 64)
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += ";" + p
	}
	return out
}
