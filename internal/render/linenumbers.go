package render

// lineNumberer assigns line numbers to input and output lines per the
// chosen mode. Continuous counts both; ContinuousOutputs and EachOutput
// count output lines only, so an input line is never numbered under
// either of those.
type lineNumberer struct {
	mode    LineNumbers
	counter int
}

func newLineNumberer(mode LineNumbers) *lineNumberer {
	return &lineNumberer{mode: mode}
}

// startOutput resets the counter between interactions for EachOutput mode.
func (n *lineNumberer) startOutput() {
	if n.mode == LineNumbersEachOutput {
		n.counter = 0
	}
}

// nextInput returns the number to assign to an interaction's input line,
// and whether input numbering is enabled. Only Continuous numbers inputs.
func (n *lineNumberer) nextInput() (int, bool) {
	if n.mode != LineNumbersContinuous {
		return 0, false
	}
	n.counter++
	return n.counter, true
}

// next returns the number to assign to the next output line, and whether
// numbering is enabled at all.
func (n *lineNumberer) next() (int, bool) {
	if n.mode == LineNumbersNone {
		return 0, false
	}
	n.counter++
	return n.counter, true
}
