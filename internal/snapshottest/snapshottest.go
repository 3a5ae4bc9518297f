// Package snapshottest replays a parsed transcript's inputs through a
// fresh engine.Engine and reports whether the live output still matches.
package snapshottest

import (
	"context"
	"fmt"

	"github.com/vektra-labs/shellshot/internal/engine"
	"github.com/vektra-labs/shellshot/internal/transcript"
)

// MatchKind selects how strictly live output is compared to the snapshot.
type MatchKind int

const (
	// TextOnly compares plaintext output line-by-line, ignoring style.
	TextOnly MatchKind = iota
	// Precise compares both text and per-span style.
	Precise
)

// UpdateMode governs whether a caller should re-write the source snapshot
// after a test run. It is a value for callers to act on: snapshottest never
// writes files itself, and Test does not take an UpdateMode.
type UpdateMode int

const (
	UpdateNever UpdateMode = iota
	UpdateOnFailure
	UpdateAlways
)

// ResultStatus is the outcome of comparing one interaction.
type ResultStatus int

const (
	StatusPassed ResultStatus = iota
	StatusFailed
	StatusPanicked
)

func (s ResultStatus) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusPanicked:
		return "panicked"
	default:
		return "unknown"
	}
}

// Result is the outcome for a single interaction, indexed into the
// transcript that was replayed.
type Result struct {
	Index  int
	Status ResultStatus
	Diff   string
}

// Report summarizes a full replay.
type Report struct {
	Passed, Failed, Panicked int
	Results                  []Result
}

// Test replays every input in want through a fresh engine built from cfg,
// and compares the live output against want per kind. An interaction is
// Panicked when the engine itself errored trying to produce it (timeout,
// IO failure) — including every interaction after the one that triggered
// the error, since a dead engine can't produce any more comparable output.
// It is Failed when the engine ran fine but the output differs.
func Test(ctx context.Context, want transcript.Transcript, cfg engine.Config, kind MatchKind) (*Report, error) {
	inputs := make([]transcript.UserInput, len(want))
	for i, interaction := range want {
		inputs[i] = interaction.Input
	}

	eng := engine.New(cfg)
	got, runErr := eng.Run(ctx, inputs)

	report := &Report{}
	for i, wantInteraction := range want {
		if i >= len(got) {
			report.Panicked++
			report.Results = append(report.Results, Result{
				Index:  i,
				Status: StatusPanicked,
				Diff:   fmt.Sprintf("engine error before this interaction completed: %v", runErr),
			})
			continue
		}

		gotInteraction := got[i]
		if interactionsMatch(wantInteraction, gotInteraction, kind) {
			report.Passed++
			report.Results = append(report.Results, Result{Index: i, Status: StatusPassed})
			continue
		}

		report.Failed++
		report.Results = append(report.Results, Result{
			Index:  i,
			Status: StatusFailed,
			Diff:   renderDiff(wantInteraction, gotInteraction, kind),
		})
	}

	return report, nil
}

func interactionsMatch(want, got transcript.Interaction, kind MatchKind) bool {
	if want.ExitStatus.Known && got.ExitStatus.Known && want.ExitStatus.Code != got.ExitStatus.Code {
		return false
	}
	if want.Output.PlainText != got.Output.PlainText {
		return false
	}
	if kind == TextOnly {
		return true
	}
	return stylesMatch(want.Output.Lines, got.Output.Lines)
}

func stylesMatch(want, got []transcript.StyledLine) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if len(want[i]) != len(got[i]) {
			return false
		}
		for j := range want[i] {
			a, b := want[i][j], got[i][j]
			if a.Text != b.Text || a.Fg != b.Fg || a.Bg != b.Bg || a.Attrs != b.Attrs {
				return false
			}
		}
	}
	return true
}
