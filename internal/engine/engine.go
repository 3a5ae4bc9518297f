package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/vektra-labs/shellshot/internal/ansi"
	"github.com/vektra-labs/shellshot/internal/transcript"
)

type engineState int

const (
	stateUninitialized engineState = iota
	stateInitializing
	stateReady
	stateRunning
	stateTerminated
)

// Engine owns exactly one child session for its lifetime, driving it
// through initialization and a sequence of inputs per the marker protocol.
type Engine struct {
	cfg       Config
	transport Transport
	logger    *slog.Logger

	marker string
	recipe markerRecipe

	session  Session
	reader   *reader
	echoing  bool
	state    engineState
}

// New constructs an Engine for cfg. No child is spawned until Run is
// called.
func New(cfg Config) *Engine {
	cfg = cfg.withDefaults()

	marker := newNonce()
	kind := ShellUnknown
	if cfg.ExitStatus == ExitStatusKnownShell {
		kind = shellKindOf(cfg.Command[0])
	}

	var transport Transport = pipeTransport{}
	if cfg.Transport == TransportPTY {
		transport = ptyTransport{}
	}

	return &Engine{
		cfg:       cfg,
		transport: transport,
		logger:    cfg.Logger,
		marker:    marker,
		recipe:    newMarkerRecipe(kind, marker),
		state:     stateUninitialized,
	}
}

// State reports the engine's current position in its state machine,
// mainly for tests and diagnostics.
func (e *Engine) State() string {
	switch e.state {
	case stateUninitialized:
		return "uninitialized"
	case stateInitializing:
		return "initializing"
	case stateReady:
		return "ready"
	case stateRunning:
		return "running"
	default:
		return "terminated"
	}
}

// Run spawns the child, performs the initialization handshake, then
// drives inputs one at a time, returning the resulting transcript. The
// child is always torn down before Run returns, whether it returns an
// error or not.
func (e *Engine) Run(ctx context.Context, inputs []transcript.UserInput) (transcript.Transcript, error) {
	if e.state != stateUninitialized {
		return nil, fmt.Errorf("engine: Run called more than once")
	}

	if err := e.initialize(ctx); err != nil {
		e.terminate()
		e.state = stateTerminated
		return nil, err
	}
	defer e.terminate()

	var tr transcript.Transcript
	for i, in := range inputs {
		select {
		case <-ctx.Done():
			e.state = stateTerminated
			return tr, ctx.Err()
		default:
		}

		e.state = stateRunning
		interaction, err := e.runInput(i, in)
		if err != nil {
			e.state = stateTerminated
			return tr, err
		}
		tr = tr.Push(interaction)
		e.state = stateReady
	}
	return tr, nil
}

func (e *Engine) initialize(ctx context.Context) error {
	e.state = stateInitializing

	session, err := e.transport.Spawn(ctx, e.cfg)
	if err != nil {
		return err
	}
	e.session = session
	e.reader = newReader(session)

	switch e.cfg.Echoing {
	case EchoOn:
		e.echoing = true
	case EchoOff:
		e.echoing = false
	default:
		if err := e.detectEcho(); err != nil {
			return err
		}
	}

	for _, cmd := range e.cfg.InitCommands {
		if _, err := io.WriteString(e.session, cmd+"\n"); err != nil {
			return &IOError{Cause: err}
		}
	}

	if _, err := io.WriteString(e.session, e.recipe.line(e.marker)+"\n"); err != nil {
		return &IOError{Cause: err}
	}
	if _, err := e.awaitMarker(e.cfg.InitTimeout); err != nil {
		if errors.Is(err, errIdleTimeout) {
			return &TimeoutError{Phase: Phase{Kind: PhaseInit}}
		}
		return err
	}

	e.state = stateReady
	return nil
}

// detectEcho writes a sentinel input during initialization and checks
// whether it reappears before any real output, per the "auto" echo mode.
func (e *Engine) detectEcho() error {
	sentinel := "probe_" + e.marker[:8]
	if _, err := io.WriteString(e.session, sentinel+"\n"); err != nil {
		return &IOError{Cause: err}
	}
	time.Sleep(e.cfg.IOTimeout / 4)
	snapshot, _ := e.reader.snapshot()
	e.echoing = bytes.Contains(snapshot, []byte(sentinel))
	return nil
}

// markerResult is what awaitMarker found: the bytes preceding the marker
// match, and its optional exit-code capture.
type markerResult struct {
	before      []byte
	exitCode    string
	hasExitCode bool
}

// awaitMarker polls the background reader until the recipe's marker
// pattern is found, or timeout elapses with no new bytes arriving.
func (e *Engine) awaitMarker(timeout time.Duration) (markerResult, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		snapshot, rErr := e.reader.snapshot()
		if loc := e.recipe.pattern.FindSubmatchIndex(snapshot); loc != nil {
			before := append([]byte(nil), snapshot[:loc[0]]...)
			e.reader.consume(loc[1])
			exitCode := string(snapshot[loc[2]:loc[3]])
			return markerResult{
				before:      before,
				exitCode:    exitCode,
				hasExitCode: e.recipe.supportsExitStatus && exitCode != "",
			}, nil
		}
		if rErr != nil {
			return markerResult{}, &IOError{Cause: rErr}
		}

		select {
		case <-e.reader.notify:
			timer.Reset(timeout)
			continue
		case <-timer.C:
			return markerResult{}, errIdleTimeout
		}
	}
}

func (e *Engine) runInput(idx int, in transcript.UserInput) (transcript.Interaction, error) {
	text := in.Text
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if _, err := io.WriteString(e.session, text); err != nil {
		return transcript.Interaction{}, &IOError{Cause: err}
	}

	markerLine := e.recipe.line(e.marker)
	if _, err := io.WriteString(e.session, markerLine+"\n"); err != nil {
		return transcript.Interaction{}, &IOError{Cause: err}
	}

	res, err := e.awaitMarker(e.cfg.IOTimeout)
	if err != nil {
		if errors.Is(err, errIdleTimeout) {
			return transcript.Interaction{}, &TimeoutError{Phase: Phase{Kind: PhaseInput, Input: idx}}
		}
		return transcript.Interaction{}, err
	}

	raw := res.before
	if e.echoing {
		raw = stripLeadingEcho(raw, strings.TrimSuffix(text, "\n"))
	}
	raw = stripLeadingEcho(raw, markerLine)

	decoded := raw
	var captured transcript.Captured
	if e.cfg.LineDecoder != nil {
		captured, err = ansi.Parse([]byte(e.cfg.LineDecoder(decoded)))
	} else {
		captured, err = ansi.Parse(decoded)
	}
	if err != nil {
		e.logger.Warn("unrecognized terminal escape sequence, continuing with raw text",
			"error", err, "input_index", idx)
		captured = transcript.Captured{PlainText: string(decoded)}
	}

	status := transcript.ExitStatus{}
	if res.hasExitCode {
		if code, cerr := strconv.Atoi(res.exitCode); cerr == nil {
			status = transcript.ExitStatus{Code: code, Known: true}
		}
	}

	return transcript.Interaction{Input: in, Output: captured, ExitStatus: status}, nil
}

// stripLeadingEcho removes one leading occurrence of line from raw, after
// skipping any leading line terminators. Used to drop an echoed input or
// marker command before it's mistaken for real output.
func stripLeadingEcho(raw []byte, line string) []byte {
	trimmed := bytes.TrimLeft(raw, "\r\n")
	prefix := []byte(line)
	if !bytes.HasPrefix(trimmed, prefix) {
		return raw
	}
	rest := trimmed[len(prefix):]
	rest = bytes.TrimPrefix(rest, []byte("\r\n"))
	rest = bytes.TrimPrefix(rest, []byte("\n"))
	return rest
}

func (e *Engine) terminate() {
	if e.session == nil {
		e.state = stateTerminated
		return
	}
	_, _ = io.WriteString(e.session, "exit\n")
	time.Sleep(e.cfg.IOTimeout / 4)
	_ = e.session.Close()
	e.state = stateTerminated
}
