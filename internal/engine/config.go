// Package engine drives a child shell through a sequence of inputs,
// demarcating each input's output with a marker protocol and attributing
// an exit status to it where the shell supports one.
package engine

import (
	"log/slog"
	"runtime"
	"time"
)

// EchoMode controls whether the engine expects the child to echo each
// input line back before its real output.
type EchoMode int

const (
	// EchoAuto detects echoing during initialization via a sentinel input.
	EchoAuto EchoMode = iota
	EchoOff
	EchoOn
)

// ExitStatusSupport selects whether the engine attempts to recover a
// per-command exit code using a known shell's marker recipe.
type ExitStatusSupport int

const (
	ExitStatusKnownShell ExitStatusSupport = iota
	ExitStatusNone
)

// TransportKind selects the channel used to talk to the child: plain OS
// pipes, or a pseudo-terminal.
type TransportKind int

const (
	TransportPipes TransportKind = iota
	TransportPTY
)

// Config configures an Engine and the child process it drives.
type Config struct {
	Command       []string
	Env           []string
	PathAdditions []string
	Dir           string

	InitCommands []string
	InitTimeout  time.Duration
	IOTimeout    time.Duration

	// LineDecoder converts raw child bytes to UTF-8 text. The zero value
	// uses lossy UTF-8 decoding (invalid sequences replaced, never an
	// error).
	LineDecoder func([]byte) string

	Echoing    EchoMode
	ExitStatus ExitStatusSupport
	Transport  TransportKind

	// Rows and Cols set the PTY window size; ignored by the pipe
	// transport.
	Rows, Cols int

	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if len(c.Command) == 0 {
		if runtime.GOOS == "windows" {
			c.Command = []string{"cmd"}
		} else {
			c.Command = []string{"sh", "-i"}
		}
	}
	if c.InitTimeout <= 0 {
		c.InitTimeout = time.Second
	}
	if c.IOTimeout <= 0 {
		c.IOTimeout = 250 * time.Millisecond
	}
	if c.Rows <= 0 {
		c.Rows = 24
	}
	if c.Cols <= 0 {
		c.Cols = 80
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
