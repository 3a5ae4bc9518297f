package engine

import (
	"context"
	"io"
	"os"

	"github.com/vektra-labs/shellshot/internal/transcript"
)

// Session is a live connection to a spawned child: a combined
// stdin-writer/stdout+stderr-reader, an optional window resize, and a
// terminal wait.
type Session interface {
	io.Writer
	io.Reader

	// Resize changes the controlling terminal's window size. Transports
	// that don't back onto a PTY return ErrResizeUnsupported.
	Resize(rows, cols int) error

	// Wait blocks until the child exits and reports its status.
	Wait() (transcript.ExitStatus, error)

	Close() error
}

// Transport spawns a child process per Config, wiring its I/O into a
// Session.
type Transport interface {
	Spawn(ctx context.Context, cfg Config) (Session, error)
}

func buildEnv(cfg Config) []string {
	env := append([]string{}, os.Environ()...)
	if len(cfg.PathAdditions) > 0 {
		path := os.Getenv("PATH")
		for _, dir := range cfg.PathAdditions {
			path = dir + string(os.PathListSeparator) + path
		}
		env = append(env, "PATH="+path)
	}
	env = append(env, cfg.Env...)
	return env
}
