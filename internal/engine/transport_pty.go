package engine

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/creack/pty"

	"github.com/vektra-labs/shellshot/internal/transcript"
)

// ptyTransport spawns the child attached to a pseudo-terminal, adapted
// from termtest.PTYTest's Start/readOutput pairing: a single master file
// descriptor serves as both the combined input writer and combined
// stdout+stderr reader.
type ptyTransport struct{}

func (ptyTransport) Spawn(ctx context.Context, cfg Config) (Session, error) {
	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = buildEnv(cfg)

	ws := &pty.Winsize{Rows: uint16(cfg.Rows), Cols: uint16(cfg.Cols)}
	ptmx, err := pty.StartWithSize(cmd, ws)
	if err != nil {
		return nil, &SpawnError{Cause: err}
	}
	return &ptySession{cmd: cmd, ptmx: ptmx}, nil
}

type ptySession struct {
	cmd  *exec.Cmd
	ptmx *os.File
}

func (s *ptySession) Write(p []byte) (int, error) { return s.ptmx.Write(p) }
func (s *ptySession) Read(p []byte) (int, error)  { return s.ptmx.Read(p) }

func (s *ptySession) Resize(rows, cols int) error {
	return pty.Setsize(s.ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

func (s *ptySession) Wait() (transcript.ExitStatus, error) {
	err := s.cmd.Wait()
	if err == nil {
		return transcript.ExitStatus{Code: 0, Known: true}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return transcript.ExitStatus{Code: exitErr.ExitCode(), Known: true}, nil
	}
	return transcript.ExitStatus{}, err
}

func (s *ptySession) Close() error {
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	return s.ptmx.Close()
}
