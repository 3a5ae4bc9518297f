package engine

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/vektra-labs/shellshot/internal/transcript"
)

// pipeTransport spawns the child with ordinary OS pipes for stdin and a
// merged stdout+stderr, mirroring a plain (non-interactive) terminal
// session.
type pipeTransport struct{}

func (pipeTransport) Spawn(ctx context.Context, cfg Config) (Session, error) {
	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = buildEnv(cfg)

	// Share a single OS pipe between stdout and stderr so bytes from both
	// streams land in the order the kernel actually delivered them,
	// rather than being raced between two separate pipes.
	outRead, outWrite, err := os.Pipe()
	if err != nil {
		return nil, &SpawnError{Cause: err}
	}
	cmd.Stdout = outWrite
	cmd.Stderr = outWrite

	stdin, err := cmd.StdinPipe()
	if err != nil {
		outRead.Close()
		outWrite.Close()
		return nil, &SpawnError{Cause: err}
	}

	if err := cmd.Start(); err != nil {
		outRead.Close()
		outWrite.Close()
		return nil, &SpawnError{Cause: err}
	}
	outWrite.Close() // the child holds its own copy of the write end

	return &pipeSession{cmd: cmd, stdin: stdin, stdout: outRead}, nil
}

type pipeSession struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *os.File
}

func (s *pipeSession) Write(p []byte) (int, error) { return s.stdin.Write(p) }
func (s *pipeSession) Read(p []byte) (int, error)  { return s.stdout.Read(p) }

func (s *pipeSession) Resize(int, int) error { return ErrResizeUnsupported }

func (s *pipeSession) Wait() (transcript.ExitStatus, error) {
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

func (s *pipeSession) Close() error {
	_ = s.stdin.Close()
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	return s.stdout.Close()
}
