//go:build unix

package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vektra-labs/shellshot/internal/transcript"
)

func shTestConfig() Config {
	return Config{
		Command:     []string{"sh"},
		InitTimeout: 2 * time.Second,
		IOTimeout:   time.Second,
		ExitStatus:  ExitStatusKnownShell,
		Echoing:     EchoOff,
	}
}

func TestEngineRunPlainEcho(t *testing.T) {
	e := New(shTestConfig())
	tr, err := e.Run(context.Background(), []transcript.UserInput{
		transcript.NewUserInput("echo Hello"),
	})
	require.NoError(t, err)
	require.Len(t, tr, 1)
	assert.Equal(t, "Hello", tr[0].Output.PlainText)
	assert.True(t, tr[0].ExitStatus.Known)
	assert.Equal(t, 0, tr[0].ExitStatus.Code)
}

func TestEngineRunMultipleInputs(t *testing.T) {
	e := New(shTestConfig())
	tr, err := e.Run(context.Background(), []transcript.UserInput{
		transcript.NewUserInput("echo one"),
		transcript.NewUserInput("echo two"),
	})
	require.NoError(t, err)
	require.Len(t, tr, 2)
	assert.Equal(t, "one", tr[0].Output.PlainText)
	assert.Equal(t, "two", tr[1].Output.PlainText)
}

func TestEngineRunCapturesExitCode(t *testing.T) {
	e := New(shTestConfig())
	tr, err := e.Run(context.Background(), []transcript.UserInput{
		transcript.NewUserInput("false"),
	})
	require.NoError(t, err)
	require.Len(t, tr, 1)
	assert.True(t, tr[0].ExitStatus.Known)
	assert.Equal(t, 1, tr[0].ExitStatus.Code)
}

func TestEngineSpawnFailure(t *testing.T) {
	cfg := shTestConfig()
	cfg.Command = []string{"/nonexistent/shell/binary"}
	e := New(cfg)
	_, err := e.Run(context.Background(), nil)
	require.Error(t, err)
	var spawnErr *SpawnError
	assert.ErrorAs(t, err, &spawnErr)
}

func TestEngineInitTimeout(t *testing.T) {
	cfg := shTestConfig()
	// "sleep" never responds to the end-marker command, so initialization
	// must time out rather than hang.
	cfg.Command = []string{"sleep", "5"}
	cfg.InitTimeout = 50 * time.Millisecond
	e := New(cfg)
	_, err := e.Run(context.Background(), nil)
	require.Error(t, err)
	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, PhaseInit, timeoutErr.Phase.Kind)
}

func TestEngineRunContextCancellation(t *testing.T) {
	e := New(shTestConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// A context cancelled up front must not let Run succeed, whether the
	// child fails to spawn, the handshake times out, or ctx.Err() itself
	// is returned.
	_, err := e.Run(ctx, []transcript.UserInput{
		transcript.NewUserInput("echo one"),
	})
	assert.Error(t, err)
}

func TestEngineStateProgression(t *testing.T) {
	e := New(shTestConfig())
	assert.Equal(t, "uninitialized", e.State())
	_, err := e.Run(context.Background(), []transcript.UserInput{
		transcript.NewUserInput("echo hi"),
	})
	require.NoError(t, err)
	assert.Equal(t, "terminated", e.State())
}
