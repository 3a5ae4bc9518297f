package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withStdin(t *testing.T, data []byte) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "stdin")
	require.NoError(t, os.WriteFile(path, data, 0644))

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	old := os.Stdin
	os.Stdin = f
	t.Cleanup(func() { os.Stdin = old })
}

func TestRunCaptureRendersStdinAsSnapshot(t *testing.T) {
	withStdin(t, []byte("plain output\n"))

	out := filepath.Join(t.TempDir(), "snapshot.svg")
	exit := run([]string{"capture", "-o", out, "echo hi"})
	require.Equal(t, 0, exit)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(data, []byte("plain output")))
	assert.True(t, bytes.Contains(data, []byte("echo hi")))
}
