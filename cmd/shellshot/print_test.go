//go:build unix

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPrintRoundTripsExecOutput(t *testing.T) {
	svgPath := filepath.Join(t.TempDir(), "snapshot.svg")
	require.Equal(t, 0, run([]string{"exec", "-shell", "sh", "-args", "-i", "-io-timeout", "1s", "-init-timeout", "2s", "-o", svgPath, "echo Hello"}))

	t.Setenv("COLOR", "never")

	r, w, err := os.Pipe()
	require.NoError(t, err)
	oldStdout := os.Stdout
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = oldStdout })

	exit := run([]string{"print", svgPath})
	require.NoError(t, w.Close())
	require.Equal(t, 0, exit)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Hello")
}
