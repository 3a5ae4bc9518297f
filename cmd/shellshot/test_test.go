//go:build unix

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunTestPassesOnMatchingSnapshot(t *testing.T) {
	svgPath := filepath.Join(t.TempDir(), "snapshot.svg")
	require.Equal(t, 0, run([]string{"exec", "-shell", "sh", "-args", "-i", "-io-timeout", "1s", "-init-timeout", "2s", "-o", svgPath, "echo Hello"}))

	exit := run([]string{"test", "-shell", "sh", "-args", "-i", "-io-timeout", "1s", "-init-timeout", "2s", svgPath})
	require.Equal(t, 0, exit)
}

func TestRunTestRequiresExactlyOnePath(t *testing.T) {
	exit := run([]string{"test"})
	require.Equal(t, 2, exit)
}
