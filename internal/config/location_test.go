package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPathHonorsEnvOverride(t *testing.T) {
	t.Setenv("SHELLSHOT_CONFIG", "/etc/shellshot.toml")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/shellshot.toml", p)
}

func TestDefaultPathFallsBackToUserConfigDir(t *testing.T) {
	t.Setenv("SHELLSHOT_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/home/someone/.config")

	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/someone/.config", "shellshot", "config.toml"), p)
}
