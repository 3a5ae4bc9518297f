package config

import (
	"os"
	"path/filepath"
)

// DefaultPath returns the config file path used when --config-path is not
// given: the SHELLSHOT_CONFIG environment variable if set, otherwise
// shellshot/config.toml under os.UserConfigDir() (on Linux,
// $XDG_CONFIG_HOME or ~/.config).
func DefaultPath() (string, error) {
	if p := os.Getenv("SHELLSHOT_CONFIG"); p != "" {
		return p, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "shellshot", "config.toml"), nil
}
