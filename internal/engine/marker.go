package engine

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ShellKind identifies a known shell's marker-recipe dialect, inferred
// from the configured command's executable name.
type ShellKind int

const (
	ShellUnknown ShellKind = iota
	ShellSh
	ShellBash
	ShellPowerShell
	ShellPwsh
	ShellCmd
)

func shellKindOf(command string) ShellKind {
	name := strings.ToLower(filepath.Base(command))
	name = strings.TrimSuffix(name, ".exe")
	switch name {
	case "sh":
		return ShellSh
	case "bash":
		return ShellBash
	case "powershell":
		return ShellPowerShell
	case "pwsh":
		return ShellPwsh
	case "cmd":
		return ShellCmd
	default:
		return ShellUnknown
	}
}

// markerRecipe knows how to build the end-marker command line for a given
// nonce, and how to recognize that marker (plus an optional trailing exit
// code) in the child's output.
type markerRecipe struct {
	line               func(marker string) string
	pattern            *regexp.Regexp
	supportsExitStatus bool
}

// newMarkerRecipe builds the recipe for kind. The pattern always has
// exactly one capture group: the exit-code digits, empty when the shell's
// dialect doesn't support one.
func newMarkerRecipe(kind ShellKind, marker string) markerRecipe {
	quoted := regexp.QuoteMeta(marker)
	switch kind {
	case ShellSh, ShellBash:
		return markerRecipe{
			line:               func(m string) string { return fmt.Sprintf("echo %s$?", m) },
			pattern:            regexp.MustCompile(quoted + `(-?\d+)\r?\n`),
			supportsExitStatus: true,
		}
	case ShellPowerShell, ShellPwsh:
		return markerRecipe{
			line: func(m string) string {
				return fmt.Sprintf(`Write-Host "%s$(if ($?) { 0 } else { 1 })"`, m)
			},
			pattern:            regexp.MustCompile(quoted + `(\d+)\r?\n`),
			supportsExitStatus: true,
		}
	case ShellCmd:
		return markerRecipe{
			line:               func(m string) string { return fmt.Sprintf("echo %s%%errorlevel%%", m) },
			pattern:            regexp.MustCompile(quoted + `(-?\d+)\r?\n`),
			supportsExitStatus: true,
		}
	default:
		return markerRecipe{
			line:               func(m string) string { return fmt.Sprintf("echo %s", m) },
			pattern:            regexp.MustCompile(quoted + `()\r?\n`),
			supportsExitStatus: false,
		}
	}
}

// newNonce returns a uniform-random ASCII marker with well over the
// spec's 64-bit entropy floor (a UUIDv4 carries 122 bits).
func newNonce() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
