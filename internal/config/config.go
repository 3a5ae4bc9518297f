// Package config loads TOML configuration files that supply defaults for
// the engine and render packages, so that --config-path can provide
// anything the CLI flags can.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vektra-labs/shellshot/internal/engine"
	"github.com/vektra-labs/shellshot/internal/render"
	"github.com/vektra-labs/shellshot/internal/style"
)

// Config is the decoded form of a shellshot TOML config file. Every field
// is optional; a zero Config resolves to the engine and render packages'
// own defaults.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Render RenderConfig `toml:"render"`
}

// EngineConfig mirrors the subset of engine.Config that makes sense to
// source from a file rather than a one-off flag.
type EngineConfig struct {
	Shell       []string       `toml:"shell"`
	Env         []string       `toml:"env"`
	Dir         string         `toml:"dir"`
	InitCmds    []string       `toml:"init-commands"`
	InitTimeout durationString `toml:"init-timeout"`
	IOTimeout   durationString `toml:"io-timeout"`
	Echo        string         `toml:"echo"`        // "auto", "off", "on"
	ExitStatus  string         `toml:"exit-status"` // "shell", "none"
	Transport   string         `toml:"transport"`   // "pipes", "pty"
}

// RenderConfig mirrors render.TemplateOptions.
type RenderConfig struct {
	Palette          string        `toml:"palette"`
	FontFamily       string        `toml:"font-family"`
	AdditionalStyles string        `toml:"additional-styles"`
	WidthPx          int           `toml:"width-px"`
	LineHeight       float64       `toml:"line-height"`
	AdvanceWidth     float64       `toml:"advance-width"`
	HiddenInputs     bool          `toml:"hidden-inputs"`
	PureSVG          bool          `toml:"pure-svg"`
	LineNumbers      string        `toml:"line-numbers"` // "none", "each-output", "continuous-outputs", "continuous"
	Wrap             WrapConfig    `toml:"wrap"`
	Scroll           *ScrollConfig `toml:"scroll"`
	Window           WindowConfig  `toml:"window"`
}

// WrapConfig mirrors render.Wrap.
type WrapConfig struct {
	Disabled       bool `toml:"disabled"`
	HardWrapAtChar int  `toml:"hard-wrap-at-char"`
}

// ScrollConfig mirrors render.ScrollOptions. A nil *ScrollConfig in
// RenderConfig leaves scrolling disabled, matching a nil
// render.TemplateOptions.Scroll.
type ScrollConfig struct {
	MaxHeightPx        int     `toml:"max-height-px"`
	MinScrollbarHeight int     `toml:"min-scrollbar-height"`
	PixelsPerScroll    int     `toml:"pixels-per-scroll"`
	Interval           float64 `toml:"interval"`
}

// WindowConfig mirrors render.WindowFrame.
type WindowConfig struct {
	Mode  string `toml:"mode"` // "off", "on", "titled"
	Title string `toml:"title"`
}

// durationString decodes a TOML string like "250ms" into a time.Duration,
// so the file can use the same notation as the CLI's -T/-I flags.
type durationString time.Duration

func (d *durationString) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", string(text), err)
	}
	*d = durationString(parsed)
	return nil
}

func (d durationString) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Load reads and decodes the TOML file at path. A missing file is not an
// error: it yields a zero Config, so callers can pass --config-path only
// when they have one.
//
// SECURITY: rejects symlinks to prevent a symlinked --config-path from
// reading an attacker-chosen file (e.g. config-path -> /etc/passwd).
// Intermediate directory symlinks are not checked; the threat model is
// direct file substitution at the path the caller named.
func Load(path string) (*Config, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}
	if fi.Mode()&os.ModeSymlink != 0 {
		return nil, fmt.Errorf("config: symlink not allowed in config path: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: opening %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads and decodes TOML from r.
func Decode(r io.Reader) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	return cfg, nil
}

// ApplyEngineConfig builds an engine.Config from the file's [engine] table,
// starting from base: every field the file sets replaces the base value,
// and fields the file omits keep the base value.
func (c *Config) ApplyEngineConfig(base engine.Config) (engine.Config, error) {
	if c == nil {
		return base, nil
	}
	e := c.Engine
	if len(e.Shell) > 0 {
		base.Command = e.Shell
	}
	if len(e.Env) > 0 {
		base.Env = e.Env
	}
	if e.Dir != "" {
		base.Dir = e.Dir
	}
	if len(e.InitCmds) > 0 {
		base.InitCommands = e.InitCmds
	}
	if e.InitTimeout != 0 {
		base.InitTimeout = time.Duration(e.InitTimeout)
	}
	if e.IOTimeout != 0 {
		base.IOTimeout = time.Duration(e.IOTimeout)
	}
	switch e.Echo {
	case "", "auto":
		// leave base.Echoing alone
	case "off":
		base.Echoing = engine.EchoOff
	case "on":
		base.Echoing = engine.EchoOn
	default:
		return base, fmt.Errorf("config: unrecognized echo mode %q", e.Echo)
	}
	switch e.ExitStatus {
	case "", "shell":
	case "none":
		base.ExitStatus = engine.ExitStatusNone
	default:
		return base, fmt.Errorf("config: unrecognized exit-status mode %q", e.ExitStatus)
	}
	switch e.Transport {
	case "", "pipes":
	case "pty":
		base.Transport = engine.TransportPTY
	default:
		return base, fmt.Errorf("config: unrecognized transport %q", e.Transport)
	}
	return base, nil
}

// ApplyTemplateOptions builds render.TemplateOptions from the file's
// [render] table, starting from base.
func (c *Config) ApplyTemplateOptions(base render.TemplateOptions) (render.TemplateOptions, error) {
	if c == nil {
		return base, nil
	}
	r := c.Render
	if r.Palette != "" {
		p, err := style.ByName(r.Palette)
		if err != nil {
			return base, err
		}
		base.Palette = p
	}
	if r.FontFamily != "" {
		base.FontFamily = r.FontFamily
	}
	if r.AdditionalStyles != "" {
		base.AdditionalStyles = r.AdditionalStyles
	}
	if r.WidthPx != 0 {
		base.WidthPx = r.WidthPx
	}
	if r.LineHeight != 0 {
		base.LineHeight = r.LineHeight
	}
	if r.AdvanceWidth != 0 {
		base.AdvanceWidth = r.AdvanceWidth
	}
	base.HiddenInputs = base.HiddenInputs || r.HiddenInputs
	base.PureSVG = base.PureSVG || r.PureSVG

	if r.LineNumbers != "" {
		ln, err := parseLineNumbers(r.LineNumbers)
		if err != nil {
			return base, err
		}
		base.LineNumbers = ln
	}

	if r.Wrap.HardWrapAtChar != 0 {
		base.Wrap.Disabled = false
		base.Wrap.HardWrapAtChar = r.Wrap.HardWrapAtChar
	}
	if r.Wrap.Disabled {
		base.Wrap.Disabled = true
	}

	if r.Scroll != nil {
		base.Scroll = &render.ScrollOptions{
			MaxHeightPx:        r.Scroll.MaxHeightPx,
			MinScrollbarHeight: r.Scroll.MinScrollbarHeight,
			PixelsPerScroll:    r.Scroll.PixelsPerScroll,
			Interval:           r.Scroll.Interval,
		}
	}

	if r.Window.Mode != "" {
		mode, err := parseWindowFrameMode(r.Window.Mode)
		if err != nil {
			return base, err
		}
		base.WindowFrame.Mode = mode
	}
	if r.Window.Title != "" {
		base.WindowFrame.Title = r.Window.Title
	}

	return base, nil
}

func parseLineNumbers(s string) (render.LineNumbers, error) {
	switch s {
	case "none":
		return render.LineNumbersNone, nil
	case "each-output":
		return render.LineNumbersEachOutput, nil
	case "continuous-outputs":
		return render.LineNumbersContinuousOutputs, nil
	case "continuous":
		return render.LineNumbersContinuous, nil
	default:
		return 0, fmt.Errorf("config: unrecognized line-numbers mode %q", s)
	}
}

func parseWindowFrameMode(s string) (render.WindowFrameMode, error) {
	switch s {
	case "off":
		return render.WindowFrameOff, nil
	case "on":
		return render.WindowFrameOn, nil
	case "titled":
		return render.WindowFrameOnTitled, nil
	default:
		return 0, fmt.Errorf("config: unrecognized window mode %q", s)
	}
}
