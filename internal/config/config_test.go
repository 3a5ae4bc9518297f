package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vektra-labs/shellshot/internal/engine"
	"github.com/vektra-labs/shellshot/internal/render"
	"github.com/vektra-labs/shellshot/internal/style"
)

func TestLoadMissingFileReturnsZeroConfig(t *testing.T) {
	cfg, err := Load("/nonexistent/shellshot/config.toml")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestDecodeEngineTable(t *testing.T) {
	const doc = `
[engine]
shell = ["bash", "-i"]
env = ["FOO=bar"]
dir = "/tmp"
init-timeout = "2s"
io-timeout = "500ms"
echo = "off"
exit-status = "none"
transport = "pty"
`
	cfg, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	base, err := cfg.ApplyEngineConfig(engine.Config{})
	require.NoError(t, err)

	assert.Equal(t, []string{"bash", "-i"}, base.Command)
	assert.Equal(t, []string{"FOO=bar"}, base.Env)
	assert.Equal(t, "/tmp", base.Dir)
	assert.Equal(t, 2*time.Second, base.InitTimeout)
	assert.Equal(t, 500*time.Millisecond, base.IOTimeout)
	assert.Equal(t, engine.EchoOff, base.Echoing)
	assert.Equal(t, engine.ExitStatusNone, base.ExitStatus)
	assert.Equal(t, engine.TransportPTY, base.Transport)
}

func TestApplyEngineConfigLeavesBaseAloneWhenFileOmitsField(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`[engine]
shell = ["zsh"]
`))
	require.NoError(t, err)

	base := engine.Config{
		InitTimeout: 9 * time.Second,
		Echoing:     engine.EchoOn,
	}
	got, err := cfg.ApplyEngineConfig(base)
	require.NoError(t, err)

	assert.Equal(t, []string{"zsh"}, got.Command)
	assert.Equal(t, 9*time.Second, got.InitTimeout)
	assert.Equal(t, engine.EchoOn, got.Echoing)
}

func TestApplyEngineConfigRejectsUnknownEchoMode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`[engine]
echo = "sideways"
`))
	require.NoError(t, err)

	_, err = cfg.ApplyEngineConfig(engine.Config{})
	require.Error(t, err)
}

func TestDecodeRenderTable(t *testing.T) {
	const doc = `
[render]
palette = "xterm"
width-px = 900
line-numbers = "continuous"
pure-svg = true

[render.wrap]
disabled = false
hard-wrap-at-char = 100

[render.scroll]
max-height-px = 480
interval = 0.5

[render.window]
mode = "titled"
title = "demo"
`
	cfg, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	opts, err := cfg.ApplyTemplateOptions(render.DefaultTemplateOptions())
	require.NoError(t, err)

	assert.Equal(t, style.PaletteXterm, opts.Palette)
	assert.Equal(t, 900, opts.WidthPx)
	assert.Equal(t, render.LineNumbersContinuous, opts.LineNumbers)
	assert.True(t, opts.PureSVG)
	assert.False(t, opts.Wrap.Disabled)
	assert.Equal(t, 100, opts.Wrap.HardWrapAtChar)
	require.NotNil(t, opts.Scroll)
	assert.Equal(t, 480, opts.Scroll.MaxHeightPx)
	assert.Equal(t, 0.5, opts.Scroll.Interval)
	assert.Equal(t, render.WindowFrameOnTitled, opts.WindowFrame.Mode)
	assert.Equal(t, "demo", opts.WindowFrame.Title)
}

func TestApplyTemplateOptionsRejectsUnknownPalette(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`[render]
palette = "not-a-real-palette"
`))
	require.NoError(t, err)

	_, err = cfg.ApplyTemplateOptions(render.DefaultTemplateOptions())
	require.Error(t, err)
}

func TestHiddenInputsAndPureSVGNeverClearedByConfig(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`[render]
hidden-inputs = false
pure-svg = false
`))
	require.NoError(t, err)

	base := render.DefaultTemplateOptions()
	base.HiddenInputs = true
	base.PureSVG = true

	opts, err := cfg.ApplyTemplateOptions(base)
	require.NoError(t, err)
	assert.True(t, opts.HiddenInputs)
	assert.True(t, opts.PureSVG)
}
