package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vektra-labs/shellshot/internal/config"
	"github.com/vektra-labs/shellshot/internal/engine"
	"github.com/vektra-labs/shellshot/internal/render"
	"github.com/vektra-labs/shellshot/internal/style"
)

// commonFlags holds the engine and render flags shared by exec, capture,
// and test. Values start at the zero value; engineConfig and
// templateOptions merge them onto a config-derived base so an unset flag
// never clobbers the config file.
type commonFlags struct {
	shell       string
	args        stringList
	cwd         string
	env         stringList
	echoing     string
	ioTimeout   time.Duration
	initTimeout time.Duration

	palette        string
	font           string
	styles         string
	width          int
	hardWrap       string
	hardWrapSet    bool
	lineHeight     float64
	advanceWidth   float64
	scroll         string
	scrollSet      bool
	scrollInterval float64
	scrollLen      int
	window         string
	windowSet      bool
	pty            bool
	pureSVG        bool
	noInputs       bool
	lineNumbers    string
	configPath     string
}

// stringList implements flag.Value by repeating a flag to append values.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func registerEngineFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVar(&f.shell, "shell", "", "shell command to run (default: sh -i)")
	fs.Var(&f.args, "args", "additional shell argument (repeatable)")
	fs.StringVar(&f.cwd, "cwd", "", "working directory for the shell")
	fs.Var(&f.env, "env", "environment variable KEY=VALUE (repeatable)")
	fs.StringVar(&f.echoing, "echoing", "", "auto, off, or on")
	fs.DurationVar(&f.ioTimeout, "io-timeout", 0, "idle timeout waiting for output")
	fs.DurationVar(&f.ioTimeout, "T", 0, "shorthand for -io-timeout")
	fs.DurationVar(&f.initTimeout, "init-timeout", 0, "idle timeout waiting for shell startup")
	fs.DurationVar(&f.initTimeout, "I", 0, "shorthand for -init-timeout")
	fs.BoolVar(&f.pty, "pty", false, "drive the shell over a pseudo-terminal instead of pipes")
	registerConfigFlag(fs, f)
}

func registerConfigFlag(fs *flag.FlagSet, f *commonFlags) {
	if fs.Lookup("config-path") != nil {
		return
	}
	fs.StringVar(&f.configPath, "config-path", "", "TOML config file supplying defaults")
}

func registerRenderFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVar(&f.palette, "palette", "", "gjm8, xterm, powershell, or ubuntu")
	fs.StringVar(&f.font, "font", "", "CSS font-family for the rendered SVG")
	fs.StringVar(&f.styles, "styles", "", "additional literal CSS rules")
	fs.IntVar(&f.width, "width", 0, "rendered content width in pixels")
	fs.Func("hard-wrap", "hard-wrap lines instead of letting them overflow; optional =column-count (default 80)", func(v string) error {
		f.hardWrapSet = true
		f.hardWrap = v
		return nil
	})
	fs.Float64Var(&f.lineHeight, "line-height", 0, "line height multiplier")
	fs.Float64Var(&f.advanceWidth, "advance-width", 0, "monospace glyph advance width in pixels")
	fs.Func("scroll", "enable scroll animation; optional =max-height-px", func(v string) error {
		f.scrollSet = true
		f.scroll = v
		return nil
	})
	fs.Float64Var(&f.scrollInterval, "scroll-interval", 0, "seconds per scroll keyframe")
	fs.IntVar(&f.scrollLen, "scroll-len", 0, "pixels advanced per scroll keyframe")
	fs.Func("window", "draw window chrome; optional =title", func(v string) error {
		f.windowSet = true
		f.window = v
		return nil
	})
	fs.BoolVar(&f.pureSVG, "pure-svg", false, "emit SVG-primitives-only output instead of embedded HTML")
	fs.BoolVar(&f.noInputs, "no-inputs", false, "omit echoed input lines from the rendered output")
	fs.StringVar(&f.lineNumbers, "line-numbers", "", "each-output, continuous-outputs, or continuous")
	registerConfigFlag(fs, f)
}

// engineConfig resolves an engine.Config starting from any --config-path
// file, then layering the explicit flags on top.
func (f *commonFlags) engineConfig() (engine.Config, error) {
	base := engine.Config{}
	if f.configPath != "" {
		fileCfg, err := config.Load(f.configPath)
		if err != nil {
			return engine.Config{}, err
		}
		base, err = fileCfg.ApplyEngineConfig(base)
		if err != nil {
			return engine.Config{}, err
		}
	}

	if f.shell != "" {
		base.Command = append([]string{f.shell}, f.args...)
	} else if len(f.args) > 0 {
		base.Command = append(base.Command, f.args...)
	}
	if f.cwd != "" {
		base.Dir = f.cwd
	}
	if len(f.env) > 0 {
		base.Env = f.env
	}
	if f.ioTimeout > 0 {
		base.IOTimeout = f.ioTimeout
	}
	if f.initTimeout > 0 {
		base.InitTimeout = f.initTimeout
	}
	if f.pty {
		base.Transport = engine.TransportPTY
	}
	switch f.echoing {
	case "":
	case "auto":
		base.Echoing = engine.EchoAuto
	case "off":
		base.Echoing = engine.EchoOff
	case "on":
		base.Echoing = engine.EchoOn
	default:
		return engine.Config{}, fmt.Errorf("unrecognized -echoing %q", f.echoing)
	}
	return base, nil
}

// templateOptions resolves render.TemplateOptions the same way: config
// file first, explicit flags on top.
func (f *commonFlags) templateOptions() (render.TemplateOptions, error) {
	base := render.DefaultTemplateOptions()
	if f.configPath != "" {
		fileCfg, err := config.Load(f.configPath)
		if err != nil {
			return render.TemplateOptions{}, err
		}
		base, err = fileCfg.ApplyTemplateOptions(base)
		if err != nil {
			return render.TemplateOptions{}, err
		}
	}

	if f.palette != "" {
		p, err := style.ByName(f.palette)
		if err != nil {
			return render.TemplateOptions{}, err
		}
		base.Palette = p
	}
	if f.font != "" {
		base.FontFamily = f.font
	}
	if f.styles != "" {
		base.AdditionalStyles = f.styles
	}
	if f.width > 0 {
		base.WidthPx = f.width
	}
	if f.hardWrapSet {
		columns := 80 // spec's own default for HardWrapAtChar(N)
		if f.hardWrap != "" {
			var err error
			columns, err = strconv.Atoi(f.hardWrap)
			if err != nil {
				return render.TemplateOptions{}, fmt.Errorf("-hard-wrap expects =<column-count>: %w", err)
			}
		}
		base.Wrap.Disabled = false
		base.Wrap.HardWrapAtChar = columns
	}
	if f.lineHeight > 0 {
		base.LineHeight = f.lineHeight
	}
	if f.advanceWidth > 0 {
		base.AdvanceWidth = f.advanceWidth
	}
	if f.scrollSet {
		maxHeight := 400 // sane default when --scroll is given with no explicit height
		if f.scroll != "" {
			var err error
			maxHeight, err = strconv.Atoi(f.scroll)
			if err != nil {
				return render.TemplateOptions{}, fmt.Errorf("-scroll expects =<max-height-px>: %w", err)
			}
		}
		base.Scroll = &render.ScrollOptions{
			MaxHeightPx:     maxHeight,
			PixelsPerScroll: f.scrollLen,
			Interval:        f.scrollInterval,
		}
	}
	if f.windowSet {
		if f.window == "" {
			base.WindowFrame.Mode = render.WindowFrameOn
		} else {
			base.WindowFrame.Mode = render.WindowFrameOnTitled
			base.WindowFrame.Title = f.window
		}
	}
	base.PureSVG = base.PureSVG || f.pureSVG
	base.HiddenInputs = base.HiddenInputs || f.noInputs
	if f.lineNumbers != "" {
		switch f.lineNumbers {
		case "each-output":
			base.LineNumbers = render.LineNumbersEachOutput
		case "continuous-outputs":
			base.LineNumbers = render.LineNumbersContinuousOutputs
		case "continuous":
			base.LineNumbers = render.LineNumbersContinuous
		default:
			return render.TemplateOptions{}, fmt.Errorf("unrecognized -line-numbers %q", f.lineNumbers)
		}
	}
	return base, nil
}
