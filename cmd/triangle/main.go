// Command triangle opens a window and renders a triangle with OpenGL ES 3
// through EGL.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/sqweek/dialog"

	"github.com/hubastard/grove-gles/engine/core"
	"github.com/hubastard/grove-gles/engine/egl/eglbinding"
	"github.com/hubastard/grove-gles/engine/gfx/gles/glbinding"
	"github.com/hubastard/grove-gles/engine/platform"
	"github.com/hubastard/grove-gles/engine/profiler"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

type options struct {
	config     string
	samples    int
	policy     string
	logLevel   string
	cpuProfile string
}

// parseArgs builds the configuration: defaults, then the config file, then
// any flag given explicitly.
func parseArgs(args []string, stderr io.Writer) (options, core.Config, error) {
	var o options
	fs := flag.NewFlagSet("triangle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.config, "config", "", "YAML configuration `file`")
	fs.IntVar(&o.samples, "samples", 4, "multisample `count` (1 disables multisampling)")
	fs.StringVar(&o.policy, "policy", string(core.PolicyEvent), "render `policy`: event or interval")
	fs.StringVar(&o.logLevel, "log-level", "info", "log `level`: debug, info, warn or error")
	fs.StringVar(&o.cpuProfile, "cpuprofile", "", "write a CPU profile into `dir`")
	if err := fs.Parse(args); err != nil {
		return o, core.Config{}, err
	}

	cfg := core.DefaultConfig()
	if o.config != "" {
		var err error
		if cfg, err = core.LoadConfig(o.config); err != nil {
			return o, cfg, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "samples":
			cfg.Samples = o.samples
		case "policy":
			cfg.Policy = core.Policy(o.policy)
		case "log-level":
			cfg.LogLevel = o.logLevel
		}
	})
	return o, cfg, cfg.Validate()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	o, cfg, err := parseArgs(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	level, _ := cfg.Level()
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	log := core.Logger()

	stop, err := profiler.StartCPU(o.cpuProfile)
	if err != nil {
		return fatal(cfg.Title, err)
	}
	defer stop()

	lib, err := eglbinding.Load()
	if err != nil {
		return fatal(cfg.Title, err)
	}

	win, err := platform.NewGLFWWindow(cfg)
	if err != nil {
		return fatal(cfg.Title, err)
	}
	defer win.Destroy()

	fns := glbinding.New(lib)
	scene := &triangleScene{gl: fns, clear: cfg.ClearColor, shaderDir: cfg.ShaderDir}
	ctx := core.NewContext(win, scene, lib, fns, cfg)

	code := core.Run(win, ctx)
	log.Info("exit", slog.Int("code", code), slog.Any("frames", ctx.Stats()))
	return code
}

// fatal reports an error raised before the window exists.
func fatal(title string, err error) int {
	core.Logger().Error("startup failed", slog.Any("err", err))
	dialog.Message("%s", err).Title(title).Error()
	return 1
}
