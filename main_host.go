package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"lumen/app"
	"lumen/hal"
	"lumen/internal/buildinfo"
	"lumen/internal/config"
)

func main() {
	var (
		path     string
		flags    config.Flags
		headless bool
	)
	flag.StringVar(&path, "config", "", "JSON config file.")
	flag.IntVar(&flags.Width, "width", 0, "Framebuffer width (default 800).")
	flag.IntVar(&flags.Height, "height", 0, "Framebuffer height (default 600).")
	flag.IntVar(&flags.Scale, "scale", 0, "Window scale factor (default 1).")
	flag.StringVar(&flags.Format, "format", "", "Framebuffer pixel format: rgba8888, bgra8888 or rgb565.")
	flag.StringVar(&flags.Present, "present", "", "Presentation strategy: auto, copy or shared.")
	flag.StringVar(&flags.Clear, "clear", "", "Clear color, by name or #rrggbb (default black).")
	flag.IntVar(&flags.Demo, "demo", -1, "Index of the first effect.")
	flag.Int64Var(&flags.Seed, "seed", 0, "Random seed (0 = time based).")
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&flags.Hz, "hz", 0, "Tick rate in headless mode (default 60).")
	flag.Uint64Var(&flags.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Parse()

	if err := run(path, flags, headless); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string, flags config.Flags, headless bool) error {
	var cfg config.Config
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return err
	}
	hcfg, _ := cfg.HAL()
	mode, _ := cfg.PresentMode()
	clearColor, _ := cfg.ClearColor()

	var runner *app.Runner
	defer func() {
		if runner != nil {
			runner.Close()
		}
	}()
	newApp := func(h hal.HAL) func() error {
		h.Logger().WriteLineString(buildinfo.String())
		runner = app.NewRunner(h, app.Config{
			Demo:    cfg.Demo,
			Present: mode,
			Clear:   clearColor,
			Seed:    cfg.Seed,
		})
		return runner.Step
	}

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, hcfg, newApp, hal.HeadlessConfig{Enabled: true, Hz: cfg.Hz, Ticks: cfg.Ticks})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	return hal.RunWindow(hcfg, newApp)
}
