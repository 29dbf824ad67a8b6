// Package cli implements the pixfx command.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/gogpu/pixfx"
	"github.com/gogpu/pixfx/internal/config"
	"github.com/gogpu/pixfx/internal/imageio"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	level      string
	workers    int
	format     string

	cfg    config.Config
	log    *slog.Logger
	engine *pixfx.Engine
}

// Run executes the command line in os.Args.
func Run() error {
	return NewRootCommand(os.Stdout, os.Stderr).Execute()
}

// NewRootCommand builds the pixfx command tree writing to the given streams.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:                "pixfx",
		Short:              "Apply per-pixel color filters to images",
		Version:            pixfx.Version,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Configuration file")
	flags.StringVarP(&a.level, "level", "l", "", "Log level (debug, info, warn, error)")
	flags.IntVarP(&a.workers, "workers", "w", 0, "Rendering goroutines (default from config)")
	flags.StringVar(&a.format, "format", "", "Output format for generated file names (png, jpeg, bmp, tiff)")

	root.AddCommand(
		a.listCommand(),
		a.nextCommand(),
		a.applyCommand(),
		a.cycleCommand(),
		a.allCommand(),
	)
	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger and engine.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("level") {
		cfg.Main.LogLevel = a.level
	}
	if flags.Changed("workers") {
		cfg.Engine.Workers = a.workers
	}
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := imageio.ParseFormat(cfg.Output.Format); err != nil {
		return err
	}
	a.cfg = cfg

	lvl, _ := cfg.Main.Level()
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: lvl}))
	pixfx.SetLogger(a.log)
	a.log.Debug("configuration loaded",
		"config", a.configPath,
		"workers", cfg.Engine.Workers,
		"format", cfg.Output.Format)

	a.engine = pixfx.NewEngine(
		pixfx.WithWorkers(cfg.Engine.Workers),
		pixfx.WithParallelThreshold(cfg.Engine.ParallelThreshold),
	)
	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.engine != nil {
		a.engine.Close()
	}
	pixfx.SetLogger(nil)
	return nil
}

// outputFormat returns the configured format for generated file names.
func (a *app) outputFormat() imageio.Format {
	f, _ := imageio.ParseFormat(a.cfg.Output.Format)
	return f
}

func (a *app) encodeOptions() imageio.Options {
	return imageio.Options{JPEGQuality: a.cfg.Output.JPEGQuality}
}

// save writes img and logs the result.
func (a *app) save(path string, img *pixfx.Image, f pixfx.Filter) error {
	if err := imageio.Save(path, img, a.encodeOptions()); err != nil {
		return err
	}
	a.log.Info("wrote image", "filter", f.Name(), "path", path)
	return nil
}

// outputName builds "<dir>/<base of input>-<suffix><ext>".
func outputName(dir, input, suffix string, format imageio.Format) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+"-"+suffix+format.Ext())
}

// filterNames returns the lower-case filter names in cycle order.
func filterNames() []string {
	return lo.Map(pixfx.Filters(), func(f pixfx.Filter, _ int) string {
		return strings.ToLower(f.Name())
	})
}
