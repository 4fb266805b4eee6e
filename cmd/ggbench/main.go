// Command ggbench benchmarks primitive 2D drawing calls and writes a
// tab-separated throughput table.
//
// Usage:
//
//	ggbench [-anti] [-offscreen] [flags]
//	ggbench list
//	ggbench config [--config file.toml] [-o out.toml]
package main

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggbench"
	"github.com/gogpu/ggbench/config"
	"github.com/gogpu/ggbench/imagesource"
	"github.com/gogpu/ggbench/surface"
	"github.com/gogpu/ggbench/text"
)

const usageLine = "Usage: ggbench [-anti] [-offscreen] [flags]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// usageError marks invalid command-line input.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// run executes the command line and returns the process exit code.
// Help requests are treated like any other unsupported argument: the
// help text goes to stderr and the exit status is 1.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(normalizeArgs(args))
	root.SetOut(stdout)
	root.SetErr(stderr)

	helped := false
	help := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helped = true
		cmd.SetOut(stderr)
		help(cmd, args)
	})

	err := root.Execute()
	if err == nil && helped {
		fmt.Fprintln(stderr, usageLine)
		return 1
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(stderr, usageLine)
		}
		return 1
	}
	return 0
}

// normalizeArgs accepts the classic single-dash spelling of the two
// run flags.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		switch a {
		case "-anti", "-offscreen":
			a = "-" + a
		}
		out[i] = a
	}
	return out
}

type runFlags struct {
	configPath string
	surface    string
	duration   time.Duration
	seed       uint64
	outDir     string
	images     string
	snapshot   string
	anti       bool
	offscreen  bool
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f runFlags

	root := &cobra.Command{
		Use:   "ggbench",
		Short: "Benchmark primitive 2D drawing calls",
		Long: `ggbench times lines, rectangles, ovals, polygons, text and image
compositing on a drawing surface, in an identity and a randomly scaled
context, and writes the shapes per second of each pair to a
tab-separated file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &usageError{fmt.Errorf("unexpected argument %q", args[0])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := effectiveConfig(cmd, f)
			if err != nil {
				return err
			}
			logger := newLogger(stderr, f.verbose)
			return runBenchmark(logger, cfg, stdout)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	pflags := root.PersistentFlags()
	pflags.StringVar(&f.configPath, "config", "",
		"TOML configuration file")

	flags := root.Flags()
	flags.BoolVar(&f.anti, "anti", false,
		"Enable antialiasing hints")
	flags.BoolVar(&f.offscreen, "offscreen", false,
		"Dispose the surface before reporting")
	flags.StringVar(&f.surface, "surface", "image",
		"Surface backend (see 'ggbench list')")
	flags.DurationVar(&f.duration, "duration", 5*time.Second,
		"Sampling window per test")
	flags.Uint64Var(&f.seed, "seed", 1,
		"Seed for the argument generators")
	flags.StringVar(&f.outDir, "out-dir", ".",
		"Directory for the results file")
	flags.StringVar(&f.images, "images", "",
		"Directory with opaque.*, bitmask.* and translucent.* (default: built-in)")
	flags.StringVar(&f.snapshot, "snapshot", "",
		"Write the final surface to this PNG file (on-screen runs only)")
	flags.BoolVarP(&f.verbose, "verbose", "v", false,
		"Log debug output to stderr")

	root.AddCommand(newListCmd(stdout), newConfigCmd(stdout, &f))
	return root
}

func newListCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List surfaces, contexts and tests",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprintln(stdout, "Surfaces:")
			for _, b := range surface.Backends() {
				fmt.Fprintf(stdout, "  %-10s %s\n", b.Name, b.Description)
			}
			fmt.Fprintln(stdout, "Contexts:")
			for _, name := range ggbench.ContextNames() {
				fmt.Fprintf(stdout, "  %s\n", name)
			}
			fmt.Fprintln(stdout, "Tests:")
			for _, name := range ggbench.TestNames() {
				fmt.Fprintf(stdout, "  %s\n", name)
			}
			return nil
		},
	}
}

func newConfigCmd(stdout io.Writer, f *runFlags) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(f.configPath)
			if err != nil {
				return err
			}
			if output != "" {
				return cfg.Save(output)
			}
			return cfg.Write(stdout)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"Write the configuration to this file instead of stdout")
	return cmd
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// effectiveConfig loads the config file and applies the flags the user
// set explicitly.
func effectiveConfig(cmd *cobra.Command, f runFlags) (config.Config, error) {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("anti") {
		cfg.Antialias = f.anti
	}
	if flags.Changed("offscreen") {
		cfg.Offscreen = f.offscreen
	}
	if flags.Changed("surface") {
		cfg.Surface = f.surface
	}
	if flags.Changed("duration") {
		cfg.Duration = config.Duration{Duration: f.duration}
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	if flags.Changed("out-dir") {
		cfg.OutputDir = f.outDir
	}
	if flags.Changed("images") {
		cfg.ImageDir = f.images
	}
	if flags.Changed("snapshot") {
		cfg.Snapshot = f.snapshot
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, &usageError{err}
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runBenchmark(logger *slog.Logger, cfg config.Config, stdout io.Writer) error {
	images, err := loadImages(cfg)
	if err != nil {
		return fmt.Errorf("load images: %w", err)
	}

	face, err := text.DefaultFace(cfg.FontSize)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	s, err := surface.New(cfg.Surface, surface.Options{
		Width:           cfg.Width,
		Height:          cfg.Height,
		Antialias:       cfg.Antialias,
		BackgroundColor: color.White,
	})
	if err != nil {
		return fmt.Errorf("create surface: %w", err)
	}
	if cs, ok := s.(surface.CapableSurface); ok {
		caps := cs.Capabilities()
		logger.Debug("surface created",
			slog.String("surface", cfg.Surface),
			slog.Bool("clipping", caps.SupportsClipping),
			slog.Bool("antialias", caps.SupportsAntialias),
			slog.Bool("transformed_images", caps.SupportsTransformedImages))
	}

	g := surface.NewGraphics(s, face)
	g.SetLogger(logger)
	defer g.Dispose()

	ggbench.SetLogger(logger)
	h := ggbench.New(images,
		ggbench.WithDuration(cfg.Duration.Duration),
		ggbench.WithBatchSize(cfg.Batch),
		ggbench.WithSeed(cfg.Seed),
		ggbench.WithOutput(stdout),
		ggbench.WithOutputDir(cfg.OutputDir),
		ggbench.WithText(cfg.Text),
	)

	report, err := h.RunAll(g, ggbench.Config{
		Offscreen:   cfg.Offscreen,
		Antialiased: cfg.Antialias,
	})
	if err != nil {
		return err
	}

	if cfg.Snapshot != "" && !cfg.Offscreen {
		if err := writeSnapshot(cfg.Snapshot, s); err != nil {
			return err
		}
		logger.Info("snapshot written", slog.String("path", cfg.Snapshot))
	}

	logger.Info("results written",
		slog.String("run_id", report.RunID),
		slog.String("path", report.Path),
		slog.Duration("elapsed", report.Elapsed))
	return nil
}

func loadImages(cfg config.Config) (*imagesource.Set, error) {
	opts := imagesource.Options{Size: cfg.ImageSize}
	if cfg.ImageDir != "" {
		return imagesource.LoadDir(cfg.ImageDir, opts)
	}
	fsys, err := imagesource.Embedded()
	if err != nil {
		return nil, err
	}
	return imagesource.Load(fsys, opts)
}

func writeSnapshot(path string, s surface.Surface) error {
	if err := s.Flush(); err != nil {
		return fmt.Errorf("snapshot: flush: %w", err)
	}
	img := s.Snapshot()
	if img == nil {
		return errors.New("snapshot: surface is closed")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
