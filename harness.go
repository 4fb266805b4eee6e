package ggbench

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/gogpu/ggbench/imagesource"
	"github.com/gogpu/ggbench/surface"
)

// Config selects the run variant. Both flags also tag the results file
// name.
type Config struct {
	// Offscreen disposes the graphics object once every test has run.
	Offscreen bool
	// Antialiased turns on the antialiasing hint for the whole run.
	Antialiased bool
}

// Report describes a completed pass.
type Report struct {
	RunID   string
	Surface string
	// Path is the results file.
	Path string
	// Results is the table as written to Path.
	Results Results
	Start   time.Time
	Elapsed time.Duration
}

// Harness runs the benchmark. It owns the results table and is not safe
// for concurrent use.
type Harness struct {
	images  *imagesource.Set
	opts    options
	cases   [NumTests]TestCase
	results Results
	pts     [2 * polyPoints]float64
}

// New creates a Harness drawing the given images. images must be non-nil.
func New(images *imagesource.Set, opts ...Option) *Harness {
	h := &Harness{
		images: images,
		opts:   defaultOptions(),
	}
	for _, opt := range opts {
		opt(&h.opts)
	}
	h.cases = h.catalog()
	return h
}

// Results returns the results table.
func (h *Harness) Results() *Results {
	return &h.results
}

// Tests returns the test cases in run order.
func (h *Harness) Tests() []TestCase {
	return append([]TestCase(nil), h.cases[:]...)
}

// RunAll benchmarks every context and test case on g, then writes the
// results file and clears the table. When cfg.Offscreen is set, g is
// disposed before the file is written.
//
// RunAll blocks for about NumContexts * NumTests * duration.
func (h *Harness) RunAll(g surface.Graphics, cfg Config) (*Report, error) {
	runID := uuid.NewString()
	log := Logger().With(slog.String("run_id", runID))
	name := fmt.Sprint(g)

	h.printf("BENCHMARKING: %s\n", name)
	if cfg.Antialiased {
		h.printf("ANTIALIASED\n")
	}
	g.SetAntialias(cfg.Antialiased)

	log.Info("benchmark started",
		slog.String("surface", name),
		slog.Bool("antialiased", cfg.Antialiased),
		slog.Bool("offscreen", cfg.Offscreen),
		slog.Duration("duration", h.opts.duration))

	start := h.opts.clock.Now()
	for _, c := range Contexts() {
		h.printf("Context: %s\n", c.Name)
		for _, tc := range h.cases {
			g.SetClip(nil)
			g.SetTransform(surface.Identity())
			v := h.runTest(g, c, tc)
			log.Debug("test finished",
				slog.String("context", c.Name),
				slog.String("test", tc.Name),
				slog.Int("shapes_per_second", v))
		}
	}
	elapsed := h.opts.clock.Now().Sub(start)

	if cfg.Offscreen {
		if err := g.Dispose(); err != nil {
			log.Warn("dispose surface", slog.String("error", err.Error()))
		}
	}

	path := filepath.Join(h.opts.outputDir, ResultsFileName(g, cfg))
	report := &Report{
		RunID:   runID,
		Surface: name,
		Path:    path,
		Results: h.results,
		Start:   start,
		Elapsed: elapsed,
	}
	if err := h.DumpResults(path); err != nil {
		return nil, err
	}

	log.Info("benchmark finished",
		slog.String("path", path),
		slog.Duration("elapsed", elapsed))
	return report, nil
}

// runTest samples one (context, test) pair and adds its throughput to the
// table. The clock is read once per iteration, after the draw call.
func (h *Harness) runTest(g surface.Graphics, c Context, tc TestCase) int {
	setup := newGenerator(h.opts.seed)
	args := newGenerator(h.opts.seed)

	h.printf("Test: %s\n", tc.Name)
	clock := h.opts.clock
	start := clock.Now()
	i := 0
	for {
		if i%h.opts.batch == 0 {
			c.Setup(g, setup)
		}
		g.SetColor(pickColor(args))
		g.SetBackground(pickColor(args))
		tc.Draw(g, args)
		i++
		if clock.Now().Sub(start) >= h.opts.duration {
			break
		}
	}

	v := h.results.Add(c.ID, tc.ID, throughput(i, h.opts.duration))
	h.printf("Shapes per second: %d\n", v)
	return v
}

// throughput converts an iteration count over d into calls per second.
func throughput(iterations int, d time.Duration) int {
	return int(int64(iterations) * int64(time.Second) / int64(d))
}

// DumpResults writes the table to path and, on success, zeroes it.
func (h *Harness) DumpResults(path string) error {
	if err := h.results.writeFile(path); err != nil {
		return errors.Wrap(err, "dump results")
	}
	h.results.Reset()
	return nil
}

// ResultsFileName names the results file after the dynamic type of g,
// for example "surface_Graphics2D-offscreen-antialiased.txt".
func ResultsFileName(g any, cfg Config) string {
	name := strings.TrimLeft(fmt.Sprintf("%T", g), "*")
	name = strings.ReplaceAll(name, ".", "_")
	if cfg.Offscreen {
		name += "-offscreen"
	}
	if cfg.Antialiased {
		name += "-antialiased"
	}
	return name + ".txt"
}

func (h *Harness) printf(format string, args ...any) {
	fmt.Fprintf(h.opts.out, format, args...)
}
