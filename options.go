package ggbench

import (
	"io"
	"os"
	"time"
)

// Defaults match the classic benchmark.
const (
	DefaultDuration  = 5 * time.Second
	DefaultBatchSize = 10
	DefaultSeed      = 1
	DefaultText      = "Abcdefghijklmnop"
)

// Option configures a Harness during creation.
//
// Example:
//
//	h := ggbench.New(images,
//	    ggbench.WithDuration(time.Second),
//	    ggbench.WithOutputDir("results"),
//	)
type Option func(*options)

type options struct {
	duration  time.Duration
	batch     int
	seed      uint64
	clock     Clock
	out       io.Writer
	outputDir string
	text      string
}

func defaultOptions() options {
	return options{
		duration:  DefaultDuration,
		batch:     DefaultBatchSize,
		seed:      DefaultSeed,
		clock:     SystemClock(),
		out:       os.Stdout,
		outputDir: ".",
		text:      DefaultText,
	}
}

// WithDuration sets the sampling window of each test. Non-positive values
// are ignored.
func WithDuration(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.duration = d
		}
	}
}

// WithBatchSize sets how many draw calls run between context setups.
// Non-positive values are ignored.
func WithBatchSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.batch = n
		}
	}
}

// WithSeed sets the seed both generators are reset to before every test.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithClock substitutes the time source used by the sampling loop.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithOutput sets where progress lines are printed. Nil discards them.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			w = io.Discard
		}
		o.out = w
	}
}

// WithOutputDir sets the directory the results file is written to.
func WithOutputDir(dir string) Option {
	return func(o *options) {
		if dir == "" {
			dir = "."
		}
		o.outputDir = dir
	}
}

// WithText sets the string drawn by the text test.
func WithText(s string) Option {
	return func(o *options) {
		o.text = s
	}
}
