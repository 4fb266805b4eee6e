// Package config loads the benchmark configuration from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every validation and unknown-key error.
var ErrInvalid = errors.New("config: invalid configuration")

// Duration is a time.Duration written as a Go duration string ("5s").
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("%w: duration %q: %v", ErrInvalid, b, err)
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config is the effective benchmark configuration.
type Config struct {
	Duration  Duration `toml:"duration"`
	Batch     int      `toml:"batch"`
	Seed      uint64   `toml:"seed"`
	Width     int      `toml:"width"`
	Height    int      `toml:"height"`
	Surface   string   `toml:"surface"`
	Text      string   `toml:"text"`
	FontSize  float64  `toml:"font_size"`
	ImageDir  string   `toml:"image_dir"`
	ImageSize int      `toml:"image_size"`
	OutputDir string   `toml:"output_dir"`
	Antialias bool     `toml:"antialias"`
	Offscreen bool     `toml:"offscreen"`
	Snapshot  string   `toml:"snapshot"`
}

// Default returns the configuration of the classic 512x512 benchmark.
func Default() Config {
	return Config{
		Duration:  Duration{5 * time.Second},
		Batch:     10,
		Seed:      1,
		Width:     512,
		Height:    512,
		Surface:   "image",
		Text:      "Abcdefghijklmnop",
		FontSize:  12,
		ImageDir:  "",
		ImageSize: 128,
		OutputDir: ".",
	}
}

// Load reads path over the defaults. Keys not present in the file keep
// their default; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Config{}, fmt.Errorf("%w: %s: unknown key %q", ErrInvalid, path, keys[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Duration.Duration <= 0:
		return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalid, c.Duration)
	case c.Batch <= 0:
		return fmt.Errorf("%w: batch must be positive, got %d", ErrInvalid, c.Batch)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size must be positive, got %dx%d", ErrInvalid, c.Width, c.Height)
	case c.FontSize <= 0:
		return fmt.Errorf("%w: font_size must be positive, got %v", ErrInvalid, c.FontSize)
	case c.ImageSize < 0:
		return fmt.Errorf("%w: image_size must not be negative, got %d", ErrInvalid, c.ImageSize)
	case c.Snapshot != "" && c.Offscreen:
		return fmt.Errorf("%w: snapshot requires an on-screen run", ErrInvalid)
	}
	return nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Save writes c to path.
func (c Config) Save(path string) error {
	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
