// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// Surface is the core rendering target abstraction.
//
// A Surface works in device space: paths and image placements are given
// in pixels. User-space state such as the current transform and color
// lives in [Graphics2D], which translates primitive calls into Surface
// operations.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
//
// Example usage:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.Fill(path, surface.FillStyle{Color: color.RGBA{255, 0, 0, 255}})
//	img := s.Snapshot()
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the entire surface with the given color, ignoring the clip.
	Clear(c color.Color)

	// Fill fills the given path using the specified style.
	// The path is not modified or consumed.
	Fill(path *Path, style FillStyle)

	// Stroke strokes the given path using the specified style.
	// The path is not modified or consumed.
	Stroke(path *Path, style StrokeStyle)

	// DrawImage draws an image at the specified position.
	// If opts is nil, default options are used. When opts.Transform is set
	// it replaces the translation given by at.
	DrawImage(img image.Image, at Point, opts *DrawImageOptions)

	// Flush ensures all pending drawing operations are complete.
	Flush() error

	// Snapshot returns the current surface contents as an RGBA image.
	// The returned image is a copy; modifications to it do not affect the surface.
	Snapshot() *image.RGBA

	// Close releases all resources associated with the surface.
	// After Close, the surface must not be used.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// ClippableSurface is an optional interface for surfaces with clipping support.
type ClippableSurface interface {
	Surface

	// SetClip limits subsequent drawing to r, intersected with the
	// surface bounds.
	SetClip(r image.Rectangle)

	// ClearClip removes the clipping region.
	ClearClip()

	// Clip returns the effective clip rectangle.
	Clip() image.Rectangle
}

// AntialiasSurface is an optional interface for surfaces whose
// anti-aliasing can be toggled after creation.
type AntialiasSurface interface {
	Surface

	// SetAntialias enables or disables anti-aliased coverage and
	// bilinear image filtering.
	SetAntialias(on bool)

	// Antialias reports whether anti-aliasing is enabled.
	Antialias() bool
}

// Capabilities describes the optional features a surface supports.
type Capabilities struct {
	// SupportsClipping indicates clipping operations are available.
	SupportsClipping bool

	// SupportsAntialias indicates anti-aliased rendering is available.
	SupportsAntialias bool

	// SupportsTransformedImages indicates DrawImageOptions.Transform is honored.
	SupportsTransformedImages bool

	// MaxWidth is the maximum supported width (0 = unlimited).
	MaxWidth int

	// MaxHeight is the maximum supported height (0 = unlimited).
	MaxHeight int
}

// CapableSurface is an optional interface for querying surface capabilities.
type CapableSurface interface {
	Surface

	// Capabilities returns the surface's capabilities.
	Capabilities() Capabilities
}
