// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
)

// FillStyle defines how to fill a path.
type FillStyle struct {
	// Color is the fill color.
	Color color.Color
}

// StrokeStyle defines how to stroke a path.
type StrokeStyle struct {
	// Color is the stroke color.
	Color color.Color

	// Width is the line width in device pixels. Ends are cut flat at the
	// segment endpoints.
	Width float64
}

// DefaultStrokeStyle returns a StrokeStyle with black color and 1px width.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Color: color.Black,
		Width: 1.0,
	}
}

// WithColor returns a copy with the specified color.
func (s StrokeStyle) WithColor(c color.Color) StrokeStyle {
	s.Color = c
	return s
}

// WithWidth returns a copy with the specified width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// DrawImageOptions defines options for drawing images.
type DrawImageOptions struct {
	// SrcRect is the source rectangle within the image.
	// If nil, the entire image is used.
	SrcRect *image.Rectangle

	// Transform maps source image coordinates to surface coordinates.
	// If nil, the image is placed at the At point of DrawImage unscaled.
	Transform *Matrix

	// Filter is the interpolation mode for scaling.
	Filter Filter
}

// DefaultDrawImageOptions returns DrawImageOptions with default values.
func DefaultDrawImageOptions() *DrawImageOptions {
	return &DrawImageOptions{
		Filter: FilterNearest,
	}
}

// Filter specifies the interpolation mode for image scaling.
type Filter uint8

const (
	// FilterNearest uses nearest-neighbor interpolation.
	FilterNearest Filter = iota

	// FilterBilinear uses bilinear interpolation.
	FilterBilinear
)

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterBilinear:
		return "bilinear"
	default:
		return "unknown"
	}
}

// Point represents a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// Antialias enables anti-aliased rendering.
	Antialias bool

	// BackgroundColor is the initial background color.
	// Default: transparent
	BackgroundColor color.Color
}

// DefaultOptions returns Options with default values.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:     width,
		Height:    height,
		Antialias: true,
	}
}
