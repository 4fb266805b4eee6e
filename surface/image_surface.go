// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// coverageThreshold is the mask value at or above which a pixel counts as
// covered when anti-aliasing is off.
const coverageThreshold = 0x80

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// Paths are rasterized with golang.org/x/image/vector, which computes
// exact area coverage. With anti-aliasing off, coverage is thresholded
// so edges are hard. Images are composited with golang.org/x/image/draw.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	path := surface.NewPath()
//	path.Ellipse(400, 300, 100, 100)
//	s.Fill(path, surface.FillStyle{Color: color.RGBA{255, 0, 0, 255}})
//
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	// clip is the effective drawing rectangle, always inside img bounds.
	clip image.Rectangle

	antialias bool

	// rasterizer is sized to clip and reused between calls.
	rasterizer *vector.Rasterizer

	// mask receives thresholded coverage when anti-aliasing is off.
	mask *image.Alpha

	// stroke and segments are scratch space for Stroke.
	stroke   *Path
	segments []strokeSegment

	// uniform is the reusable paint source.
	uniform image.Uniform

	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given
// dimensions. Anti-aliasing is enabled.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return NewImageSurfaceFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// The surface will render into the provided image directly.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	bounds := img.Bounds()
	if bounds.Min != (image.Point{}) {
		img = &image.RGBA{
			Pix:    img.Pix[img.PixOffset(bounds.Min.X, bounds.Min.Y):],
			Stride: img.Stride,
			Rect:   image.Rect(0, 0, bounds.Dx(), bounds.Dy()),
		}
	}
	s := &ImageSurface{
		width:     bounds.Dx(),
		height:    bounds.Dy(),
		img:       img,
		antialias: true,
		stroke:    NewPath(),
	}
	s.ClearClip()
	return s
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// String describes the surface for progress output.
func (s *ImageSurface) String() string {
	return fmt.Sprintf("ImageSurface[%dx%d antialias=%t]", s.width, s.height, s.antialias)
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	s.uniform.C = toRGBA(c)
	xdraw.Draw(s.img, s.img.Bounds(), &s.uniform, image.Point{}, xdraw.Src)
}

// SetClip limits drawing to r intersected with the surface bounds.
func (s *ImageSurface) SetClip(r image.Rectangle) {
	s.clip = r.Intersect(image.Rect(0, 0, s.width, s.height))
}

// ClearClip removes the clipping region.
func (s *ImageSurface) ClearClip() {
	s.clip = image.Rect(0, 0, s.width, s.height)
}

// Clip returns the effective clip rectangle.
func (s *ImageSurface) Clip() image.Rectangle {
	return s.clip
}

// SetAntialias enables or disables anti-aliasing.
func (s *ImageSurface) SetAntialias(on bool) {
	s.antialias = on
}

// Antialias reports whether anti-aliasing is enabled.
func (s *ImageSurface) Antialias() bool {
	return s.antialias
}

// Fill fills the given path using the specified style.
func (s *ImageSurface) Fill(path *Path, style FillStyle) {
	if s.closed || path == nil || path.IsEmpty() || s.clip.Empty() {
		return
	}
	if !s.intersectsClip(path) {
		return
	}
	s.rasterize(path, toRGBA(style.Color))
}

// Stroke strokes the given path using the specified style.
func (s *ImageSurface) Stroke(path *Path, style StrokeStyle) {
	if s.closed || path == nil || path.IsEmpty() || s.clip.Empty() || style.Width <= 0 {
		return
	}

	s.segments = path.flatten(s.segments[:0])
	if len(s.segments) == 0 {
		return
	}
	if !s.antialias {
		normalizeStroke(s.segments, style.Width)
	}

	s.stroke.Clear()
	expandStroke(s.stroke, s.segments, style)
	if !s.intersectsClip(s.stroke) {
		return
	}
	s.rasterize(s.stroke, toRGBA(style.Color))
}

// DrawImage draws an image at the specified position, or through
// opts.Transform when it is set.
func (s *ImageSurface) DrawImage(img image.Image, at Point, opts *DrawImageOptions) {
	if s.closed || img == nil || s.clip.Empty() {
		return
	}
	if opts == nil {
		opts = DefaultDrawImageOptions()
	}

	sr := img.Bounds()
	if opts.SrcRect != nil {
		sr = opts.SrcRect.Intersect(sr)
	}
	if sr.Empty() {
		return
	}

	// m maps source image coordinates to device coordinates.
	m := Translate(at.X-float64(sr.Min.X), at.Y-float64(sr.Min.Y))
	if opts.Transform != nil {
		m = *opts.Transform
	}

	dst := s.img.SubImage(s.clip).(*image.RGBA)

	if m.IsIntegerTranslation() {
		dr := sr.Add(image.Pt(int(m.C), int(m.F)))
		xdraw.Draw(dst, dr, img, sr.Min, xdraw.Over)
		return
	}

	if m.Determinant() == 0 {
		return
	}
	s.interpolator(opts.Filter).Transform(dst, m.Aff3(), img, sr, xdraw.Over, nil)
}

// interpolator picks the resampling kernel. Anti-aliased surfaces always
// resample bilinearly.
func (s *ImageSurface) interpolator(f Filter) xdraw.Interpolator {
	if s.antialias || f == FilterBilinear {
		return xdraw.ApproxBiLinear
	}
	return xdraw.NearestNeighbor
}

// Flush ensures all pending operations are complete.
// For ImageSurface, this is a no-op.
func (s *ImageSurface) Flush() error {
	return nil
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}

	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(result.Pix, s.img.Pix)
	return result
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	s.rasterizer = nil
	s.mask = nil
	s.stroke = nil
	s.segments = nil
	return nil
}

// Closed reports whether Close has been called.
func (s *ImageSurface) Closed() bool {
	return s.closed
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Capabilities returns the surface capabilities.
func (s *ImageSurface) Capabilities() Capabilities {
	return Capabilities{
		SupportsClipping:          true,
		SupportsAntialias:         true,
		SupportsTransformedImages: true,
	}
}

// intersectsClip reports whether the path bounds touch the clip.
func (s *ImageSurface) intersectsClip(path *Path) bool {
	minX, minY, maxX, maxY := path.Bounds()
	return maxX >= float64(s.clip.Min.X) && minX <= float64(s.clip.Max.X) &&
		maxY >= float64(s.clip.Min.Y) && minY <= float64(s.clip.Max.Y)
}

// rasterize fills path with c inside the clip. The rasterizer's origin is
// the clip's top-left corner.
func (s *ImageSurface) rasterize(path *Path, c color.RGBA) {
	w, h := s.clip.Dx(), s.clip.Dy()
	if s.rasterizer == nil {
		s.rasterizer = vector.NewRasterizer(w, h)
	} else {
		s.rasterizer.Reset(w, h)
	}
	z := s.rasterizer

	ox, oy := float32(s.clip.Min.X), float32(s.clip.Min.Y)
	pts := path.points
	pointIdx := 0
	open := false
	for _, verb := range path.verbs {
		switch verb {
		case VerbMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pts[pointIdx]-ox, pts[pointIdx+1]-oy)
			open = true
		case VerbLineTo:
			z.LineTo(pts[pointIdx]-ox, pts[pointIdx+1]-oy)
		case VerbQuadTo:
			z.QuadTo(pts[pointIdx]-ox, pts[pointIdx+1]-oy,
				pts[pointIdx+2]-ox, pts[pointIdx+3]-oy)
		case VerbCubicTo:
			z.CubeTo(pts[pointIdx]-ox, pts[pointIdx+1]-oy,
				pts[pointIdx+2]-ox, pts[pointIdx+3]-oy,
				pts[pointIdx+4]-ox, pts[pointIdx+5]-oy)
		case VerbClose:
			z.ClosePath()
			open = false
		}
		pointIdx += 2 * verb.pointCount()
	}
	if open {
		z.ClosePath()
	}

	s.uniform.C = c
	if s.antialias {
		z.DrawOp = xdraw.Over
		z.Draw(s.img, s.clip, &s.uniform, image.Point{})
		return
	}

	// Aliased: render coverage into a mask, snap it, then composite.
	if s.mask == nil || s.mask.Rect.Dx() != w || s.mask.Rect.Dy() != h {
		s.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	}
	z.DrawOp = xdraw.Src
	z.Draw(s.mask, s.mask.Rect, image.Opaque, image.Point{})
	for i, a := range s.mask.Pix {
		if a >= coverageThreshold {
			s.mask.Pix[i] = 0xff
		} else {
			s.mask.Pix[i] = 0
		}
	}
	xdraw.DrawMask(s.img, s.clip, &s.uniform, image.Point{}, s.mask, image.Point{}, xdraw.Over)
}

// toRGBA converts any color to premultiplied 8-bit RGBA. A nil color is
// treated as opaque black.
func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{A: 0xff}
	}
	r, g, b, a := c.RGBA()
	//nolint:gosec // G115: safe - r>>8 is always in [0, 255]
	return color.RGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}

// Verify ImageSurface implements the optional interfaces.
var (
	_ Surface          = (*ImageSurface)(nil)
	_ CapableSurface   = (*ImageSurface)(nil)
	_ ClippableSurface = (*ImageSurface)(nil)
	_ AntialiasSurface = (*ImageSurface)(nil)
)
