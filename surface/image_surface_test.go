// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"testing"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func newWhiteSurface(t testing.TB, w, h int, antialias bool) *ImageSurface {
	t.Helper()
	s := NewImageSurface(w, h)
	s.SetAntialias(antialias)
	s.Clear(white)
	t.Cleanup(func() { s.Close() })
	return s
}

// TestNewImageSurface tests surface creation.
func TestNewImageSurface(t *testing.T) {
	s := NewImageSurface(100, 80)
	defer s.Close()

	if s.Width() != 100 || s.Height() != 80 {
		t.Errorf("size = %dx%d, want 100x80", s.Width(), s.Height())
	}
	if !s.Antialias() {
		t.Error("anti-aliasing should default to on")
	}
	if s.Clip() != image.Rect(0, 0, 100, 80) {
		t.Errorf("Clip() = %v, want full bounds", s.Clip())
	}
	if got := s.String(); got != "ImageSurface[100x80 antialias=true]" {
		t.Errorf("String() = %q", got)
	}
}

// TestNewImageSurfaceInvalidSize tests handling of invalid dimensions.
func TestNewImageSurfaceInvalidSize(t *testing.T) {
	s := NewImageSurface(0, -5)
	defer s.Close()

	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("expected 1x1, got %dx%d", s.Width(), s.Height())
	}
}

// TestImageSurfaceClear tests the Clear operation.
func TestImageSurfaceClear(t *testing.T) {
	s := NewImageSurface(10, 10)
	defer s.Close()

	s.Clear(red)
	if c := s.Snapshot().RGBAAt(5, 5); c != red {
		t.Errorf("pixel = %v, want red", c)
	}
}

// TestImageSurfaceFillRectangle tests filling with and without anti-aliasing.
func TestImageSurfaceFillRectangle(t *testing.T) {
	for _, aa := range []bool{true, false} {
		s := newWhiteSurface(t, 100, 100, aa)

		p := NewPath()
		p.Rectangle(25, 25, 50, 50)
		s.Fill(p, FillStyle{Color: red})

		img := s.Image()
		if c := img.RGBAAt(10, 10); c != white {
			t.Errorf("aa=%v: corner = %v, want white", aa, c)
		}
		if c := img.RGBAAt(50, 50); c != red {
			t.Errorf("aa=%v: center = %v, want red", aa, c)
		}
	}
}

// TestImageSurfaceAliasedEdges tests that aliased fills have no partial
// coverage.
func TestImageSurfaceAliasedEdges(t *testing.T) {
	s := newWhiteSurface(t, 64, 64, false)
	p := NewPath()
	p.Ellipse(32, 32, 20.3, 13.7)
	s.Fill(p, FillStyle{Color: red})

	for _, px := range pixels(s.Image()) {
		if px != red && px != white {
			t.Fatalf("aliased fill produced blended pixel %v", px)
		}
	}
}

// TestImageSurfaceAntialiasedEdges tests that anti-aliased fills blend
// edge pixels.
func TestImageSurfaceAntialiasedEdges(t *testing.T) {
	s := newWhiteSurface(t, 64, 64, true)
	p := NewPath()
	p.Ellipse(32, 32, 20.3, 13.7)
	s.Fill(p, FillStyle{Color: red})

	blended := 0
	for _, px := range pixels(s.Image()) {
		if px != red && px != white {
			blended++
		}
	}
	if blended == 0 {
		t.Error("anti-aliased fill produced no blended edge pixels")
	}
}

// TestImageSurfaceStroke tests stroking a line.
func TestImageSurfaceStroke(t *testing.T) {
	s := newWhiteSurface(t, 100, 100, false)

	p := NewPath()
	p.MoveTo(10, 50)
	p.LineTo(90, 50)
	s.Stroke(p, DefaultStrokeStyle().WithColor(red).WithWidth(4))

	img := s.Image()
	if c := img.RGBAAt(50, 50); c != red {
		t.Errorf("on line = %v, want red", c)
	}
	if c := img.RGBAAt(50, 40); c != white {
		t.Errorf("off line = %v, want white", c)
	}
	// Butt caps stop at the endpoints.
	if c := img.RGBAAt(7, 50); c != white {
		t.Errorf("before start = %v, want white", c)
	}
}

// TestImageSurfaceStrokeAliasedOddWidth tests that an aliased 1px stroke
// on integer coordinates covers a single row.
func TestImageSurfaceStrokeAliasedOddWidth(t *testing.T) {
	s := newWhiteSurface(t, 100, 100, false)

	p := NewPath()
	p.MoveTo(10, 50)
	p.LineTo(90, 50)
	s.Stroke(p, DefaultStrokeStyle().WithColor(red))

	img := s.Image()
	if c := img.RGBAAt(50, 50); c != red {
		t.Errorf("row 50 = %v, want red", c)
	}
	if c := img.RGBAAt(50, 49); c != white {
		t.Errorf("row 49 = %v, want white", c)
	}
	if c := img.RGBAAt(50, 51); c != white {
		t.Errorf("row 51 = %v, want white", c)
	}
}

// TestImageSurfaceStrokeZeroWidth tests that zero-width strokes draw nothing.
func TestImageSurfaceStrokeZeroWidth(t *testing.T) {
	s := newWhiteSurface(t, 20, 20, false)
	p := NewPath()
	p.MoveTo(0, 10)
	p.LineTo(20, 10)
	s.Stroke(p, DefaultStrokeStyle().WithColor(red).WithWidth(0))

	for _, px := range pixels(s.Image()) {
		if px != white {
			t.Fatal("zero-width stroke changed pixels")
		}
	}
}

// TestImageSurfaceClip tests that drawing is limited to the clip.
func TestImageSurfaceClip(t *testing.T) {
	s := newWhiteSurface(t, 100, 100, true)
	s.SetClip(image.Rect(20, 20, 60, 60))

	p := NewPath()
	p.Rectangle(0, 0, 100, 100)
	s.Fill(p, FillStyle{Color: red})

	img := s.Image()
	if c := img.RGBAAt(40, 40); c != red {
		t.Errorf("inside clip = %v, want red", c)
	}
	if c := img.RGBAAt(10, 10); c != white {
		t.Errorf("outside clip = %v, want white", c)
	}
	if c := img.RGBAAt(70, 40); c != white {
		t.Errorf("right of clip = %v, want white", c)
	}

	s.SetClip(image.Rect(-10, 90, 200, 200))
	if got := s.Clip(); got != image.Rect(0, 90, 100, 100) {
		t.Errorf("Clip() = %v, want intersected with bounds", got)
	}
	s.ClearClip()
	if got := s.Clip(); got != image.Rect(0, 0, 100, 100) {
		t.Errorf("Clip() after ClearClip = %v", got)
	}
}

// TestImageSurfaceFillOutsideClip tests paths that miss the clip.
func TestImageSurfaceFillOutsideClip(t *testing.T) {
	s := newWhiteSurface(t, 50, 50, false)
	s.SetClip(image.Rect(0, 0, 10, 10))

	p := NewPath()
	p.Rectangle(30, 30, 10, 10)
	s.Fill(p, FillStyle{Color: red})

	for _, px := range pixels(s.Image()) {
		if px != white {
			t.Fatal("fill outside the clip changed pixels")
		}
	}
}

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// TestImageSurfaceDrawImage tests unscaled placement.
func TestImageSurfaceDrawImage(t *testing.T) {
	s := newWhiteSurface(t, 50, 50, false)
	s.DrawImage(solidImage(10, 10, red), Point{X: 20, Y: 20}, nil)

	img := s.Image()
	if c := img.RGBAAt(25, 25); c != red {
		t.Errorf("inside image = %v, want red", c)
	}
	if c := img.RGBAAt(19, 19); c != white {
		t.Errorf("outside image = %v, want white", c)
	}
	if c := img.RGBAAt(30, 30); c != white {
		t.Errorf("past image = %v, want white", c)
	}
}

// TestImageSurfaceDrawImageTransform tests scaled placement.
func TestImageSurfaceDrawImageTransform(t *testing.T) {
	for _, aa := range []bool{false, true} {
		s := newWhiteSurface(t, 50, 50, aa)
		m := Translate(10, 10).Multiply(Scale(3, 3))
		opts := DefaultDrawImageOptions()
		opts.Transform = &m
		s.DrawImage(solidImage(10, 10, red), Point{}, opts)

		img := s.Image()
		if c := img.RGBAAt(35, 35); c != red {
			t.Errorf("aa=%v: inside scaled image = %v, want red", aa, c)
		}
		if c := img.RGBAAt(45, 45); c != white {
			t.Errorf("aa=%v: outside scaled image = %v, want white", aa, c)
		}
	}
}

// TestImageSurfaceDrawImageSrcRect tests drawing part of an image.
func TestImageSurfaceDrawImageSrcRect(t *testing.T) {
	src := solidImage(20, 10, red)
	for x := 10; x < 20; x++ {
		for y := 0; y < 10; y++ {
			src.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}

	s := newWhiteSurface(t, 40, 40, false)
	sr := image.Rect(10, 0, 20, 10)
	opts := DefaultDrawImageOptions()
	opts.SrcRect = &sr
	s.DrawImage(src, Point{}, opts)

	if c := s.Image().RGBAAt(5, 5); c != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("pixel = %v, want blue half of the source", c)
	}
	if c := s.Image().RGBAAt(15, 5); c != white {
		t.Errorf("pixel = %v, want white past the source rect", c)
	}
}

// TestImageSurfaceDrawImageSingular tests that singular transforms draw
// nothing.
func TestImageSurfaceDrawImageSingular(t *testing.T) {
	s := newWhiteSurface(t, 20, 20, false)
	m := Scale(0, 1)
	opts := DefaultDrawImageOptions()
	opts.Transform = &m
	s.DrawImage(solidImage(10, 10, red), Point{}, opts)

	for _, px := range pixels(s.Image()) {
		if px != white {
			t.Fatal("singular transform changed pixels")
		}
	}
}

// TestImageSurfaceClose tests that a closed surface ignores drawing.
func TestImageSurfaceClose(t *testing.T) {
	s := NewImageSurface(10, 10)
	if err := s.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close error: %v", err)
	}
	if !s.Closed() {
		t.Error("Closed() = false after Close")
	}
	if s.Snapshot() != nil {
		t.Error("Snapshot after Close should be nil")
	}

	p := NewPath()
	p.Rectangle(0, 0, 5, 5)
	s.Clear(red)
	s.Fill(p, FillStyle{Color: red})
	s.Stroke(p, DefaultStrokeStyle())
	s.DrawImage(solidImage(2, 2, red), Point{}, nil)
}

// TestImageSurfaceCapabilities tests reported capabilities.
func TestImageSurfaceCapabilities(t *testing.T) {
	caps := NewImageSurface(1, 1).Capabilities()
	if !caps.SupportsClipping || !caps.SupportsAntialias || !caps.SupportsTransformedImages {
		t.Errorf("capabilities = %+v", caps)
	}
}

// TestImageSurfaceFromImage tests rendering into a caller's image.
func TestImageSurfaceFromImage(t *testing.T) {
	backing := image.NewRGBA(image.Rect(0, 0, 30, 20))
	s := NewImageSurfaceFromImage(backing)
	s.Clear(red)

	if backing.RGBAAt(29, 19) != red {
		t.Error("surface did not render into the provided image")
	}
	if s.Image() != backing {
		t.Error("Image() should return the backing image")
	}

	sub := backing.SubImage(image.Rect(10, 5, 20, 15)).(*image.RGBA)
	s = NewImageSurfaceFromImage(sub)
	if s.Width() != 10 || s.Height() != 10 {
		t.Errorf("sub-image surface size = %dx%d, want 10x10", s.Width(), s.Height())
	}
}

// TestToRGBA tests color conversion.
func TestToRGBA(t *testing.T) {
	if c := toRGBA(nil); c != (color.RGBA{A: 255}) {
		t.Errorf("toRGBA(nil) = %v, want opaque black", c)
	}
	if c := toRGBA(color.NRGBA{255, 0, 0, 128}); c.A != 128 || c.R != 128 {
		t.Errorf("toRGBA(half red) = %v, want premultiplied", c)
	}
}

func pixels(img *image.RGBA) []color.RGBA {
	b := img.Bounds()
	out := make([]color.RGBA, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, img.RGBAAt(x, y))
		}
	}
	return out
}

func BenchmarkImageSurfaceFillRect(b *testing.B) {
	for _, aa := range []bool{false, true} {
		name := "aliased"
		if aa {
			name = "antialiased"
		}
		b.Run(name, func(b *testing.B) {
			s := newWhiteSurface(b, 512, 512, aa)
			p := NewPath()
			p.Rectangle(100, 100, 300, 200)
			style := FillStyle{Color: red}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.Fill(p, style)
			}
		})
	}
}

func BenchmarkImageSurfaceStrokeEllipse(b *testing.B) {
	s := newWhiteSurface(b, 512, 512, true)
	p := NewPath()
	p.Ellipse(256, 256, 200, 120)
	style := DefaultStrokeStyle().WithColor(red)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Stroke(p, style)
	}
}

func BenchmarkImageSurfaceDrawImage(b *testing.B) {
	img := solidImage(128, 128, red)
	scaled := Translate(10, 10).Multiply(Scale(2.5, 2.5))
	tests := []struct {
		name string
		m    *Matrix
	}{
		{"translate", nil},
		{"scale", &scaled},
	}
	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			s := newWhiteSurface(b, 512, 512, false)
			opts := DefaultDrawImageOptions()
			opts.Transform = tt.m
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.DrawImage(img, Point{X: 100, Y: 100}, opts)
			}
		})
	}
}
