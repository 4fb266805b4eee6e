// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/gogpu/ggbench/text"
)

// Graphics is the stateful drawing API the benchmark drives. Coordinates
// are in user space and pass through the current transform.
type Graphics interface {
	DrawLine(x1, y1, x2, y2 float64)
	DrawRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
	DrawOval(x, y, w, h float64)
	FillOval(x, y, w, h float64)

	// DrawPolyline and FillPolygon take flat x, y pairs.
	DrawPolyline(pts []float64)
	FillPolygon(pts []float64)

	// DrawString draws s with its baseline starting at (x, y).
	DrawString(s string, x, y float64)

	// DrawImage draws img unscaled with its top-left corner at (x, y).
	DrawImage(img image.Image, x, y float64)

	// DrawImageScaled draws the source rectangle (sx, sy, sw, sh) of img,
	// relative to its bounds, into the destination rectangle (dx, dy, dw, dh).
	DrawImageScaled(img image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64)

	SetColor(c color.Color)
	Color() color.Color
	SetBackground(c color.Color)
	Background() color.Color

	// SetClip limits drawing to a device-space rectangle. Nil removes the clip.
	SetClip(r *image.Rectangle)
	SetTransform(m Matrix)
	Transform() Matrix

	// SetAntialias toggles the rendering-quality hint.
	SetAntialias(on bool)
	Antialias() bool

	// Dispose releases the underlying surface.
	Dispose() error
}

// lineWidth is the user-space stroke width of every outline primitive.
const lineWidth = 1

// Graphics2D implements Graphics on top of any Surface. It owns the
// user-space state (colors, transform, clip, hints) and turns each
// primitive into a device-space path or image placement.
//
// Graphics2D is not safe for concurrent use.
type Graphics2D struct {
	surface Surface
	face    outliner
	logger  *slog.Logger

	fg        color.Color
	bg        color.Color
	transform Matrix
	clip      *image.Rectangle
	antialias bool

	// path is scratch space reused by every primitive.
	path *Path

	disposed   bool
	textFailed bool
}

// outliner appends glyph outlines to a path. *text.Face implements it.
type outliner interface {
	AppendString(dst text.Sink, s string, x, y float64) error
}

// NewGraphics wraps s. Face is used by DrawString; when nil, strings are
// not drawn.
func NewGraphics(s Surface, face *text.Face) *Graphics2D {
	g := &Graphics2D{
		surface:   s,
		logger:    slog.New(slog.DiscardHandler),
		fg:        color.Black,
		bg:        color.White,
		transform: Identity(),
		path:      NewPath(),
	}
	if face != nil {
		g.face = face
	}
	if as, ok := s.(AntialiasSurface); ok {
		g.antialias = as.Antialias()
	}
	return g
}

// SetLogger sets the logger that reports drawing failures. Nil discards
// them.
func (g *Graphics2D) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	g.logger = l
}

// Surface returns the wrapped surface.
func (g *Graphics2D) Surface() Surface {
	return g.surface
}

// String describes the graphics object and its surface.
func (g *Graphics2D) String() string {
	return fmt.Sprintf("Graphics2D[%v]", g.surface)
}

// DrawLine strokes the segment (x1, y1)-(x2, y2).
func (g *Graphics2D) DrawLine(x1, y1, x2, y2 float64) {
	p := g.begin()
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	g.stroke(p)
}

// DrawRect strokes the outline of a rectangle.
func (g *Graphics2D) DrawRect(x, y, w, h float64) {
	p := g.begin()
	p.Rectangle(x, y, w, h)
	g.stroke(p)
}

// FillRect fills a rectangle.
func (g *Graphics2D) FillRect(x, y, w, h float64) {
	p := g.begin()
	p.Rectangle(x, y, w, h)
	g.fill(p)
}

// DrawOval strokes the ellipse inscribed in the rectangle.
func (g *Graphics2D) DrawOval(x, y, w, h float64) {
	p := g.begin()
	p.Ellipse(x+w/2, y+h/2, w/2, h/2)
	g.stroke(p)
}

// FillOval fills the ellipse inscribed in the rectangle.
func (g *Graphics2D) FillOval(x, y, w, h float64) {
	p := g.begin()
	p.Ellipse(x+w/2, y+h/2, w/2, h/2)
	g.fill(p)
}

// DrawPolyline strokes an open polyline.
func (g *Graphics2D) DrawPolyline(pts []float64) {
	p := g.begin()
	p.Polyline(pts)
	g.stroke(p)
}

// FillPolygon fills a closed polygon.
func (g *Graphics2D) FillPolygon(pts []float64) {
	p := g.begin()
	p.Polygon(pts)
	g.fill(p)
}

// DrawString fills the glyph outlines of s. When the outlines cannot be
// loaded nothing is drawn; the first such failure is logged as a warning.
func (g *Graphics2D) DrawString(s string, x, y float64) {
	if g.face == nil || s == "" || g.disposed {
		return
	}
	p := g.begin()
	if err := g.face.AppendString(p, s, x, y); err != nil {
		if !g.textFailed {
			g.textFailed = true
			g.logger.Warn("surface: string not drawn",
				slog.String("text", s), slog.Any("error", err))
		}
		return
	}
	g.fill(p)
}

// DrawImage draws img unscaled at (x, y).
func (g *Graphics2D) DrawImage(img image.Image, x, y float64) {
	if img == nil || g.disposed {
		return
	}
	b := img.Bounds()
	m := g.transform.Multiply(Translate(x-float64(b.Min.X), y-float64(b.Min.Y)))
	g.surface.DrawImage(img, Point{}, g.imageOptions(nil, m))
}

// DrawImageScaled maps a source rectangle of img onto a destination
// rectangle. Empty rectangles draw nothing.
func (g *Graphics2D) DrawImageScaled(img image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	if img == nil || g.disposed || sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return
	}
	b := img.Bounds()
	sr := image.Rect(int(sx), int(sy), int(sx+sw), int(sy+sh)).Add(b.Min)
	if sr.Empty() {
		return
	}
	m := g.transform.
		Multiply(Translate(dx, dy)).
		Multiply(Scale(dw/float64(sr.Dx()), dh/float64(sr.Dy()))).
		Multiply(Translate(-float64(sr.Min.X), -float64(sr.Min.Y)))
	g.surface.DrawImage(img, Point{}, g.imageOptions(&sr, m))
}

// SetColor sets the foreground color used by every primitive.
func (g *Graphics2D) SetColor(c color.Color) {
	g.fg = c
}

// Color returns the foreground color.
func (g *Graphics2D) Color() color.Color {
	return g.fg
}

// SetBackground sets the background color.
func (g *Graphics2D) SetBackground(c color.Color) {
	g.bg = c
}

// Background returns the background color.
func (g *Graphics2D) Background() color.Color {
	return g.bg
}

// SetClip sets or removes the device-space clip rectangle. Surfaces
// without clipping support ignore it.
func (g *Graphics2D) SetClip(r *image.Rectangle) {
	if r == nil {
		g.clip = nil
	} else {
		clip := *r
		g.clip = &clip
	}

	cs, ok := g.surface.(ClippableSurface)
	if !ok {
		return
	}
	if g.clip == nil {
		cs.ClearClip()
		return
	}
	cs.SetClip(*g.clip)
}

// Clip returns the current clip rectangle, or nil if none is set.
func (g *Graphics2D) Clip() *image.Rectangle {
	if g.clip == nil {
		return nil
	}
	clip := *g.clip
	return &clip
}

// SetTransform replaces the current transform.
func (g *Graphics2D) SetTransform(m Matrix) {
	g.transform = m
}

// Transform returns the current transform.
func (g *Graphics2D) Transform() Matrix {
	return g.transform
}

// SetAntialias toggles anti-aliasing on surfaces that support it.
func (g *Graphics2D) SetAntialias(on bool) {
	g.antialias = on
	if as, ok := g.surface.(AntialiasSurface); ok {
		as.SetAntialias(on)
	}
}

// Antialias reports the current anti-aliasing hint.
func (g *Graphics2D) Antialias() bool {
	return g.antialias
}

// Dispose closes the surface. Later drawing calls are no-ops.
func (g *Graphics2D) Dispose() error {
	if g.disposed {
		return nil
	}
	g.disposed = true
	return g.surface.Close()
}

// Disposed reports whether Dispose has been called.
func (g *Graphics2D) Disposed() bool {
	return g.disposed
}

func (g *Graphics2D) begin() *Path {
	g.path.Clear()
	return g.path
}

func (g *Graphics2D) fill(p *Path) {
	if g.disposed {
		return
	}
	p.Transform(g.transform)
	g.surface.Fill(p, FillStyle{Color: g.fg})
}

func (g *Graphics2D) stroke(p *Path) {
	if g.disposed {
		return
	}
	p.Transform(g.transform)
	style := DefaultStrokeStyle().
		WithColor(g.fg).
		WithWidth(lineWidth * g.transform.ScaleFactor())
	g.surface.Stroke(p, style)
}

func (g *Graphics2D) imageOptions(sr *image.Rectangle, m Matrix) *DrawImageOptions {
	opts := DefaultDrawImageOptions()
	opts.SrcRect = sr
	opts.Transform = &m
	if g.antialias {
		opts.Filter = FilterBilinear
	}
	return opts
}

var _ Graphics = (*Graphics2D)(nil)
