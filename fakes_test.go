package ggbench

import (
	"fmt"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gogpu/ggbench/imagesource"
	"github.com/gogpu/ggbench/surface"
)

// steppingClock advances by step on every Now call.
type steppingClock struct {
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// call is one recorded Graphics method invocation.
type call struct {
	op   string
	args []float64
}

func (c call) String() string {
	return fmt.Sprintf("%s%v", c.op, c.args)
}

// recordingGraphics implements surface.Graphics by recording calls.
type recordingGraphics struct {
	calls     []call
	draws     int
	fg, bg    color.Color
	transform surface.Matrix
	clip      *image.Rectangle
	antialias bool
	disposed  int
}

func newRecordingGraphics() *recordingGraphics {
	return &recordingGraphics{transform: surface.Identity()}
}

func (g *recordingGraphics) record(op string, args ...float64) {
	g.calls = append(g.calls, call{op: op, args: args})
}

func (g *recordingGraphics) draw(op string, args ...float64) {
	g.draws++
	g.record(op, args...)
}

func (g *recordingGraphics) DrawLine(x1, y1, x2, y2 float64) { g.draw("line", x1, y1, x2, y2) }
func (g *recordingGraphics) DrawRect(x, y, w, h float64)     { g.draw("rect", x, y, w, h) }
func (g *recordingGraphics) FillRect(x, y, w, h float64)     { g.draw("fillRect", x, y, w, h) }
func (g *recordingGraphics) DrawOval(x, y, w, h float64)     { g.draw("oval", x, y, w, h) }
func (g *recordingGraphics) FillOval(x, y, w, h float64)     { g.draw("fillOval", x, y, w, h) }
func (g *recordingGraphics) DrawPolyline(pts []float64) {
	g.draw("poly", append([]float64(nil), pts...)...)
}
func (g *recordingGraphics) FillPolygon(pts []float64) {
	g.draw("fillPoly", append([]float64(nil), pts...)...)
}
func (g *recordingGraphics) DrawString(_ string, x, y float64) { g.draw("text", x, y) }
func (g *recordingGraphics) DrawImage(img image.Image, x, y float64) {
	g.draw("image", float64(img.Bounds().Dx()), x, y)
}
func (g *recordingGraphics) DrawImageScaled(_ image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	g.draw("scaledImage", sx, sy, sw, sh, dx, dy, dw, dh)
}

func (g *recordingGraphics) SetColor(c color.Color) {
	g.fg = c
	g.record("color", rgba(c)...)
}
func (g *recordingGraphics) Color() color.Color { return g.fg }
func (g *recordingGraphics) SetBackground(c color.Color) {
	g.bg = c
	g.record("background", rgba(c)...)
}
func (g *recordingGraphics) Background() color.Color { return g.bg }
func (g *recordingGraphics) SetClip(r *image.Rectangle) {
	g.clip = r
	g.record("clip")
}
func (g *recordingGraphics) SetTransform(m surface.Matrix) {
	g.transform = m
	g.record("transform", m.A, m.B, m.C, m.D, m.E, m.F)
}
func (g *recordingGraphics) Transform() surface.Matrix { return g.transform }
func (g *recordingGraphics) SetAntialias(on bool)      { g.antialias = on }
func (g *recordingGraphics) Antialias() bool           { return g.antialias }
func (g *recordingGraphics) Dispose() error {
	g.disposed++
	return nil
}

// ops returns the recorded calls with the given op.
func (g *recordingGraphics) ops(op string) []call {
	var out []call
	for _, c := range g.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

func rgba(c color.Color) []float64 {
	r, gr, b, a := c.RGBA()
	return []float64{float64(r >> 8), float64(gr >> 8), float64(b >> 8), float64(a >> 8)}
}

func testImages(t testing.TB) *imagesource.Set {
	t.Helper()
	set, err := imagesource.Default()
	if err != nil {
		t.Fatalf("imagesource.Default() error: %v", err)
	}
	return set
}
