package ggbench

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/gogpu/ggbench/surface"
)

// TestID identifies a benchmarked primitive.
type TestID int

// Test cases in run order.
const (
	TestLine TestID = iota
	TestRect
	TestFillRect
	TestOval
	TestFillOval
	TestPoly
	TestFillPoly
	TestText
	TestImage
	TestScaledImage
	TestMaskImage
	TestAlphaImage
	TestARGBImage
)

// NumTests is the number of test cases.
const NumTests = int(TestARGBImage) + 1

var testNames = [NumTests]string{
	"line",
	"rect",
	"fill rect",
	"oval",
	"fill oval",
	"poly",
	"fill poly",
	"text",
	"image",
	"scaled image",
	"mask image",
	"alpha image",
	"argb image",
}

// String returns the display name used in the results table.
func (t TestID) String() string {
	if t < 0 || int(t) >= NumTests {
		return fmt.Sprintf("TestID(%d)", int(t))
	}
	return testNames[t]
}

// TestNames returns the display names of all test cases in run order.
func TestNames() []string {
	return append([]string(nil), testNames[:]...)
}

// polyPoints is the number of vertices per poly call.
const polyPoints = 10

// palette holds the colors picked for foreground and background.
var palette = [...]color.RGBA{
	{R: 0xff, A: 0xff},
	{G: 0xff, A: 0xff},
	{B: 0xff, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	{R: 0xff, G: 0xff, A: 0xff},
}

func pickColor(r *rand.Rand) color.RGBA {
	return palette[r.Int32()%int32(len(palette))]
}

// TestCase is one primitive under benchmark. Draw issues exactly one
// drawing call on g with arguments taken from r.
type TestCase struct {
	ID   TestID
	Name string
	Draw func(g surface.Graphics, r *rand.Rand)
}

// catalog builds the test cases bound to h's images, text and scratch
// polygon buffer.
func (h *Harness) catalog() [NumTests]TestCase {
	draws := [NumTests]func(g surface.Graphics, r *rand.Rand){
		TestLine: func(g surface.Graphics, r *rand.Rand) {
			g.DrawLine(coord(r), coord(r), coord(r), coord(r))
		},
		TestRect: func(g surface.Graphics, r *rand.Rand) {
			g.DrawRect(coord(r), coord(r), coord(r), coord(r))
		},
		TestFillRect: func(g surface.Graphics, r *rand.Rand) {
			g.FillRect(coord(r), coord(r), coord(r), coord(r))
		},
		TestOval: func(g surface.Graphics, r *rand.Rand) {
			g.DrawOval(coord(r), coord(r), coord(r), coord(r))
		},
		TestFillOval: func(g surface.Graphics, r *rand.Rand) {
			g.FillOval(coord(r), coord(r), coord(r), coord(r))
		},
		TestPoly: func(g surface.Graphics, r *rand.Rand) {
			g.DrawPolyline(h.genPoly(r))
		},
		TestFillPoly: func(g surface.Graphics, r *rand.Rand) {
			g.FillPolygon(h.genPoly(r))
		},
		TestText: func(g surface.Graphics, r *rand.Rand) {
			g.DrawString(h.opts.text, coord(r), coord(r))
		},
		TestImage: func(g surface.Graphics, r *rand.Rand) {
			g.DrawImage(h.images.Opaque, coord(r), coord(r))
		},
		TestScaledImage: func(g surface.Graphics, r *rand.Rand) {
			b := h.images.Opaque.Bounds()
			g.DrawImageScaled(h.images.Opaque, 0, 0, float64(b.Dx()), float64(b.Dy()),
				coord(r), coord(r), coord(r), coord(r))
		},
		TestMaskImage: func(g surface.Graphics, r *rand.Rand) {
			g.DrawImage(h.images.Bitmask, coord(r), coord(r))
		},
		TestAlphaImage: func(g surface.Graphics, r *rand.Rand) {
			g.DrawImage(h.images.Translucent, coord(r), coord(r))
		},
		TestARGBImage: func(g surface.Graphics, r *rand.Rand) {
			g.DrawImage(h.images.ARGB, coord(r), coord(r))
		},
	}

	var cases [NumTests]TestCase
	for i := range cases {
		cases[i] = TestCase{ID: TestID(i), Name: testNames[i], Draw: draws[i]}
	}
	return cases
}

// genPoly fills the scratch buffer with polyPoints random vertices.
func (h *Harness) genPoly(r *rand.Rand) []float64 {
	for i := range h.pts {
		h.pts[i] = coord(r)
	}
	return h.pts[:]
}
