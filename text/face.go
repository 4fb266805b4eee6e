package text

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrInvalidSize is returned when a face is created with a non-positive size.
var ErrInvalidSize = errors.New("text: font size must be positive")

// Sink receives glyph outlines. *surface.Path satisfies it.
type Sink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
}

// Glyph is a shaped glyph positioned relative to the pen origin, in
// pixels with Y pointing down.
type Glyph struct {
	ID       GlyphID
	X, Y     float64
	XAdvance float64
}

// GlyphID identifies a glyph within a font.
type GlyphID uint16

// Face is a font at a fixed pixel size.
//
// The font data is parsed twice: by go-text/typesetting, whose HarfBuzz
// port shapes strings into glyph ids and positions, and by
// golang.org/x/image/font/sfnt, which loads the glyph outlines. Glyph ids
// are intrinsic to the font file, so both agree.
//
// Face caches outlines per glyph and is NOT safe for concurrent use.
type Face struct {
	size float64

	shapingFace *font.Face
	shaper      shaping.HarfbuzzShaper

	outlineFont *sfnt.Font
	buf         sfnt.Buffer
	outlines    map[GlyphID][]segment
}

// segment is a glyph outline command in pixels relative to the glyph
// origin. Unused points are zero.
type segment struct {
	op  sfnt.SegmentOp
	pts [3][2]float64
}

// NewFace parses TrueType or OpenType data and returns a face of the
// given pixel size.
func NewFace(data []byte, size float64) (*Face, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	shapingFace, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}

	outlineFont, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font outlines: %w", err)
	}

	return &Face{
		size:        size,
		shapingFace: shapingFace,
		outlineFont: outlineFont,
		outlines:    make(map[GlyphID][]segment),
	}, nil
}

// DefaultFace returns the Go Regular font at the given pixel size.
func DefaultFace(size float64) (*Face, error) {
	return NewFace(goregular.TTF, size)
}

// Size returns the pixel size of the face.
func (f *Face) Size() float64 {
	return f.size
}

// Layout shapes s into positioned glyphs. The script comes from the first
// non-space rune and the direction from the Unicode bidi algorithm.
func (f *Face) Layout(s string) []Glyph {
	if s == "" {
		return nil
	}
	runes := []rune(s)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: Direction(s),
		Face:      f.shapingFace,
		Size:      fixed.Int26_6(f.size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	output := f.shaper.Shape(input)

	glyphs := make([]Glyph, len(output.Glyphs))
	var x float64
	for i, g := range output.Glyphs {
		adv := fixedToFloat(g.Advance)
		glyphs[i] = Glyph{
			ID: GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph ids fit in uint16 for TrueType fonts
			X:  x + fixedToFloat(g.XOffset),
			// go-text offsets point up; outlines point down.
			Y:        -fixedToFloat(g.YOffset),
			XAdvance: adv,
		}
		x += adv
	}
	return glyphs
}

// Advance returns the shaped width of s in pixels.
func (f *Face) Advance(s string) float64 {
	var w float64
	for _, g := range f.Layout(s) {
		w += g.XAdvance
	}
	return w
}

// AppendString shapes s and appends the outline of every glyph to dst,
// with the baseline starting at (x, y).
func (f *Face) AppendString(dst Sink, s string, x, y float64) error {
	for _, g := range f.Layout(s) {
		segs, err := f.outline(g.ID)
		if err != nil {
			return err
		}
		appendOutline(dst, segs, x+g.X, y+g.Y)
	}
	return nil
}

// outline returns the cached outline of a glyph, loading it on first use.
func (f *Face) outline(id GlyphID) ([]segment, error) {
	if segs, ok := f.outlines[id]; ok {
		return segs, nil
	}

	ppem := fixed.Int26_6(f.size * 64)
	loaded, err := f.outlineFont.LoadGlyph(&f.buf, sfnt.GlyphIndex(id), ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("text: load glyph %d: %w", id, err)
	}

	// LoadGlyph reuses f.buf, so copy out of it.
	segs := make([]segment, len(loaded))
	for i, s := range loaded {
		segs[i].op = s.Op
		for j := range s.Args {
			segs[i].pts[j] = [2]float64{fixedToFloat(s.Args[j].X), fixedToFloat(s.Args[j].Y)}
		}
	}
	f.outlines[id] = segs
	return segs, nil
}

// appendOutline emits segs translated by (ox, oy). Each MoveTo after the
// first closes the previous contour.
func appendOutline(dst Sink, segs []segment, ox, oy float64) {
	open := false
	for _, s := range segs {
		p := s.pts
		switch s.op {
		case sfnt.SegmentOpMoveTo:
			if open {
				dst.Close()
			}
			dst.MoveTo(p[0][0]+ox, p[0][1]+oy)
			open = true
		case sfnt.SegmentOpLineTo:
			dst.LineTo(p[0][0]+ox, p[0][1]+oy)
		case sfnt.SegmentOpQuadTo:
			dst.QuadTo(p[0][0]+ox, p[0][1]+oy, p[1][0]+ox, p[1][1]+oy)
		case sfnt.SegmentOpCubeTo:
			dst.CubicTo(p[0][0]+ox, p[0][1]+oy, p[1][0]+ox, p[1][1]+oy, p[2][0]+ox, p[2][1]+oy)
		}
	}
	if open {
		dst.Close()
	}
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
