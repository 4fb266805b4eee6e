// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/chewxy/math32"

// flattenTolerance is the maximum distance, in pixels, between a curve
// and its line approximation.
const flattenTolerance = 0.25

// maxFlattenDepth bounds curve subdivision.
const maxFlattenDepth = 10

// strokeSegment is a line segment in device space.
type strokeSegment struct {
	x0, y0, x1, y1 float32
}

// flatten converts the path into line segments, closing subpaths that
// end with VerbClose.
func (p *Path) flatten(segments []strokeSegment) []strokeSegment {
	var curX, curY, startX, startY float32

	pointIdx := 0
	for _, verb := range p.verbs {
		switch verb {
		case VerbMoveTo:
			startX, startY = p.points[pointIdx], p.points[pointIdx+1]
			curX, curY = startX, startY

		case VerbLineTo:
			x, y := p.points[pointIdx], p.points[pointIdx+1]
			segments = append(segments, strokeSegment{curX, curY, x, y})
			curX, curY = x, y

		case VerbQuadTo:
			cx, cy := p.points[pointIdx], p.points[pointIdx+1]
			x, y := p.points[pointIdx+2], p.points[pointIdx+3]
			segments = flattenQuad(curX, curY, cx, cy, x, y, 0, segments)
			curX, curY = x, y

		case VerbCubicTo:
			c1x, c1y := p.points[pointIdx], p.points[pointIdx+1]
			c2x, c2y := p.points[pointIdx+2], p.points[pointIdx+3]
			x, y := p.points[pointIdx+4], p.points[pointIdx+5]
			segments = flattenCubic(curX, curY, c1x, c1y, c2x, c2y, x, y, 0, segments)
			curX, curY = x, y

		case VerbClose:
			if curX != startX || curY != startY {
				segments = append(segments, strokeSegment{curX, curY, startX, startY})
			}
			curX, curY = startX, startY
		}
		pointIdx += 2 * verb.pointCount()
	}

	return segments
}

func flattenQuad(x0, y0, cx, cy, x1, y1 float32, depth int, segments []strokeSegment) []strokeSegment {
	dx := x1 - x0
	dy := y1 - y0
	cross := (cx-x0)*dy - (cy-y0)*dx
	lenSq := dx*dx + dy*dy

	if depth >= maxFlattenDepth || lenSq < 1e-6 || cross*cross/lenSq < flattenTolerance*flattenTolerance {
		return append(segments, strokeSegment{x0, y0, x1, y1})
	}

	q0x, q0y := (x0+cx)*0.5, (y0+cy)*0.5
	q1x, q1y := (cx+x1)*0.5, (cy+y1)*0.5
	mx, my := (q0x+q1x)*0.5, (q0y+q1y)*0.5

	segments = flattenQuad(x0, y0, q0x, q0y, mx, my, depth+1, segments)
	return flattenQuad(mx, my, q1x, q1y, x1, y1, depth+1, segments)
}

func flattenCubic(x0, y0, c1x, c1y, c2x, c2y, x1, y1 float32, depth int, segments []strokeSegment) []strokeSegment {
	dx := x1 - x0
	dy := y1 - y0
	lenSq := dx*dx + dy*dy

	if depth >= maxFlattenDepth {
		return append(segments, strokeSegment{x0, y0, x1, y1})
	}
	if lenSq >= 1e-6 {
		cross1 := math32.Abs((c1x-x0)*dy - (c1y-y0)*dx)
		cross2 := math32.Abs((c2x-x0)*dy - (c2y-y0)*dx)
		maxCross := math32.Max(cross1, cross2)
		if maxCross*maxCross/lenSq < flattenTolerance*flattenTolerance {
			return append(segments, strokeSegment{x0, y0, x1, y1})
		}
	}

	m01x, m01y := (x0+c1x)*0.5, (y0+c1y)*0.5
	m12x, m12y := (c1x+c2x)*0.5, (c1y+c2y)*0.5
	m23x, m23y := (c2x+x1)*0.5, (c2y+y1)*0.5
	m012x, m012y := (m01x+m12x)*0.5, (m01y+m12y)*0.5
	m123x, m123y := (m12x+m23x)*0.5, (m12y+m23y)*0.5
	mx, my := (m012x+m123x)*0.5, (m012y+m123y)*0.5

	segments = flattenCubic(x0, y0, m01x, m01y, m012x, m012y, mx, my, depth+1, segments)
	return flattenCubic(mx, my, m123x, m123y, m23x, m23y, x1, y1, depth+1, segments)
}

// normalizeStroke moves segments onto pixel centers when width is an odd
// whole number, so an aliased stroke along integer coordinates covers
// width pixels instead of straddling two half-covered rows.
func normalizeStroke(segments []strokeSegment, width float64) {
	w := float32(width)
	if w != math32.Round(w) || int(w)%2 == 0 {
		return
	}
	for i := range segments {
		segments[i].x0 += 0.5
		segments[i].y0 += 0.5
		segments[i].x1 += 0.5
		segments[i].y1 += 0.5
	}
}

// expandStroke appends to dst one quad per segment, each of the given
// width. All quads share the same winding so overlapping quads at joins
// accumulate instead of cancelling.
func expandStroke(dst *Path, segments []strokeSegment, style StrokeStyle) {
	hw := float32(style.Width) / 2
	if hw <= 0 {
		return
	}

	for _, seg := range segments {
		dx := seg.x1 - seg.x0
		dy := seg.y1 - seg.y0
		length := math32.Hypot(dx, dy)
		if length == 0 {
			// Degenerate segment: a dot of the stroke width.
			dx, dy, length = 1, 0, 1
		}

		ux, uy := dx/length*hw, dy/length*hw
		nx, ny := -uy, ux

		x0, y0 := seg.x0, seg.y0
		x1, y1 := seg.x1, seg.y1
		if seg.x0 == seg.x1 && seg.y0 == seg.y1 {
			x0, y0 = x0-ux, y0-uy
			x1, y1 = x1+ux, y1+uy
		}

		dst.MoveTo(float64(x0+nx), float64(y0+ny))
		dst.LineTo(float64(x1+nx), float64(y1+ny))
		dst.LineTo(float64(x1-nx), float64(y1-ny))
		dst.LineTo(float64(x0-nx), float64(y0-ny))
		dst.Close()
	}
}
