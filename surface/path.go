// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// Verb is a path construction command.
type Verb uint8

const (
	// VerbMoveTo starts a new subpath. Consumes one point.
	VerbMoveTo Verb = iota

	// VerbLineTo adds a line. Consumes one point.
	VerbLineTo

	// VerbQuadTo adds a quadratic Bezier. Consumes two points.
	VerbQuadTo

	// VerbCubicTo adds a cubic Bezier. Consumes three points.
	VerbCubicTo

	// VerbClose closes the current subpath. Consumes no points.
	VerbClose
)

// pointCount returns how many (x, y) pairs the verb consumes.
func (v Verb) pointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 1
	case VerbQuadTo:
		return 2
	case VerbCubicTo:
		return 3
	default:
		return 0
	}
}

// Path represents a vector path for drawing operations.
//
// Points are stored as float32 pairs, the precision used by the
// rasterizer.
//
// Example:
//
//	p := surface.NewPath()
//	p.MoveTo(100, 100)
//	p.LineTo(200, 100)
//	p.LineTo(150, 200)
//	p.Close()
//
//	s.Fill(p, style)
type Path struct {
	verbs  []Verb
	points []float32
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]Verb, 0, 16),
		points: make([]float32, 0, 64),
	}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, float32(x), float32(y))
}

// LineTo adds a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(x, y)
		return
	}
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, float32(x), float32(y))
}

// QuadTo adds a quadratic Bezier curve from the current point.
// (cx, cy) is the control point, (x, y) is the endpoint.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(cx, cy)
	}
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, float32(cx), float32(cy), float32(x), float32(y))
}

// CubicTo adds a cubic Bezier curve from the current point.
// (c1x, c1y) and (c2x, c2y) are control points, (x, y) is the endpoint.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(c1x, c1y)
	}
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points,
		float32(c1x), float32(c1y),
		float32(c2x), float32(c2y),
		float32(x), float32(y))
}

// Close closes the current subpath by connecting to the start point.
func (p *Path) Close() {
	if len(p.verbs) == 0 {
		return
	}
	p.verbs = append(p.verbs, VerbClose)
}

// Clear removes all elements from the path, keeping its storage.
func (p *Path) Clear() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the verb slice.
func (p *Path) Verbs() []Verb {
	return p.verbs
}

// Points returns the flat x, y point slice.
func (p *Path) Points() []float32 {
	return p.points
}

// Transform applies m to every point of the path in place.
func (p *Path) Transform(m Matrix) {
	if m.IsIdentity() {
		return
	}
	for i := 0; i+1 < len(p.points); i += 2 {
		x, y := m.TransformPoint(float64(p.points[i]), float64(p.points[i+1]))
		p.points[i], p.points[i+1] = float32(x), float32(y)
	}
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Ellipse adds an ellipse centered on (cx, cy) to the path.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	const k = 0.5522847498307936 // Bezier circle approximation constant
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Polyline adds an open subpath through the flat x, y pairs in pts.
// A trailing odd coordinate is ignored.
func (p *Path) Polyline(pts []float64) {
	for i := 0; i+1 < len(pts); i += 2 {
		if i == 0 {
			p.MoveTo(pts[0], pts[1])
			continue
		}
		p.LineTo(pts[i], pts[i+1])
	}
}

// Polygon adds a closed subpath through the flat x, y pairs in pts.
func (p *Path) Polygon(pts []float64) {
	if len(pts) < 2 {
		return
	}
	p.Polyline(pts)
	p.Close()
}

// Bounds returns the axis-aligned bounding box of the path's points,
// including curve control points.
// Returns zeros if the path is empty.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p.points) == 0 {
		return 0, 0, 0, 0
	}

	minX = float64(p.points[0])
	maxX = minX
	minY = float64(p.points[1])
	maxY = minY

	for i := 2; i < len(p.points); i += 2 {
		x := float64(p.points[i])
		y := float64(p.points[i+1])
		minX = min(minX, x)
		maxX = max(maxX, x)
		minY = min(minY, y)
		maxY = max(maxY, y)
	}

	return minX, minY, maxX, maxY
}
