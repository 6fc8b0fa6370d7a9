/*
Package geom implements the small set of planar geometry primitives needed
for layout analysis of OCR output: points, quadrilaterals and axis-aligned
rectangles in pixel coordinates.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package geom

import (
	"encoding/json"
	"errors"
	"math"
)

// Point is a point on a page, in pixel coordinates. The y-axis grows downward,
// as is usual for raster images.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func Dist(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Rotate rotates a point by angle theta (in radians) around the origin.
// Positive angles rotate towards the positive y-axis, i.e. clockwise in
// image coordinates.
func (p Point) Rotate(theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// MarshalJSON writes a point as a 2-element array [x, y], the wire format
// used by OCR engines for box vertices.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// UnmarshalJSON reads a point from a 2-element array [x, y].
func (p *Point) UnmarshalJSON(b []byte) error {
	var coords []float64
	if err := json.Unmarshal(b, &coords); err != nil {
		return err
	}
	if len(coords) != 2 {
		return errors.New("point must have exactly 2 coordinates")
	}
	p.X, p.Y = coords[0], coords[1]
	return nil
}

// Quad is an ordered quadrilateral: vertices are top-left, top-right,
// bottom-right, bottom-left. It need not be axis-aligned; OCR engines report
// rotated detection boxes this way.
type Quad [4]Point

// Corner indices of a Quad.
const (
	TopL int = iota
	TopR
	BotR
	BotL
)

// LongSideAngle returns the angle (via atan2, in radians) of the longer of
// the quad's top edge and right edge. For a detection box this is the
// direction the text runs in, modulo π.
func (q Quad) LongSideAngle() float64 {
	top := Dist(q[TopL], q[TopR])
	side := Dist(q[TopR], q[BotR])
	if top >= side {
		return math.Atan2(q[TopR].Y-q[TopL].Y, q[TopR].X-q[TopL].X)
	}
	return math.Atan2(q[BotR].Y-q[TopR].Y, q[BotR].X-q[TopR].X)
}

// Rotate rotates all four vertices by theta around the origin.
func (q Quad) Rotate(theta float64) Quad {
	var r Quad
	for i, p := range q {
		r[i] = p.Rotate(theta)
	}
	return r
}

// Bounds returns the axis-aligned envelope of the quad.
func (q Quad) Bounds() Rect {
	r := Rect{q[0].X, q[0].Y, q[0].X, q[0].Y}
	for _, p := range q[1:] {
		r.X0 = math.Min(r.X0, p.X)
		r.Y0 = math.Min(r.Y0, p.Y)
		r.X1 = math.Max(r.X1, p.X)
		r.Y1 = math.Max(r.Y1, p.Y)
	}
	return r
}

// RectQuad returns the axis-aligned quad spanning r.
func RectQuad(r Rect) Quad {
	return Quad{
		{r.X0, r.Y0},
		{r.X1, r.Y0},
		{r.X1, r.Y1},
		{r.X0, r.Y1},
	}
}

// Rect is an axis-aligned rectangle with X0 ≤ X1 and Y0 ≤ Y1.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Translate shifts the rectangle by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{r.X0 + dx, r.Y0 + dy, r.X1 + dx, r.Y1 + dy}
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		math.Min(r.X0, s.X0),
		math.Min(r.Y0, s.Y0),
		math.Max(r.X1, s.X1),
		math.Max(r.Y1, s.Y1),
	}
}
