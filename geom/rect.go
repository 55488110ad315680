/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 *
 * Generalized from unidoc-unipdf's contentstream/draw.BoundingBox, adapted from a
 * PDF page bounding box to Draw's (min,max) object-header convention.
 */

package geom

// Rect is a Draw object's bounding box: (x0,y0) the lower-left, (x1,y1) the upper-right,
// both in Draw units with Y increasing upward.
type Rect struct {
	X0, Y0, X1, Y1 int32
}

// Width returns the Rect's width in Draw units.
func (r Rect) Width() int32 { return r.X1 - r.X0 }

// Height returns the Rect's height in Draw units.
func (r Rect) Height() int32 { return r.Y1 - r.Y0 }

// Union returns the smallest Rect enclosing `r` and `other`.
func (r Rect) Union(other Rect) Rect {
	out := r
	if other.X0 < out.X0 {
		out.X0 = other.X0
	}
	if other.Y0 < out.Y0 {
		out.Y0 = other.Y0
	}
	if other.X1 > out.X1 {
		out.X1 = other.X1
	}
	if other.Y1 > out.Y1 {
		out.Y1 = other.Y1
	}
	return out
}

// BoundsOfPoints returns the smallest Rect enclosing every point in `pts`, in Draw units.
func BoundsOfPoints(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{X0: pts[0].X, Y0: pts[0].Y, X1: pts[0].X, Y1: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < r.X0 {
			r.X0 = p.X
		}
		if p.X > r.X1 {
			r.X1 = p.X
		}
		if p.Y < r.Y0 {
			r.Y0 = p.Y
		}
		if p.Y > r.Y1 {
			r.Y1 = p.Y
		}
	}
	return r
}

// Point is a Draw-unit integer coordinate pair, Y increasing upward.
type Point struct {
	X, Y int32
}
