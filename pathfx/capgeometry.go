/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pathfx

import (
	"math"

	"github.com/drawfile/draw2svg/internal/xform"
)

// capOverlap is the projecting-cap backward overlap (in SVG pixels) used to hide the
// anti-aliasing seam between a cap and the dash it terminates, per spec.md 4.4.
const capOverlap = 0.02

// ShapeKind discriminates the two cap geometries SVG can render directly.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapePolygon
)

// Shape is the geometry to render for one synthesised cap.
type Shape struct {
	Kind    ShapeKind
	Cx, Cy  float64   // ShapeCircle
	R       float64   // ShapeCircle
	Polygon []xform.Point // ShapePolygon
}

// BuildCapShape returns the Shape to render for `cap` given the cap style that
// applies to its role (end-cap for RoleGapEnd, start-cap for RoleDashEnd) and the
// stroke's outline width in SVG pixels. ok is false for CapButt, which emits
// nothing.
func BuildCapShape(cap Cap, style CapStyle, outlineWidth float64, triCapWidth16, triCapLength16 int) (Shape, bool) {
	switch style {
	case CapButt:
		return Shape{}, false
	case CapRound:
		return Shape{Kind: ShapeCircle, Cx: cap.Pos.X, Cy: cap.Pos.Y, R: outlineWidth / 2}, true
	case CapSquare:
		return buildSquareCap(cap, outlineWidth), true
	case CapTriangle:
		return buildTriangleCap(cap, outlineWidth, triCapWidth16, triCapLength16), true
	default:
		return Shape{}, false
	}
}

// outwardSign returns the sign along the path direction a cap should project: a
// RoleDashEnd cap (start of a dash) projects backward against the direction of
// travel; a RoleGapEnd cap (end of a dash) projects forward.
func outwardSign(role CapRole) float64 {
	if role == RoleDashEnd {
		return -1
	}
	return 1
}

func buildSquareCap(cap Cap, outlineWidth float64) Shape {
	d := outwardSign(cap.Role)
	dx, dy := math.Cos(cap.Direction)*d, math.Sin(cap.Direction)*d
	nx, ny := -dy, dx // perpendicular, rotated 90 deg from (dx,dy)

	halfW := outlineWidth / 2
	projLen := halfW

	backX, backY := cap.Pos.X-dx*capOverlap, cap.Pos.Y-dy*capOverlap
	frontX, frontY := cap.Pos.X+dx*projLen, cap.Pos.Y+dy*projLen

	return Shape{
		Kind: ShapePolygon,
		Polygon: []xform.Point{
			{X: backX + nx*halfW, Y: backY + ny*halfW},
			{X: frontX + nx*halfW, Y: frontY + ny*halfW},
			{X: frontX - nx*halfW, Y: frontY - ny*halfW},
			{X: backX - nx*halfW, Y: backY - ny*halfW},
		},
	}
}

func buildTriangleCap(cap Cap, outlineWidth float64, triCapWidth16, triCapLength16 int) Shape {
	d := outwardSign(cap.Role)
	dx, dy := math.Cos(cap.Direction)*d, math.Sin(cap.Direction)*d
	nx, ny := -dy, dx

	length := float64(triCapLength16) / 16 * outlineWidth
	width := float64(triCapWidth16) / 16 * outlineWidth
	halfW := width / 2

	tipX, tipY := cap.Pos.X+dx*length, cap.Pos.Y+dy*length

	return Shape{
		Kind: ShapePolygon,
		Polygon: []xform.Point{
			{X: tipX, Y: tipY},
			{X: cap.Pos.X + nx*halfW, Y: cap.Pos.Y + ny*halfW},
			{X: cap.Pos.X - nx*halfW, Y: cap.Pos.Y - ny*halfW},
		},
	}
}
