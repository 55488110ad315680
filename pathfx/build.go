/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pathfx

import (
	"github.com/drawfile/draw2svg/geom"
	"github.com/drawfile/draw2svg/internal/xform"
)

// CommandOp is an SVG path-data command letter.
type CommandOp byte

const (
	OpMoveTo  CommandOp = 'M'
	OpLineTo  CommandOp = 'L'
	OpCurveTo CommandOp = 'C'
	OpClose   CommandOp = 'Z'
)

// Command is one SVG path-data command in already-converted SVG pixel coordinates.
type Command struct {
	Op  CommandOp
	Pts []xform.Point // 1 point for M/L, 3 for C, 0 for Z
}

// BuildCommands converts Draw opcode elements into SVG path-data commands, keeping
// Bezier curves as cubic curves (not linearised) since SVG natively supports them.
func BuildCommands(elements []Element, conv geom.CoordinateConversion) []Command {
	cmds := make([]Command, 0, len(elements))
	for _, el := range elements {
		switch el.Kind {
		case ElementMove:
			cmds = append(cmds, Command{Op: OpMoveTo, Pts: []xform.Point{svgPoint(el.Pts[0], conv)}})
		case ElementDraw:
			cmds = append(cmds, Command{Op: OpLineTo, Pts: []xform.Point{svgPoint(el.Pts[0], conv)}})
		case ElementBezier:
			cmds = append(cmds, Command{Op: OpCurveTo, Pts: []xform.Point{
				svgPoint(el.Pts[0], conv), svgPoint(el.Pts[1], conv), svgPoint(el.Pts[2], conv),
			}})
		case ElementClose:
			cmds = append(cmds, Command{Op: OpClose})
		}
	}
	return cmds
}

func svgPoint(p geom.Point, conv geom.CoordinateConversion) xform.Point {
	x, y := conv.Point(p.X, p.Y)
	return xform.Point{X: x, Y: y}
}

// Subpath is a linearised polyline in SVG pixel space, used for dash/cap arc-length
// walking. Beziers are split into bezierSegments equal-parameter line segments per
// spec.md section 4.4.
type Subpath struct {
	Points []xform.Point
	Closed bool
}

// bezierSegments is the fixed linearisation resolution for cubic Beziers.
const bezierSegments = 50

// Linearize splits elements into per-subpath polylines in SVG pixel space.
func Linearize(elements []Element, conv geom.CoordinateConversion) []Subpath {
	var subpaths []Subpath
	var cur *Subpath
	var lastDraw xform.Point

	ensure := func() {
		if cur == nil {
			subpaths = append(subpaths, Subpath{})
			cur = &subpaths[len(subpaths)-1]
		}
	}

	for _, el := range elements {
		switch el.Kind {
		case ElementMove:
			subpaths = append(subpaths, Subpath{})
			cur = &subpaths[len(subpaths)-1]
			lastDraw = svgPoint(el.Pts[0], conv)
			cur.Points = append(cur.Points, lastDraw)
		case ElementDraw:
			ensure()
			p := svgPoint(el.Pts[0], conv)
			cur.Points = append(cur.Points, p)
			lastDraw = p
		case ElementBezier:
			ensure()
			c1 := svgPoint(el.Pts[0], conv)
			c2 := svgPoint(el.Pts[1], conv)
			end := svgPoint(el.Pts[2], conv)
			for i := 1; i <= bezierSegments; i++ {
				t := float64(i) / float64(bezierSegments)
				cur.Points = append(cur.Points, cubicAt(lastDraw, c1, c2, end, t))
			}
			lastDraw = end
		case ElementClose:
			ensure()
			cur.Closed = true
		}
	}
	return subpaths
}

func cubicAt(p0, p1, p2, p3 xform.Point, t float64) xform.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return xform.Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
