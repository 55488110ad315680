/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package geom

import "github.com/drawfile/draw2svg/internal/xform"

// CoordinateConversion maps Draw-unit coordinates (Y up) to SVG pixel coordinates
// (Y down), built from a Draw page size and an SVG page size in pixels.
type CoordinateConversion struct {
	scaleX, scaleY float64
	pageHeightPx   float64
}

// NewCoordinateConversion builds a conversion from a Draw-unit page size to an SVG
// pixel page size. The two axes scale independently.
func NewCoordinateConversion(drawWidth, drawHeight int32, svgWidthPx, svgHeightPx float64) CoordinateConversion {
	cc := CoordinateConversion{pageHeightPx: svgHeightPx}
	if drawWidth != 0 {
		cc.scaleX = svgWidthPx / float64(drawWidth)
	}
	if drawHeight != 0 {
		cc.scaleY = svgHeightPx / float64(drawHeight)
	}
	return cc
}

// Point converts a Draw-unit point to an SVG pixel point: (x*sx, pageHeight - y*sy).
func (cc CoordinateConversion) Point(x, y int32) (float64, float64) {
	return float64(x) * cc.scaleX, cc.pageHeightPx - float64(y)*cc.scaleY
}

// PointF is like Point but for an already-floated Draw coordinate.
func (cc CoordinateConversion) PointF(x, y float64) (float64, float64) {
	return x * cc.scaleX, cc.pageHeightPx - y*cc.scaleY
}

// LengthX converts a scalar Draw-unit length (not a point) on the X axis to SVG pixels.
func (cc CoordinateConversion) LengthX(l float64) float64 { return l * cc.scaleX }

// LengthY converts a scalar Draw-unit length on the Y axis to SVG pixels.
func (cc CoordinateConversion) LengthY(l float64) float64 { return l * cc.scaleY }

// ScaleX returns the Draw-unit-to-SVG-pixel scale factor on the X axis.
func (cc CoordinateConversion) ScaleX() float64 { return cc.scaleX }

// ScaleY returns the Draw-unit-to-SVG-pixel scale factor on the Y axis.
func (cc CoordinateConversion) ScaleY() float64 { return cc.scaleY }

// PageHeight returns the SVG page height in pixels.
func (cc CoordinateConversion) PageHeight() float64 { return cc.pageHeightPx }

// DrawMatrixToSVG converts a DrawMatrix (16.16 fixed-point a,b,c,d; Draw-unit e,f) into
// an xform.Matrix in SVG pixel space. The translation component is passed through
// Point so it lands in the correct SVG quadrant.
func (cc CoordinateConversion) DrawMatrixToSVG(a, b, c, d int32, ex, ey int32) xform.Matrix {
	tx, ty := cc.Point(ex, ey)
	return xform.FromDrawFixed(a, b, c, d, tx, ty)
}
