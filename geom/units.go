/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package geom holds the Draw-unit data types (bounding boxes, OS-unit conversions) and
// the Draw<->SVG coordinate conversion, generalized from unidoc-unipdf's
// contentstream/draw geometry primitives away from a PDF-page-coordinate model.
package geom

// DrawUnitsPerOSUnit is the number of Draw units in one RISC OS screen unit.
const DrawUnitsPerOSUnit = 256

// OSUnitsPerInch is the number of RISC OS screen units in one inch.
const OSUnitsPerInch = 180

// DrawUnitsPerInch is the number of Draw units in one inch.
const DrawUnitsPerInch = DrawUnitsPerOSUnit * OSUnitsPerInch

// DrawUnitsPerMM is the number of Draw units in one millimetre: 46080 per inch
// divided by 25.4, about 1814.17.
const DrawUnitsPerMM = DrawUnitsPerInch / 25.4

// SVGPixelsPerInch is the pixel density assumed for the SVG output canvas (CSS "px").
const SVGPixelsPerInch = 96.0

// DrawToSVGScale converts a length in Draw units to SVG pixels, independent of any
// page offset.
func DrawToSVGScale() float64 {
	return SVGPixelsPerInch / DrawUnitsPerInch
}

// PointsPerInch is the standard typographic points-per-inch count.
const PointsPerInch = 72.0

// PtToPx converts a point value (text-area margins/leading/font sizes) to SVG
// pixels at the fixed 96dpi CSS pixel density, independent of page DPI.
func PtToPx(pt float64) float64 {
	return pt * SVGPixelsPerInch / PointsPerInch
}

// PxToPt converts an SVG pixel value back to points, the inverse of PtToPx. Used
// when a font size is computed in SVG pixel space (from a text object's xsize/ysize
// fields, already page-scaled) but must be reported in points for font-size/measurement
// purposes.
func PxToPt(px float64) float64 {
	return px * PointsPerInch / SVGPixelsPerInch
}
