/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package convert drives the two-pass conversion of a parsed Draw file into an SVG
// document, per spec.md section 4.3's Orchestrator. Grounded on original_source's
// Convertor.convert (draw_to_svg.py lines ~4250-4340).
package convert

import "fmt"

// mmPerPixel96DPI is the millimetre-to-pixel factor original_source hardcodes
// (3.7795, an approximation of 96/25.4) rather than deriving it afresh.
const mmPerPixel96DPI = 3.7795

// paperSizesMM maps a Draw Options.PaperSize index to its portrait (width, height)
// in millimetres, ported verbatim from original_source's Convertor.paper_sizes.
var paperSizesMM = map[int32][2]float64{
	0x000: {1189, 1682}, // 2A0
	0x100: {841, 1189},  // A0
	0x200: {594, 841},   // A1
	0x300: {420, 594},   // A2
	0x400: {297, 420},   // A3
	0x500: {210, 297},   // A4
	0x600: {148, 210},   // A5
	0x700: {105, 148},   // A6
	0x800: {74, 105},    // A7
	0x900: {52, 74},     // A8
	0xa00: {37, 52},     // A9
	0xb00: {26, 37},     // A10
}

// a4AndUp lists the Pass-1-fallback candidate sizes in ascending order (A4 through
// 2A0), per original_source's Convertor.a4_and_up and spec.md section 4.3.
var a4AndUp = []int32{0x500, 0x400, 0x300, 0x200, 0x100, 0x000}

// ErrUnknownPaperSize reports an Options.PaperSize value absent from paperSizesMM.
var ErrUnknownPaperSize = fmt.Errorf("unknown paper size")

// PaperSizeMM returns the (width, height) in millimetres for a paper size index,
// swapped to landscape when landscape is set, per original_source's paper_size_mm.
func PaperSizeMM(paperSize int32, landscape bool) (float64, float64, error) {
	dims, ok := paperSizesMM[paperSize]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %#x", ErrUnknownPaperSize, paperSize)
	}
	if landscape {
		return dims[1], dims[0], nil
	}
	return dims[0], dims[1], nil
}

// mmToPixels converts a millimetre length to SVG pixels at the fixed 96dpi density
// original_source assumes for its paper-size table (distinct from, but numerically
// close to, geom.SVGPixelsPerInch/25.4).
func mmToPixels(mm float64) float64 {
	return mm * mmPerPixel96DPI
}

// DefaultPageSize implements the Pass-1 "no Options object" fallback of spec.md
// section 4.3: the smallest paper in {A4, A3, A2, A1, A0, 2A0} whose landscape (tried
// first) or portrait orientation fits the file's own bounding box in SVG pixels; if
// none fit, A0 portrait is used. fileWidthPx/fileHeightPx are the file's own bounding
// box already converted to SVG pixels (72pt/inch Draw points scaled to 96dpi pixels).
func DefaultPageSize(fileWidthPx, fileHeightPx float64) (paperSize int32, landscape bool) {
	for _, size := range a4AndUp {
		dims := paperSizesMM[size]
		landscapeWidthPx, landscapeHeightPx := mmToPixels(dims[1]), mmToPixels(dims[0])
		if fileWidthPx < landscapeWidthPx && fileHeightPx < landscapeHeightPx {
			return size, true
		}
		portraitWidthPx, portraitHeightPx := mmToPixels(dims[0]), mmToPixels(dims[1])
		if fileWidthPx < portraitWidthPx && fileHeightPx < portraitHeightPx {
			return size, false
		}
	}
	return 0x100, false // A0 portrait
}
