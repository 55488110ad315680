/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xform

import "math"

// degenerateCosThreshold is the `|cos(phi+theta)| < 0.001` cutoff that selects the
// fallback branches of RecoverTextWidth. Load-bearing on degenerate matrices; must
// be preserved exactly, per spec.md section 9's Open Questions.
const degenerateCosThreshold = 0.001

// RecoverTextWidth recovers a transformed text object's pre-transform width, which
// Draw files never store directly (only the post-transform bounding box and the
// (a,b,c,d) matrix survive). Ported verbatim from original_source's
// get_proper_text_width (draw_to_svg.py lines ~3967-4022).
//
// boxWidth/boxHeight are the SVG-space bounding box dimensions; a,b,c,d are the
// SVG-space matrix components (already divided by 65536); rotation/xSkew are the
// *unflipped* decomposition angles (the negation of Matrix.Decompose's
// already-Y-flipped Rotation/XSkew fields); fontHeight is the SVG-space font size.
func RecoverTextWidth(boxWidth, boxHeight, a, b, c, d, rotation, xSkew, fontHeight float64) float64 {
	cosXSkew := math.Cos(xSkew)
	if math.Abs(cosXSkew) < degenerateCosThreshold {
		cosXSkew = degenerateCosThreshold
	}
	transformedFontHeight := fontHeight / cosXSkew

	index1 := 0
	if b < 0 {
		index1 += 2
	}
	if a < 0 {
		index1++
	}
	index2 := 0
	if d < 0 {
		index2 += 2
	}
	if c < 0 {
		index2++
	}

	var theta float64
	switch index1 {
	case 0:
		theta = rotation
	case 1:
		theta = math.Pi - rotation
	case 2:
		theta = -rotation
	default:
		theta = math.Pi + rotation
	}

	var phi float64
	switch index2 {
	case 0:
		phi = xSkew - rotation
	case 1:
		phi = -(xSkew - rotation)
	case 2:
		phi = math.Pi - (xSkew - rotation)
	default:
		phi = math.Pi + (xSkew - rotation)
	}

	cosThetaPhi := math.Cos(phi + theta)
	if math.Abs(cosThetaPhi) < degenerateCosThreshold {
		cosTheta := math.Cos(theta)
		if math.Abs(cosTheta) < degenerateCosThreshold {
			return boxHeight - transformedFontHeight
		}
		return (boxWidth - transformedFontHeight*math.Sin(phi)) / cosTheta
	}
	return (boxWidth*math.Cos(phi) - boxHeight*math.Sin(phi)) / cosThetaPhi
}
