/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package pathfx interprets Draw path opcode streams: it linearises Beziers,
// decodes the packed PathStyle word, and synthesises caps and dashes independently
// of the SVG stroke model, per spec.md section 4.4. Ported from
// original_source/draw_to_svg.py's gather_simple_path_caps/get_cap_desc, using
// unidoc-unipdf's contentstream/draw Path/CubicBezierCurve shapes as the Go idiom.
package pathfx

// JoinStyle is the path-style join field.
type JoinStyle int

const (
	JoinMiter JoinStyle = 0
	JoinRound JoinStyle = 1
	JoinBevel JoinStyle = 2
)

// CapStyle is a start- or end-cap style.
type CapStyle int

const (
	CapButt      CapStyle = 0
	CapRound     CapStyle = 1
	CapSquare    CapStyle = 2
	CapTriangle  CapStyle = 3
)

// Winding is the path fill rule.
type Winding int

const (
	WindingNonZero Winding = 0
	WindingEvenOdd Winding = 1
)

// Style unpacks the 32-bit PathStyle word described in spec.md section 3.
type Style struct {
	Join          JoinStyle
	EndCap        CapStyle
	StartCap      CapStyle
	Winding       Winding
	HasDash       bool
	TriCapWidth   int // 16ths of outline width
	TriCapLength  int // 16ths of outline width
}

// DecodeStyle unpacks a packed PathStyle word.
func DecodeStyle(word uint32) Style {
	return Style{
		Join:         JoinStyle(word & 0x3),
		EndCap:       CapStyle((word >> 2) & 0x3),
		StartCap:     CapStyle((word >> 4) & 0x3),
		Winding:      Winding((word >> 6) & 0x1),
		HasDash:      (word>>7)&0x1 != 0,
		TriCapWidth:  int((word >> 16) & 0xF),
		TriCapLength: int((word >> 20) & 0xF),
	}
}
