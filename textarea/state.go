/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package textarea parses the escape-sequence-formatted text of a Draw text-area
// object and flows it through the object's rectangular columns, per spec.md section
// 4.7. Grounded on original_source's parse_text_area_text/format_text_runs
// (draw_to_svg.py lines ~3346-3913).
package textarea

import "github.com/drawfile/draw2svg/fontconfig"

// Alignment is a text-area paragraph alignment command.
type Alignment byte

// Alignment values, from the `\A` escape command.
const (
	AlignLeft    Alignment = 'L'
	AlignRight   Alignment = 'R'
	AlignCentre  Alignment = 'C'
	AlignJustify Alignment = 'D'
)

// Colour is a text-area foreground colour, set by the `\C` escape command.
type Colour struct {
	R, G, B uint8
}

// State is the formatter's mutable state, snapshotted into each Run as it is
// closed. Field names mirror the escape commands that set them (spec.md's table
// in section 4.7).
type State struct {
	FontSlot           int
	Colour             Colour
	Alignment          Alignment
	Columns            int
	LeftMarginPt       float64
	RightMarginPt      float64
	LineLeadingPt      float64
	ParagraphLeadingPt float64
	UnderlinePos       int
	UnderlineThickness int
	VerticalMovePt     float64 // cumulative, per spec.md: "\V n" is additive

	// PrefixLineBreaks/PrefixParaBreaks count pending breaks accumulated before
	// this run's text, consumed by the line-flow pass and then reset to zero.
	PrefixLineBreaks int
	PrefixParaBreaks int
}

// defaultState is the text area's initial formatter state (original_source's
// TextState.__init__): 10pt line and paragraph spacing, 1pt margins, left-aligned,
// a single column, and font slot 0 pre-defined as the "System" font at 24pt.
func defaultState() State {
	return State{
		FontSlot:           0,
		Alignment:          AlignLeft,
		Columns:            1,
		LeftMarginPt:       1,
		RightMarginPt:      1,
		LineLeadingPt:      10,
		ParagraphLeadingPt: 10,
	}
}

// defaultFonts is the font-slot table's initial contents: slot 0 is always the
// System font at 24pt/24pt, per spec.md's FontTable invariant generalised to the
// text area's own local font-slot numbering.
func defaultFonts(subs fontconfig.Table) map[int]fontconfig.FontDesc {
	return map[int]fontconfig.FontDesc{
		0: fontconfig.ParseFontDesc("System", 24, 24, subs),
	}
}
