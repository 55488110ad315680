/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package svgwriter emits the SVG elements corresponding to each parsed Draw
// object, per spec.md section 4.8. Grounded on original_source's read_*_object
// methods' fout.write calls (draw_to_svg.py), restructured so that reading
// (package drawfile) and writing are separate passes instead of interleaved.
package svgwriter

// Config carries the rendering choices that originate from CLI flags (spec.md
// section 6) and affect element emission.
type Config struct {
	// UTF8 treats Draw string payloads as UTF-8 directly, bypassing the
	// character-encoding tables (the --utf8 flag).
	UTF8 bool
	// TSpans emits text-area runs as <tspan> children of one <text> element
	// instead of one <text> element per run (the --tspans flag).
	TSpans bool
	// BasicUnderlines omits the colour name from underline decoration
	// (the --basic-underlines flag).
	BasicUnderlines bool
	// UseBBox emits a textLength attribute on single-line text (the negation of
	// the --no-bbox flag).
	UseBBox bool
	// LabelDebug and ShowBoxes add debug overlays (spec.md section 6).
	LabelDebug bool
	ShowBoxes  bool
}
