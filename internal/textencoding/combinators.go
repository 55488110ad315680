/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package textencoding builds the (font family, alphabet) -> 256-entry Unicode table
// system used to decode Draw text bytes. The base ISO-8859-style tables are derived
// from golang.org/x/text/encoding/charmap (mirroring unidoc-unipdf's
// internal/textencoding/simple.go use of x/text/encoding), then patched by three
// combinators -- replace, remove, copy -- to produce Acorn's riscos_* variants and a
// representative set of font-specific variants, ported from
// original_source/draw_to_svg/draw_to_svg.py.
package textencoding

// Table is a 256-entry byte-to-Unicode mapping. An entry may hold more than one code
// point (e.g. a combining overline synthesised onto the following character).
type Table [256]string

// undefinedGlyph is rendered for bytes with no mapping in a table (spec: "a missing
// (family, alphabet) pair yields a table of undefined glyphs", rendered as U+2009).
const undefinedGlyph = " "

// overlineMarker arms a combining overline (U+0305) onto the next decoded character.
// It is never itself emitted.
const overlineMarker = "OVERLINE"

func newUndefinedTable() Table {
	var t Table
	for i := range t {
		t[i] = undefinedGlyph
	}
	return t
}

// clone returns a copy of `t`.
func (t Table) clone() Table {
	var out Table
	out = t
	return out
}

// replace returns a copy of `base` with `replacement` values written starting at
// byte index `offset`.
func replace(base Table, offset int, replacement []string) Table {
	out := base.clone()
	for i, v := range replacement {
		out[offset+i] = v
	}
	return out
}

// remove returns a copy of `base` with entries set to undefined wherever `mask`
// contains 'X', starting at byte index `offset`. Any other rune in mask leaves the
// corresponding entry untouched.
func remove(base Table, offset int, mask string) Table {
	out := base.clone()
	for i, c := range mask {
		if c == 'X' {
			out[offset+i] = undefinedGlyph
		}
	}
	return out
}

// copyTable clones `base` and applies a sparse set of index->value overrides.
func copyTable(base Table, overrides map[int]string) Table {
	out := base.clone()
	for idx, v := range overrides {
		out[idx] = v
	}
	return out
}
