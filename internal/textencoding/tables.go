/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import (
	"golang.org/x/text/encoding/charmap"
)

// acornC1 is Acorn's printable-glyph assignment for the C1 control range
// (bytes 0x80-0x9F), layered onto each base ISO-8859 table to produce the riscos_*
// variants, ported verbatim from original_source's acorn_c1.
var acornC1 = [32]string{
	"€", "Ŵ", "ŵ", undefinedGlyph,
	undefinedGlyph, "Ŷ", "ŷ", undefinedGlyph,
	undefinedGlyph, undefinedGlyph, undefinedGlyph, undefinedGlyph,
	"…", "™", "‰", "•",
	"‘", "’", "‹", "›",
	"“", "”", "„", "–",
	"—", "−", "Œ", "œ",
	"†", "‡", "ﬁ", "ﬂ",
}

// maskedC1 returns a copy of acornC1 with entries undefined wherever `mask` contains
// 'X', starting at index 0 (the byte 0x80 slot) -- the same shape as original_source's
// remove(acorn_c1, 0, mask) calls. An empty mask leaves acornC1 untouched, matching
// riscos_latin1_to_utf8's unmasked replace(latin1_to_utf8, 0x80, acorn_c1).
func maskedC1(mask string) []string {
	out := acornC1
	for i, c := range mask {
		if c == 'X' {
			out[i] = undefinedGlyph
		}
	}
	return out[:]
}

// fromCharmap builds a Table from an x/text/encoding/charmap.Charmap, decoding each
// byte individually. Bytes in the C1 control range (0x80-0x9F) are left undefined;
// riscos variants patch that range with acornC1.
func fromCharmap(cm *charmap.Charmap) Table {
	var t Table
	dec := cm.NewDecoder()
	for i := 0; i < 256; i++ {
		if i >= 0x80 && i <= 0x9F {
			t[i] = undefinedGlyph
			continue
		}
		out, err := dec.Bytes([]byte{byte(i)})
		if err != nil || len(out) == 0 {
			t[i] = undefinedGlyph
			continue
		}
		t[i] = string(out)
	}
	t[10] = "\n"
	return t
}

// riscosVariant patches `base`'s C1 range with acornC1, masked per `mask` the way
// original_source masks it per alphabet (e.g. Latin2-8 drop acorn_c1 slots 1-6, which
// collide with those alphabets' own native characters at 0x81-0x86). An empty mask
// applies acorn_c1 unmasked, as Latin1 does.
func riscosVariant(base Table, mask string) Table {
	return replace(base, 0x80, maskedC1(mask))
}

var (
	baseLatin1  = fromCharmap(charmap.ISO8859_1)
	baseLatin2  = fromCharmap(charmap.ISO8859_2)
	baseLatin3  = fromCharmap(charmap.ISO8859_3)
	baseLatin4  = fromCharmap(charmap.ISO8859_4)
	baseLatin5  = fromCharmap(charmap.ISO8859_9)
	baseLatin6  = fromCharmap(charmap.ISO8859_10)
	baseLatin7  = fromCharmap(charmap.ISO8859_13)
	baseLatin8  = fromCharmap(charmap.ISO8859_14)
	baseLatin9  = fromCharmap(charmap.ISO8859_15)
	baseLatin10 = fromCharmap(charmap.ISO8859_16)
	baseWelsh   = fromCharmap(charmap.ISO8859_14)
	baseHebrew  = fromCharmap(charmap.ISO8859_8)
	baseCyrillc = fromCharmap(charmap.ISO8859_5)
	baseGreek   = fromCharmap(charmap.ISO8859_7)

	// C1-patch masks: acorn_c1 slots that would collide with an alphabet's own
	// native characters at the same byte are dropped (left undefined) rather than
	// overwritten, per original_source's per-alphabet remove(acorn_c1, 0, mask) calls.
	riscosLatin1  = riscosVariant(baseLatin1, "")
	// riscosLatin2's guillemets replace acorn_c1's own OE/oe ligatures at the same
	// slots, per original_source's explicit post-replace overrides.
	riscosLatin2 = copyTable(riscosVariant(baseLatin2, " XXXXXX"), map[int]string{
		0x9a: "«",
		0x9b: "»",
	})
	riscosLatin3  = riscosVariant(baseLatin3, " XXXXXX")
	riscosLatin4  = riscosVariant(baseLatin4, " XXXXXX")
	riscosLatin5  = riscosVariant(baseLatin5, " XXXXXX")
	riscosLatin6  = riscosVariant(baseLatin6, " XXXXXX                 X       ")
	riscosLatin7  = riscosVariant(baseLatin7, " XXXXXX          X  XXX         ")
	riscosLatin8  = riscosVariant(baseLatin8, " XXXXXX")
	riscosLatin9  = riscosVariant(baseLatin9, "X                         XX    ")
	// riscosLatin10's guillemets mirror riscosLatin2's override.
	riscosLatin10 = copyTable(riscosVariant(baseLatin10, "XXXXXXXXXXXX         XX         "), map[int]string{
		0x9a: "«",
		0x9b: "»",
	})
	riscosWelsh   = riscosVariant(baseWelsh, " XXXXXX")

	// riscosHebrew, riscosCyrillic and riscosGreek never receive the acorn_c1 patch
	// at all (unlike the Latin alphabets): Acorn instead removes a handful of glyphs
	// from the ISO base table's upper half, per original_source's
	// remove(hebrew_to_utf8/cyrillic_to_utf8/greek_to_utf8, 0xa0, mask) calls.
	riscosHebrewBase = remove(baseHebrew, 0xa0,
		" X             X"+
			"               X"+
			"XXXXXXXXXXXXXXXX"+
			"XXXXXXXXXXXXXXXX"+
			"XXXXXXXXXXXXXXXX"+
			"XXXXXXXXXXXXXXXX")

	// riscosHebrew carries the Sassoon approximation at 0xAF ("EFF small caps"),
	// an intentional approximation documented in DESIGN.md and flagged in spec.md's
	// Design Notes as load-bearing to preserve verbatim.
	riscosHebrew = copyTable(riscosHebrewBase, map[int]string{
		0xAF: "ᴇꜰꜰ",
	})

	// riscosCyrillic preserves Acorn's intentional deviation from ISO 8859-5:
	// byte 0xAE decodes to a plain hyphen rather than the standard Cyrillic glyph.
	riscosCyrillic = copyTable(remove(baseCyrillc, 0xa0,
		" XXXXXXXXXXXXX X"+
			"XXXXXXXXXXXXXXXX"+
			"XXXXXXXXXXXXXXXX"+
			"XXXXXXXXXXXXXXXX"+
			"XXXXXXXXXXXXXXXX"+
			"XXXXXXXXXXXXX XX"), map[int]string{
		0xAE: "-",
	})

	// riscosGreek is the base for corpusMediumGreek's 0xAF override below.
	riscosGreek = remove(baseGreek, 0xa0,
		"     X    X   XX"+
			"    XXXXXXX X XX"+
			"XXXXXXXXXXXXXXXX"+
			"XXXXXXXXXXXXXXXX"+
			"XXXXXXXXXXXX XXX"+
			"XXXXXXXXXXXXXXXX")

	// corpusMediumGreek preserves Acorn's intentional deviation: byte 0xAF in the
	// Corpus Medium Greek font decodes to U+2092 (a modifier small o) rather than
	// the standard Greek glyph.
	corpusMediumGreek = copyTable(riscosGreek, map[int]string{
		0xAF: "ₒ",
	})
)

// newhallLatin1 is a representative font-specific variant: the Newhall font's Latin1
// table removes the signs and fractions that riscosLatin1 carries at 0xB0-0xBF (not
// present in Newhall's glyph set), falling back to undefined there.
var newhallLatin1 = remove(riscosLatin1, 0xB0, "XXXXXXXXXXXXXXXX")

// newhallWelsh mirrors newhallLatin1's removal for the Welsh variant.
var newhallWelsh = remove(riscosWelsh, 0xB0, "XXXXXXXXXXXXXXXX")

// swissLatin1 is the Swiss (sans-serif) font's Latin1 table; it is the base
// riscosLatin1 table unchanged.
var swissLatin1 = riscosLatin1

// swissLatin2 substitutes the Swiss font's narrower glyph repertoire for
// ISO-8859-2, falling back to undefined for code points it has no glyph for.
var swissLatin2 = remove(riscosLatin2, 0xD0, "XXXXXXXXXXXXXXXX")

// sassoonLatin1 is the Sassoon (primary-school, infant-friendly) font's Latin1
// table; identical to the base riscos table except where overridden.
var sassoonLatin1 = riscosLatin1

// sassoonHebrew carries forward the documented EFF-small-caps approximation.
var sassoonHebrew = riscosHebrew

// wimpsymbolDefault is a representative stand-in for the Wimpsymbol dingbat font's
// table: bytes above 0x20 carry no Unicode-codepoint meaning for a dingbat font, so
// this variant is left entirely undefined except for the shared control handling,
// and an overline-composition byte at 0xA1 is preserved from the original table to
// exercise the OVERLINE-marker combinator documented in spec.md section 4.2.
var wimpsymbolDefault = func() Table {
	t := newUndefinedTable()
	t[10] = "\n"
	t[0xA1] = overlineMarker
	return t
}()
