/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import (
	"strings"
	"unicode/utf8"
)

// alphabetSet holds the per-alphabet tables available for one font family.
type alphabetSet map[string]Table

var families = map[string]alphabetSet{
	"": {
		"":         riscosLatin1,
		"latin1":   riscosLatin1,
		"latin2":   riscosLatin2,
		"latin3":   riscosLatin3,
		"latin4":   riscosLatin4,
		"latin5":   riscosLatin5,
		"latin6":   riscosLatin6,
		"latin7":   riscosLatin7,
		"latin8":   riscosLatin8,
		"latin9":   riscosLatin9,
		"latin10":  riscosLatin10,
		"welsh":    riscosWelsh,
		"hebrew":   riscosHebrew,
		"cyrillic": riscosCyrillic,
		"greek":    riscosGreek,
	},
	"newhall": {
		"":       newhallLatin1,
		"latin1": newhallLatin1,
		"welsh":  newhallWelsh,
	},
	"swiss": {
		"":       swissLatin1,
		"latin1": swissLatin1,
		"latin2": swissLatin2,
	},
	"sassoon": {
		"":       sassoonLatin1,
		"latin1": sassoonLatin1,
		"hebrew": sassoonHebrew,
	},
	"corpus.medium": {
		"":      corpusMediumGreek,
		"greek": corpusMediumGreek,
	},
	"wimpsymbol": {
		"": wimpsymbolDefault,
	},
}

// FamilyKey resolves a Draw font name to the family key used to index `families`,
// per spec.md section 4.2: exact lowercase match, else name+"*", else the first
// dotted component, else component+"*", else the empty/default key.
func FamilyKey(fontName string) string {
	lower := strings.ToLower(fontName)
	if _, ok := families[lower]; ok {
		return lower
	}
	if _, ok := families[lower+"*"]; ok {
		return lower + "*"
	}
	component := lower
	if idx := strings.IndexByte(lower, '.'); idx >= 0 {
		component = lower[:idx]
	}
	if _, ok := families[component]; ok {
		return component
	}
	if _, ok := families[component+"*"]; ok {
		return component + "*"
	}
	return ""
}

// Lookup returns the Table for (fontName, alphabet), falling back to the empty
// alphabet tag when the requested one is not defined for the resolved family, and to
// an all-undefined table when the family itself has no tables at all.
func Lookup(fontName, alphabet string) Table {
	key := FamilyKey(fontName)
	set, ok := families[key]
	if !ok {
		set = families[""]
	}
	if t, ok := set[alphabet]; ok {
		return t
	}
	if t, ok := set[""]; ok {
		return t
	}
	return newUndefinedTable()
}

// combiningOverline is U+0305 COMBINING OVERLINE, appended to the character
// following an armed OVERLINE marker.
const combiningOverline = "̅"

// softHyphen is U+00AD SOFT HYPHEN.
const softHyphen = "­"

// Decode maps a raw byte payload through `table` to a Go string, handling the
// OVERLINE combining-mark marker and the trailing-soft-hyphen rewrite documented in
// spec.md section 4.2.
func Decode(data []byte, table Table) string {
	var b strings.Builder
	overlineArmed := false
	for _, by := range data {
		entry := table[by]
		if entry == overlineMarker {
			overlineArmed = true
			continue
		}
		if overlineArmed {
			b.WriteString(entry)
			b.WriteString(combiningOverline)
			overlineArmed = false
			continue
		}
		b.WriteString(entry)
	}
	if overlineArmed {
		// Stream ended with an unconsumed overline marker: emit one space per spec.
		b.WriteRune(' ')
	}
	out := b.String()
	if strings.HasSuffix(out, softHyphen) {
		out = out[:len(out)-len(softHyphen)] + "-"
	}
	return out
}

// RuneCount is a small helper used by the text-area line-breaker to count visible
// characters (not bytes) in a decoded run.
func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}
