/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontconfig

import (
	"strings"

	"github.com/drawfile/draw2svg/common"
)

// systemFontScale is the calibration factor the source applies when displaying
// text set in the literal "System" font, to approximate the RISC OS BBC-Micro-style
// bitmap font's visual size relative to outline fonts it is substituted with.
// Preserved verbatim per spec.md's Design Notes; see DESIGN.md's Open Question log.
const systemFontScale = 4.0 / 3.0

// FontDesc is a fully resolved font reference: the Acorn font name (used to look up
// the character-encoding table), plus the CSS family/weight/style it maps to for SVG
// emission. Built from a raw Acorn font-identifier string such as
// `Corpus.Medium\FCorpus.Medium\ELatin3`, `Trinity.Medium.Italic`, or a bare `System`.
type FontDesc struct {
	OriginalName     string // first dotted component, e.g. "Corpus"
	OriginalFullName string // everything after a `\Fname` tag, before any `\Ealphabet` tag
	Alphabet         string // from a `\Ealphabet` tag, or "" if absent
	CSSFamily        string
	Weight           string // "normal" or "bold"
	Style            string // "normal" or "italic"
	HeightPt         float64
	WidthPt          float64
}

// ParseFontDesc builds a FontDesc from a raw Acorn font-identifier string, a declared
// height and width in points, and a substitution table. Ported from original_source's
// FontDesc.__init__ (draw_to_svg.py lines ~2058-2118): strips `\Fname`/`\Ealphabet`
// identifier-string tags (RISC OS Font Manager convention), splits the remaining name
// on '.', resolves the first component through `subs`, and scans the remaining dotted
// components for style modifiers.
func ParseFontDesc(raw string, heightPt, widthPt float64, subs Table) FontDesc {
	name := raw
	alphabet := ""
	if i := strings.Index(name, `\F`); i >= 0 {
		name = name[i+2:]
	}
	if i := strings.Index(name, `\E`); i >= 0 {
		alphabet = name[i+2:]
		name = name[:i]
	}

	parts := strings.Split(name, ".")
	base := parts[0]
	lowerBase := strings.ToLower(base)

	css, found := subs.Lookup(lowerBase)
	if !found {
		common.Log.Warning("fontconfig: no substitution for font %q, using %q", base, css)
	}

	weight, style := "normal", "normal"
	sansSerif := lowerBase == "swiss" || lowerBase == "system"
	if lowerBase == "system" {
		// HACK preserved from the source: approximates a BBC-Micro-style bitmap
		// font by rendering the System font bold.
		weight = "bold"
	}

	for _, part := range parts[1:] {
		switch strings.ToLower(part) {
		case "monospaced":
			if sansSerif {
				css = `Menlo,Lucida Console,Courier New,Courier,monospace`
			} else {
				css = `Courier New,Courier,Lucida Console,monospace`
			}
		case "italic", "oblique":
			style = "italic"
		case "bold":
			weight = "bold"
		}
	}

	return FontDesc{
		OriginalName:     base,
		OriginalFullName: name,
		Alphabet:         alphabet,
		CSSFamily:        css,
		Weight:           weight,
		Style:            style,
		HeightPt:         heightPt,
		WidthPt:          widthPt,
	}
}

// DisplayHeightPt returns the font-size value used for both SVG `font-size` emission
// and width measurement, applying systemFontScale for the literal "System" font.
func (f FontDesc) DisplayHeightPt() float64 {
	if strings.EqualFold(f.OriginalName, "system") {
		return f.HeightPt * systemFontScale
	}
	return f.HeightPt
}
