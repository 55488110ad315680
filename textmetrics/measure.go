/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package textmetrics measures the rendered width of text-area runs against host
// fonts, for the greedy line-breaking algorithm in package textarea. Grounded on
// unidoc-unipdf's render/renderer.go sysfont.Finder.Match substitution-search idiom;
// the teacher's glyph rasterisation path (github.com/unidoc/freetype) has no role
// here since only advance widths are needed, not rendering, so golang.org/x/image's
// pure-Go sfnt parser supplies glyph metrics instead (see DESIGN.md).
package textmetrics

import (
	"os"
	"strings"
	"sync"

	"github.com/adrg/sysfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/drawfile/draw2svg/common"
	"github.com/drawfile/draw2svg/fontconfig"
)

// approxAdvanceFactor is the fallback average glyph-advance-to-em-size ratio used
// when no host font can be located or parsed for a requested family. 0.55 matches a
// typical proportional Latin text face closely enough for line-breaking purposes;
// spec.md's Non-goals explicitly exclude kerning accuracy against any reference
// rasteriser, so an approximate fallback is acceptable when fonts are unavailable.
const approxAdvanceFactor = 0.55

// Measurer resolves CSS font stacks to host font files and measures text width.
// Not safe for concurrent use by multiple goroutines without the internal lock,
// which is held only to protect the parsed-font cache; per spec.md section 5 this
// converter is single-threaded in practice.
type Measurer struct {
	finder *sysfont.Finder

	mu     sync.Mutex
	parsed map[string]*sfnt.Font // keyed by resolved font file path
	failed map[string]bool       // family names known to have no match
}

// NewMeasurer constructs a Measurer backed by the host's installed font files.
func NewMeasurer() *Measurer {
	return &Measurer{
		finder: sysfont.NewFinder(&sysfont.FinderOpts{
			Extensions: []string{".ttf", ".ttc", ".otf"},
		}),
		parsed: make(map[string]*sfnt.Font),
		failed: make(map[string]bool),
	}
}

// MeasureWidth returns the width, in points, of `text` set in `fd`'s resolved CSS
// font stack at `fd.DisplayHeightPt()`, scaled by WidthPt/HeightPt to account for
// non-square font metrics, per spec.md section 4.7's measurement rule.
func (m *Measurer) MeasureWidth(fd fontconfig.FontDesc, text string) float64 {
	if text == "" {
		return 0
	}
	heightPt := fd.DisplayHeightPt()
	f := m.resolve(fd.CSSFamily, fd.Weight, fd.Style)

	var widthEm float64
	if f == nil {
		widthEm = float64(len([]rune(text))) * approxAdvanceFactor * heightPt
	} else {
		widthEm = m.advanceSum(f, text, heightPt)
	}

	aspect := 1.0
	if fd.HeightPt != 0 {
		aspect = fd.WidthPt / fd.HeightPt
	}
	return widthEm * aspect
}

// resolve finds and parses the first matching host font file across the comma
// separated CSS stack in `cssFamily`, trying a Bold/Italic name suffix first per the
// source's `create_font` fallback chain (original_source draw_to_svg.py lines
// ~3366-3398).
func (m *Measurer) resolve(cssFamily, weight, style string) *sfnt.Font {
	for _, name := range strings.Split(cssFamily, ",") {
		name = strings.Trim(strings.TrimSpace(name), `"`)
		if name == "" {
			continue
		}
		tryNames := []string{name}
		switch {
		case weight == "bold":
			tryNames = append([]string{name + " Bold"}, tryNames...)
		case style == "italic":
			tryNames = append([]string{name + " Italic"}, tryNames...)
		}
		for _, try := range tryNames {
			if f := m.resolveOne(try); f != nil {
				return f
			}
		}
	}
	return nil
}

func (m *Measurer) resolveOne(name string) *sfnt.Font {
	m.mu.Lock()
	if m.failed[name] {
		m.mu.Unlock()
		return nil
	}
	m.mu.Unlock()

	info := m.finder.Match(name)
	if info == nil {
		m.mu.Lock()
		m.failed[name] = true
		m.mu.Unlock()
		return nil
	}

	m.mu.Lock()
	if f, ok := m.parsed[info.Filename]; ok {
		m.mu.Unlock()
		return f
	}
	m.mu.Unlock()

	data, err := os.ReadFile(info.Filename)
	if err != nil {
		common.Log.Debug("textmetrics: could not read font file %s: %v", info.Filename, err)
		m.mu.Lock()
		m.failed[name] = true
		m.mu.Unlock()
		return nil
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		common.Log.Debug("textmetrics: could not parse font file %s: %v", info.Filename, err)
		m.mu.Lock()
		m.failed[name] = true
		m.mu.Unlock()
		return nil
	}

	m.mu.Lock()
	m.parsed[info.Filename] = f
	m.mu.Unlock()
	return f
}

// advanceSum sums per-rune glyph advances at `heightPt` pixels-per-em, returning
// total width in the same units as heightPt (points).
func (m *Measurer) advanceSum(f *sfnt.Font, text string, heightPt float64) float64 {
	var buf sfnt.Buffer
	ppem := fixed.I(int(heightPt))
	var total fixed.Int26_6
	for _, r := range text {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			total += fixed.I(int(heightPt * approxAdvanceFactor))
			continue
		}
		adv, err := f.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
		if err != nil {
			total += fixed.I(int(heightPt * approxAdvanceFactor))
			continue
		}
		total += adv
	}
	return float64(total) / 64.0
}
