/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textarea

import (
	"regexp"

	"github.com/drawfile/draw2svg/common"
	"github.com/drawfile/draw2svg/fontconfig"
)

// escapeRule is one recognised `\`-command pattern. Rules are tried in table order
// against the remaining byte stream and the first one that matches wins. Patterns are anchored at the start of the remaining
// text, per spec.md section 4.7's scanner table.
type escapeRule struct {
	name string
	re   *regexp.Regexp
}

// optionalTerm matches the commands whose trailing `/` terminator is optional.
const optionalTerm = `(?:/)?`

var escapeRules = []escapeRule{
	{"version", regexp.MustCompile(`^\\! *\d+[/ \n]`)},
	{"background", regexp.MustCompile(`^\\B *(\d+)[ \t]+(\d+)[ \t]+(\d+)[ \t]*[/\n]`)},
	{"colour", regexp.MustCompile(`^\\C *(\d+)[ \t]+(\d+)[ \t]+(\d+)[ \t]*[/\n]`)},
	{"columns", regexp.MustCompile(`^\\D *(\d+)[/ \n]`)},
	{"font size width", regexp.MustCompile(`^\\F[ \t]*(\d+)[ \t]*([^ \t]*)[ \t]*(\d+)[ \t]+(\d+)[ \t]*[/\n]`)},
	{"font size", regexp.MustCompile(`^\\F[ \t]*(\d+)[ \t]*([^ \t]*)[ \t]*(\d+)[ \t]*[/\n]`)},
	{"line leading", regexp.MustCompile(`^\\L *(-?\d+)[/\n]`)},
	{"margins", regexp.MustCompile(`^\\M *(\d+) +(\d+)[/\n]`)},
	{"paragraph leading", regexp.MustCompile(`^\\P *(-?\d+)[/\n]`)},
	{"underline end", regexp.MustCompile(`^\\U\.` + optionalTerm)},
	{"underline", regexp.MustCompile(`^\\U *(-?\d+) +(-?\d+) *[/\n]`)},
	{"alignment", regexp.MustCompile(`^\\A(.)` + optionalTerm)},
	{"vertical move", regexp.MustCompile(`^\\V(-?\d+)` + optionalTerm)},
	{"soft hyphen", regexp.MustCompile(`^\\-` + optionalTerm)},
	{"line break", regexp.MustCompile(`^\\\n` + optionalTerm)},
	{"slash", regexp.MustCompile(`^\\\\` + optionalTerm)},
	{"setfont", regexp.MustCompile(`^\\(\d+)` + optionalTerm)},
	{"comment", regexp.MustCompile(`^\\;(.*)?\n`)},
}

// Sentinel previousByte values tracked alongside ordinary byte values 0-255, used
// by the raw-newline resolution table in consumeByte.
const (
	prevNone      = -1
	prevAlignment = -2
)

// sanitize strips control characters per spec.md section 4.7's first pass: TAB (9)
// becomes a space, LF (10) is kept, all other bytes below 32 are dropped.
func sanitize(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, c := range data {
		switch {
		case c == 9:
			out = append(out, ' ')
		case c < 32 && c != 10:
			continue
		default:
			out = append(out, c)
		}
	}
	return out
}

// parser holds the escape-scanning pass's working state.
type parser struct {
	subs    fontconfig.Table
	state   State
	fonts   map[int]fontconfig.FontDesc
	runs    []Run
	text    []byte // accumulated plain bytes of the run in progress
	utf8Out bool    // emit soft hyphens as UTF-8, not a raw encoded-table byte

	noTextYet   bool
	beginOfPara bool
	previous    int // prevNone, prevAlignment, or the last raw byte value
}

// ParseEscapes scans `data` for escape-sequence commands, producing a flat list of
// Runs in source order. `numColumns` seeds the initial column count (overridden by
// a `\D` command), per the source's `num_columns = len(text_columns)` default.
// `utf8Mode` must match the value later passed to Run.Decode: it governs how the `\-`
// soft-hyphen command is encoded into the run's raw bytes (see applyCommand).
func ParseEscapes(data []byte, numColumns int, utf8Mode bool, subs fontconfig.Table) []Run {
	p := &parser{
		subs:        subs,
		state:       defaultState(),
		fonts:       defaultFonts(subs),
		utf8Out:     utf8Mode,
		noTextYet:   true,
		beginOfPara: true,
		previous:    prevNone,
	}
	p.state.Columns = numColumns

	remaining := sanitize(data)
	for len(remaining) > 0 {
		if n := p.tryCommand(remaining); n > 0 {
			remaining = remaining[n:]
			continue
		}
		remaining = p.consumeByte(remaining)
	}
	p.storeRun()
	return p.runs
}

// tryCommand attempts every escape rule against the start of `data`, applies the
// first match's effect, and returns the number of bytes consumed (0 if none match).
func (p *parser) tryCommand(data []byte) int {
	for _, rule := range escapeRules {
		loc := rule.re.FindSubmatchIndex(data)
		if loc == nil {
			continue
		}
		groups := submatches(data, loc)
		p.applyCommand(rule.name, groups)
		return loc[1]
	}
	return 0
}

func submatches(data []byte, loc []int) []string {
	n := len(loc) / 2
	out := make([]string, n)
	for i := 0; i < n; i++ {
		if loc[2*i] < 0 {
			continue
		}
		out[i] = string(data[loc[2*i]:loc[2*i+1]])
	}
	return out
}

// applyCommand dispatches one matched escape command. Only "slash", "soft hyphen",
// "line break" and "alignment" touch `p.previous` (original_source never updates
// previous_byte for the other commands, so state like "the character before a
// colour change" survives through it unchanged).
func (p *parser) applyCommand(name string, groups []string) {
	switch name {
	case "slash":
		p.text = append(p.text, '\\')
		p.noTextYet, p.beginOfPara = false, false
		p.previous = '\\'
		return
	case "comment":
		common.Log.Debug("textarea: comment %q", groups[1])
		return
	case "soft hyphen":
		if p.utf8Out {
			p.text = append(p.text, 0xC2, 0xAD) // U+00AD encoded as UTF-8
		} else {
			p.text = append(p.text, 0xAD) // raw byte, resolved later by internal/textencoding
		}
		p.previous = 0xAD
		return
	}

	// Every other command finalises the run in progress first.
	p.storeRun()

	switch name {
	case "version":
		// No-op marker.
	case "line break":
		p.state.PrefixLineBreaks++
		p.beginOfPara = true
		p.previous = 10
	case "alignment":
		p.state.Alignment = Alignment(groups[1][0])
		if !p.beginOfPara {
			p.state.PrefixLineBreaks++
			p.beginOfPara = true
		}
		p.previous = prevAlignment
	case "background":
		// No SVG equivalent; RISC OS FontManager-only rendering hint.
	case "colour":
		p.state.Colour = Colour{R: atou8(groups[1]), G: atou8(groups[2]), B: atou8(groups[3])}
	case "columns":
		p.state.Columns = atoi(groups[1])
	case "font size":
		idx := atoi(groups[1])
		size := float64(atoi(groups[3]))
		p.fonts[idx] = fontconfig.ParseFontDesc(groups[2], size, size, p.subs)
	case "font size width":
		idx := atoi(groups[1])
		height := float64(atoi(groups[3]))
		width := float64(atoi(groups[4]))
		p.fonts[idx] = fontconfig.ParseFontDesc(groups[2], height, width, p.subs)
	case "setfont":
		p.state.FontSlot = atoi(groups[1])
	case "line leading":
		p.state.LineLeadingPt = float64(atoi(groups[1]))
	case "margins":
		p.state.LeftMarginPt = float64(atoi(groups[1]))
		p.state.RightMarginPt = float64(atoi(groups[2]))
	case "paragraph leading":
		p.state.ParagraphLeadingPt = float64(atoi(groups[1]))
	case "underline":
		p.state.UnderlinePos = atoi(groups[1])
		p.state.UnderlineThickness = atoi(groups[2])
	case "underline end":
		p.state.UnderlinePos, p.state.UnderlineThickness = 0, 0
	case "vertical move":
		p.state.VerticalMovePt += float64(atoi(groups[1]))
	}
}

// consumeByte handles the one-byte-at-a-time path: raw-newline resolution and plain
// character accumulation, per spec.md section 4.7's "Raw newlines are resolved"
// table (ported from original_source's should_output_char/previous_byte logic,
// draw_to_svg.py lines ~3604-3675).
func (p *parser) consumeByte(data []byte) []byte {
	c := data[0]
	if c != 10 {
		if c >= 32 {
			p.text = append(p.text, c)
			p.noTextYet, p.beginOfPara = false, false
		}
		p.previous = int(c)
		return data[1:]
	}

	var next int = -1
	if len(data) > 1 {
		next = int(data[1])
	}
	outputSpace := false

	switch {
	case p.noTextYet:
		p.storeRun()
		p.state.PrefixParaBreaks++
		p.beginOfPara = true
		p.previous = 10
	case next == ' ' || next == '\t':
		p.storeRun()
		if p.state.PrefixLineBreaks == 0 {
			p.state.PrefixLineBreaks++
		}
		p.state.PrefixParaBreaks++
		p.beginOfPara = true
		p.previous = 10
	case p.previous == 10:
		p.storeRun()
		if p.state.PrefixLineBreaks == 0 {
			p.state.PrefixLineBreaks++
			// previous stays 10: a further consecutive newline repeats this branch.
		} else {
			p.previous = ' '
		}
		p.state.PrefixParaBreaks++
		p.beginOfPara = true
	case p.previous == prevAlignment:
		p.state.PrefixParaBreaks++
		p.beginOfPara = true
		p.previous = ' '
	case p.previous == ' ' || p.previous == '\t':
		// Drop the LF; previous becomes 10 (unchanged from the raw byte).
		p.previous = 10
	default:
		if next != 10 {
			outputSpace = true
			p.previous = ' '
		} else {
			p.previous = 10
		}
	}

	if outputSpace {
		p.text = append(p.text, ' ')
		p.noTextYet, p.beginOfPara = false, false
	}
	return data[1:]
}

// storeRun closes the run in progress (if it carries any text) and resets the
// pending-break counters, per original_source's store_text_run.
func (p *parser) storeRun() {
	if len(p.text) == 0 {
		return
	}
	p.runs = append(p.runs, Run{
		State: p.state,
		Fonts: cloneFonts(p.fonts),
		Text:  append([]byte(nil), p.text...),
	})
	p.text = p.text[:0]
	p.state.PrefixLineBreaks = 0
	p.state.PrefixParaBreaks = 0
}

func cloneFonts(fonts map[int]fontconfig.FontDesc) map[int]fontconfig.FontDesc {
	out := make(map[int]fontconfig.FontDesc, len(fonts))
	for k, v := range fonts {
		out[k] = v
	}
	return out
}

func atoi(s string) int {
	n := 0
	neg := false
	for i, c := range s {
		if i == 0 && c == '-' {
			neg = true
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		return -n
	}
	return n
}

func atou8(s string) uint8 {
	n := atoi(s)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
