/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textarea

import (
	"strings"
	"unicode/utf8"

	"github.com/drawfile/draw2svg/fontconfig"
	"github.com/drawfile/draw2svg/geom"
	"github.com/drawfile/draw2svg/textmetrics"
)

// Column is one text-area column's rectangle in SVG pixels, Y increasing downward
// (already run through geom.CoordinateConversion), with Top < Bottom.
type Column struct {
	Left, Right, Top, Bottom float64
}

// EmittedRun is one rendered unit of text-area output: a (possibly word-wrapped
// fragment of a) Run, positioned and ready for svgwriter to turn into a <text> or
// <tspan> element, per spec.md section 4.8.
type EmittedRun struct {
	Text               string
	Font               fontconfig.FontDesc
	Colour             Colour
	UnderlineThickness int
	UnderlinePos       int
	X, Y               float64 // baseline position, SVG px
	LetterSpacing      float64
	IsFirstOutput      bool // true only for the very first emitted run overall
}

type measuredRun struct {
	run   Run
	text  string
	width float64 // SVG px
}

// measurePx measures `text` set in fd and converts the result from points (the unit
// textmetrics.Measurer works in) to SVG pixels, so it can be compared directly
// against column geometry.
func measurePx(m *textmetrics.Measurer, fd fontconfig.FontDesc, text string) float64 {
	return geom.PtToPx(m.MeasureWidth(fd, text))
}

// FlowRuns lays out `runs` through `columns`, implementing the greedy line-fill and
// multi-column flow of spec.md section 4.7. Ported from original_source's
// format_text_runs (draw_to_svg.py lines ~3684-3913).
func FlowRuns(runs []Run, columns []Column, utf8Mode bool, m *textmetrics.Measurer) []EmittedRun {
	if len(runs) == 0 || len(columns) == 0 {
		return nil
	}

	remaining := make([]measuredRun, len(runs))
	for i, r := range runs {
		text := r.Decode(utf8Mode)
		remaining[i] = measuredRun{run: r, text: text, width: measurePx(m, r.Font(), text)}
	}

	colIdx := 0
	col := columns[0]
	y := col.Top + geom.PtToPx(remaining[0].run.State.LineLeadingPt)
	isStartOfColumn := true
	isFirstOutput := true

	var out []EmittedRun

	for len(remaining) > 0 {
		lastLineOfParagraph := false
		head := remaining[0]
		state := head.run.State

		if state.PrefixLineBreaks > 0 {
			y += geom.PtToPx(state.LineLeadingPt) + geom.PtToPx(state.ParagraphLeadingPt)*float64(state.PrefixLineBreaks-1)
		}
		if !isStartOfColumn {
			y += geom.PtToPx(state.ParagraphLeadingPt) * float64(state.PrefixParaBreaks)
		}
		remaining[0].run.State.PrefixLineBreaks = 0
		remaining[0].run.State.PrefixParaBreaks = 0

		x := col.Left
		textAreaWidth := col.Right - col.Left - geom.PtToPx(state.LeftMarginPt) - geom.PtToPx(state.RightMarginPt)

		if y >= col.Bottom {
			colIdx++
			if colIdx >= len(columns) {
				break
			}
			col = columns[colIdx]
			textAreaWidth = col.Right - col.Left - geom.PtToPx(state.LeftMarginPt) - geom.PtToPx(state.RightMarginPt)
			x = col.Left
			y = col.Top + geom.PtToPx(state.LineLeadingPt)
			isStartOfColumn = true
		}

		var lineRuns []measuredRun
		currentWidth := 0.0
		for len(remaining) > 0 && currentWidth < textAreaWidth {
			next := remaining[0]
			endOfParagraph := next.run.State.PrefixLineBreaks > 0 || next.run.State.PrefixParaBreaks > 0
			if len(lineRuns) > 0 && endOfParagraph {
				lastLineOfParagraph = true
				break
			}
			lineRuns = append(lineRuns, next)
			remaining = remaining[1:]
			currentWidth += next.width
		}

		if len(lineRuns) == 0 {
			break
		}

		if currentWidth > textAreaWidth {
			currentWidth, remaining = trimFinalRun(lineRuns, remaining, currentWidth, textAreaWidth, m)
			// trimFinalRun mutates lineRuns[len-1] in place via its returned slice copy.
		}

		lastLineOfParagraph = lastLineOfParagraph || len(remaining) == 0

		lineOffsetX := geom.PtToPx(state.LeftMarginPt)
		switch state.Alignment {
		case AlignRight:
			lineOffsetX += textAreaWidth - currentWidth
		case AlignCentre:
			lineOffsetX += (textAreaWidth - currentWidth) / 2
		}

		numChars := 0
		for _, r := range lineRuns {
			numChars += utf8.RuneCountInString(r.text)
		}
		numGaps := numChars - 1

		letterSpacing := 0.0
		if state.Alignment == AlignJustify && !lastLineOfParagraph && numGaps > 0 {
			letterSpacing = (textAreaWidth - currentWidth) / float64(numGaps)
		}

		lineX := x + lineOffsetX
		for _, r := range lineRuns {
			fd := r.run.Font()
			out = append(out, EmittedRun{
				Text:               r.text,
				Font:               fd,
				Colour:             r.run.State.Colour,
				UnderlineThickness: r.run.State.UnderlineThickness,
				UnderlinePos:       r.run.State.UnderlinePos,
				X:                  lineX,
				Y:                  y - geom.PtToPx(r.run.State.VerticalMovePt),
				LetterSpacing:      letterSpacing,
				IsFirstOutput:      isFirstOutput,
			})
			isFirstOutput = false
			lineX += r.width + float64(utf8.RuneCountInString(r.text)-1)*letterSpacing
		}

		isStartOfColumn = false
		if len(remaining) > 0 && remaining[0].run.State.PrefixLineBreaks == 0 && remaining[0].run.State.PrefixParaBreaks == 0 {
			remaining[0].run.State.PrefixLineBreaks = 1
		}
	}

	return out
}

// trimFinalRun shrinks the last run on a line (by trimming at the last space, then
// the last soft hyphen, then character-by-character) until the line fits, pushing
// any remainder back onto `remaining`. Ported from original_source's inner
// while-loop (draw_to_svg.py lines ~3770-3836).
func trimFinalRun(lineRuns []measuredRun, remaining []measuredRun, currentWidth, textAreaWidth float64, m *textmetrics.Measurer) (float64, []measuredRun) {
	finalIdx := len(lineRuns) - 1
	final := lineRuns[finalIdx]
	previousWidth := currentWidth - final.width

	spacesOnLine := 0
	for _, r := range lineRuns[:finalIdx] {
		spacesOnLine += strings.Count(r.text, " ")
	}

	test := final.text
	for currentWidth > textAreaWidth && utf8.RuneCountInString(test) > 1 {
		lastSpace := strings.LastIndex(test, " ")
		lastSoftHyphen := strings.LastIndex(test, "­")

		switch {
		case lastSoftHyphen > 0 && lastSoftHyphen > lastSpace:
			test = test[:lastSoftHyphen] + "-"
		case lastSpace > 0:
			test = test[:lastSpace]
		default:
			if spacesOnLine == 0 {
				test = dropLastRune(test)
			} else {
				// Not one whole word of this run fits: push it back in full.
				test = ""
				lineRuns[finalIdx].text = strings.TrimRight(lineRuns[finalIdx].text, " \t")
				lineRuns[finalIdx].width = measurePx(m, lineRuns[finalIdx].run.Font(), lineRuns[finalIdx].text)
				return previousWidth + lineRuns[finalIdx].width, remaining
			}
		}
		testWidth := measurePx(m, final.run.Font(), test)
		currentWidth = previousWidth + testWidth
	}

	kept := test
	overflow := strings.TrimLeft(strings.TrimPrefix(final.text, kept), " \t")
	if overflow != "" {
		overflowRun := final.run
		overflowRun.State.PrefixLineBreaks, overflowRun.State.PrefixParaBreaks = 0, 0
		overflowRun.State.VerticalMovePt = 0
		remaining = append([]measuredRun{{
			run:   overflowRun,
			text:  overflow,
			width: measurePx(m, overflowRun.Font(), overflow),
		}}, remaining...)
	}

	lineRuns[finalIdx].text = kept
	lineRuns[finalIdx].width = measurePx(m, final.run.Font(), kept)
	return previousWidth + lineRuns[finalIdx].width, remaining
}

func dropLastRune(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(r[:len(r)-1])
}
