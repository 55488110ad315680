/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package svgwriter

import (
	"bytes"
	"fmt"

	"github.com/drawfile/draw2svg/drawfile"
	"github.com/drawfile/draw2svg/fontconfig"
	"github.com/drawfile/draw2svg/geom"
	"github.com/drawfile/draw2svg/textarea"
	"github.com/drawfile/draw2svg/textmetrics"
)

// WriteTextArea parses and flows a TextArea object's escape-formatted body and
// emits one <text> element per flowed run (or, with Config.TSpans, one <text> per
// line holding <tspan> children), per spec.md section 4.7/4.8.
func WriteTextArea(buf *bytes.Buffer, ta *drawfile.TextArea, subs fontconfig.Table, conv geom.CoordinateConversion, m *textmetrics.Measurer, cfg Config) {
	columns := make([]textarea.Column, len(ta.Columns))
	for i, rect := range ta.Columns {
		bottomLeft := pointOf(conv.Point(rect.X0, rect.Y0))
		topRight := pointOf(conv.Point(rect.X1, rect.Y1))
		columns[i] = textarea.Column{Left: bottomLeft.X, Right: topRight.X, Top: topRight.Y, Bottom: bottomLeft.Y}
	}
	if len(columns) == 0 {
		return
	}

	runs := textarea.ParseEscapes(ta.Text, len(columns), cfg.UTF8, subs)
	emitted := textarea.FlowRuns(runs, columns, cfg.UTF8, m)

	if cfg.TSpans {
		writeTextAreaTSpans(buf, emitted, cfg)
		return
	}
	for _, r := range emitted {
		writeTextAreaRun(buf, r, cfg)
	}
}

func writeTextAreaRun(buf *bytes.Buffer, r textarea.EmittedRun, cfg Config) {
	var attrs string
	if r.UnderlineThickness > 0 {
		decoration := "underline"
		if !cfg.BasicUnderlines {
			decoration += fmt.Sprintf(" rgb(%d,%d,%d)", r.Colour.R, r.Colour.G, r.Colour.B)
		}
		attrs = fmt.Sprintf(` text-decoration='%s'`, decoration)
	}
	var spacingAttr string
	if r.LetterSpacing != 0 {
		spacingAttr = fmt.Sprintf(` letter-spacing="%spx"`, dp(r.LetterSpacing))
	}
	fmt.Fprintf(buf, "<text x=\"%s\" y=\"%s\" font-family='%s' font-size=\"%spt\" font-weight=\"%s\" font-style=\"%s\" fill=\"rgb(%d,%d,%d)\" xml:space=\"preserve\"%s%s>%s</text>\n",
		dp(r.X), dp(r.Y), r.Font.CSSFamily, dp(r.Font.DisplayHeightPt()), r.Font.Weight, r.Font.Style,
		r.Colour.R, r.Colour.G, r.Colour.B, spacingAttr, attrs, escapeXML(r.Text))
}

// writeTextAreaTSpans groups runs that share a Y baseline into one <text> element,
// each run becoming a <tspan> child, per the --tspans flag (spec.md section 6).
func writeTextAreaTSpans(buf *bytes.Buffer, runs []textarea.EmittedRun, cfg Config) {
	var i int
	for i < len(runs) {
		lineY := runs[i].Y
		j := i
		for j < len(runs) && runs[j].Y == lineY {
			j++
		}
		fmt.Fprintf(buf, "<text y=\"%s\" xml:space=\"preserve\">\n", dp(lineY))
		for _, r := range runs[i:j] {
			var attrs string
			if r.UnderlineThickness > 0 {
				decoration := "underline"
				if !cfg.BasicUnderlines {
					decoration += fmt.Sprintf(" rgb(%d,%d,%d)", r.Colour.R, r.Colour.G, r.Colour.B)
				}
				attrs = fmt.Sprintf(` text-decoration='%s'`, decoration)
			}
			var spacingAttr string
			if r.LetterSpacing != 0 {
				spacingAttr = fmt.Sprintf(` letter-spacing="%spx"`, dp(r.LetterSpacing))
			}
			fmt.Fprintf(buf, "<tspan x=\"%s\" font-family='%s' font-size=\"%spt\" font-weight=\"%s\" font-style=\"%s\" fill=\"rgb(%d,%d,%d)\"%s%s>%s</tspan>\n",
				dp(r.X), r.Font.CSSFamily, dp(r.Font.DisplayHeightPt()), r.Font.Weight, r.Font.Style,
				r.Colour.R, r.Colour.G, r.Colour.B, spacingAttr, attrs, escapeXML(r.Text))
		}
		buf.WriteString("</text>\n")
		i = j
	}
}
