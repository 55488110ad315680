/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package svgwriter

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/drawfile/draw2svg/drawfile"
	"github.com/drawfile/draw2svg/fontconfig"
	"github.com/drawfile/draw2svg/geom"
	"github.com/drawfile/draw2svg/internal/textencoding"
	"github.com/drawfile/draw2svg/internal/xform"
)

// textSizeEpsilon guards the transformed-text path against a zero-width
// font size, per spec.md section 4.6's failsafe on svg_fontsize_pixels.x.
const textSizeEpsilon = 1e-4

// fontFlagUnderline and fontFlagReverse are TransformedText font-flag bits (plain
// Text objects always behave as if font_flags=1, i.e. neither bit set).
const (
	fontFlagReverse   = 1 << 1
	fontFlagUnderline = 1 << 2
)

// WriteText emits a Text or TransformedText object as one or more <text> elements
// (one per '\n'-split line, per spec.md section 4.3's rare multi-line case), ported
// from original_source's read_text_object/get_text_transform_info/read_trans_text_object.
func WriteText(buf *bytes.Buffer, t *drawfile.Text, header drawfile.ObjectHeader, fonts drawfile.FontTable, subs fontconfig.Table, conv geom.CoordinateConversion, cfg Config) {
	entry, ok := fonts[uint8(t.Header.Style)]
	if !ok {
		entry = fonts[0]
	}

	decoded := decodeText(t.Raw, entry, cfg.UTF8)

	svgFontSizePx := xform.Point{
		X: conv.LengthX(float64(t.Header.XSizePt640)),
		Y: conv.LengthY(float64(t.Header.YSizePt640)),
	}
	svgFontSizePt := xform.Point{X: geom.PxToPt(svgFontSizePx.X), Y: geom.PxToPt(svgFontSizePx.Y)}

	// heightPt is the per-object font-size value (formatfontsize uses the X axis,
	// not Y, per original_source), widthPt is unused for a standalone Text object.
	fontDesc := fontconfig.ParseFontDesc(entry.RawName, svgFontSizePt.X, svgFontSizePt.Y, subs)

	bottomLeft := xform.Point{}
	bottomLeft.X, bottomLeft.Y = conv.Point(header.BBox.X0, header.BBox.Y0)
	topRight := xform.Point{}
	topRight.X, topRight.Y = conv.Point(header.BBox.X1, header.BBox.Y1)

	var pos xform.Point
	var textWidth float64
	var attrs string
	fontFlags := uint32(1)

	if t.Matrix != nil {
		fontFlags = t.FontFlags
		if math.Abs(svgFontSizePx.X) < textSizeEpsilon {
			svgFontSizePx.X = textSizeEpsilon
		}

		svgMatrix := conv.DrawMatrixToSVG(t.Matrix.A, t.Matrix.B, t.Matrix.C, t.Matrix.D, t.Matrix.E, t.Matrix.F)
		dec := svgMatrix.Decompose()

		baseline := xform.Point{}
		baseline.X, baseline.Y = conv.Point(t.Header.Baseline.X, t.Header.Baseline.Y)
		pos = baseline

		boxWidth := topRight.X - bottomLeft.X
		boxHeight := bottomLeft.Y - topRight.Y
		textWidth = xform.RecoverTextWidth(boxWidth, boxHeight, svgMatrix[0], svgMatrix[1], svgMatrix[3], svgMatrix[4],
			-dec.Rotation, -dec.XSkew, svgFontSizePx.Y)

		fontAspect := svgFontSizePx.Y / svgFontSizePx.X
		scaleY := dec.ScaleY * fontAspect

		// get_text_transform_info's translate already carries pos; the element's own
		// x/y are fixed at the origin, matching original_source's Point(0, 0) pos
		// argument to read_text_object from read_trans_text_object.
		attrs = fmt.Sprintf(`transform="translate(%s %s) rotate(%s) skewX(%s) skewY(%s) scale(%s %s)"`,
			dp(pos.X), dp(pos.Y), dp(radToDeg(dec.Rotation)), dp(radToDeg(dec.XSkew)), dp(0), dp(dec.ScaleX), dp(scaleY))
		if fontFlags&fontFlagReverse != 0 {
			attrs += ` direction="rtl"`
		}
		pos = xform.Point{X: 0, Y: 0}
	} else {
		pos.X, pos.Y = conv.Point(t.Header.Baseline.X, t.Header.Baseline.Y)
		// Workaround for files (e.g. 'Metro.c56', produced by the 'Vector' app) that
		// encode the baseline halfway along the bounding box: always use the box's
		// bottom-left X instead.
		pos.X = bottomLeft.X
		textWidth = topRight.X - bottomLeft.X

		aspect := svgFontSizePt.Y / svgFontSizePt.X
		attrs = fmt.Sprintf(`transform="translate(%s %s) scale(1 %s) translate(%s %s)"`,
			dp(pos.X), dp(pos.Y), dp(aspect), dp(-pos.X), dp(-pos.Y))
	}

	if fontFlags&fontFlagUnderline != 0 {
		decoration := "underline"
		if !cfg.BasicUnderlines {
			decoration += " " + ColourName(t.Header.Colour)
		}
		attrs += fmt.Sprintf(` text-decoration='%s'`, decoration)
	}
	if fontFlags&fontFlagReverse != 0 {
		decoded = reverseString(decoded)
	}

	lines := strings.Split(decoded, "\n")
	fontSize := dp(fontDesc.DisplayHeightPt())
	for _, line := range lines {
		var textLengthAttr string
		if cfg.UseBBox && len(lines) == 1 {
			textLengthAttr = fmt.Sprintf(` textLength="%spx"`, dp(textWidth))
		}
		fmt.Fprintf(buf, "<text x=\"%s\" y=\"%s\" font-family='%s' font-size=\"%spt\" font-weight=\"%s\" font-style=\"%s\"%s fill=\"%s\" xml:space=\"preserve\" %s>%s</text>\n",
			dp(pos.X), dp(pos.Y), fontDesc.CSSFamily, fontSize, fontDesc.Weight, fontDesc.Style, textLengthAttr,
			ColourName(t.Header.Colour), attrs, escapeXML(line))
		pos.Y += svgFontSizePx.Y
	}
}

func decodeText(raw []byte, entry drawfile.FontTableEntry, utf8Mode bool) string {
	if utf8Mode {
		return string(raw)
	}
	table := textencoding.Lookup(entry.FontName, entry.Alphabet)
	return textencoding.Decode(raw, table)
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func radToDeg(rad float64) float64 { return rad * 180 / math.Pi }
