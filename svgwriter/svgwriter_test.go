/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package svgwriter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drawfile/draw2svg/drawfile"
	"github.com/drawfile/draw2svg/fontconfig"
	"github.com/drawfile/draw2svg/geom"
	"github.com/drawfile/draw2svg/pathfx"
)

func TestColourNameKnown(t *testing.T) {
	require.Equal(t, "red", ColourName(drawfile.Colour{R: 0xff, G: 0, B: 0}))
}

func TestColourNameFallsBackToHex(t *testing.T) {
	require.Equal(t, "#010203", ColourName(drawfile.Colour{R: 1, G: 2, B: 3}))
}

func TestEscapeXML(t *testing.T) {
	require.Equal(t, "a &amp; &lt;b&gt; &quot;c&quot; &apos;d&apos;", escapeXML(`a & <b> "c" 'd'`))
}

func TestDpFourDecimals(t *testing.T) {
	require.Equal(t, "1.5000", dp(1.5))
	require.Equal(t, "-0.0200", dp(-0.02))
}

func TestWritePathSimpleSquare(t *testing.T) {
	conv := geom.NewCoordinateConversion(100, 100, 100, 100)
	p := &drawfile.Path{
		Header: drawfile.PathHeader{
			FillColour:    drawfile.Colour{R: 0xff, G: 0, B: 0},
			OutlineColour: drawfile.Colour{Reserved: 0xff},
			Style:         pathfx.DecodeStyle(0),
		},
		Elements: []pathfx.Element{
			{Kind: pathfx.ElementMove, Pts: [3]geom.Point{{X: 0, Y: 0}}},
			{Kind: pathfx.ElementDraw, Pts: [3]geom.Point{{X: 50, Y: 0}}},
			{Kind: pathfx.ElementDraw, Pts: [3]geom.Point{{X: 50, Y: 50}}},
			{Kind: pathfx.ElementClose},
		},
	}
	var buf bytes.Buffer
	capCount := 0
	WritePath(&buf, p, conv, 1, &capCount)
	out := buf.String()
	require.Contains(t, out, `id="draw_path1"`)
	require.Contains(t, out, `fill="red"`)
	require.Contains(t, out, "M0.0000 100.0000")
	require.Equal(t, 0, capCount)
}

func TestWriteTextPlainOverridesBaselineX(t *testing.T) {
	conv := geom.NewCoordinateConversion(1000, 1000, 1000, 1000)
	fonts := drawfile.NewFontTable()
	subs := fontconfig.DefaultTable()
	header := drawfile.ObjectHeader{BBox: geom.Rect{X0: 100, Y0: 0, X1: 300, Y1: 200}}
	text := &drawfile.Text{
		Header: drawfile.TextHeader{
			Colour:     drawfile.Colour{R: 0, G: 0, B: 0},
			Style:      0,
			XSizePt640: 200,
			YSizePt640: 200,
			Baseline:   drawfile.Coords{X: 150, Y: 50},
		},
		Raw: []byte("Hi"),
	}
	var buf bytes.Buffer
	WriteText(&buf, text, header, fonts, subs, conv, Config{UseBBox: true})
	out := buf.String()
	require.Contains(t, out, "<text")
	require.Contains(t, out, "translate(100.0000")
	require.Contains(t, out, "Hi</text>")
}

func TestWritePlaceholderSkipsEmptyBox(t *testing.T) {
	conv := geom.NewCoordinateConversion(100, 100, 100, 100)
	var buf bytes.Buffer
	WritePlaceholder(&buf, drawfile.ObjectHeader{BBox: geom.Rect{}}, conv)
	require.Empty(t, buf.String())
}

func TestBuildDocumentWrapsBody(t *testing.T) {
	out := BuildDocument([]byte("<rect/>\n"), 0, 0, 100, 200)
	require.Contains(t, string(out), `viewBox="0.0000 0.0000 100.0000 200.0000"`)
	require.Contains(t, string(out), "<rect/>")
	require.Contains(t, string(out), "</svg>")
}
