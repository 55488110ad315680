/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package svgwriter

import (
	"bytes"
	"fmt"

	"github.com/drawfile/draw2svg/common"
	"github.com/drawfile/draw2svg/drawfile"
	"github.com/drawfile/draw2svg/fontconfig"
	"github.com/drawfile/draw2svg/geom"
	"github.com/drawfile/draw2svg/textmetrics"
)

// Context carries everything the recursive object walk needs, threaded by pointer
// so Path/cap counters and the font table accumulate across the whole document
// rather than per-object, mirroring original_source's Convertor instance fields.
type Context struct {
	Conv     geom.CoordinateConversion
	Subs     fontconfig.Table
	Measurer *textmetrics.Measurer
	Config   Config
	Fonts    drawfile.FontTable

	PathCount int
	CapCount  int
}

// NewContext builds a rendering context with the font table pre-seeded with the
// System default slot, per spec.md's FontTable invariant.
func NewContext(conv geom.CoordinateConversion, subs fontconfig.Table, cfg Config) *Context {
	return &Context{
		Conv:     conv,
		Subs:     subs,
		Measurer: textmetrics.NewMeasurer(),
		Config:   cfg,
		Fonts:    drawfile.NewFontTable(),
	}
}

// Render walks obj (and, for Group/Tagged, its children) and appends the
// corresponding SVG markup to buf, dispatching by the single populated
// type-specific field of drawfile.Object per spec.md section 4.3.
func Render(buf *bytes.Buffer, obj drawfile.Object, ctx *Context) {
	common.Log.Debug("object type %d, length %d", obj.Header.Type, obj.Header.Length)
	switch {
	case obj.FontTable != nil:
		for slot, entry := range obj.FontTable {
			ctx.Fonts[slot] = entry
		}

	case obj.Text != nil:
		WriteText(buf, obj.Text, obj.Header, ctx.Fonts, ctx.Subs, ctx.Conv, ctx.Config)

	case obj.Path != nil:
		ctx.PathCount++
		WritePath(buf, obj.Path, ctx.Conv, ctx.PathCount, &ctx.CapCount)

	case obj.Sprite != nil:
		if err := WriteSprite(buf, obj.Sprite, obj.Header, ctx.Conv); err != nil {
			common.Log.Warning("sprite %q: %v", obj.Sprite.Name, err)
		}

	case obj.JPEG != nil:
		WriteJPEG(buf, obj.JPEG, ctx.Conv)

	case obj.TextArea != nil:
		WriteTextArea(buf, obj.TextArea, ctx.Subs, ctx.Conv, ctx.Measurer, ctx.Config)

	case obj.Group != nil:
		fmt.Fprintf(buf, "<g id=\"%s\">\n", escapeXML(obj.Group.Name))
		for _, child := range obj.Group.Children {
			Render(buf, child, ctx)
		}
		buf.WriteString("</g>\n")

	case obj.Tagged != nil:
		if obj.Tagged.Inner != nil {
			Render(buf, *obj.Tagged.Inner, ctx)
		}

	case obj.Options != nil:
		// Options only steers Pass 1's page-size discovery; it carries nothing to
		// render once the coordinate conversion has been built.

	default:
		common.Log.Warning("unknown object type %d: emitting placeholder", obj.Header.Type)
		WritePlaceholder(buf, obj.Header, ctx.Conv)
	}

	if ctx.Config.ShowBoxes {
		writeDebugBox(buf, obj.Header, ctx.Conv)
	}
	if ctx.Config.LabelDebug {
		writeDebugLabel(buf, obj.Header, ctx.Conv)
	}
}

func writeDebugBox(buf *bytes.Buffer, header drawfile.ObjectHeader, conv geom.CoordinateConversion) {
	bottomLeft := pointOf(conv.Point(header.BBox.X0, header.BBox.Y0))
	topRight := pointOf(conv.Point(header.BBox.X1, header.BBox.Y1))
	width := topRight.X - bottomLeft.X
	height := bottomLeft.Y - topRight.Y
	if width <= 0 || height <= 0 {
		return
	}
	fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" fill="none" stroke="red" stroke-width="0.5" />`+"\n",
		dp(bottomLeft.X), dp(topRight.Y), dp(width), dp(height))
}

func writeDebugLabel(buf *bytes.Buffer, header drawfile.ObjectHeader, conv geom.CoordinateConversion) {
	bottomLeft := pointOf(conv.Point(header.BBox.X0, header.BBox.Y0))
	fmt.Fprintf(buf, `<text x="%s" y="%s" font-size="6pt" fill="red">%d</text>`+"\n",
		dp(bottomLeft.X), dp(bottomLeft.Y), header.Type)
}
