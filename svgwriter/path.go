/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package svgwriter

import (
	"bytes"
	"fmt"

	"github.com/drawfile/draw2svg/drawfile"
	"github.com/drawfile/draw2svg/geom"
	"github.com/drawfile/draw2svg/pathfx"
)

// WritePath emits a Path object as one <path> element (all sub-paths combined into
// one "d" attribute, since SVG renders multiple M...Z segments identically to the
// multiple sibling <path> elements original_source emits) plus any dash caps, per
// spec.md section 4.4 and 4.8. capCounter numbers emitted cap elements uniquely
// across the whole document, mirroring original_source's self.cap_count.
func WritePath(buf *bytes.Buffer, p *drawfile.Path, conv geom.CoordinateConversion, pathIndex int, capCounter *int) {
	h := p.Header

	var fill string
	if h.FillColour.None() {
		fill = `fill="none"`
	} else {
		fill = fmt.Sprintf(`fill="%s"`, ColourName(h.FillColour))
	}

	stroke := fmt.Sprintf(`stroke="%s"`, ColourName(h.OutlineColour))
	if h.OutlineColour.None() {
		stroke += ` stroke-opacity="0"`
	}

	var svgWidth float64
	if h.OutlineWidth == 0 {
		svgWidth = 1
	} else {
		svgWidth = conv.LengthX(float64(h.OutlineWidth))
	}

	var dashAttr string
	var dashOffsetSVG float64
	if p.Dash != nil {
		dashOffsetSVG = conv.LengthX(float64(p.Dash.Offset))
		var b bytes.Buffer
		if dashOffsetSVG > 0 {
			fmt.Fprintf(&b, `stroke-dashoffset="%s" `, dp(dashOffsetSVG))
		}
		b.WriteString(`style="stroke-dasharray:`)
		for _, l := range p.Dash.Lengths {
			fmt.Fprintf(&b, " %s", dp(conv.LengthX(float64(l))))
		}
		b.WriteString(`"`)
		dashAttr = b.String()
	}

	winding := "nonzero"
	if h.Style.Winding == pathfx.WindingEvenOdd {
		winding = "evenodd"
	}
	join := "miter"
	switch h.Style.Join {
	case pathfx.JoinRound:
		join = "round"
	case pathfx.JoinBevel:
		join = "bevel"
	}

	hasCaps := h.Style.StartCap != pathfx.CapButt || h.Style.EndCap != pathfx.CapButt
	if hasCaps {
		fmt.Fprintf(buf, "<g id=\"draw_path%d\">\n", pathIndex)
	}

	var idAttr string
	if !hasCaps {
		idAttr = fmt.Sprintf(`id="draw_path%d" `, pathIndex)
	}

	fmt.Fprintf(buf, `<path %s%s fill-rule="%s" %s stroke-width="%s" stroke-linejoin="%s" %s d="`,
		idAttr, fill, winding, stroke, dp(svgWidth), join, dashAttr)

	cmds := pathfx.BuildCommands(p.Elements, conv)
	writeCommands(buf, cmds)
	buf.WriteString(`" />` + "\n")

	subpaths := pathfx.Linearize(p.Elements, conv)
	caps := pathfx.SynthesizeCaps(subpaths, p.Dash, conv.ScaleX())
	writeCaps(buf, caps, h.Style, svgWidth, ColourName(h.OutlineColour), capCounter)

	if hasCaps {
		buf.WriteString("</g>\n")
	}
}

func writeCommands(buf *bytes.Buffer, cmds []pathfx.Command) {
	newline := ""
	for _, c := range cmds {
		switch c.Op {
		case pathfx.OpMoveTo:
			fmt.Fprintf(buf, "%sM%s %s", newline, dp(c.Pts[0].X), dp(c.Pts[0].Y))
		case pathfx.OpLineTo:
			fmt.Fprintf(buf, "%sL%s %s", newline, dp(c.Pts[0].X), dp(c.Pts[0].Y))
		case pathfx.OpCurveTo:
			fmt.Fprintf(buf, "%sC%s %s %s %s %s %s", newline,
				dp(c.Pts[0].X), dp(c.Pts[0].Y), dp(c.Pts[1].X), dp(c.Pts[1].Y), dp(c.Pts[2].X), dp(c.Pts[2].Y))
		case pathfx.OpClose:
			fmt.Fprintf(buf, "%sZ", newline)
		}
		newline = "\n"
	}
}

func writeCaps(buf *bytes.Buffer, caps []pathfx.Cap, style pathfx.Style, svgWidth float64, fillColour string, capCounter *int) {
	for _, oneCap := range caps {
		capStyle := style.EndCap
		role := "end"
		if oneCap.Role == pathfx.RoleDashEnd {
			capStyle = style.StartCap
			role = "start"
		}
		shape, ok := pathfx.BuildCapShape(oneCap, capStyle, svgWidth, style.TriCapWidth, style.TriCapLength)
		if !ok {
			continue
		}
		switch shape.Kind {
		case pathfx.ShapeCircle:
			fmt.Fprintf(buf, `<circle id="cap%d_%s_round" fill="%s" stroke="none" r="%s" cx="%s" cy="%s" />`+"\n",
				*capCounter, role, fillColour, dp(shape.R), dp(shape.Cx), dp(shape.Cy))
		case pathfx.ShapePolygon:
			var kind string
			if len(shape.Polygon) == 3 {
				kind = "triangle"
			} else {
				kind = "square"
			}
			var d bytes.Buffer
			for i, pt := range shape.Polygon {
				op := "L"
				if i == 0 {
					op = "M"
				}
				fmt.Fprintf(&d, "%s%s %s ", op, dp(pt.X), dp(pt.Y))
			}
			fmt.Fprintf(buf, `<path id="cap%d_%s_%s" fill="%s" stroke="none" d="%sz" />`+"\n",
				*capCounter, role, kind, fillColour, d.String())
		}
		*capCounter++
	}
}
