/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package svgwriter

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/drawfile/draw2svg/drawfile"
	"github.com/drawfile/draw2svg/geom"
)

// WriteSprite emits a Sprite or TransformedSprite object as one <image> element,
// ported from original_source's read_sprite_object/get_sprite_transform. The decoded
// pixel image is always re-encoded as PNG and inlined as a data: URI, since Draw
// sprite pixel formats have no direct SVG-embeddable equivalent.
func WriteSprite(buf *bytes.Buffer, s *drawfile.Sprite, header drawfile.ObjectHeader, conv geom.CoordinateConversion) error {
	bounds := s.Image.Bounds()
	pixelW, pixelH := bounds.Dx(), bounds.Dy()

	var png64 bytes.Buffer
	if err := png.Encode(&png64, s.Image); err != nil {
		return fmt.Errorf("encode sprite %q: %w", s.Name, err)
	}
	data := base64.StdEncoding.EncodeToString(png64.Bytes())

	var transform string
	if s.Transformed {
		transform = spriteMatrixTransform(conv, *s.Matrix, pixelH, s.DPIx, s.DPIy)
	} else {
		bottomLeft := pointOf(conv.Point(header.BBox.X0, header.BBox.Y0))
		topRight := pointOf(conv.Point(header.BBox.X1, header.BBox.Y1))
		boxWidth := topRight.X - bottomLeft.X
		boxHeight := bottomLeft.Y - topRight.Y
		widthRatio := boxWidth / float64(pixelW)
		heightRatio := boxHeight / float64(pixelH)
		transform = fmt.Sprintf(`translate(%s %s) scale(%s %s)`,
			dp(bottomLeft.X), dp(topRight.Y), dp(widthRatio), dp(heightRatio))
	}

	fmt.Fprintf(buf, `<image id="%s" width="%d" height="%d" transform="%s" xlink:href="data:image/png;base64,%s" />`+"\n",
		escapeXML(s.Name), pixelW, pixelH, transform, data)
	return nil
}

// WriteJPEG emits a JPEG object as one <image> element, inlining the embedded JPEG
// byte stream directly (no re-encoding) per original_source's read_jpeg_object.
func WriteJPEG(buf *bytes.Buffer, j *drawfile.JPEG, conv geom.CoordinateConversion) {
	data := base64.StdEncoding.EncodeToString(j.Data)
	transform := spriteMatrixTransform(conv, j.Matrix, int(j.Height), int(j.DPIx), int(j.DPIy))
	fmt.Fprintf(buf, `<image width="%d" height="%d" transform="%s" xlink:href="data:image/jpeg;base64,%s" />`+"\n",
		j.Width, j.Height, transform, data)
}

type point2 struct{ X, Y float64 }

func pointOf(x, y float64) point2 { return point2{X: x, Y: y} }

// spriteMatrixTransform builds the transform attribute shared by TransformedSprite
// and JPEG objects (both always carry a placement matrix and declared DPI), per
// original_source's get_sprite_transform: the matrix's own decomposed translation is
// used directly (no baseline override, unlike text), rotation/skew are applied
// un-negated, and a DPI-normalisation scale plus a height flip are appended so the
// pixel image (placed at the origin, growing downward) lands the right way up.
func spriteMatrixTransform(conv geom.CoordinateConversion, m drawfile.DrawMatrix, pixelHeight, dpiX, dpiY int) string {
	svgMatrix := conv.DrawMatrixToSVG(m.A, m.B, m.C, m.D, m.E, m.F)
	dec := svgMatrix.Decompose()

	if dpiX == 0 {
		dpiX = 96
	}
	if dpiY == 0 {
		dpiY = 96
	}

	return fmt.Sprintf(`translate(%s %s) rotate(%s) skewX(%s) skewY(%s) scale(%s %s) scale(%s %s) translate(0 %s)`,
		dp(dec.TX), dp(dec.TY), dp(radToDeg(dec.Rotation)), dp(radToDeg(dec.XSkew)), dp(0), dp(dec.ScaleX), dp(dec.ScaleY),
		dp(96.0/float64(dpiX)), dp(96.0/float64(dpiY)), dp(-float64(pixelHeight)))
}
