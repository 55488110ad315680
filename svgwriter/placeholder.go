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
)

// WritePlaceholder emits a translucent grey rectangle for an object type this
// converter does not recognise, per spec.md section 4.8 and the UnknownObject entry
// of the error taxonomy (section 7): the body is skipped, not failed.
func WritePlaceholder(buf *bytes.Buffer, header drawfile.ObjectHeader, conv geom.CoordinateConversion) {
	bottomLeft := pointOf(conv.Point(header.BBox.X0, header.BBox.Y0))
	topRight := pointOf(conv.Point(header.BBox.X1, header.BBox.Y1))
	width := topRight.X - bottomLeft.X
	height := bottomLeft.Y - topRight.Y
	if width <= 0 || height <= 0 {
		return
	}
	fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s" fill="grey" fill-opacity="0.3" stroke="none" />`+"\n",
		dp(bottomLeft.X), dp(topRight.Y), dp(width), dp(height))
}
