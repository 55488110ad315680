/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package svgwriter

import (
	"bytes"
	"fmt"
)

// BuildDocument wraps the already-rendered body markup in the root <svg> element,
// per spec.md section 6: a UTF-8 SVG 1.1 document using attributes only, whose
// view-box is the chosen page (or, with a fit-border, the file's own bounding box
// expanded by that margin).
func BuildDocument(body []byte, viewBoxX, viewBoxY, viewBoxWidth, viewBoxHeight float64) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n")
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" `+
		`version="1.1" xml:space="preserve" width="%spx" height="%spx" viewBox="%s %s %s %s">`+"\n",
		dp(viewBoxWidth), dp(viewBoxHeight), dp(viewBoxX), dp(viewBoxY), dp(viewBoxWidth), dp(viewBoxHeight))
	buf.Write(body)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
