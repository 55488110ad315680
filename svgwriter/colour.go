/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package svgwriter

import (
	"fmt"

	"github.com/drawfile/draw2svg/drawfile"
)

// ColourName returns the CSS colour string for a Draw ColourType, per spec.md
// section 4.8: the matching named web colour when the 24-bit RGB tuple is one of
// the 147 recognised names, else a lower-case "#rrggbb" hex triple. Ported from
// original_source's colour_name.
func ColourName(c drawfile.Colour) string {
	rgb := uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if name, ok := namedColours[rgb]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
