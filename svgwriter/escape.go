/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package svgwriter

import (
	"fmt"
	"strings"
)

// escapeXML escapes the five XML special characters in element text/attribute
// content. Ported from original_source's escape().
func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}

// dp formats a float with four decimal places, matching original_source's dp()
// numeric formatting convention used throughout every emitted attribute.
func dp(f float64) string {
	return fmt.Sprintf("%.4f", f)
}
