/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textarea

import (
	"github.com/drawfile/draw2svg/fontconfig"
	"github.com/drawfile/draw2svg/internal/textencoding"
)

// Run is a maximal substring of a text area that shares all formatting state: a
// value-type snapshot plus a raw byte buffer, per spec.md section 9's note that the
// source's dynamically-mutated run objects become explicit struct fields here.
type Run struct {
	State State
	Fonts map[int]fontconfig.FontDesc // font-slot table as of this run's close
	Text  []byte                      // sanitized Draw bytes, not yet decoded
}

// Font returns the FontDesc for this run's currently selected font slot, falling
// back to slot 0 (always defined) if the selected slot was never declared.
func (r Run) Font() fontconfig.FontDesc {
	if fd, ok := r.Fonts[r.State.FontSlot]; ok {
		return fd
	}
	return r.Fonts[0]
}

// Decode returns the run's text as a Unicode string. When utf8Mode is set (the
// `--utf8` CLI flag), Text is treated as UTF-8 directly, bypassing the
// character-encoding tables entirely, per spec.md section 6.
func (r Run) Decode(utf8Mode bool) string {
	if utf8Mode {
		return string(r.Text)
	}
	fd := r.Font()
	table := textencoding.Lookup(fd.OriginalName, fd.Alphabet)
	return textencoding.Decode(r.Text, table)
}
