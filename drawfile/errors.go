/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package drawfile implements the Draw binary file reader: the FileHeader and
// ObjectHeader formats and the recursive object dispatch described in spec.md
// section 4.3, grounded on original_source/draw_to_svg.py's read_objects family and
// on unidoc-unipdf's contentstream/draw "read header, dispatch, reseek" shape.
package drawfile

import "errors"

// Error sentinels, mirroring the taxonomy in spec.md section 7. Callers distinguish
// fatal-for-file conditions from per-object recoverable ones with errors.Is.
var (
	// ErrWrongMagic is returned when the file does not begin with "Draw".
	ErrWrongMagic = errors.New("drawfile: wrong magic number")
	// ErrTruncated is returned when the file ends before a declared length is satisfied.
	ErrTruncated = errors.New("drawfile: truncated file")
	// ErrBadSprite is returned by the sprite decoder for unsupported mode words; the
	// object dispatch converts this into a skipped object, not a fatal error.
	ErrBadSprite = errors.New("drawfile: bad sprite")
	// ErrBadEscape names the unparseable text-area escape condition. The text-area
	// escape scanner does not return it: it keeps an unmatched backslash as a
	// literal byte.
	ErrBadEscape = errors.New("drawfile: bad text-area escape")
)
