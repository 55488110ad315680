/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package drawfile

import (
	"fmt"

	"github.com/drawfile/draw2svg/geom"
	"github.com/drawfile/draw2svg/internal/binreader"
)

// TextArea is a fully parsed TextArea object (type 9): a list of column bounding
// boxes (Draw units) followed by a shared foreground/background-hint colour pair
// and the raw (still Draw-font-encoded) text body, per spec.md section 4.3.
type TextArea struct {
	Columns    []geom.Rect
	Foreground Colour
	Background Colour
	Text       []byte
}

// readTextArea parses a TextArea object body: zero or more text-column headers
// (each a full ObjectHeader, skipped if its width is non-positive) terminated by a
// zero type word and three reserved words, then a foreground/background colour
// pair and a NUL-terminated text body.
func readTextArea(r *binreader.Reader, _ ObjectHeader, oneByteType bool) (TextArea, error) {
	var ta TextArea

	for {
		pos := r.Position()
		typeWord, err := r.U32()
		if err != nil {
			return ta, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		if typeWord == 0 {
			if err := r.Skip(12); err != nil {
				return ta, fmt.Errorf("%w: %v", ErrTruncated, err)
			}
			break
		}
		if err := r.Seek(pos); err != nil {
			return ta, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		colHeader, err := ReadObjectHeader(r, oneByteType)
		if err != nil {
			return ta, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		if colHeader.BBox.Width() > 0 {
			ta.Columns = append(ta.Columns, colHeader.BBox)
		}
	}

	fg, err := readColour(r)
	if err != nil {
		return ta, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	bg, err := readColour(r)
	if err != nil {
		return ta, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	ta.Foreground, ta.Background = fg, bg

	text, err := r.CString(int(r.Len() - r.Position()))
	if err != nil {
		return ta, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	ta.Text = []byte(text)
	return ta, nil
}
