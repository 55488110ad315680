/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package drawfile

import (
	"fmt"

	"github.com/drawfile/draw2svg/internal/binreader"
)

// Tagged is a fully parsed Tagged object (type 7): an application-defined tag
// identifier (ignored, since this converter renders purely by object type) wrapping
// exactly one inner object, per spec.md section 4.3.
type Tagged struct {
	Tag   uint32
	Inner *Object
}

func readTagged(r *binreader.Reader, oneByteType bool) (Tagged, error) {
	var t Tagged
	tag, err := r.U32()
	if err != nil {
		return t, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	t.Tag = tag

	inner, err := readObject(r, oneByteType)
	if err != nil {
		return t, err
	}
	t.Inner = &inner
	return t, nil
}
