/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package drawfile

import (
	"fmt"

	"github.com/drawfile/draw2svg/internal/binreader"
)

// Group is a fully parsed Group object (type 6): a 12-byte name and a nested object
// list, bounded by the group's own declared length.
type Group struct {
	Name     string
	Children []Object
}

func readGroup(r *binreader.Reader, header ObjectHeader, oneByteType bool) (Group, error) {
	var g Group
	name, err := r.FixedString(12)
	if err != nil {
		return g, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	g.Name = name

	bodyLength := int64(header.Length) - objectHeaderSize - 12
	if bodyLength < 0 {
		return g, nil
	}
	end := r.Position() + bodyLength
	children, err := readObjects(r, end, oneByteType)
	if err != nil {
		return g, err
	}
	g.Children = children
	return g, nil
}
