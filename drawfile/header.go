/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package drawfile

import (
	"fmt"
	"strings"

	"github.com/drawfile/draw2svg/geom"
	"github.com/drawfile/draw2svg/internal/binreader"
)

// drawMagic is the little-endian "Draw" magic number at offset 0 of every Draw file.
const drawMagic = 0x77617244

// FileHeader is the 40-byte Draw file header.
type FileHeader struct {
	MajorVersion uint32
	MinorVersion uint32
	Creator      string
	BBox         geom.Rect
}

// ReadFileHeader parses the fixed-size file header at the start of `r`.
func ReadFileHeader(r *binreader.Reader) (FileHeader, error) {
	var h FileHeader
	magic, err := r.U32()
	if err != nil {
		return h, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if magic != drawMagic {
		return h, fmt.Errorf("%w: got %#x", ErrWrongMagic, magic)
	}
	if h.MajorVersion, err = r.U32(); err != nil {
		return h, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if h.MinorVersion, err = r.U32(); err != nil {
		return h, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if h.Creator, err = r.FixedString(12); err != nil {
		return h, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	h.Creator = strings.TrimRight(h.Creator, " ")
	bbox, err := readRect(r)
	if err != nil {
		return h, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	h.BBox = bbox
	return h, nil
}

// ObjectType is the Draw object-type tag, spec.md section 3's "Recognised object
// types".
type ObjectType uint16

// Recognised object types.
const (
	TypeFontTable        ObjectType = 0
	TypeText             ObjectType = 1
	TypePath             ObjectType = 2
	TypeSprite           ObjectType = 5
	TypeGroup            ObjectType = 6
	TypeTagged           ObjectType = 7
	TypeTextArea         ObjectType = 9
	TypeTextColumn       ObjectType = 10
	TypeOptions          ObjectType = 11
	TypeTransformedText  ObjectType = 12
	TypeTransformedSprit ObjectType = 13
	TypeJPEG             ObjectType = 16
)

// ObjectHeader is the common header preceding every Draw object's body.
type ObjectHeader struct {
	Type   ObjectType
	Length uint32 // total bytes including this header
	BBox   geom.Rect
}

// objectHeaderSize is ObjectHeader's encoded size: a 4-byte type/length word each,
// plus a 16-byte bounding box (4 int32 fields).
const objectHeaderSize = 24

// ReadObjectHeader reads an object header. The type field always occupies a full
// 32-bit word in the file; when oneByteType is set (the --one-byte-types CLI flag)
// only its low 8 bits are the meaningful type instead of the low 16, matching
// original_source's ObjectHeader.read (always a 4-byte read, masked by 0xFF or
// 0xFFFF) rather than varying the number of bytes consumed.
func ReadObjectHeader(r *binreader.Reader, oneByteType bool) (ObjectHeader, error) {
	var h ObjectHeader
	t, err := r.U32()
	if err != nil {
		return h, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if oneByteType {
		h.Type = ObjectType(t & 0xFF)
	} else {
		h.Type = ObjectType(t & 0xFFFF)
	}
	length, err := r.U32()
	if err != nil {
		return h, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	h.Length = length
	bbox, err := readRect(r)
	if err != nil {
		return h, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	h.BBox = bbox
	return h, nil
}

func readRect(r *binreader.Reader) (geom.Rect, error) {
	var rect geom.Rect
	vals := make([]int32, 4)
	for i := range vals {
		v, err := r.I32()
		if err != nil {
			return rect, err
		}
		vals[i] = v
	}
	rect.X0, rect.Y0, rect.X1, rect.Y1 = vals[0], vals[1], vals[2], vals[3]
	return rect, nil
}
