/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package drawfile

import (
	"fmt"

	"github.com/drawfile/draw2svg/internal/binreader"
)

// jpegHeaderSize is JPEG's fixed header size: width, height, x_dpi, y_dpi (4 uint32
// fields), a DrawMatrix (24 bytes), and a data-length uint32.
const jpegHeaderSize = 4*4 + drawMatrixSize + 4

// JPEG is a fully parsed JPEG object (type 16): a placement matrix, a declared
// Draw-unit size and DPI, and the raw embedded JPEG byte stream.
type JPEG struct {
	Width, Height int32 // Draw units
	DPIx, DPIy    uint32
	Matrix        DrawMatrix
	Data          []byte
}

func readJPEG(r *binreader.Reader) (JPEG, error) {
	var j JPEG
	width, err := r.I32()
	if err != nil {
		return j, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	height, err := r.I32()
	if err != nil {
		return j, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	dpiX, err := r.U32()
	if err != nil {
		return j, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	dpiY, err := r.U32()
	if err != nil {
		return j, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	matrix, err := readDrawMatrix(r)
	if err != nil {
		return j, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	length, err := r.U32()
	if err != nil {
		return j, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	data, err := r.Bytes(int(length))
	if err != nil {
		return j, fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	j.Width, j.Height = width, height
	j.DPIx, j.DPIy = dpiX, dpiY
	j.Matrix = matrix
	j.Data = append([]byte(nil), data...)
	return j, nil
}
