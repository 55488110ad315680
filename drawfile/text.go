/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package drawfile

import "github.com/drawfile/draw2svg/internal/binreader"

// TextHeader is the 28-byte fixed header preceding a Text or TransformedText
// object's string bytes.
type TextHeader struct {
	Colour         Colour
	BgColourHint   Colour
	Style          uint32 // font-table slot, per spec.md section 4.3
	XSizePt640     uint32 // font width, in 1/640 pt
	YSizePt640     uint32 // font height, in 1/640 pt
	Baseline       Coords
}

// Text is a fully parsed Text (type 1) or TransformedText (type 12) object. Matrix
// and FontFlags are only populated for TransformedText; Raw is the still-encoded
// string bytes (decoding needs the object-level FontTable and the --utf8 flag,
// both unavailable at this layer, per spec.md section 4.2's separation from 4.3).
type Text struct {
	Header    TextHeader
	Raw       []byte
	Matrix    *DrawMatrix // non-nil only for TransformedText
	FontFlags uint32      // non-zero only for TransformedText; bit 1 reverse, bit 2 underline
}

func readTextHeader(r *binreader.Reader) (TextHeader, error) {
	var h TextHeader
	colour, err := readColour(r)
	if err != nil {
		return h, err
	}
	bg, err := readColour(r)
	if err != nil {
		return h, err
	}
	style, err := r.U32()
	if err != nil {
		return h, err
	}
	xsize, err := r.U32()
	if err != nil {
		return h, err
	}
	ysize, err := r.U32()
	if err != nil {
		return h, err
	}
	baseline, err := readCoords(r)
	if err != nil {
		return h, err
	}
	h.Colour, h.BgColourHint = colour, bg
	h.Style, h.XSizePt640, h.YSizePt640 = style, xsize, ysize
	h.Baseline = baseline
	return h, nil
}

// textHeaderSize is TextHeader's encoded size: 2 Colours (4 bytes each) + style +
// xsize + ysize (4 bytes each) + Baseline Coords (8 bytes) = 8+12+8 = 28.
const textHeaderSize = 28

// drawMatrixSize is DrawMatrix's encoded size: 6 int32 fields.
const drawMatrixSize = 24

// ReadText parses a plain Text object body (header already consumed by the
// caller, matching original_source's dispatch which reads TextHeader before
// branching on object type). `textLength` is the number of raw string bytes to
// read, computed by the caller from the object header's declared length.
func ReadText(r *binreader.Reader, header TextHeader, textLength int) (Text, error) {
	raw, err := r.Bytes(textLength)
	if err != nil {
		return Text{}, err
	}
	return Text{Header: header, Raw: append([]byte(nil), raw...)}, nil
}

// ReadTransformedText parses a TransformedText object body (type 12): a leading
// DrawMatrix, a 4-byte font-flags word, then a TextHeader and the string bytes.
func ReadTransformedText(r *binreader.Reader, objLength, objHeaderSize int) (Text, error) {
	matrix, err := readDrawMatrix(r)
	if err != nil {
		return Text{}, err
	}
	flags, err := r.U32()
	if err != nil {
		return Text{}, err
	}
	header, err := readTextHeader(r)
	if err != nil {
		return Text{}, err
	}
	textLength := objLength - objHeaderSize - textHeaderSize - drawMatrixSize - 4
	raw, err := r.Bytes(textLength)
	if err != nil {
		return Text{}, err
	}
	return Text{
		Header:    header,
		Raw:       append([]byte(nil), raw...),
		Matrix:    &matrix,
		FontFlags: flags,
	}, nil
}
