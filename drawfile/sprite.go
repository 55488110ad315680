/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package drawfile

import (
	"errors"
	"fmt"
	"image"

	"github.com/drawfile/draw2svg/internal/binreader"
	"github.com/drawfile/draw2svg/sprite"
)

// spriteCtrlBlockSize is the encoded size of the sprite control block: nextsprite,
// width, height, firstbit, lastbit, image, mask, mode (8 uint32 fields) plus a
// 12-byte name.
const spriteCtrlBlockSize = 44

// Sprite is a fully parsed Sprite (type 5) or TransformedSprite (type 13) object.
// Pixel decoding (palette lookup, mask application, direct-channel unpacking) has
// already happened by the time this is returned; only SVG emission remains.
type Sprite struct {
	Transformed bool
	Matrix      *DrawMatrix // non-nil only when Transformed
	Name        string
	Image       *image.NRGBA
	DPIx, DPIy  int
}

func readSprite(r *binreader.Reader, header ObjectHeader, transformed bool) (Sprite, error) {
	var s Sprite
	s.Transformed = transformed
	remaining := int(header.Length) - objectHeaderSize

	if transformed {
		m, err := readDrawMatrix(r)
		if err != nil {
			return s, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		s.Matrix = &m
		remaining -= drawMatrixSize
	}

	if _, err := r.U32(); err != nil { // nextsprite offset, unused: the body is one sprite
		return s, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	name, err := r.FixedString(12)
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	rawWidth, err := r.U32()
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	rawHeight, err := r.U32()
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	firstBit, err := r.U32()
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	lastBit, err := r.U32()
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	imageOff, err := r.U32()
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	maskOff, err := r.U32()
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	modeWord, err := r.U32()
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	remaining -= spriteCtrlBlockSize

	mode, err := sprite.DecodeModeWord(modeWord)
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrBadSprite, err)
	}

	rowStride := int(rawWidth+1) * 4
	height := int(rawHeight + 1)
	width := rowStride*8/mode.BPP - (31-int(lastBit))/mode.BPP - int(firstBit)/mode.BPP
	if width <= 0 || height <= 0 {
		return s, fmt.Errorf("%w: non-positive sprite dimensions %dx%d", ErrBadSprite, width, height)
	}

	data, err := r.Bytes(remaining)
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	var palette sprite.Palette
	paletteLen := int(minU32(imageOff, maskOff)) - spriteCtrlBlockSize
	if paletteLen > 0 && paletteLen%8 == 0 && paletteLen <= len(data) {
		palette = sprite.ParsePaletteEntries(data[:paletteLen])
	}

	oldFormat := modeWord < 256
	imageStart := int(imageOff) - spriteCtrlBlockSize
	imageEnd := imageStart + rowStride*height
	if imageStart < 0 || imageEnd > len(data) {
		return s, fmt.Errorf("%w: sprite image data out of bounds", ErrBadSprite)
	}

	var maskData []byte
	if maskOff != imageOff {
		maskBPP := mode.BPP
		switch {
		case oldFormat:
			maskBPP = mode.BPP
		case mode.WideMask:
			maskBPP = 8
		default:
			maskBPP = 1
		}
		maskStride := (width*maskBPP + 31) / 32 * 4
		maskStart := int(maskOff) - spriteCtrlBlockSize
		maskEnd := maskStart + maskStride*height
		if maskStart < 0 || maskEnd > len(data) {
			return s, fmt.Errorf("%w: sprite mask data out of bounds", ErrBadSprite)
		}
		maskData = data[maskStart:maskEnd]
	}

	cb := sprite.ControlBlock{
		Name:          name,
		WidthWords:    width,
		HeightRows:    height,
		FirstBit:      int(firstBit),
		LastBit:       int(lastBit),
		Mode:          mode,
		ImageData:     data[imageStart:imageEnd],
		MaskData:      maskData,
		Palette:       palette,
		OldFormatMask: oldFormat,
		Stride:        rowStride,
	}

	img, err := sprite.Decode(cb)
	if err != nil {
		if errors.Is(err, sprite.ErrBadSprite) {
			return s, fmt.Errorf("%w: %v", ErrBadSprite, err)
		}
		return s, err
	}

	s.Name = name
	s.Image = img
	s.DPIx, s.DPIy = mode.DPIx, mode.DPIy
	return s, nil
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
