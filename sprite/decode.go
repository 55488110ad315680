/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sprite

import (
	"fmt"
	"image"
	"image/color"
)

// ControlBlock is a parsed sprite control block (spec.md section 3), already stripped
// of the sprite-area bookkeeping fields (next-offset) that the object parser handles.
type ControlBlock struct {
	Name                   string
	WidthWords, HeightRows int // usable width in pixels (edge waste removed) and height in rows
	FirstBit, LastBit      int
	Mode                   ModeInfo
	ImageData              []byte
	MaskData               []byte // nil if no mask
	Palette                Palette
	// OldFormatMask is set for pre-RISC-OS-3.5 sprites, where the mask (if present)
	// shares the image's own bpp rather than being 1-bit or wide-8-bit, per
	// spec.md section 4.5.
	OldFormatMask bool
	// Stride overrides the row stride in bytes; zero means derive it from WidthWords
	// and Mode.BPP via rowStrideBytes. A sprite whose FirstBit/LastBit waste more than
	// rounds trip through WidthWords (the usable pixel count, already trimmed of edge
	// waste) needs the true on-disk stride supplied explicitly, since recomputing it
	// from the trimmed width can undershoot the original row size.
	Stride int
}

// Decode decodes a sprite control block into an RGBA image, per spec.md section 4.5.
func Decode(cb ControlBlock) (*image.NRGBA, error) {
	width := cb.WidthWords
	height := cb.HeightRows

	var pixels [][]color.NRGBA
	var err error
	if cb.Mode.BPP <= 8 {
		pixels, err = decodeIndexed(cb, width, height)
	} else {
		pixels, err = decodeDirect(cb, width, height)
	}
	if err != nil {
		return nil, err
	}

	xf, yf := cb.Mode.XF, cb.Mode.YF
	if xf < 1 {
		xf = 1
	}
	if yf < 1 {
		yf = 1
	}

	outW, outH := width*xf, height*yf
	img := image.NewNRGBA(image.Rect(0, 0, outW, outH))
	for y := 0; y < height; y++ {
		row := pixels[y]
		for x := 0; x < width; x++ {
			c := row[x]
			for ry := 0; ry < yf; ry++ {
				for rx := 0; rx < xf; rx++ {
					img.SetNRGBA(x*xf+rx, y*yf+ry, c)
				}
			}
		}
	}
	return img, nil
}

func decodeIndexed(cb ControlBlock, width, height int) ([][]color.NRGBA, error) {
	pal := cb.Palette
	if pal == nil {
		switch cb.Mode.BPP {
		case 8:
			pal = DefaultPalette8BPP()
		case 4:
			pal = DefaultPalette4BPP()
		case 2:
			pal = DefaultPalette2BPP()
		case 1:
			pal = DefaultPalette1BPP()
		default:
			return nil, fmt.Errorf("%w: no palette for %dbpp sprite", ErrBadSprite, cb.Mode.BPP)
		}
	}
	pal = ExpandPalette256(pal)

	stride := cb.Stride
	if stride == 0 {
		stride = rowStrideBytes(width, cb.Mode.BPP)
	}
	maskStride := 0
	maskBPP := 1
	if cb.OldFormatMask {
		maskBPP = cb.Mode.BPP
	} else if cb.Mode.WideMask {
		maskBPP = 8
	}
	if cb.MaskData != nil {
		maskStride = rowStrideBytes(width, maskBPP)
	}

	out := make([][]color.NRGBA, height)
	for y := 0; y < height; y++ {
		row := make([]color.NRGBA, width)
		rowData := cb.ImageData[y*stride:]
		var maskRow []byte
		if cb.MaskData != nil {
			maskRow = cb.MaskData[y*maskStride:]
		}

		byteOff := cb.FirstBit / 8
		shift := cb.FirstBit % 8
		for x := 0; x < width; x++ {
			idx := extractBits(rowData[byteOff:], shift, cb.Mode.BPP)
			shift += cb.Mode.BPP
			byteOff += shift / 8
			shift %= 8

			var c color.RGBA
			if int(idx) < len(pal) {
				c = pal[idx]
			}
			alpha := uint8(255)
			if maskRow != nil {
				maskVal := extractBits(maskRow[x*maskBPP/8:], (x*maskBPP)%8, maskBPP)
				switch maskBPP {
				case 8:
					alpha = uint8(maskVal)
				default:
					if maskVal == 0 {
						alpha = 0
					}
				}
			}
			if alpha == 0 {
				row[x] = color.NRGBA{}
			} else {
				row[x] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
			}
		}
		out[y] = row
	}
	return out, nil
}

func decodeDirect(cb ControlBlock, width, height int) ([][]color.NRGBA, error) {
	channels, err := ParseChannels(cb.Mode.ColourFormat)
	if err != nil {
		return nil, err
	}
	bitsPerPixel := TotalBits(channels)
	stride := cb.Stride
	if stride == 0 {
		stride = (width*bitsPerPixel + 31) / 32 * 4
	}

	out := make([][]color.NRGBA, height)
	for y := 0; y < height; y++ {
		row := make([]color.NRGBA, width)
		rowData := cb.ImageData[y*stride:]
		win := newBitWindow(rowData)
		for x := 0; x < width; x++ {
			row[x] = decodePixelChannels(win, channels)
		}
		out[y] = row
	}
	return out, nil
}

// decodePixelChannels reads one pixel's worth of channels from `win` and composes
// an NRGBA value, applying T/X/A alpha semantics and the C/M/Y/K and Y/U/V colour
// conversions per spec.md section 4.5.
func decodePixelChannels(win *bitWindow, channels []Channel) color.NRGBA {
	var r, g, b uint8
	alpha := uint8(255)
	haveAlpha, haveCMYK, haveYUV := false, false, false
	var c, m, yellow, k uint8
	var luma, u, v uint8

	for _, ch := range channels {
		raw := win.read(ch.Bits)
		val := normalize(raw, ch.Bits)
		switch ch.Letter {
		case 'R':
			r = val
		case 'G':
			g = val
		case 'B':
			b = val
		case 'T':
			alpha = 255 - val
			haveAlpha = true
		case 'A':
			alpha = val
			haveAlpha = true
		case 'X':
			alpha = 255
			haveAlpha = true
		case 'C':
			c, haveCMYK = val, true
		case 'M':
			m, haveCMYK = val, true
		case 'Y':
			// Ambiguous between CMYK yellow and YUV luma; CMYK formats always
			// also carry C and K, so the sibling channels disambiguate once
			// the whole pixel has been read.
			yellow, luma = val, val
		case 'K':
			k, haveCMYK = val, true
		case 'U':
			u, haveYUV = val, true
		case 'V':
			v, haveYUV = val, true
		}
	}

	switch {
	case haveCMYK:
		rr, gg, bb := color.CMYKToRGB(c, m, yellow, k)
		return color.NRGBA{R: rr, G: gg, B: bb, A: alpha}
	case haveYUV:
		rr, gg, bb := ycbcrToRGB(luma, u, v)
		return color.NRGBA{R: rr, G: gg, B: bb, A: alpha}
	default:
		if !haveAlpha {
			alpha = 255
		}
		return color.NRGBA{R: r, G: g, B: b, A: alpha}
	}
}

// ycbcrToRGB applies the standard BT.601 full-range YCbCr->RGB conversion.
func ycbcrToRGB(y, cb, cr uint8) (uint8, uint8, uint8) {
	yy := float64(y)
	c := float64(cb) - 128
	d := float64(cr) - 128
	r := yy + 1.402*d
	g := yy - 0.344136*c - 0.714136*d
	b := yy + 1.772*c
	return clampByte(r), clampByte(g), clampByte(b)
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func extractBits(data []byte, bitShift, n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		byteIdx := (bitShift + i) / 8
		bitIdx := (bitShift + i) % 8
		var bit uint32
		if byteIdx < len(data) {
			bit = uint32(data[byteIdx]>>bitIdx) & 1
		}
		v |= bit << uint(i)
	}
	return v
}

// rowStrideBytes returns the 4-byte-aligned row stride for a given width and bpp,
// per spec.md's invariant that sprite and mask strides are always multiples of 4.
func rowStrideBytes(width, bpp int) int {
	return (width*bpp + 31) / 32 * 4
}
