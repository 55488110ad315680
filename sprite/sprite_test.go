/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sprite

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPalette256HasExactly256Entries(t *testing.T) {
	pal16 := make(Palette, 16)
	for i := range pal16 {
		pal16[i] = color.RGBA{R: uint8(i * 16), G: 0, B: 0, A: 0xFF}
	}
	out := ExpandPalette256(pal16)
	assert.Len(t, out, 256)

	pal64 := make(Palette, 64)
	out64 := ExpandPalette256(pal64)
	assert.Len(t, out64, 256)

	pal256 := make(Palette, 256)
	assert.Len(t, ExpandPalette256(pal256), 256)
}

func TestDecodeModeWordLegacy(t *testing.T) {
	info, err := DecodeModeWord(28)
	require.NoError(t, err)
	assert.Equal(t, 32, info.BPP)
	assert.Equal(t, 1, info.XF)
	assert.Equal(t, 1, info.YF)

	_, err = DecodeModeWord(255)
	assert.Error(t, err)
}

func TestDecodeModeWordRiscOS5(t *testing.T) {
	mode := uint32(0x7<<28) | uint32(9)<<20 | uint32(1)<<4
	info, err := DecodeModeWord(mode)
	require.NoError(t, err)
	assert.Equal(t, 24, info.BPP)
	assert.Equal(t, "BGR:8:8:8", info.ColourFormat)
	assert.Equal(t, 90, info.DPIx)
}

func TestDecodeModeWordRiscOS35(t *testing.T) {
	mode := uint32(9)<<27 | uint32(90)<<1 | uint32(90)<<14
	info, err := DecodeModeWord(mode)
	require.NoError(t, err)
	assert.Equal(t, 24, info.BPP)
	assert.Equal(t, 90, info.DPIx)
	assert.Equal(t, 90, info.DPIy)
}

func TestDecodeIndexedPixelCount(t *testing.T) {
	width, height := 4, 2
	stride := rowStrideBytes(width, 8)
	data := make([]byte, stride*height)
	for i := range data {
		data[i] = byte(i % 256)
	}
	cb := ControlBlock{
		WidthWords: width,
		HeightRows: height,
		LastBit:    7,
		Mode:       ModeInfo{BPP: 8, XF: 1, YF: 1},
		ImageData:  data,
	}
	img, err := Decode(cb)
	require.NoError(t, err)
	assert.Equal(t, width, img.Bounds().Dx())
	assert.Equal(t, height, img.Bounds().Dy())
	assert.Len(t, img.Pix, width*height*4)
}

func TestDecodeDirectCMYK(t *testing.T) {
	channels, err := ParseChannels("CMYK:8:8:8:8")
	require.NoError(t, err)
	require.Equal(t, 32, TotalBits(channels))

	win := newBitWindow([]byte{0, 0, 0, 0})
	c := decodePixelChannels(win, channels)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, c)
}

func TestDecodePixelChannelsAlphaFromT(t *testing.T) {
	channels, err := ParseChannels("TBGR:8:8:8:8")
	require.NoError(t, err)
	win := newBitWindow([]byte{0x00, 0x10, 0x20, 0x30})
	c := decodePixelChannels(win, channels)
	assert.Equal(t, uint8(255), c.A)
}

func TestParseChannelsMismatchedLengths(t *testing.T) {
	_, err := ParseChannels("RGB:8:8")
	assert.Error(t, err)
}
