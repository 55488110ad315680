/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package convert

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drawfile/draw2svg/fontconfig"
	"github.com/drawfile/draw2svg/geom"
	"github.com/drawfile/draw2svg/svgwriter"
)

func TestPaperSizeMMPortrait(t *testing.T) {
	w, h, err := PaperSizeMM(0x500, false)
	require.NoError(t, err)
	require.Equal(t, 210.0, w)
	require.Equal(t, 297.0, h)
}

func TestPaperSizeMMLandscapeSwapsDimensions(t *testing.T) {
	w, h, err := PaperSizeMM(0x500, true)
	require.NoError(t, err)
	require.Equal(t, 297.0, w)
	require.Equal(t, 210.0, h)
}

func TestPaperSizeMMUnknown(t *testing.T) {
	_, _, err := PaperSizeMM(0x999, false)
	require.ErrorIs(t, err, ErrUnknownPaperSize)
}

func TestDefaultPageSizeFitsSmallestPaper(t *testing.T) {
	// A small file fits A4 landscape, the first candidate tried.
	size, landscape := DefaultPageSize(100, 100)
	require.Equal(t, int32(0x500), size)
	require.True(t, landscape)
}

func TestDefaultPageSizeFallsBackToA0(t *testing.T) {
	// Nothing in the corpus is bigger than 2A0, so an oversized file falls back
	// to the fixed A0 portrait default rather than 2A0.
	size, landscape := DefaultPageSize(1e9, 1e9)
	require.Equal(t, int32(0x100), size)
	require.False(t, landscape)
}

// emptyDrawFile builds the minimal 40-byte header-only Draw file (magic, version,
// 12-byte creator, zero bounding box) with no trailing objects.
func emptyDrawFile() []byte {
	buf := make([]byte, 40)
	binary.LittleEndian.PutUint32(buf[0:4], 0x77617244) // "Draw"
	binary.LittleEndian.PutUint32(buf[4:8], 0)           // major version
	binary.LittleEndian.PutUint32(buf[8:12], 0)          // minor version
	// bytes 12:24 creator, 24:40 zero bbox: already zeroed.
	return buf
}

func TestFileEmptyDocumentProducesViewBoxAndNoChildren(t *testing.T) {
	out, err := File(emptyDrawFile(), Options{
		Subs:   fontconfig.DefaultTable(),
		Config: svgwriter.Config{UseBBox: true},
	})
	require.NoError(t, err)
	svg := string(out)
	require.Contains(t, svg, "<svg")
	require.Contains(t, svg, `viewBox="0.0000 0.0000`)
	require.Contains(t, svg, "</svg>")
}

func TestFileRejectsBadMagic(t *testing.T) {
	bad := emptyDrawFile()
	bad[0] = 0

	_, err := File(bad, Options{Subs: fontconfig.DefaultTable()})
	require.Error(t, err)
}

func TestFitBorderViewBoxFixedMargin(t *testing.T) {
	conv := geom.NewCoordinateConversion(1000, 1000, 100, 100)
	bbox := geom.Rect{X0: 0, Y0: 0, X1: 500, Y1: 500}

	x, y, w, h, err := fitBorderViewBox(bbox, conv, "10")
	require.NoError(t, err)
	require.Equal(t, -10.0, x)
	require.Equal(t, 40.0, y)
	require.Equal(t, 70.0, w)
	require.Equal(t, 70.0, h)
}

func TestFitBorderViewBoxPercentMargin(t *testing.T) {
	conv := geom.NewCoordinateConversion(1000, 1000, 100, 100)
	bbox := geom.Rect{X0: 0, Y0: 0, X1: 1000, Y1: 1000}

	x, y, w, h, err := fitBorderViewBox(bbox, conv, "10%")
	require.NoError(t, err)
	require.Equal(t, -10.0, x)
	require.Equal(t, -10.0, y)
	require.Equal(t, 120.0, w)
	require.Equal(t, 120.0, h)
}

func TestFitBorderViewBoxRejectsBadValue(t *testing.T) {
	conv := geom.NewCoordinateConversion(1000, 1000, 100, 100)
	_, _, _, _, err := fitBorderViewBox(geom.Rect{}, conv, "")
	require.Error(t, err)
}
