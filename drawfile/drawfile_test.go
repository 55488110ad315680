/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package drawfile

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drawfile/draw2svg/internal/binreader"
)

func le32(buf []byte, v uint32) []byte { return append(buf, byteLE(v)...) }

func byteLE(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func bboxBytes(x0, y0, x1, y1 int32) []byte {
	var out []byte
	for _, v := range []int32{x0, y0, x1, y1} {
		out = le32(out, uint32(v))
	}
	return out
}

func objectHeaderBytes(typ ObjectType, length uint32, bbox []byte) []byte {
	var out []byte
	out = le32(out, uint32(typ))
	out = le32(out, length)
	out = append(out, bbox...)
	return out
}

func TestReadFileHeaderRejectsWrongMagic(t *testing.T) {
	data := make([]byte, 40)
	r := binreader.New(data)
	_, err := ReadFileHeader(r)
	require.ErrorIs(t, err, ErrWrongMagic)
}

func TestReadFileHeaderParsesBBox(t *testing.T) {
	var data []byte
	data = le32(data, drawMagic)
	data = le32(data, 0) // major
	data = le32(data, 1) // minor
	data = append(data, []byte("MyApp       ")...)
	data = append(data, bboxBytes(0, 0, 1000, 2000)...)

	r := binreader.New(data)
	h, err := ReadFileHeader(r)
	require.NoError(t, err)
	require.Equal(t, uint32(1), h.MinorVersion)
	require.Equal(t, "MyApp", h.Creator)
	require.Equal(t, int32(1000), h.BBox.X1)
	require.Equal(t, int32(2000), h.BBox.Y1)
}

func TestReadOptionsParsesPaperSizeAndLandscape(t *testing.T) {
	var data []byte
	data = le32(data, uint32(0x500))
	data = le32(data, uint32(0x10))
	data = append(data, make([]byte, optionsTrailerBytes)...)

	r := binreader.New(data)
	o, err := ReadOptions(r)
	require.NoError(t, err)
	require.Equal(t, int32(0x500), o.PaperSize)
	require.True(t, o.Landscape())
}

func TestFindOptionsLocatesTopLevelOptions(t *testing.T) {
	var optsBody []byte
	optsBody = le32(optsBody, uint32(0x400))
	optsBody = le32(optsBody, 0)
	optsBody = append(optsBody, make([]byte, optionsTrailerBytes)...)

	obj := objectHeaderBytes(TypeOptions, uint32(objectHeaderSize+len(optsBody)), bboxBytes(0, 0, 0, 0))
	obj = append(obj, optsBody...)

	r := binreader.New(obj)
	opts, found, err := FindOptions(r, r.Len(), false)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int32(0x400), opts.PaperSize)
}

func TestFindOptionsReportsNotFound(t *testing.T) {
	obj := objectHeaderBytes(TypePath, uint32(objectHeaderSize), bboxBytes(0, 0, 0, 0))
	r := binreader.New(obj)
	_, found, err := FindOptions(r, r.Len(), false)
	require.NoError(t, err)
	require.False(t, found)
}

func TestReadAllSkipsUnrecognisedObjectType(t *testing.T) {
	unknown := objectHeaderBytes(ObjectType(99), uint32(objectHeaderSize+8), bboxBytes(0, 0, 0, 0))
	unknown = append(unknown, make([]byte, 8)...) // opaque body, never parsed

	r := binreader.New(unknown)
	objs, err := ReadAll(r, r.Len(), false)
	require.NoError(t, err)
	require.Len(t, objs, 1)
	require.Nil(t, objs[0].Path)
	require.Nil(t, objs[0].Text)
}

func TestReadAllStopsOnZeroLengthObject(t *testing.T) {
	zero := objectHeaderBytes(TypePath, 0, bboxBytes(0, 0, 0, 0))
	r := binreader.New(zero)
	objs, err := ReadAll(r, r.Len(), false)
	require.Error(t, err)
	require.Empty(t, objs)
}
