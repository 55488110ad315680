/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package binreader

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrimitives(t *testing.T) {
	data := []byte{
		0x44, 0x00, // u16 = 0x44
		0x01, 0x02, 0x03, 0x04, // u32 LE = 0x04030201
		0xFF, 0xFF, 0xFF, 0xFF, // i32 = -1
		'h', 'i', 0, 0, // CString "hi"
	}
	r := New(data)

	u16, err := r.U16()
	require.NoError(t, err)
	require.EqualValues(t, 0x44, u16)

	u32, err := r.U32()
	require.NoError(t, err)
	require.EqualValues(t, 0x04030201, u32)

	i32, err := r.I32()
	require.NoError(t, err)
	require.EqualValues(t, -1, i32)

	s, err := r.CString(4)
	require.NoError(t, err)
	require.Equal(t, "hi", s)
}

func TestAlign(t *testing.T) {
	r := New(make([]byte, 16))
	_, err := r.Bytes(3)
	require.NoError(t, err)
	r.Align()
	require.EqualValues(t, 4, r.Position())
	r.Align()
	require.EqualValues(t, 4, r.Position())
}

func TestTruncated(t *testing.T) {
	r := New([]byte{1, 2})
	_, err := r.U32()
	require.ErrorIs(t, err, ErrTruncated)
}

func TestSeekOutOfRange(t *testing.T) {
	r := New([]byte{1, 2, 3})
	require.Error(t, r.Seek(10))
	require.NoError(t, r.Seek(2))
}
