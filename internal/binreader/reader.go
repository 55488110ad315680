/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package binreader provides a seekable little-endian primitive reader over an
// in-memory Draw file, modelled on unidoc-unipdf's internal/bitwise.StreamReader
// but operating at byte/record granularity since Draw objects are always byte
// (and 4-byte) aligned rather than bit-packed.
package binreader

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrTruncated is returned whenever a read would go past the end of the stream.
var ErrTruncated = errors.New("binreader: truncated stream")

// Reader is a random-access little-endian byte-stream reader.
type Reader struct {
	data []byte
	pos  int64
}

// New returns a Reader over `data`.
func New(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the total length of the underlying data.
func (r *Reader) Len() int64 {
	return int64(len(r.data))
}

// Position returns the current read offset.
func (r *Reader) Position() int64 {
	return r.pos
}

// Seek moves the read offset to an absolute byte position.
func (r *Reader) Seek(pos int64) error {
	if pos < 0 || pos > int64(len(r.data)) {
		return fmt.Errorf("binreader: seek %d out of range [0,%d]: %w", pos, len(r.data), ErrTruncated)
	}
	r.pos = pos
	return nil
}

// Skip advances the read offset by `n` bytes.
func (r *Reader) Skip(n int64) error {
	return r.Seek(r.pos + n)
}

func (r *Reader) require(n int64) error {
	if r.pos+n > int64(len(r.data)) {
		return fmt.Errorf("binreader: need %d bytes at %d, have %d: %w", n, r.pos, len(r.data)-int(r.pos), ErrTruncated)
	}
	return nil
}

// Bytes returns the next `n` raw bytes without copying.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.require(int64(n)); err != nil {
		return nil, err
	}
	b := r.data[r.pos : r.pos+int64(n)]
	r.pos += int64(n)
	return b, nil
}

// U8 reads an unsigned 8-bit integer.
func (r *Reader) U8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// U16 reads an unsigned little-endian 16-bit integer.
func (r *Reader) U16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

// U32 reads an unsigned little-endian 32-bit integer.
func (r *Reader) U32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// I32 reads a signed little-endian 32-bit integer (two's complement).
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// FixedString reads `n` bytes and returns them with trailing NUL bytes stripped.
func (r *Reader) FixedString(n int) (string, error) {
	b, err := r.Bytes(n)
	if err != nil {
		return "", err
	}
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return string(b[:end]), nil
}

// CString reads a NUL-terminated string of at most `maxLen` bytes (including the
// terminator). It returns an error if no NUL is found within that span.
func (r *Reader) CString(maxLen int) (string, error) {
	start := r.pos
	for i := 0; i < maxLen; i++ {
		b, err := r.U8()
		if err != nil {
			return "", err
		}
		if b == 0 {
			return string(r.data[start : r.pos-1]), nil
		}
	}
	return "", fmt.Errorf("binreader: no NUL terminator within %d bytes at %d", maxLen, start)
}

// Align advances the read offset to the next 4-byte boundary.
func (r *Reader) Align() {
	if rem := r.pos % 4; rem != 0 {
		r.pos += 4 - rem
	}
}
