/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package drawfile

import "github.com/drawfile/draw2svg/internal/binreader"

// Colour is a Draw ColourType word: a reserved byte (0xff signals "none", per
// spec.md section 3) followed by 8-bit R, G, B.
type Colour struct {
	Reserved   uint8
	R, G, B    uint8
}

// None reports whether this colour is the "not present" sentinel (fill/outline
// colours use a reserved byte of 0xff to mean "no fill"/"no outline").
func (c Colour) None() bool { return c.Reserved == 0xff }

func readColour(r *binreader.Reader) (Colour, error) {
	var c Colour
	b, err := r.Bytes(4)
	if err != nil {
		return c, err
	}
	c.Reserved, c.R, c.G, c.B = b[0], b[1], b[2], b[3]
	return c, nil
}

// DrawMatrix is the raw 6-element affine transform read from a TransformedText,
// TransformedSprite or JPEG object: A-D are 16.16 fixed point, E-F are a
// translation in Draw units. Converting to an SVG-space xform.Matrix is left to
// the coordinate-conversion layer, per spec.md section 4.6.
type DrawMatrix struct {
	A, B, C, D, E, F int32
}

func readDrawMatrix(r *binreader.Reader) (DrawMatrix, error) {
	var m DrawMatrix
	vals := make([]*int32, 6)
	vals[0], vals[1], vals[2], vals[3], vals[4], vals[5] = &m.A, &m.B, &m.C, &m.D, &m.E, &m.F
	for _, v := range vals {
		x, err := r.I32()
		if err != nil {
			return m, err
		}
		*v = x
	}
	return m, nil
}

// Coords is a raw (x, y) Draw-unit point, as used by a text object's baseline.
type Coords struct {
	X, Y int32
}

func readCoords(r *binreader.Reader) (Coords, error) {
	x, err := r.I32()
	if err != nil {
		return Coords{}, err
	}
	y, err := r.I32()
	if err != nil {
		return Coords{}, err
	}
	return Coords{X: x, Y: y}, nil
}
