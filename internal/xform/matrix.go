/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package xform implements the 2D affine transforms used to convert Draw-unit
// coordinates to SVG pixels, including DrawMatrix fixed-point decoding and the
// rotation/scale/skew decomposition needed for transformed text and sprites.
package xform

import (
	"fmt"
	"math"

	"github.com/drawfile/draw2svg/common"
)

// Matrix is a 2D affine transform in homogenous coordinates, laid out as
//
//	a  b  0
//	c  d  0
//	tx ty 1
type Matrix [9]float64

// IdentityMatrix returns the identity transform.
func IdentityMatrix() Matrix {
	return NewMatrix(1, 0, 0, 1, 0, 0)
}

// TranslationMatrix returns a matrix that translates by `tx`, `ty`.
func TranslationMatrix(tx, ty float64) Matrix {
	return NewMatrix(1, 0, 0, 1, tx, ty)
}

// NewMatrix returns an affine transform matrix with components a, b, c, d, tx, ty.
func NewMatrix(a, b, c, d, tx, ty float64) Matrix {
	m := Matrix{
		a, b, 0,
		c, d, 0,
		tx, ty, 1,
	}
	m.clampRange()
	return m
}

// FromDrawFixed builds a Matrix from a DrawMatrix's 16.16 fixed-point a,b,c,d fields and
// its Draw-unit e,f translation, already converted to SVG units by the caller.
func FromDrawFixed(a, b, c, d int32, tx, ty float64) Matrix {
	const scale = 1.0 / 65536.0
	return NewMatrix(float64(a)*scale, float64(b)*scale, float64(c)*scale, float64(d)*scale, tx, ty)
}

// String returns a string describing `m`.
func (m Matrix) String() string {
	a, b, c, d, tx, ty := m[0], m[1], m[3], m[4], m[6], m[7]
	return fmt.Sprintf("[%7.4f,%7.4f,%7.4f,%7.4f:%7.4f,%7.4f]", a, b, c, d, tx, ty)
}

// Scale returns `m` with an extra scaling of `xScale`,`yScale`.
func (m Matrix) Scale(xScale, yScale float64) Matrix {
	return m.Mult(NewMatrix(xScale, 0, 0, yScale, 0, 0))
}

// Rotate returns `m` with an extra rotation of `theta` degrees.
func (m Matrix) Rotate(theta float64) Matrix {
	sin, cos := math.Sincos(theta / 180.0 * math.Pi)
	return m.Mult(NewMatrix(cos, -sin, sin, cos, 0, 0))
}

// Set sets `m` to affine transform a,b,c,d,tx,ty.
func (m *Matrix) Set(a, b, c, d, tx, ty float64) {
	m[0], m[1] = a, b
	m[3], m[4] = c, d
	m[6], m[7] = tx, ty
	m.clampRange()
}

// Concat sets `m` to `b` x `m`.
func (m *Matrix) Concat(b Matrix) {
	*m = Matrix{
		b[0]*m[0] + b[1]*m[3], b[0]*m[1] + b[1]*m[4], 0,
		b[3]*m[0] + b[4]*m[3], b[3]*m[1] + b[4]*m[4], 0,
		b[6]*m[0] + b[7]*m[3] + m[6], b[6]*m[1] + b[7]*m[4] + m[7], 1,
	}
	m.clampRange()
}

// Mult returns `b` x `m`.
func (m Matrix) Mult(b Matrix) Matrix {
	m.Concat(b)
	return m
}

// Translate returns `m` with an extra translation of `tx`,`ty`.
func (m Matrix) Translate(tx, ty float64) Matrix {
	return NewMatrix(m[0], m[1], m[3], m[4], m[6]+tx, m[7]+ty)
}

// Translation returns the translation part of `m`.
func (m Matrix) Translation() (float64, float64) {
	return m[6], m[7]
}

// Transform returns coordinates `x`,`y` transformed by `m`.
func (m Matrix) Transform(x, y float64) (float64, float64) {
	xp := x*m[0] + y*m[1] + m[6]
	yp := x*m[3] + y*m[4] + m[7]
	return xp, yp
}

// ScalingFactorX returns the X scaling of the affine transform.
func (m Matrix) ScalingFactorX() float64 {
	return math.Hypot(m[0], m[1])
}

// ScalingFactorY returns the Y scaling of the affine transform.
func (m Matrix) ScalingFactorY() float64 {
	return math.Hypot(m[3], m[4])
}

// Decomposed holds the translation/rotation/scale/x-skew decomposition of a Matrix.
type Decomposed struct {
	TX, TY   float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64 // radians
	XSkew    float64 // radians
}

// Decompose splits `m` into translation, rotation, scale and x-skew, following the
// QR-like decomposition: given (a,b,c,d), delta = ad-bc, r = hypot(a,b); if r != 0,
// scale = (r, delta/r), rotation = atan2(b,a), xSkew = atan2(c,d) + rotation.
//
// Because Draw's Y axis is inverted on the way to SVG, rotation and xSkew are
// sign-flipped relative to the raw matrix values.
func (m Matrix) Decompose() Decomposed {
	a, b, c, d := m[0], m[1], m[3], m[4]
	tx, ty := m[6], m[7]
	delta := a*d - b*c
	r := math.Hypot(a, b)

	var scaleX, scaleY, rotation, xSkew float64
	if r != 0 {
		scaleX = r
		scaleY = delta / r
		rotation = math.Atan2(b, a)
		xSkew = math.Atan2(c, d) + rotation
	} else {
		scaleX, scaleY = 0, 0
	}

	return Decomposed{
		TX: tx, TY: ty,
		ScaleX:   scaleX,
		ScaleY:   scaleY,
		Rotation: -rotation,
		XSkew:    -xSkew,
	}
}

// clampRange forces `m` to have reasonable values, guarding against degenerate
// transforms in corrupt Draw files.
func (m *Matrix) clampRange() {
	for i, x := range m {
		if x > maxAbsNumber {
			common.Log.Debug("CLAMP: %g -> %g", x, maxAbsNumber)
			m[i] = maxAbsNumber
		} else if x < -maxAbsNumber {
			common.Log.Debug("CLAMP: %g -> %g", x, -maxAbsNumber)
			m[i] = -maxAbsNumber
		}
	}
}

// maxAbsNumber bounds matrix element magnitudes to avoid floating point exceptions on
// corrupt input.
const maxAbsNumber = 1e9
