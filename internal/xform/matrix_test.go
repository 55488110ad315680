/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drawfile/draw2svg/common"
)

func init() {
	common.SetLogger(common.NewConsoleLogger(common.LogLevelDebug))
}

func TestIdentityTransform(t *testing.T) {
	m := IdentityMatrix()
	x, y := m.Transform(3, 4)
	require.Equal(t, 3.0, x)
	require.Equal(t, 4.0, y)
}

func TestDecomposeRotation(t *testing.T) {
	tests := []struct {
		theta float64 // degrees, pre-flip
	}{
		{0}, {30}, {45}, {90}, {180}, {270}, {359},
	}
	const tol = 1e-9
	for _, test := range tests {
		radians := test.theta / 180.0 * math.Pi
		a, b := math.Cos(radians), math.Sin(radians)
		c, d := -b, a
		m := NewMatrix(a, b, c, d, 0, 0)
		got := m.Decompose()
		// Draw->SVG Y-flip negates the raw rotation.
		want := -radians
		diff := math.Mod(got.Rotation-want+math.Pi, 2*math.Pi) - math.Pi
		if math.Abs(diff) > tol {
			t.Fatalf("Decompose rotation mismatch for theta=%g: got=%g want=%g", test.theta, got.Rotation, want)
		}
		require.InDelta(t, 1.0, got.ScaleX, tol)
		require.InDelta(t, 1.0, got.ScaleY, tol)
	}
}

func TestDecomposeScale(t *testing.T) {
	m := NewMatrix(2, 0, 0, 3, 5, 7)
	d := m.Decompose()
	require.InDelta(t, 2.0, d.ScaleX, 1e-9)
	require.InDelta(t, 3.0, d.ScaleY, 1e-9)
	require.Equal(t, 5.0, d.TX)
	require.Equal(t, 7.0, d.TY)
}

func TestFromDrawFixed(t *testing.T) {
	// 65536 == 1.0 in 16.16 fixed point.
	m := FromDrawFixed(65536, 0, 0, 65536, 10, 20)
	require.Equal(t, IdentityMatrix().Translate(10, 20), m)
}

func TestConcatTranslate(t *testing.T) {
	m := TranslationMatrix(1, 2)
	m2 := m.Translate(3, 4)
	x, y := m2.Transform(0, 0)
	require.Equal(t, 4.0, x)
	require.Equal(t, 6.0, y)
}
