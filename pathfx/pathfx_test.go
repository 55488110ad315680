/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pathfx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drawfile/draw2svg/internal/xform"
)

func TestDecodeStyle(t *testing.T) {
	// join=bevel(2), endcap=round(1), startcap=square(2), winding=evenodd(1), dash=1
	word := uint32(2) | uint32(1)<<2 | uint32(2)<<4 | uint32(1)<<6 | uint32(1)<<7
	s := DecodeStyle(word)
	require.Equal(t, JoinBevel, s.Join)
	require.Equal(t, CapRound, s.EndCap)
	require.Equal(t, CapSquare, s.StartCap)
	require.Equal(t, WindingEvenOdd, s.Winding)
	require.True(t, s.HasDash)
}

func TestArcLengthMonotonic(t *testing.T) {
	sub := Subpath{Points: []xform.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}}
	total := arcLength(sub.Points)
	require.InDelta(t, 20.0, total, 1e-9)

	var last float64
	for _, d := range []float64{0, 5, 10, 15, 20} {
		pos, _ := pointAtLength(sub.Points, d)
		require.GreaterOrEqual(t, pos.X+pos.Y, last-1e-9)
		last = pos.X + pos.Y
	}
}

func TestSynthesizeCapsSkipsDegenerate(t *testing.T) {
	sub := Subpath{Points: []xform.Point{{X: 0, Y: 0}}}
	caps := SynthesizeCaps([]Subpath{sub}, &DashSpec{Lengths: []uint32{10, 5}}, 1.0)
	require.Empty(t, caps)
}

func TestSynthesizeCapsCyclesDashPatternAcrossWholeLength(t *testing.T) {
	// A 100-unit line, dash [10,5], offset 2: the pattern repeats the whole way
	// along, yielding ceil((100-2)/15)*2 = 14 cap items, not just the first one.
	sub := Subpath{Points: []xform.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}}
	caps := SynthesizeCaps([]Subpath{sub}, &DashSpec{Offset: 2, Lengths: []uint32{10, 5}}, 1.0)
	require.Len(t, caps, 14)
	require.Equal(t, RoleDashEnd, caps[0].Role)
	require.InDelta(t, 2.0, caps[0].Pos.X, 1e-9)
	last := caps[len(caps)-1]
	require.Equal(t, RoleGapEnd, last.Role)
	require.InDelta(t, 100.0, last.Pos.X, 1e-9)
}

func TestSynthesizeCapsOddCountPadsWithFullLengthEntry(t *testing.T) {
	sub := Subpath{Points: []xform.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}}
	caps := SynthesizeCaps([]Subpath{sub}, &DashSpec{Lengths: []uint32{10, 5, 10}}, 1.0)
	require.Len(t, caps, 4)
	last := caps[len(caps)-1]
	require.Equal(t, RoleGapEnd, last.Role)
	require.InDelta(t, 25.0, last.Pos.X, 1e-9)
}

func TestSynthesizeCapsWithoutDashStillCapsBothEnds(t *testing.T) {
	sub := Subpath{Points: []xform.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}}
	caps := SynthesizeCaps([]Subpath{sub}, nil, 1.0)
	require.Len(t, caps, 2)
	require.Equal(t, RoleDashEnd, caps[0].Role)
	require.InDelta(t, 0.0, caps[0].Pos.X, 1e-9)
	require.Equal(t, RoleGapEnd, caps[1].Role)
	require.InDelta(t, 100.0, caps[1].Pos.X, 1e-9)
}

func TestBuildCapShapeButtIsNoop(t *testing.T) {
	_, ok := BuildCapShape(Cap{}, CapButt, 4, 4, 4)
	require.False(t, ok)
}

func TestBuildCapShapeRound(t *testing.T) {
	shape, ok := BuildCapShape(Cap{Pos: xform.Point{X: 1, Y: 2}}, CapRound, 4, 4, 4)
	require.True(t, ok)
	require.Equal(t, ShapeCircle, shape.Kind)
	require.InDelta(t, 2.0, shape.R, 1e-9)
}
