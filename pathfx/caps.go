/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pathfx

import (
	"math"

	"github.com/drawfile/draw2svg/internal/xform"
)

// capEpsilon is the minimum sub-path arc length (in SVG pixels) below which no caps
// are synthesised, guarding against NaNs on degenerate (near-zero-length) paths.
const capEpsilon = 1e-4

// CapRole distinguishes the two synthesised cap roles along a dash sequence.
type CapRole int

const (
	// RoleGapEnd marks the position where a dash ends and a gap begins (the end of
	// an even dash-list entry); the end-cap style is applied here.
	RoleGapEnd CapRole = iota
	// RoleDashEnd marks the position where a gap ends and a dash begins (the end
	// of an odd dash-list entry); the start-cap style is applied here.
	RoleDashEnd
)

// Cap is one synthesised cap: a position and direction along a sub-path, plus which
// style (from the path's Style) should render there.
type Cap struct {
	Pos          xform.Point
	Direction    float64 // radians
	Role         CapRole
	SubpathIndex int
}

// arcLength returns the total length of the polyline `pts`.
func arcLength(pts []xform.Point) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].Distance(pts[i])
	}
	return total
}

// pointAtLength walks `pts` to the point at arc-length `dist` along the polyline,
// along with the direction (atan2) of the segment it falls within. Zero-length
// segments yield direction 0, per spec.md 4.4.
func pointAtLength(pts []xform.Point, dist float64) (xform.Point, float64) {
	if len(pts) == 0 {
		return xform.Point{}, 0
	}
	if dist <= 0 {
		dir := 0.0
		if len(pts) > 1 {
			dir = segmentDirection(pts[0], pts[1])
		}
		return pts[0], dir
	}
	acc := 0.0
	for i := 1; i < len(pts); i++ {
		segLen := pts[i-1].Distance(pts[i])
		dir := segmentDirection(pts[i-1], pts[i])
		if acc+segLen >= dist || i == len(pts)-1 {
			remaining := dist - acc
			if segLen <= 0 {
				return pts[i-1], 0
			}
			t := remaining / segLen
			if t > 1 {
				t = 1
			}
			return pts[i-1].Interpolate(pts[i], t), dir
		}
		acc += segLen
	}
	return pts[len(pts)-1], 0
}

func segmentDirection(a, b xform.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	return math.Atan2(dy, dx)
}

// capCycleEntry is one element of the repeating start/end-cap pattern a sub-path's
// dash boundaries cycle through: a length along the path, and whether the boundary
// at the end of it selects the start-cap style (false selects the end-cap style).
type capCycleEntry struct {
	startCap bool
	length   float64
}

// buildCapCycle returns the repeating pattern SynthesizeCaps cycles along a
// sub-path's arc length, plus the initial offset into it, ported from
// original_source's gather_simple_path_caps: a dashed path cycles its own dash
// lengths; an undashed path (dash is nil, standing in for caps == None) cycles a
// single full-length entry, i.e. "the whole path is one dash". Either way, an odd
// entry count is padded with one more full-length start-cap entry so the cycle
// always has the same number of start caps as end caps.
func buildCapCycle(dash *DashSpec, lengthScale, total float64) (entries []capCycleEntry, offset float64) {
	if dash == nil || len(dash.Lengths) == 0 {
		entries = []capCycleEntry{{startCap: false, length: total}}
	} else {
		entries = make([]capCycleEntry, len(dash.Lengths))
		for i, l := range dash.Lengths {
			entries[i] = capCycleEntry{startCap: i%2 == 1, length: float64(l) * lengthScale}
		}
		offset = float64(dash.Offset) * lengthScale
	}
	if len(entries)%2 != 0 {
		entries = append(entries, capCycleEntry{startCap: true, length: total})
	}
	return entries, offset
}

// pointAtLengthBounded is like pointAtLength but reports found=false once dist
// exceeds the polyline's own arc length, matching gather_simple_path_caps' segment
// search (which only ever looks as far as the path's last segment).
func pointAtLengthBounded(pts []xform.Point, total, dist float64) (xform.Point, float64, bool) {
	if dist > total+1e-9 {
		return xform.Point{}, 0, false
	}
	pos, dir := pointAtLength(pts, dist)
	return pos, dir, true
}

// walkCapCycle ports gather_simple_path_caps' main loop: starting `offset` into
// `entries` (reduced modularly first), it cycles the pattern repeatedly along the
// sub-path's arc length, recording a Cap at every boundary, until walking past the
// sub-path's end; at that point it records one final end cap at the sub-path's last
// point if the walk is inside a dash there (none if it is inside a gap) and stops.
func walkCapCycle(pts []xform.Point, entries []capCycleEntry, offset, total float64, subIdx int) []Cap {
	index := 0
	dist := offset
	for dist > entries[index].length {
		dist -= entries[index].length
		index = (index + 1) % len(entries)
	}

	// The boundary about to be recorded belongs to the entry the walk is already
	// inside, not the one `dist` will land on next; its role is the opposite of
	// that entry's, and if that makes it an end-cap, the walk began inside a gap
	// (before any dash has started) so this first boundary is not recorded.
	startCap := !entries[index].startCap
	skipFirst := !startCap

	var caps []Cap
	for {
		pos, dir, found := pointAtLengthBounded(pts, total, dist)
		if !skipFirst {
			if found {
				caps = append(caps, newCap(pos, dir, startCap, subIdx))
			} else {
				if !startCap {
					last := pts[len(pts)-1]
					dirAtEnd := segmentDirection(pts[len(pts)-2], last)
					caps = append(caps, newCap(last, dirAtEnd, false, subIdx))
				}
				break
			}
		}
		skipFirst = false

		dist += entries[index].length
		startCap = entries[index].startCap
		index = (index + 1) % len(entries)
	}
	return caps
}

func newCap(pos xform.Point, dir float64, startCap bool, subIdx int) Cap {
	role := RoleGapEnd
	if startCap {
		role = RoleDashEnd
	}
	return Cap{Pos: pos, Direction: dir, Role: role, SubpathIndex: subIdx}
}

// SynthesizeCaps walks each sub-path's linearised arc-length and records a Cap at
// every dash boundary, cycling the dash/gap pattern repeatedly along the whole
// sub-path rather than once, per spec.md section 4.4 and original_source's
// gather_simple_path_caps. A sub-path with no dash style still synthesises exactly
// a start cap and an end cap, standing in for "the whole path is one dash"; caller
// filters these by cap style (BuildCapShape is a no-op for CapButt).
//
// `lengthScale` converts a Draw-unit length to SVG pixels (the page's
// coordinate-conversion scale factor; Draw pages are isotropic in practice, so a
// single scalar is used for both dash length and offset conversion).
func SynthesizeCaps(subpaths []Subpath, dash *DashSpec, lengthScale float64) []Cap {
	var caps []Cap
	for subIdx, sp := range subpaths {
		total := arcLength(sp.Points)
		if total < capEpsilon {
			continue
		}
		entries, offset := buildCapCycle(dash, lengthScale, total)
		caps = append(caps, walkCapCycle(sp.Points, entries, offset, total, subIdx)...)
	}
	return caps
}
