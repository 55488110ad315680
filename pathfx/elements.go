/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pathfx

import (
	"fmt"

	"github.com/drawfile/draw2svg/geom"
	"github.com/drawfile/draw2svg/internal/binreader"
)

// Opcode tag bytes (low 7 bits of the opcode byte), per spec.md section 3.
const (
	opEnd      = 0
	opMove     = 2
	opCloseSub = 5
	opBezier   = 6
	opDraw     = 8
)

// ElementKind discriminates a parsed path element.
type ElementKind int

const (
	ElementMove ElementKind = iota
	ElementDraw
	ElementBezier
	ElementClose
)

// Element is one opcode of a Draw path, decoded into Draw-unit integer points.
// Bezier carries its three following points (two controls and the endpoint); Move
// and Draw carry one point; Close carries none.
type Element struct {
	Kind ElementKind
	Pts  [3]geom.Point
}

// DashSpec is the parsed dash list: an initial offset in Draw units and the
// alternating dash/gap lengths, starting with a dash.
type DashSpec struct {
	Offset  int32
	Lengths []uint32
}

// ReadOpcodes parses the opcode stream starting at the reader's current position,
// stopping at opEnd. If `style.HasDash`, the dash offset/count/lengths are read
// first, per spec.md section 4.4.
func ReadOpcodes(r *binreader.Reader, style Style) ([]Element, *DashSpec, error) {
	var dash *DashSpec
	if style.HasDash {
		offset, err := r.I32()
		if err != nil {
			return nil, nil, err
		}
		count, err := r.U32()
		if err != nil {
			return nil, nil, err
		}
		lengths := make([]uint32, count)
		for i := range lengths {
			l, err := r.U32()
			if err != nil {
				return nil, nil, err
			}
			lengths[i] = l
		}
		dash = &DashSpec{Offset: offset, Lengths: lengths}
	}

	var elements []Element
	for {
		tag, err := r.U8()
		if err != nil {
			return nil, nil, err
		}
		// The opcode byte's low 7 bits carry the tag; Draw reserves the top bit.
		switch tag & 0x7F {
		case opEnd:
			return elements, dash, nil
		case opMove:
			p, err := readPoint(r)
			if err != nil {
				return nil, nil, err
			}
			elements = append(elements, Element{Kind: ElementMove, Pts: [3]geom.Point{p}})
		case opDraw:
			p, err := readPoint(r)
			if err != nil {
				return nil, nil, err
			}
			elements = append(elements, Element{Kind: ElementDraw, Pts: [3]geom.Point{p}})
		case opBezier:
			var pts [3]geom.Point
			for i := 0; i < 3; i++ {
				p, err := readPoint(r)
				if err != nil {
					return nil, nil, err
				}
				pts[i] = p
			}
			elements = append(elements, Element{Kind: ElementBezier, Pts: pts})
		case opCloseSub:
			elements = append(elements, Element{Kind: ElementClose})
		default:
			return nil, nil, fmt.Errorf("pathfx: unrecognised opcode %#x", tag)
		}
	}
}

func readPoint(r *binreader.Reader) (geom.Point, error) {
	x, err := r.I32()
	if err != nil {
		return geom.Point{}, err
	}
	y, err := r.I32()
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: x, Y: y}, nil
}
