/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package drawfile

import (
	"github.com/drawfile/draw2svg/internal/binreader"
	"github.com/drawfile/draw2svg/pathfx"
)

// PathHeader is the 16-byte fixed header preceding a Path object's opcode stream.
type PathHeader struct {
	FillColour    Colour
	OutlineColour Colour
	OutlineWidth  uint32 // Draw units; 0 means "thinnest, render as 1px"
	Style         pathfx.Style
}

// Path is a fully parsed Path object (type 2): header plus opcode elements, ready
// for pathfx.BuildCommands/Linearize/SynthesizeCaps, per spec.md section 4.4.
type Path struct {
	Header   PathHeader
	Elements []pathfx.Element
	Dash     *pathfx.DashSpec
}

// ReadPath parses a Path object body, delegating opcode and dash parsing to
// pathfx.ReadOpcodes.
func ReadPath(r *binreader.Reader) (Path, error) {
	var p Path
	fill, err := readColour(r)
	if err != nil {
		return p, err
	}
	outline, err := readColour(r)
	if err != nil {
		return p, err
	}
	width, err := r.U32()
	if err != nil {
		return p, err
	}
	styleWord, err := r.U32()
	if err != nil {
		return p, err
	}
	p.Header = PathHeader{
		FillColour:    fill,
		OutlineColour: outline,
		OutlineWidth:  width,
		Style:         pathfx.DecodeStyle(styleWord),
	}

	elements, dash, err := pathfx.ReadOpcodes(r, p.Header.Style)
	if err != nil {
		return p, err
	}
	p.Elements, p.Dash = elements, dash
	return p, nil
}
