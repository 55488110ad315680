/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package drawfile

import "github.com/drawfile/draw2svg/internal/binreader"

// Options is the Draw file's page-setup object (type 11), per spec.md section 4.3's
// Pass-1 "find page size" rule. Only PaperSize/PaperLimits feed the converter;
// the remaining 56 bytes (editor grid/zoom/toolbox state) are !Draw-editing-only
// and are skipped rather than modelled field-by-field.
type Options struct {
	// PaperSize indexes the paper-size table (spec.md's Glossary; convert/papersize.go).
	PaperSize int32
	// PaperLimits carries the landscape bit (1<<4) in bit 4, per spec.md section 3.
	PaperLimits int32
}

// Landscape reports whether the Options object's landscape bit is set.
func (o Options) Landscape() bool { return o.PaperLimits&0x10 != 0 }

// optionsTrailerBytes is the size of the editor-only grid/zoom/toolbox fields that
// follow PaperSize/PaperLimits in the 64-byte Options body (8 bytes of opaque
// "grid spacing" plus twelve further int32 fields: 8+12*4=56).
const optionsTrailerBytes = 56

// ReadOptions parses an Options object body.
func ReadOptions(r *binreader.Reader) (Options, error) {
	var o Options
	paperSize, err := r.I32()
	if err != nil {
		return o, err
	}
	paperLimits, err := r.I32()
	if err != nil {
		return o, err
	}
	o.PaperSize, o.PaperLimits = paperSize, paperLimits
	if err := r.Skip(optionsTrailerBytes); err != nil {
		return o, err
	}
	return o, nil
}
