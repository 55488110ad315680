/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package drawfile

import (
	"strings"

	"github.com/drawfile/draw2svg/internal/binreader"
)

// FontTableEntry names the Draw font and alphabet bound to a font-table slot.
// A raw name embedding `\Fname\Ealphabet` tags is split into its components; a name
// with no tags is used as-is with the empty ("default") alphabet.
type FontTableEntry struct {
	RawName  string
	FontName string
	Alphabet string
}

// FontTable maps font-table slot numbers (1-255) to their entries. Slot 0 is always
// the "system" font per spec.md's invariants, even when absent from the file.
type FontTable map[uint8]FontTableEntry

// NewFontTable returns a FontTable with slot 0 pre-populated as the system font.
func NewFontTable() FontTable {
	return FontTable{
		0: {RawName: "System", FontName: "System", Alphabet: ""},
	}
}

// ReadFontTable parses a font-table object body: a sequence of (slot byte, NUL
// terminated name) pairs terminated by a slot byte of 0 or by running out of the
// object's declared length.
func ReadFontTable(r *binreader.Reader, bodyEnd int64) (FontTable, error) {
	table := NewFontTable()
	for r.Position() < bodyEnd {
		slot, err := r.U8()
		if err != nil {
			return table, err
		}
		if slot == 0 {
			break
		}
		name, err := r.CString(int(bodyEnd - r.Position()))
		if err != nil {
			return table, err
		}
		table[slot] = parseFontTableName(name)
	}
	return table, nil
}

// parseFontTableName splits a raw font-table name into its Draw font name and
// alphabet tag via the embedded `\Fname\Ealphabet` escapes.
func parseFontTableName(raw string) FontTableEntry {
	entry := FontTableEntry{RawName: raw, FontName: raw}
	fIdx := strings.Index(raw, "\\F")
	eIdx := strings.Index(raw, "\\E")
	switch {
	case fIdx >= 0 && eIdx > fIdx:
		entry.FontName = raw[fIdx+2 : eIdx]
		entry.Alphabet = strings.ToLower(raw[eIdx+2:])
	case fIdx >= 0:
		entry.FontName = raw[fIdx+2:]
	case eIdx >= 0:
		entry.FontName = raw[:eIdx]
		entry.Alphabet = strings.ToLower(raw[eIdx+2:])
	}
	return entry
}
