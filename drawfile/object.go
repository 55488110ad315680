/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package drawfile

import (
	"errors"
	"fmt"

	"github.com/drawfile/draw2svg/internal/binreader"
)

// Object is one parsed Draw object: the common header plus exactly one populated
// type-specific field, chosen by Header.Type. Unrecognised types leave every
// type-specific field nil/zero, per spec.md section 4.3's "skip, don't fail" rule
// for unknown object types.
type Object struct {
	Header ObjectHeader

	FontTable FontTable
	Text      *Text
	Path      *Path
	Sprite    *Sprite
	Group     *Group
	Tagged    *Tagged
	TextArea  *TextArea
	Options   *Options
	JPEG      *JPEG
}

// readObject reads one object header and dispatches to its type-specific reader,
// mirroring original_source's read_objects inner per-object branch. The caller is
// responsible for reseeking past the object's declared length afterwards: a
// type-specific reader may consume more or fewer bytes than declared (an unknown
// type consumes none at all), so the body position cannot be trusted as the next
// object's start.
func readObject(r *binreader.Reader, oneByteType bool) (Object, error) {
	header, err := ReadObjectHeader(r, oneByteType)
	if err != nil {
		return Object{}, err
	}
	obj := Object{Header: header}

	bodyEnd := r.Position() + int64(header.Length) - objectHeaderSize

	switch header.Type {
	case TypeFontTable:
		table, err := ReadFontTable(r, bodyEnd)
		if err != nil {
			return obj, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		obj.FontTable = table

	case TypeText:
		th, err := readTextHeader(r)
		if err != nil {
			return obj, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		textLength := int(int64(header.Length) - objectHeaderSize - textHeaderSize)
		text, err := ReadText(r, th, textLength)
		if err != nil {
			return obj, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		obj.Text = &text

	case TypeTransformedText:
		text, err := ReadTransformedText(r, int(header.Length), objectHeaderSize)
		if err != nil {
			return obj, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		obj.Text = &text

	case TypePath:
		path, err := ReadPath(r)
		if err != nil {
			return obj, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		obj.Path = &path

	case TypeSprite:
		sprite, err := readSprite(r, header, false)
		if err != nil {
			return obj, err
		}
		obj.Sprite = &sprite

	case TypeTransformedSprit:
		sprite, err := readSprite(r, header, true)
		if err != nil {
			return obj, err
		}
		obj.Sprite = &sprite

	case TypeGroup:
		group, err := readGroup(r, header, oneByteType)
		if err != nil {
			return obj, err
		}
		obj.Group = &group

	case TypeTagged:
		tagged, err := readTagged(r, oneByteType)
		if err != nil {
			return obj, err
		}
		obj.Tagged = &tagged

	case TypeTextArea:
		area, err := readTextArea(r, header, oneByteType)
		if err != nil {
			return obj, err
		}
		obj.TextArea = &area

	case TypeOptions:
		opts, err := ReadOptions(r)
		if err != nil {
			return obj, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		obj.Options = &opts

	case TypeJPEG:
		jpeg, err := readJPEG(r)
		if err != nil {
			return obj, err
		}
		obj.JPEG = &jpeg

	default:
		// Unknown or editor-only type (e.g. TextColumn outside a TextArea): skip the
		// body untouched, matching original_source's catch-all branch that logs and
		// reseeks without attempting to parse it.
	}

	return obj, nil
}

// readObjects reads consecutive objects starting at the reader's current position
// until it reaches `end` or EOF, reseeking to each object's declared end after
// processing it regardless of how many bytes its body reader actually consumed.
// This matches original_source's read_objects loop, which always recovers sync via
// `curptr + obj_length` rather than trusting the body parser's final position.
func readObjects(r *binreader.Reader, end int64, oneByteType bool) ([]Object, error) {
	var objects []Object
	for r.Position() < end && r.Position() < r.Len() {
		start := r.Position()
		obj, err := readObject(r, oneByteType)
		if err != nil {
			if !errors.Is(err, ErrBadSprite) {
				return objects, err
			}
			// A bad sprite drops only its own object; reseek past it and go on.
		} else {
			objects = append(objects, obj)
		}

		next := start + int64(obj.Header.Length)
		if next <= start {
			// A zero or negative declared length can't make forward progress; stop
			// rather than loop forever re-reading the same header.
			break
		}
		if err := r.Seek(next); err != nil {
			break
		}
	}
	return objects, nil
}

// ReadAll parses every top-level object in the stream from the reader's current
// position up to `end`, recursing into Group and Tagged children. This is the
// Pass-2 full-render entry point; Pass 1 uses FindOptions instead, since it never
// needs a fully materialised object tree.
func ReadAll(r *binreader.Reader, end int64, oneByteType bool) ([]Object, error) {
	return readObjects(r, end, oneByteType)
}

// FindOptions performs the Pass-1 scan described in spec.md section 4.3: it looks
// for the first Options object in the top-level object stream, recursing into Group
// and Tagged wrappers (but not other container-like types), and returns the first
// one found. It reports ok=false if the stream contains no Options object, in which
// case the caller falls back to the default-page-size search.
func FindOptions(r *binreader.Reader, end int64, oneByteType bool) (Options, bool, error) {
	for r.Position() < end && r.Position() < r.Len() {
		start := r.Position()
		header, err := ReadObjectHeader(r, oneByteType)
		if err != nil {
			return Options{}, false, err
		}
		next := start + int64(header.Length)

		switch header.Type {
		case TypeOptions:
			opts, err := ReadOptions(r)
			if err != nil {
				return Options{}, false, fmt.Errorf("%w: %v", ErrTruncated, err)
			}
			return opts, true, nil

		case TypeGroup:
			if _, err := r.FixedString(12); err == nil {
				if opts, ok, err := FindOptions(r, next, oneByteType); err == nil && ok {
					return opts, true, nil
				}
			}

		case TypeTagged:
			if _, err := r.U32(); err == nil { // application tag, irrelevant to the scan
				if opts, ok, err := FindOptions(r, next, oneByteType); err == nil && ok {
					return opts, true, nil
				}
			}
		}

		if next <= start {
			break
		}
		if err := r.Seek(next); err != nil {
			break
		}
	}
	return Options{}, false, nil
}
