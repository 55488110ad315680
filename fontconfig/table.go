/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package fontconfig resolves Acorn font names (as found in a Draw file's font
// table or a text area's \F escape sequences) to CSS font stacks, via a
// substitution table that is itself an external collaborator (spec.md section 1's
// "the choice of font-substitution strings themselves"). Grounded on
// original_source's FontDesc/font_replacements dict (draw_to_svg.py lines ~438-2121).
package fontconfig

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Table maps a lower-cased Acorn font base name to a comma-separated CSS font stack.
// The special key "_default" holds a suffix appended to unmatched names, e.g.
// `,sans-serif`.
type Table struct {
	subs map[string]string
}

// DefaultTable returns the built-in substitution table covering the RISC OS font
// names shipped with Acorn's font manager and Draw's default font table slot 0,
// ported from original_source's font_replacements dict.
func DefaultTable() Table {
	return Table{subs: map[string]string{
		"trinity":  `Times New Roman,Times,Georgia,serif`,
		"homerton": `Arial,Helvetica,sans-serif`,
		"corpus":   `Courier New,Courier,monospace`,
		"sassoon":  `Comic Sans MS,Chalkboard,cursive`,
		"sidney":   `Symbol,sans-serif`,
		"selwyn":   `Wingdings,sans-serif`,
		"system":   `System,VT323,Courier New,Courier,Lucida Console,monospace`,
		"swiss":    `Arial,Helvetica,sans-serif`,
		"pembroke": `Georgia,Times New Roman,serif`,
		"newhall":  `Verdana,Geneva,sans-serif`,
		"_default": `sans-serif`,
	}}
}

// LoadINI reads a `[main]`-sectioned INI file at `path`, where each key is a
// lower-cased Draw font base name and each value a comma-separated CSS font stack.
// Keys outside `[main]` are ignored. INI parsing is an explicit external-collaborator
// concern (spec.md section 1); see SPEC_FULL.md section 1.3 for why this is stdlib
// `bufio`/`strings` rather than a dedicated INI library.
func LoadINI(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("fontconfig: %w", err)
	}
	defer f.Close()

	t := Table{subs: make(map[string]string)}
	inMain := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inMain = strings.EqualFold(strings.TrimSpace(line[1:len(line)-1]), "main")
			continue
		}
		if !inMain {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		t.subs[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return Table{}, fmt.Errorf("fontconfig: %w", err)
	}
	return t, nil
}

// Lookup returns the CSS font stack for a lower-cased Acorn base font name, and
// whether it was found verbatim (as opposed to falling back to the default suffix).
func (t Table) Lookup(lowerName string) (string, bool) {
	if css, ok := t.subs[lowerName]; ok {
		return css, true
	}
	return lowerName + "," + t.subs["_default"], false
}
