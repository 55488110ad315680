/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFontDescTags(t *testing.T) {
	subs := DefaultTable()
	fd := ParseFontDesc(`\FCorpus.Medium\ELatin3`, 12, 12, subs)
	assert.Equal(t, "Corpus", fd.OriginalName)
	assert.Equal(t, "Latin3", fd.Alphabet)
	assert.Equal(t, "normal", fd.Weight)
}

func TestParseFontDescSystemHack(t *testing.T) {
	fd := ParseFontDesc("System", 16, 16, DefaultTable())
	assert.Equal(t, "bold", fd.Weight)
	assert.InDelta(t, 16*4.0/3.0, fd.DisplayHeightPt(), 1e-9)
}

func TestParseFontDescModifiers(t *testing.T) {
	fd := ParseFontDesc("Trinity.Medium.Italic", 12, 12, DefaultTable())
	assert.Equal(t, "italic", fd.Style)

	fd2 := ParseFontDesc("Trinity.Bold", 12, 12, DefaultTable())
	assert.Equal(t, "bold", fd2.Weight)
}

func TestLoadINI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fonts.ini")
	content := "[main]\ntrinity=Georgia,serif\n; comment\nhomerton = Arial, sans-serif\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tbl, err := LoadINI(path)
	require.NoError(t, err)
	css, ok := tbl.Lookup("trinity")
	assert.True(t, ok)
	assert.Equal(t, "Georgia,serif", css)
}

func TestLookupFallsBackToDefault(t *testing.T) {
	tbl := DefaultTable()
	css, ok := tbl.Lookup("unknownfont")
	assert.False(t, ok)
	assert.Contains(t, css, "unknownfont")
}
