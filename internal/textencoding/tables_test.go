/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRiscosLatin1PatchesC1WithAcornGlyphs(t *testing.T) {
	require.Equal(t, "€", riscosLatin1[0x80])
	require.Equal(t, "Ŵ", riscosLatin1[0x81])
	require.Equal(t, "ŵ", riscosLatin1[0x82])
	require.Equal(t, "Ŷ", riscosLatin1[0x85])
	require.Equal(t, "ŷ", riscosLatin1[0x86])
	require.Equal(t, "…", riscosLatin1[0x8c])
	require.Equal(t, "ﬂ", riscosLatin1[0x9f])
}

func TestRiscosLatin2DropsCollidingC1Slots(t *testing.T) {
	// mask " XXXXXX" leaves 0x80 alone but undefines 0x81-0x86, where Latin2's own
	// accented letters already live.
	require.Equal(t, "€", riscosLatin2[0x80])
	require.Equal(t, undefinedGlyph, riscosLatin2[0x81])
	require.Equal(t, undefinedGlyph, riscosLatin2[0x86])
	require.Equal(t, "…", riscosLatin2[0x8c])
	require.Equal(t, "«", riscosLatin2[0x9a])
	require.Equal(t, "»", riscosLatin2[0x9b])
}

func TestRiscosLatin10DropsWiderC1RangeAndOverridesGuillemets(t *testing.T) {
	// mask "XXXXXXXXXXXX...XX..." undefines 0x80-0x8b and 0x95-0x96.
	require.Equal(t, undefinedGlyph, riscosLatin10[0x80])
	require.Equal(t, undefinedGlyph, riscosLatin10[0x8b])
	require.Equal(t, "…", riscosLatin10[0x8c])
	require.Equal(t, undefinedGlyph, riscosLatin10[0x95])
	require.Equal(t, undefinedGlyph, riscosLatin10[0x96])
	require.Equal(t, "«", riscosLatin10[0x9a])
	require.Equal(t, "»", riscosLatin10[0x9b])
}

func TestRiscosHebrewCyrillicGreekNeverGetAcornC1Patch(t *testing.T) {
	// Unlike the Latin alphabets, Hebrew/Cyrillic/Greek's C1 range is untouched by
	// acorn_c1; only their upper half (0xa0+) is masked.
	require.NotEqual(t, "€", riscosHebrew[0x80])
	require.NotEqual(t, "€", riscosCyrillic[0x80])
	require.NotEqual(t, "€", riscosGreek[0x80])
	require.Equal(t, "-", riscosCyrillic[0xAE])
	require.Equal(t, "ᴇꜰꜰ", riscosHebrew[0xAF])
	require.Equal(t, "ₒ", corpusMediumGreek[0xAF])
}

func TestMaskedC1EmptyMaskLeavesAcornC1Untouched(t *testing.T) {
	full := maskedC1("")
	require.Equal(t, acornC1[:], full)
}
