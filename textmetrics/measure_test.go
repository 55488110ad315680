/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drawfile/draw2svg/fontconfig"
)

func TestMeasureWidthEmptyText(t *testing.T) {
	m := NewMeasurer()
	fd := fontconfig.ParseFontDesc("System", 16, 16, fontconfig.DefaultTable())
	assert.Equal(t, 0.0, m.MeasureWidth(fd, ""))
}

func TestMeasureWidthFallbackIsPositiveAndMonotonic(t *testing.T) {
	m := NewMeasurer()
	fd := fontconfig.ParseFontDesc("NoSuchFontFamilyAtAll12345", 12, 12, fontconfig.DefaultTable())
	short := m.MeasureWidth(fd, "hi")
	long := m.MeasureWidth(fd, "hello world")
	assert.Greater(t, short, 0.0)
	assert.Greater(t, long, short)
}

func TestMeasureWidthAspectScaling(t *testing.T) {
	m := NewMeasurer()
	square := fontconfig.ParseFontDesc("NoSuchFontFamilyAtAll12345", 12, 12, fontconfig.DefaultTable())
	wide := fontconfig.ParseFontDesc("NoSuchFontFamilyAtAll12345", 12, 24, fontconfig.DefaultTable())
	wSquare := m.MeasureWidth(square, "hello")
	wWide := m.MeasureWidth(wide, "hello")
	assert.InDelta(t, wSquare*2, wWide, 1e-6)
}
