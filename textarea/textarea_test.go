/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textarea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drawfile/draw2svg/fontconfig"
	"github.com/drawfile/draw2svg/textmetrics"
)

func parse(t *testing.T, src string) []Run {
	t.Helper()
	return ParseEscapes([]byte(src), 1, true, fontconfig.DefaultTable())
}

func TestParseEscapesPlainParagraph(t *testing.T) {
	runs := parse(t, "Hello there\n\n")
	require.Len(t, runs, 1)
	assert.Equal(t, "Hello there", string(runs[0].Text))
}

func TestParseEscapesColourAndColumnsCommands(t *testing.T) {
	runs := parse(t, `\C 255 0 0/Red\D 2/Two cols`)
	require.Len(t, runs, 2)
	assert.Equal(t, Colour{R: 255, G: 0, B: 0}, runs[0].State.Colour)
	assert.Equal(t, "Red", string(runs[0].Text))
	assert.Equal(t, 2, runs[1].State.Columns)
	assert.Equal(t, "Two cols", string(runs[1].Text))
}

func TestParseEscapesAlignmentStartsNewRunAndPersists(t *testing.T) {
	runs := parse(t, `\ARRight\ALLeft`)
	require.Len(t, runs, 2)
	assert.Equal(t, AlignRight, runs[0].State.Alignment)
	assert.Equal(t, "Right", string(runs[0].Text))
	assert.Equal(t, AlignLeft, runs[1].State.Alignment)
	assert.Equal(t, "Left", string(runs[1].Text))
}

func TestParseEscapesSlashAndSoftHyphenAreNonBreaking(t *testing.T) {
	runs := parse(t, `back\\slash and soft\-hyphen`)
	require.Len(t, runs, 1)
	text := string(runs[0].Text)
	assert.Contains(t, text, `back\slash`)
	assert.Contains(t, text, "soft­hyphen")
}

func TestParseEscapesCommentIsDropped(t *testing.T) {
	runs := parse(t, "before\\;a note here\nafter")
	require.Len(t, runs, 1)
	assert.Equal(t, "beforeafter", string(runs[0].Text))
	assert.NotContains(t, string(runs[0].Text), "note")
}

func TestParseEscapesSingleNewlineBecomesSpace(t *testing.T) {
	runs := parse(t, "one\ntwo")
	require.Len(t, runs, 1)
	assert.Equal(t, "one two", string(runs[0].Text))
}

func TestParseEscapesDoubleNewlineIsParagraphBreak(t *testing.T) {
	runs := parse(t, "first\n\nsecond")
	require.Len(t, runs, 2)
	assert.Equal(t, "first", string(runs[0].Text))
	assert.Equal(t, "second", string(runs[1].Text))
	assert.Equal(t, 1, runs[1].State.PrefixParaBreaks)
}

func TestParseEscapesNewlineBeforeIndentIsParagraphBreak(t *testing.T) {
	runs := parse(t, "first\n  indented")
	require.Len(t, runs, 2)
	assert.Equal(t, "first", string(runs[0].Text))
	assert.Equal(t, "  indented", string(runs[1].Text))
}

func TestParseEscapesFontSizeCommandSetsSlot(t *testing.T) {
	runs := parse(t, `\F1 Trinity.Bold 18/big`)
	require.Len(t, runs, 1)
	fd, ok := runs[0].Fonts[1]
	require.True(t, ok)
	assert.Equal(t, "Trinity", fd.OriginalName)
	assert.Equal(t, "bold", fd.Weight)
	assert.Equal(t, float64(18), fd.HeightPt)
}

func TestParseEscapesMarginsAndLeading(t *testing.T) {
	runs := parse(t, `\M 5 6/\L 12/text`)
	require.Len(t, runs, 1)
	assert.Equal(t, float64(5), runs[0].State.LeftMarginPt)
	assert.Equal(t, float64(6), runs[0].State.RightMarginPt)
	assert.Equal(t, float64(12), runs[0].State.LineLeadingPt)
}

func TestParseEscapesUnderlineAndEnd(t *testing.T) {
	runs := parse(t, `\U 0 2/under\U.underline end`)
	require.Len(t, runs, 2)
	assert.Equal(t, 2, runs[0].State.UnderlineThickness)
	assert.Equal(t, 0, runs[1].State.UnderlineThickness)
}

func TestParseEscapesVerticalMoveIsCumulative(t *testing.T) {
	runs := parse(t, `\V2/up\V3/more`)
	require.Len(t, runs, 2)
	assert.Equal(t, float64(2), runs[0].State.VerticalMovePt)
	assert.Equal(t, float64(5), runs[1].State.VerticalMovePt)
}

func newMeasurerForTest() *textmetrics.Measurer {
	return textmetrics.NewMeasurer()
}

func TestFlowRunsEmptyInputsReturnNil(t *testing.T) {
	m := newMeasurerForTest()
	assert.Nil(t, FlowRuns(nil, []Column{{Left: 0, Right: 100, Top: 0, Bottom: 100}}, true, m))
	runs := parse(t, "hello")
	assert.Nil(t, FlowRuns(runs, nil, true, m))
}

func TestFlowRunsSingleShortLineFitsOneLine(t *testing.T) {
	runs := parse(t, "hi")
	m := newMeasurerForTest()
	cols := []Column{{Left: 0, Right: 500, Top: 0, Bottom: 500}}
	out := FlowRuns(runs, cols, true, m)
	require.Len(t, out, 1)
	assert.Equal(t, "hi", out[0].Text)
	assert.True(t, out[0].IsFirstOutput)
}

func TestFlowRunsWrapsLongTextAcrossMultipleLines(t *testing.T) {
	runs := parse(t, "one two three four five six seven eight nine ten")
	m := newMeasurerForTest()
	cols := []Column{{Left: 0, Right: 60, Top: 0, Bottom: 2000}}
	out := FlowRuns(runs, cols, true, m)
	require.NotEmpty(t, out)
	assert.Greater(t, len(out), 1)
	// The emitted fragments, joined back together, must still hold the first and
	// last words (a basic sanity check that trimming terminates and does not
	// silently drop content).
	var rebuilt string
	for i, r := range out {
		if i > 0 {
			rebuilt += " "
		}
		rebuilt += r.Text
	}
	assert.Contains(t, rebuilt, "one")
	assert.Contains(t, rebuilt, "ten")
}

func TestFlowRunsRightAlignmentOffsetsX(t *testing.T) {
	runs := parse(t, `\ARright`)
	m := newMeasurerForTest()
	cols := []Column{{Left: 0, Right: 500, Top: 0, Bottom: 500}}
	out := FlowRuns(runs, cols, true, m)
	require.Len(t, out, 1)
	assert.Greater(t, out[0].X, 0.0)
}

func TestFlowRunsAdvancesToSecondColumnWhenFirstIsFull(t *testing.T) {
	runs := parse(t, "first paragraph\n\nsecond paragraph")
	m := newMeasurerForTest()
	cols := []Column{
		{Left: 0, Right: 500, Top: 0, Bottom: 5},
		{Left: 600, Right: 1100, Top: 0, Bottom: 500},
	}
	out := FlowRuns(runs, cols, true, m)
	require.NotEmpty(t, out)
	for _, r := range out {
		assert.GreaterOrEqual(t, r.X, 600.0)
	}
}
