/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func emptyDrawFile() []byte {
	buf := make([]byte, 40)
	binary.LittleEndian.PutUint32(buf[0:4], 0x77617244)
	return buf
}

func TestRunSingleFileConvertsSuccessfully(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "a.draw")
	out := filepath.Join(dir, "a.svg")
	require.NoError(t, os.WriteFile(in, emptyDrawFile(), 0o644))

	code := run([]string{"--input", in, "--output", out})
	require.Equal(t, 0, code)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "<svg")
}

func TestRunRequiresInputAndOutputTogether(t *testing.T) {
	code := run([]string{"--input", "a.draw"})
	require.Equal(t, 1, code)
}

func TestRunRejectsSameInputAndOutput(t *testing.T) {
	code := run([]string{"--input", "a.draw", "--output", "a.draw"})
	require.Equal(t, 2, code)
}

func TestRunRejectsDirCombinedWithInput(t *testing.T) {
	code := run([]string{"--dir", ".", "--input", "a.draw"})
	require.Equal(t, 2, code)
}

func TestRunDirConvertsAllDrawFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.draw"), emptyDrawFile(), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.txt"), []byte("nope"), 0o644))

	code := run([]string{"--dir", dir})
	require.Equal(t, 0, code)

	_, err := os.Stat(filepath.Join(dir, "x.svg"))
	require.NoError(t, err)
}

func TestRunReportsFailureForUnparseableFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.draw")
	require.NoError(t, os.WriteFile(in, []byte("not a draw file"), 0o644))

	code := run([]string{"--input", in, "--output", filepath.Join(dir, "bad.svg")})
	require.Equal(t, 1, code)
}
