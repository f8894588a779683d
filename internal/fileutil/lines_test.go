package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type numberedLine struct {
	number int
	text   string
}

func readAll(t *testing.T, content string) ([]numberedLine, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	var lines []numberedLine
	err := ReadLines(path, func(n int, text string) {
		lines = append(lines, numberedLine{number: n, text: text})
	})
	return lines, err
}

func TestReadLines(t *testing.T) {
	lines, err := readAll(t, "first\n  second\r\n\nlast without newline")
	require.NoError(t, err)

	assert.Equal(t, []numberedLine{
		{1, "first"},
		{2, "  second"},
		{3, ""},
		{4, "last without newline"},
	}, lines)
}

func TestReadLines_Empty(t *testing.T) {
	lines, err := readAll(t, "")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadLines_Binary(t *testing.T) {
	lines, err := readAll(t, "remind: 2020/01/01\x00\x01\x02")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBinaryFile))
	assert.Empty(t, lines)
}

func TestReadLines_Missing(t *testing.T) {
	err := ReadLines(filepath.Join(t.TempDir(), "nope.txt"), func(int, string) {})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
