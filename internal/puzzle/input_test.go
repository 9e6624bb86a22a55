package puzzle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	testCases := map[string]string{
		"1\n2\n":               "1\n2",
		"1\r\n2\r\n\r\n":       "1\n2",
		"\n\n  \nabc \n":       "abc",
		"    [D]\n 1\n":        "    [D]\n 1",
		"":                     "",
		"Monkey 0:\n  x\n\n\n": "Monkey 0:\n  x",
	}
	for in, want := range testCases {
		assert.Equal(t, want, Format(in), "Format(%q)", in)
	}
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input07.txt"), []byte("$ cd /\r\n$ ls\r\n"), 0o644))

	got, err := ReadInput(dir, 7)
	require.NoError(t, err)
	assert.Equal(t, "$ cd /\n$ ls", got)

	_, err = ReadInput(dir, 8)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSampleInput(t *testing.T) {
	got, err := SampleInput(Day{Number: 1, Sample: "1\n2\n\n"})
	require.NoError(t, err)
	assert.Equal(t, "1\n2", got)

	_, err = SampleInput(Day{Number: 2})
	assert.Error(t, err)
}

func TestTopN(t *testing.T) {
	vs := []int{5, 1, 9, 3}
	assert.Equal(t, []int{9, 5}, TopN(vs, 2))
	assert.Equal(t, []int{5, 1, 9, 3}, vs, "input is not modified")
	assert.Equal(t, []int{9, 5, 3, 1}, TopN(vs, 10))
	assert.Equal(t, 18, Sum(vs...))
	assert.Equal(t, 4, Abs(-4))
}
