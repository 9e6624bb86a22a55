package day07

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pborges/aoc2022/internal/puzzle"
)

func Test_Replay(t *testing.T) {
	root, err := Replay(puzzle.Format(Sample))
	require.NoError(t, err)

	testCases := map[string]int{
		"/": 48381165,
		"a": 94853,
		"d": 24933642,
	}
	sizes := map[string]int{}
	root.Walk(func(d *Dir) { sizes[d.Name] = d.Size() })
	for name, want := range testCases {
		assert.Equal(t, want, sizes[name], "size of %s", name)
	}
	assert.Equal(t, 584, root.Dirs["a"].Dirs["e"].Size())
}

func Test_sample(t *testing.T) {
	in := puzzle.Format(Sample)

	got, err := Part1(in)
	require.NoError(t, err)
	assert.Equal(t, 95437, got)

	got, err = Part2(in)
	require.NoError(t, err)
	assert.Equal(t, 24933642, got)
}

func Test_relistingKeepsContents(t *testing.T) {
	got, err := Part1("$ cd /\n$ ls\ndir a\n$ cd a\n$ ls\n10 f\n$ cd /\n$ ls\ndir a")
	require.NoError(t, err)
	assert.Equal(t, 20, got)
}

func Test_badInput(t *testing.T) {
	_, err := Part1("$ rm -rf /")
	assert.ErrorContains(t, err, "unknown command")

	_, err = Part1("$ ls\nbig file")
	assert.Error(t, err)

	_, err = Part2("$ cd")
	assert.Error(t, err)
}
