package day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pborges/aoc2022/internal/puzzle"
)

func Test_ScenicScore(t *testing.T) {
	g, err := LoadGrid(puzzle.Format(Sample))
	require.NoError(t, err)

	assert.Equal(t, 4, g.ScenicScore(2, 1))
	assert.Equal(t, 8, g.ScenicScore(2, 3))
	assert.Equal(t, 0, g.ScenicScore(0, 0))
	assert.True(t, g.Visible(1, 1))
	assert.False(t, g.Visible(2, 2))
}

func Test_sample(t *testing.T) {
	in := puzzle.Format(Sample)

	got, err := Part1(in)
	require.NoError(t, err)
	assert.Equal(t, 21, got)

	got, err = Part2(in)
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func Test_badInput(t *testing.T) {
	_, err := Part1("123\n4a6")
	assert.ErrorContains(t, err, "invalid height")

	_, err = Part2("123\n45")
	assert.ErrorContains(t, err, "width")
}
