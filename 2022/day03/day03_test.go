package day03

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pborges/aoc2022/internal/puzzle"
)

func Test_Priority(t *testing.T) {
	testCases := map[rune]int{
		'a': 1,
		'p': 16,
		'z': 26,
		'A': 27,
		'L': 38,
		'Z': 52,
	}
	for item, want := range testCases {
		got, err := Priority(item)
		require.NoError(t, err)
		assert.Equal(t, want, got, "priority of %q", item)
	}

	_, err := Priority('3')
	assert.Error(t, err)
}

func Test_sample(t *testing.T) {
	in := puzzle.Format(Sample)

	got, err := Part1(in)
	require.NoError(t, err)
	assert.Equal(t, 157, got)

	got, err = Part2(in)
	require.NoError(t, err)
	assert.Equal(t, 70, got)
}

func Test_badInput(t *testing.T) {
	_, err := Part1("abc")
	assert.Error(t, err)

	_, err = Part2("ab\ncd")
	assert.Error(t, err)
}
