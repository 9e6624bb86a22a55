package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pborges/aoc2022/internal/puzzle"
)

func Test_Play(t *testing.T) {
	testCases := []struct {
		me, opponent Shape
		want         Outcome
	}{
		{Rock, Scissors, Win},
		{Rock, Paper, Loss},
		{Paper, Paper, Draw},
		{Scissors, Paper, Win},
		{Scissors, Rock, Loss},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, Play(tc.me, tc.opponent), "%v vs %v", tc.me, tc.opponent)
		assert.Equal(t, tc.me, Choose(tc.opponent, tc.want))
	}
}

func Test_sample(t *testing.T) {
	in := puzzle.Format(Sample)

	got, err := Part1(in)
	require.NoError(t, err)
	assert.Equal(t, 15, got)

	got, err = Part2(in)
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func Test_badInput(t *testing.T) {
	_, err := Part1("A Q")
	assert.ErrorContains(t, err, "line 1")

	_, err = Part2("A Y\nD X")
	assert.ErrorContains(t, err, "line 2")

	_, err = Part1("A")
	assert.Error(t, err)
}
