package puzzle

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func count(input string) (int, error) { return len(input), nil }

func day(n int) Day {
	return Day{Number: n, Title: "day " + strconv.Itoa(n), Part1: PartOf(count), Part2: PartOf(count)}
}

func TestRegistry(t *testing.T) {
	reg, err := NewRegistry(day(11), day(2), day(5))
	require.NoError(t, err)

	var numbers []int
	for _, d := range reg.Days() {
		numbers = append(numbers, d.Number)
	}
	assert.Equal(t, []int{2, 5, 11}, numbers)

	latest, err := reg.Latest()
	require.NoError(t, err)
	assert.Equal(t, 11, latest.Number)

	d, err := reg.Get(5)
	require.NoError(t, err)
	assert.Equal(t, "day 5", d.Title)

	_, err = reg.Get(4)
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestRegistryRejects(t *testing.T) {
	_, err := NewRegistry(day(3), day(3))
	assert.ErrorContains(t, err, "twice")

	_, err = NewRegistry(day(26))
	assert.Error(t, err)

	_, err = NewRegistry(Day{Number: 1, Part1: PartOf(count)})
	assert.ErrorContains(t, err, "missing a part")

	empty, err := NewRegistry()
	require.NoError(t, err)
	_, err = empty.Latest()
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestPartOf(t *testing.T) {
	v, err := PartOf(count)("abc")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}
