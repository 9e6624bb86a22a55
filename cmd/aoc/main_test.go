package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pborges/aoc2022/internal/config"
	"github.com/pborges/aoc2022/internal/puzzle"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		sampleMode, allDays, inputDir, workers = false, false, "", 0
	})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "aoc.yaml")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRegistryComplete(t *testing.T) {
	reg, err := registry(zap.NewNop())
	require.NoError(t, err)

	var numbers []int
	for _, d := range reg.Days() {
		numbers = append(numbers, d.Number)
		assert.NotEmpty(t, d.Sample, "day %d sample", d.Number)
	}
	assert.Equal(t, []int{1, 2, 3, 5, 7, 8, 9, 10, 11}, numbers)
}

func TestSamples(t *testing.T) {
	reg, err := registry(zap.NewNop())
	require.NoError(t, err)

	r := &puzzle.Runner{
		Input: puzzle.SampleInput,
		Expected: map[int]puzzle.Expected{
			1:  {Part1: "24000", Part2: "45000"},
			2:  {Part1: "15", Part2: "12"},
			3:  {Part1: "157", Part2: "70"},
			5:  {Part1: "CMZ", Part2: "MCD"},
			7:  {Part1: "95437", Part2: "24933642"},
			8:  {Part1: "21", Part2: "8"},
			9:  {Part1: "13", Part2: "1"},
			10: {Part1: "13140"},
			11: {Part1: "10605", Part2: "2713310158"},
		},
	}
	_, err = r.Run(t.Context(), reg.Days())
	require.NoError(t, err)
}

func TestSelectDays(t *testing.T) {
	reg, err := registry(zap.NewNop())
	require.NoError(t, err)

	days, err := selectDays(reg, nil)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 11, days[0].Number)

	days, err = selectDays(reg, []string{"day9", "2"})
	require.NoError(t, err)
	assert.Equal(t, 9, days[0].Number)
	assert.Equal(t, 2, days[1].Number)

	_, err = selectDays(reg, []string{"4"})
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)

	_, err = selectDays(reg, []string{"four"})
	assert.Error(t, err)
}

func TestRunSampleCommand(t *testing.T) {
	out, err := execute(t, "run", "--sample", "11", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Day 11: Monkey in the Middle")
	assert.Contains(t, out, "part 1: 10605")
	assert.Contains(t, out, "part 2: 2713310158")
	assert.Contains(t, out, "part 2: 45000")
}

func TestRunInputDir(t *testing.T) {
	out, err := execute(t, "run", "--input-dir", filepath.Join("..", "..", "input"), "11")
	require.NoError(t, err)
	assert.Contains(t, out, "part 1: 76728")
	assert.Contains(t, out, "part 2: 21553910156")
}

func TestRunMissingInput(t *testing.T) {
	_, err := execute(t, "run", "--input-dir", t.TempDir(), "11")
	assert.ErrorContains(t, err, "reading input for day 11")
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "11  Monkey in the Middle")
	assert.Contains(t, out, " 1  Calorie Counting")
}

func TestDefaultConfigFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join("..", "..", config.DefaultPath))
	require.NoError(t, err)
	assert.Equal(t, config.Answer{Part1: "76728", Part2: "21553910156"}, cfg.Answers[11])
}
