// Package day01 solves "Calorie Counting".
package day01

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pborges/aoc2022/internal/puzzle"
)

//go:embed sample.txt
var Sample string

// LoadPacks returns the calorie total carried by each elf. Elves are
// separated by blank lines.
func LoadPacks(input string) ([]int, error) {
	var packs []int
	total, open := 0, false
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if open {
				packs = append(packs, total)
			}
			total, open = 0, false
			continue
		}
		calories, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("parsing calories: %w", err)
		}
		total += calories
		open = true
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if open {
		packs = append(packs, total)
	}
	if len(packs) == 0 {
		return nil, errors.New("no elves in input")
	}
	return packs, nil
}

func Part1(input string) (int, error) {
	packs, err := LoadPacks(input)
	if err != nil {
		return 0, err
	}
	return puzzle.TopN(packs, 1)[0], nil
}

func Part2(input string) (int, error) {
	packs, err := LoadPacks(input)
	if err != nil {
		return 0, err
	}
	return puzzle.Sum(puzzle.TopN(packs, 3)...), nil
}
