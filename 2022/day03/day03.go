// Package day03 solves "Rucksack Reorganization".
package day03

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed sample.txt
var Sample string

// Priority returns 1-26 for a-z and 27-52 for A-Z.
func Priority(item rune) (int, error) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, nil
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, nil
	}
	return 0, fmt.Errorf("invalid item %q", item)
}

// common returns the first rune of first that appears in every other set.
func common(first string, others ...string) (rune, bool) {
	for _, c := range first {
		found := true
		for _, o := range others {
			if !strings.ContainsRune(o, c) {
				found = false
				break
			}
		}
		if found {
			return c, true
		}
	}
	return 0, false
}

func lines(input string) []string {
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

func Part1(input string) (int, error) {
	total := 0
	for i, line := range lines(input) {
		if len(line)%2 != 0 {
			return 0, fmt.Errorf("line %d: odd number of items", i+1)
		}
		first, second := line[:len(line)/2], line[len(line)/2:]
		c, ok := common(second, first)
		if !ok {
			continue
		}
		p, err := Priority(c)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += p
	}
	return total, nil
}

func Part2(input string) (int, error) {
	sacks := lines(input)
	if len(sacks)%3 != 0 {
		return 0, fmt.Errorf("%d rucksacks cannot be split into groups of three", len(sacks))
	}
	total := 0
	for i := 0; i < len(sacks); i += 3 {
		c, ok := common(sacks[i], sacks[i+1], sacks[i+2])
		if !ok {
			continue
		}
		p, err := Priority(c)
		if err != nil {
			return 0, fmt.Errorf("group %d: %w", i/3+1, err)
		}
		total += p
	}
	return total, nil
}
