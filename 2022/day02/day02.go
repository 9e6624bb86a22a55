// Package day02 solves "Rock Paper Scissors".
package day02

import (
	"bufio"
	_ "embed"
	"fmt"
	"strings"
)

//go:embed sample.txt
var Sample string

type Shape int

const (
	Rock Shape = iota + 1
	Paper
	Scissors
)

type Outcome int

const (
	Loss Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

// beats maps each shape to the shape it defeats.
var beats = map[Shape]Shape{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

func parseShape(code string) (Shape, error) {
	switch code {
	case "A", "X":
		return Rock, nil
	case "B", "Y":
		return Paper, nil
	case "C", "Z":
		return Scissors, nil
	}
	return 0, fmt.Errorf("unknown shape %q", code)
}

func parseOutcome(code string) (Outcome, error) {
	switch code {
	case "X":
		return Loss, nil
	case "Y":
		return Draw, nil
	case "Z":
		return Win, nil
	}
	return 0, fmt.Errorf("unknown outcome %q", code)
}

// Play returns the outcome for me against opponent.
func Play(me, opponent Shape) Outcome {
	switch {
	case me == opponent:
		return Draw
	case beats[me] == opponent:
		return Win
	}
	return Loss
}

// Choose returns the shape that produces want against opponent.
func Choose(opponent Shape, want Outcome) Shape {
	for _, me := range []Shape{Rock, Paper, Scissors} {
		if Play(me, opponent) == want {
			return me
		}
	}
	return opponent
}

func Score(me Shape, o Outcome) int {
	return int(me) + int(o)
}

func score(input string, round func(opponent Shape, code string) (int, error)) (int, error) {
	total := 0
	scanner := bufio.NewScanner(strings.NewReader(input))
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			return 0, fmt.Errorf("line %d: expected two columns, got %d", line, len(fields))
		}
		opponent, err := parseShape(fields[0])
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", line, err)
		}
		s, err := round(opponent, fields[1])
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", line, err)
		}
		total += s
	}
	return total, scanner.Err()
}

func Part1(input string) (int, error) {
	return score(input, func(opponent Shape, code string) (int, error) {
		me, err := parseShape(code)
		if err != nil {
			return 0, err
		}
		return Score(me, Play(me, opponent)), nil
	})
}

func Part2(input string) (int, error) {
	return score(input, func(opponent Shape, code string) (int, error) {
		want, err := parseOutcome(code)
		if err != nil {
			return 0, err
		}
		return Score(Choose(opponent, want), want), nil
	})
}
