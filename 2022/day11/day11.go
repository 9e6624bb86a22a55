// Package day11 solves "Monkey in the Middle": monkeys described by a
// small grammar pass worry levels between each other for a fixed number
// of rounds.
package day11

import (
	_ "embed"
	"math/big"

	"go.uber.org/zap"
)

//go:embed sample.txt
var Sample string

// Solve parses input and plays rounds in the given mode.
func Solve(input string, mode Mode, rounds int, opts ...Option) (*big.Int, error) {
	monkeys, err := Parse(input)
	if err != nil {
		return nil, err
	}
	troop := NewTroop(monkeys, mode, opts...)
	if err := troop.Run(rounds); err != nil {
		return nil, err
	}
	return troop.MonkeyBusiness()
}

func Part1(input string) (*big.Int, error) {
	return Solve(input, Relief, RelievedRounds)
}

func Part2(input string) (*big.Int, error) {
	return Solve(input, Reducing, ReducingRounds)
}

// Parts returns both parts logging progress to log.
func Parts(log *zap.Logger) (part1, part2 func(string) (*big.Int, error)) {
	part1 = func(input string) (*big.Int, error) {
		return Solve(input, Relief, RelievedRounds, WithLogger(log))
	}
	part2 = func(input string) (*big.Int, error) {
		return Solve(input, Reducing, ReducingRounds, WithLogger(log))
	}
	return part1, part2
}
