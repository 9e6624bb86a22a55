package main

import (
	"go.uber.org/zap"

	"github.com/pborges/aoc2022/2022/day01"
	"github.com/pborges/aoc2022/2022/day02"
	"github.com/pborges/aoc2022/2022/day03"
	"github.com/pborges/aoc2022/2022/day05"
	"github.com/pborges/aoc2022/2022/day07"
	"github.com/pborges/aoc2022/2022/day08"
	"github.com/pborges/aoc2022/2022/day09"
	"github.com/pborges/aoc2022/2022/day10"
	"github.com/pborges/aoc2022/2022/day11"
	"github.com/pborges/aoc2022/internal/puzzle"
)

// registry lists every solved day. log is handed to solvers that report
// progress.
func registry(log *zap.Logger) (*puzzle.Registry, error) {
	monkeys1, monkeys2 := day11.Parts(log.Named("day11"))
	return puzzle.NewRegistry(
		puzzle.Day{Number: 1, Title: "Calorie Counting", Sample: day01.Sample,
			Part1: puzzle.PartOf(day01.Part1), Part2: puzzle.PartOf(day01.Part2)},
		puzzle.Day{Number: 2, Title: "Rock Paper Scissors", Sample: day02.Sample,
			Part1: puzzle.PartOf(day02.Part1), Part2: puzzle.PartOf(day02.Part2)},
		puzzle.Day{Number: 3, Title: "Rucksack Reorganization", Sample: day03.Sample,
			Part1: puzzle.PartOf(day03.Part1), Part2: puzzle.PartOf(day03.Part2)},
		puzzle.Day{Number: 5, Title: "Supply Stacks", Sample: day05.Sample,
			Part1: puzzle.PartOf(day05.Part1), Part2: puzzle.PartOf(day05.Part2)},
		puzzle.Day{Number: 7, Title: "No Space Left On Device", Sample: day07.Sample,
			Part1: puzzle.PartOf(day07.Part1), Part2: puzzle.PartOf(day07.Part2)},
		puzzle.Day{Number: 8, Title: "Treetop Tree House", Sample: day08.Sample,
			Part1: puzzle.PartOf(day08.Part1), Part2: puzzle.PartOf(day08.Part2)},
		puzzle.Day{Number: 9, Title: "Rope Bridge", Sample: day09.Sample,
			Part1: puzzle.PartOf(day09.Part1), Part2: puzzle.PartOf(day09.Part2)},
		puzzle.Day{Number: 10, Title: "Cathode-Ray Tube", Sample: day10.Sample,
			Part1: puzzle.PartOf(day10.Part1), Part2: puzzle.PartOf(day10.Part2)},
		puzzle.Day{Number: 11, Title: "Monkey in the Middle", Sample: day11.Sample,
			Part1: puzzle.PartOf(monkeys1), Part2: puzzle.PartOf(monkeys2)},
	)
}
