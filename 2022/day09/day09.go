// Package day09 solves "Rope Bridge".
package day09

import (
	"bufio"
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/pborges/aoc2022/internal/puzzle"
)

//go:embed sample.txt
var Sample string

type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

var steps = map[byte]Point{
	'U': {0, 1},
	'D': {0, -1},
	'L': {-1, 0},
	'R': {1, 0},
}

type Motion struct {
	Step  Point
	Count int
}

// FollowMoves maps the offset of a knot's leader to the step the knot
// takes. Offsets absent from the table leave the knot where it is.
func FollowMoves() map[Point]Point {
	moves := make(map[Point]Point)
	for dx := -2; dx <= 2; dx++ {
		for dy := -2; dy <= 2; dy++ {
			if puzzle.Abs(dx) < 2 && puzzle.Abs(dy) < 2 {
				continue
			}
			moves[Point{dx, dy}] = Point{sign(dx), sign(dy)}
		}
	}
	return moves
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

type Rope struct {
	knots   []Point
	follow  map[Point]Point
	visited map[Point]struct{}
}

// NewRope returns a rope of n knots starting at the origin.
func NewRope(n int, follow map[Point]Point) *Rope {
	return &Rope{
		knots:   make([]Point, n),
		follow:  follow,
		visited: map[Point]struct{}{{}: {}},
	}
}

// Step moves the head by step and lets every other knot catch up.
func (r *Rope) Step(step Point) error {
	r.knots[0] = r.knots[0].Add(step)
	for i := 1; i < len(r.knots); i++ {
		offset := r.knots[i-1].Sub(r.knots[i])
		if puzzle.Abs(offset.X) > 2 || puzzle.Abs(offset.Y) > 2 {
			return fmt.Errorf("knot %d fell behind by %v", i, offset)
		}
		if move, ok := r.follow[offset]; ok {
			r.knots[i] = r.knots[i].Add(move)
		}
	}
	r.visited[r.knots[len(r.knots)-1]] = struct{}{}
	return nil
}

func (r *Rope) Tail() Point { return r.knots[len(r.knots)-1] }

// Visited returns how many distinct positions the tail has occupied.
func (r *Rope) Visited() int { return len(r.visited) }

func LoadMotions(input string) ([]Motion, error) {
	var motions []Motion
	scanner := bufio.NewScanner(strings.NewReader(input))
	for line := 1; scanner.Scan(); line++ {
		dir, count, ok := strings.Cut(scanner.Text(), " ")
		if !ok || len(dir) != 1 {
			return nil, fmt.Errorf("line %d: malformed motion %q", line, scanner.Text())
		}
		step, ok := steps[dir[0]]
		if !ok {
			return nil, fmt.Errorf("line %d: invalid direction %q", line, dir)
		}
		n, err := strconv.Atoi(count)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid amount: %w", line, err)
		}
		motions = append(motions, Motion{Step: step, Count: n})
	}
	return motions, scanner.Err()
}

// Simulate drags a rope of n knots through input.
func Simulate(input string, n int) (int, error) {
	motions, err := LoadMotions(input)
	if err != nil {
		return 0, err
	}
	rope := NewRope(n, FollowMoves())
	for _, m := range motions {
		for i := 0; i < m.Count; i++ {
			if err := rope.Step(m.Step); err != nil {
				return 0, err
			}
		}
	}
	return rope.Visited(), nil
}

func Part1(input string) (int, error) {
	return Simulate(input, 2)
}

func Part2(input string) (int, error) {
	return Simulate(input, 10)
}
