// Package day08 solves "Treetop Tree House".
package day08

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed sample.txt
var Sample string

// Grid holds tree heights indexed [y][x].
type Grid [][]int

// directions are the unit steps towards each edge.
var directions = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func LoadGrid(input string) (Grid, error) {
	if input == "" {
		return nil, errors.New("empty grid")
	}
	var g Grid
	for y, line := range strings.Split(input, "\n") {
		row := make([]int, len(line))
		for x, c := range line {
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("row %d column %d: invalid height %q", y+1, x+1, c)
			}
			row[x] = int(c - '0')
		}
		if len(g) > 0 && len(row) != len(g[0]) {
			return nil, fmt.Errorf("row %d: width %d, want %d", y+1, len(row), len(g[0]))
		}
		g = append(g, row)
	}
	return g, nil
}

func (g Grid) inside(x, y int) bool {
	return y >= 0 && y < len(g) && x >= 0 && x < len(g[y])
}

// look walks from (x, y) in direction d. It returns how many trees are
// seen and whether the edge was reached without being blocked.
func (g Grid) look(x, y int, d [2]int) (seen int, clear bool) {
	h := g[y][x]
	for cx, cy := x+d[0], y+d[1]; g.inside(cx, cy); cx, cy = cx+d[0], cy+d[1] {
		seen++
		if g[cy][cx] >= h {
			return seen, false
		}
	}
	return seen, true
}

func (g Grid) Visible(x, y int) bool {
	for _, d := range directions {
		if _, clear := g.look(x, y, d); clear {
			return true
		}
	}
	return false
}

func (g Grid) ScenicScore(x, y int) int {
	score := 1
	for _, d := range directions {
		seen, _ := g.look(x, y, d)
		score *= seen
	}
	return score
}

func Part1(input string) (int, error) {
	g, err := LoadGrid(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for y := range g {
		for x := range g[y] {
			if g.Visible(x, y) {
				total++
			}
		}
	}
	return total, nil
}

func Part2(input string) (int, error) {
	g, err := LoadGrid(input)
	if err != nil {
		return 0, err
	}
	best := 0
	for y := range g {
		for x := range g[y] {
			best = max(best, g.ScenicScore(x, y))
		}
	}
	return best, nil
}
