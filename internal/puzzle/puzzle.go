// Package puzzle holds the plumbing shared by the daily solvers: the
// registry of days, input loading and a runner that checks answers.
package puzzle

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownDay is returned when a day has no registered solver.
var ErrUnknownDay = errors.New("unknown day")

// Part solves one half of a puzzle.
type Part func(input string) (any, error)

// PartOf adapts a typed solver to a Part.
func PartOf[T any](f func(string) (T, error)) Part {
	return func(input string) (any, error) {
		v, err := f(input)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

type Day struct {
	Number int
	Title  string
	Sample string
	Part1  Part
	Part2  Part
}

type Registry struct {
	days map[int]Day
}

func NewRegistry(days ...Day) (*Registry, error) {
	r := &Registry{days: make(map[int]Day, len(days))}
	for _, d := range days {
		if d.Number < 1 || d.Number > 25 {
			return nil, fmt.Errorf("day %d out of range", d.Number)
		}
		if d.Part1 == nil || d.Part2 == nil {
			return nil, fmt.Errorf("day %d is missing a part", d.Number)
		}
		if _, ok := r.days[d.Number]; ok {
			return nil, fmt.Errorf("day %d registered twice", d.Number)
		}
		r.days[d.Number] = d
	}
	return r, nil
}

func (r *Registry) Get(n int) (Day, error) {
	d, ok := r.days[n]
	if !ok {
		return Day{}, fmt.Errorf("day %d: %w", n, ErrUnknownDay)
	}
	return d, nil
}

// Days returns every registered day in ascending order.
func (r *Registry) Days() []Day {
	days := make([]Day, 0, len(r.days))
	for _, d := range r.days {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Number < days[j].Number })
	return days
}

// Latest returns the highest numbered day.
func (r *Registry) Latest() (Day, error) {
	days := r.Days()
	if len(days) == 0 {
		return Day{}, ErrUnknownDay
	}
	return days[len(days)-1], nil
}
