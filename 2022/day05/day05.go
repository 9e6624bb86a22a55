// Package day05 solves "Supply Stacks".
package day05

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"
)

//go:embed sample.txt
var Sample string

// Stack holds crates bottom to top.
type Stack []byte

type Move struct {
	Count int
	From  int
	To    int
}

type Dock struct {
	Stacks []Stack
	Moves  []Move
	Log    io.Writer
}

// Tops returns the crate on top of each non-empty stack.
func (d *Dock) Tops() string {
	var sb strings.Builder
	for _, s := range d.Stacks {
		if len(s) > 0 {
			sb.WriteByte(s[len(s)-1])
		}
	}
	return sb.String()
}

func (d *Dock) check(m Move) error {
	if m.From < 0 || m.From >= len(d.Stacks) || m.To < 0 || m.To >= len(d.Stacks) {
		return fmt.Errorf("move %d from %d to %d: no such stack", m.Count, m.From+1, m.To+1)
	}
	if m.Count < 0 {
		return fmt.Errorf("move %d from %d to %d: negative count", m.Count, m.From+1, m.To+1)
	}
	if m.Count > len(d.Stacks[m.From]) {
		return fmt.Errorf("move %d from %d to %d: only %d crates", m.Count, m.From+1, m.To+1, len(d.Stacks[m.From]))
	}
	return nil
}

// MoveSingly moves crates one at a time, reversing their order.
func (d *Dock) MoveSingly(m Move) error {
	if err := d.check(m); err != nil {
		return err
	}
	for i := 0; i < m.Count; i++ {
		from := d.Stacks[m.From]
		top := from[len(from)-1]
		d.Stacks[m.From] = from[:len(from)-1]
		d.Stacks[m.To] = append(d.Stacks[m.To], top)
	}
	return nil
}

// MoveBulk moves crates together, keeping their order.
func (d *Dock) MoveBulk(m Move) error {
	if err := d.check(m); err != nil {
		return err
	}
	from := d.Stacks[m.From]
	cut := len(from) - m.Count
	// Copied out first: From and To may be the same stack.
	crates := append(Stack(nil), from[cut:]...)
	d.Stacks[m.From] = from[:cut]
	d.Stacks[m.To] = append(d.Stacks[m.To], crates...)
	return nil
}

func (d *Dock) Print() {
	height := 0
	for _, s := range d.Stacks {
		height = max(height, len(s))
	}
	for row := height - 1; row >= 0; row-- {
		for _, s := range d.Stacks {
			if row < len(s) {
				fmt.Fprintf(d.Log, "[%c] ", s[row])
			} else {
				fmt.Fprint(d.Log, "    ")
			}
		}
		fmt.Fprintln(d.Log)
	}
	for i := range d.Stacks {
		fmt.Fprintf(d.Log, " %d  ", i+1)
	}
	fmt.Fprintln(d.Log)
}

func (d *Dock) Run(move func(Move) error) (string, error) {
	for _, m := range d.Moves {
		fmt.Fprintf(d.Log, "move %d from %d to %d\n", m.Count, m.From+1, m.To+1)
		if err := move(m); err != nil {
			return "", err
		}
	}
	d.Print()
	return d.Tops(), nil
}

// LoadDock reads the crate drawing followed by a blank line and the list
// of moves. Stack numbers in moves are converted to indexes.
func LoadDock(input string) (*Dock, error) {
	dock := &Dock{Log: io.Discard}
	scanner := bufio.NewScanner(strings.NewReader(input))

	var drawing []string
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "" {
			break
		}
		drawing = append(drawing, scanner.Text())
	}
	if len(drawing) == 0 {
		return nil, errors.New("missing crate drawing")
	}
	stacks, err := parseDrawing(drawing)
	if err != nil {
		return nil, err
	}
	dock.Stacks = stacks

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var m Move
		if _, err := fmt.Sscanf(line, "move %d from %d to %d", &m.Count, &m.From, &m.To); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", line, err)
		}
		m.From--
		m.To--
		dock.Moves = append(dock.Moves, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return dock, nil
}

func parseDrawing(drawing []string) ([]Stack, error) {
	labels := drawing[len(drawing)-1]
	var columns []int
	for i := 0; i < len(labels); i++ {
		c := labels[i]
		if c >= '0' && c <= '9' && (i == 0 || labels[i-1] == ' ') {
			columns = append(columns, i)
		}
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("no stack numbers in %q", labels)
	}

	stacks := make([]Stack, len(columns))
	for row := len(drawing) - 2; row >= 0; row-- {
		line := drawing[row]
		for s, col := range columns {
			// Lines may have lost their trailing spaces.
			if col >= len(line) {
				continue
			}
			c := line[col]
			switch {
			case c >= 'A' && c <= 'Z':
				stacks[s] = append(stacks[s], c)
			case c != ' ':
				return nil, fmt.Errorf("unexpected %q in stack %d", c, s+1)
			}
		}
	}
	return stacks, nil
}

func Part1(input string) (string, error) {
	dock, err := LoadDock(input)
	if err != nil {
		return "", err
	}
	return dock.Run(dock.MoveSingly)
}

func Part2(input string) (string, error) {
	dock, err := LoadDock(input)
	if err != nil {
		return "", err
	}
	return dock.Run(dock.MoveBulk)
}
