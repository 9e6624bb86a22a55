// Package day07 solves "No Space Left On Device": a terminal session is
// replayed into a directory tree.
package day07

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

//go:embed sample.txt
var Sample string

const (
	DiskSize   = 70_000_000
	UpdateSize = 30_000_000
	SmallDir   = 100_000
)

type Dir struct {
	Name  string
	Files map[string]int
	Dirs  map[string]*Dir
}

func newDir(name string) *Dir {
	return &Dir{Name: name, Files: map[string]int{}, Dirs: map[string]*Dir{}}
}

func (d *Dir) child(name string) *Dir {
	c, ok := d.Dirs[name]
	if !ok {
		c = newDir(name)
		d.Dirs[name] = c
	}
	return c
}

func (d *Dir) Size() int {
	total := 0
	for _, size := range d.Files {
		total += size
	}
	for _, c := range d.Dirs {
		total += c.Size()
	}
	return total
}

// Walk visits d and every directory beneath it.
func (d *Dir) Walk(visit func(*Dir)) {
	visit(d)
	for _, c := range d.Dirs {
		c.Walk(visit)
	}
}

// Replay rebuilds the file tree from a terminal session made of "$ cd"
// and "$ ls" commands.
func Replay(input string) (*Dir, error) {
	root := newDir("/")
	var path []*Dir
	cwd := func() *Dir {
		if len(path) == 0 {
			return root
		}
		return path[len(path)-1]
	}

	for _, exec := range strings.Split(input, "$ ") {
		if strings.TrimSpace(exec) == "" {
			continue
		}
		command, output, _ := strings.Cut(exec, "\n")
		args := strings.Fields(command)
		if len(args) == 0 {
			return nil, errors.New("empty command")
		}
		switch args[0] {
		case "cd":
			if len(args) != 2 {
				return nil, fmt.Errorf("cd: expected one argument, got %d", len(args)-1)
			}
			switch args[1] {
			case "/":
				path = path[:0]
			case "..":
				if len(path) > 0 {
					path = path[:len(path)-1]
				}
			default:
				path = append(path, cwd().child(args[1]))
			}
		case "ls":
			dir := cwd()
			for _, entry := range strings.Split(output, "\n") {
				fields := strings.Fields(entry)
				if len(fields) == 0 {
					continue
				}
				if len(fields) != 2 {
					return nil, fmt.Errorf("ls: malformed entry %q", entry)
				}
				if fields[0] == "dir" {
					dir.child(fields[1])
					continue
				}
				size, err := strconv.Atoi(fields[0])
				if err != nil {
					return nil, fmt.Errorf("ls: size of %s: %w", fields[1], err)
				}
				dir.Files[fields[1]] = size
			}
		default:
			return nil, fmt.Errorf("unknown command: %s", args[0])
		}
	}
	return root, nil
}

func Part1(input string) (int, error) {
	root, err := Replay(input)
	if err != nil {
		return 0, err
	}
	total := 0
	root.Walk(func(d *Dir) {
		if size := d.Size(); size <= SmallDir {
			total += size
		}
	})
	return total, nil
}

func Part2(input string) (int, error) {
	root, err := Replay(input)
	if err != nil {
		return 0, err
	}
	need := root.Size() - (DiskSize - UpdateSize)
	if need <= 0 {
		return 0, nil
	}
	best := DiskSize
	root.Walk(func(d *Dir) {
		if size := d.Size(); size >= need && size < best {
			best = size
		}
	})
	return best, nil
}
