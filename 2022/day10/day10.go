// Package day10 solves "Cathode-Ray Tube".
package day10

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

//go:embed sample.txt
var Sample string

const (
	ScreenWidth  = 40
	ScreenHeight = 6
)

type Op int

const (
	Noop Op = iota
	Addx
)

type Instruction struct {
	Op    Op
	Value int
}

var programLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-z]+`},
	{Name: "Int", Pattern: `-?[0-9]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type programAST struct {
	Instructions []*instructionAST `@@*`
}

type instructionAST struct {
	Pos  lexer.Position
	Noop bool    `  @"noop"`
	Addx *string `| "addx" @Int`
}

var programParser = participle.MustBuild[programAST](
	participle.Lexer(programLexer),
	participle.Elide("Whitespace"),
)

func LoadProgram(input string) ([]Instruction, error) {
	ast, err := programParser.ParseString("program", input)
	if err != nil {
		return nil, err
	}
	program := make([]Instruction, 0, len(ast.Instructions))
	for _, in := range ast.Instructions {
		if in.Addx == nil {
			program = append(program, Instruction{Op: Noop})
			continue
		}
		v, err := strconv.Atoi(*in.Addx)
		if err != nil {
			return nil, fmt.Errorf("%s: addx: %w", in.Pos, err)
		}
		program = append(program, Instruction{Op: Addx, Value: v})
	}
	return program, nil
}

// CPU executes a program one clock cycle at a time. Cycle is the number
// of the cycle currently in progress and X is the register during it.
type CPU struct {
	Cycle int
	X     int

	program []Instruction
	pc      int
	pending int // cycles left on the current instruction
}

func NewCPU(program []Instruction) *CPU {
	return &CPU{Cycle: 1, X: 1, program: program}
}

// Tick finishes the current cycle. It returns false once the program has
// run to completion.
func (c *CPU) Tick() bool {
	if c.pc >= len(c.program) {
		return false
	}
	c.Cycle++
	in := c.program[c.pc]
	switch in.Op {
	case Noop:
		c.pc++
	case Addx:
		if c.pending == 0 {
			c.pending = 2
		}
		c.pending--
		if c.pending == 0 {
			c.X += in.Value
			c.pc++
		}
	}
	return true
}

type Screen [ScreenHeight][ScreenWidth]bool

func (s *Screen) String() string {
	var sb strings.Builder
	for y, row := range s {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, on := range row {
			if on {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

func Part1(input string) (int, error) {
	program, err := LoadProgram(input)
	if err != nil {
		return 0, err
	}
	cpu := NewCPU(program)
	total := 0
	for cpu.Tick() {
		if (cpu.Cycle+20)%40 == 0 {
			total += cpu.Cycle * cpu.X
		}
	}
	return total, nil
}

func Part2(input string) (string, error) {
	program, err := LoadProgram(input)
	if err != nil {
		return "", err
	}
	cpu := NewCPU(program)
	var screen Screen
	for {
		x, y := (cpu.Cycle-1)%ScreenWidth, (cpu.Cycle-1)/ScreenWidth
		if y >= ScreenHeight {
			break
		}
		if x >= cpu.X-1 && x <= cpu.X+1 {
			screen[y][x] = true
		}
		if !cpu.Tick() {
			break
		}
	}
	return screen.String(), nil
}
