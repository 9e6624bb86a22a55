package day11

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ParseError reports the block and grammar rule that failed.
type ParseError struct {
	Block int
	Rule  string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("block %d: %s: %v", e.Block, e.Rule, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var monkeyLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[:,=*+\-/^%]`},
	{Name: "Newline", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

// Every field sits on its own line; indentation is free.
type monkeyBlock struct {
	ID        string         `Newline* "Monkey" @Int ":" Newline`
	Items     []string       `"Starting" "items" ":" ( @Int ( "," @Int )* )? Newline`
	Operation operationBlock `"Operation" ":" "new" "=" "old" @@ Newline`
	Divisor   string         `"Test" ":" "divisible" "by" @Int Newline`
	IfTrue    string         `"If" "true" ":" "throw" "to" "monkey" @Int Newline`
	IfFalse   string         `"If" "false" ":" "throw" "to" "monkey" @Int Newline*`
}

type operationBlock struct {
	Operator string `@( "*" | "+" )`
	Old      bool   `( @"old"`
	Operand  string `| @Int )`
}

var monkeyParser = participle.MustBuild[monkeyBlock](
	participle.Lexer(monkeyLexer),
	participle.Elide("Whitespace"),
)

var blankLine = regexp.MustCompile(`\r?\n[ \t\r]*\n`)

// Parse converts the puzzle input into monkeys in block order. The first
// malformed block aborts parsing.
func Parse(input string) ([]*Monkey, error) {
	if input == "" {
		return nil, &ParseError{Rule: "input", Err: errors.New("no monkeys")}
	}
	blocks := blankLine.Split(input, -1)
	monkeys := make([]*Monkey, 0, len(blocks))
	for i, text := range blocks {
		m, err := parseBlock(i, text)
		if err != nil {
			return nil, err
		}
		monkeys = append(monkeys, m)
	}
	return monkeys, nil
}

func parseBlock(i int, text string) (*Monkey, error) {
	block, err := monkeyParser.ParseString(fmt.Sprintf("monkey block %d", i), text)
	if err != nil {
		return nil, &ParseError{Block: i, Rule: "monkey", Err: err}
	}

	m := &Monkey{ID: block.ID}
	for _, s := range block.Items {
		v, err := parseWide(s)
		if err != nil {
			return nil, &ParseError{Block: i, Rule: "items", Err: err}
		}
		m.Items = append(m.Items, v)
	}

	if m.Operation, err = block.Operation.lower(); err != nil {
		return nil, &ParseError{Block: i, Rule: "operation", Err: err}
	}

	if m.Test.Divisor, err = parseWide(block.Divisor); err != nil {
		return nil, &ParseError{Block: i, Rule: "divisor", Err: err}
	}
	if m.Test.Divisor.Sign() == 0 {
		return nil, &ParseError{Block: i, Rule: "divisor", Err: errors.New("divisor must be positive")}
	}

	if m.Test.IfTrue, err = parseTarget(block.IfTrue); err != nil {
		return nil, &ParseError{Block: i, Rule: "if_true", Err: err}
	}
	if m.Test.IfFalse, err = parseTarget(block.IfFalse); err != nil {
		return nil, &ParseError{Block: i, Rule: "if_false", Err: err}
	}
	return m, nil
}

func (o operationBlock) lower() (Operation, error) {
	switch {
	case o.Operator == "*" && o.Old:
		return Operation{Kind: Square}, nil
	case o.Old:
		return Operation{}, fmt.Errorf("unsupported operation \"old %s old\"", o.Operator)
	}
	n, err := parseWide(o.Operand)
	if err != nil {
		return Operation{}, err
	}
	switch o.Operator {
	case "*":
		return Operation{Kind: Multiply, Operand: n}, nil
	case "+":
		return Operation{Kind: Add, Operand: n}, nil
	}
	return Operation{}, fmt.Errorf("unsupported operator %q", o.Operator)
}

func parseWide(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

func parseTarget(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return n, nil
}
