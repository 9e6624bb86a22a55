package day11

import (
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/pborges/aoc2022/internal/puzzle"
)

const (
	// RelievedRounds is how long part one runs.
	RelievedRounds = 20
	// ReducingRounds is how long part two runs.
	ReducingRounds = 10000
)

var ErrTooFewMonkeys = errors.New("need at least two monkeys")

var three = big.NewInt(3)

type OpKind int

const (
	Add OpKind = iota
	Multiply
	Square
)

func (k OpKind) String() string {
	switch k {
	case Add:
		return "add"
	case Multiply:
		return "multiply"
	case Square:
		return "square"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Operation is applied to every worry level a monkey inspects. Operand is
// nil for Square.
type Operation struct {
	Kind    OpKind
	Operand *big.Int
}

func (o Operation) Apply(old *big.Int) *big.Int {
	v := new(big.Int)
	switch o.Kind {
	case Add:
		return v.Add(old, o.Operand)
	case Multiply:
		return v.Mul(old, o.Operand)
	default:
		return v.Mul(old, old)
	}
}

type Test struct {
	Divisor *big.Int
	IfTrue  int
	IfFalse int
}

// Target returns the monkey that receives v.
func (t Test) Target(v *big.Int) int {
	if new(big.Int).Rem(v, t.Divisor).Sign() == 0 {
		return t.IfTrue
	}
	return t.IfFalse
}

type Monkey struct {
	ID        string
	Items     []*big.Int
	Operation Operation
	Test      Test
	Inspected uint64
}

// inspect applies the operation to a snapshot of the current items.
func (m *Monkey) inspect() []*big.Int {
	out := make([]*big.Int, len(m.Items))
	for i, item := range m.Items {
		out[i] = m.Operation.Apply(item)
	}
	return out
}

// TargetError is returned when a monkey throws to an index that does not
// exist.
type TargetError struct {
	From int
	To   int
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("monkey %d throws to unknown monkey %d", e.From, e.To)
}

// Mode selects how worry levels are kept in check after an inspection.
type Mode int

const (
	// Relief floor-divides every worry level by three.
	Relief Mode = iota
	// Reducing keeps worry levels modulo the product of all divisors.
	Reducing
)

func (m Mode) String() string {
	if m == Reducing {
		return "reducing"
	}
	return "relief"
}

type Option func(*Troop)

// WithLogger reports inspection counts at debug level while running.
func WithLogger(log *zap.Logger) Option {
	return func(t *Troop) {
		if log != nil {
			t.log = log
		}
	}
}

// Troop runs the keep-away game over a fixed set of monkeys. It owns the
// monkeys it is given.
type Troop struct {
	monkeys []*Monkey
	mode    Mode
	modulus *big.Int
	rounds  int
	log     *zap.Logger
}

func NewTroop(monkeys []*Monkey, mode Mode, opts ...Option) *Troop {
	// The product rather than the LCM: larger than needed, but every
	// divisibility test still sees the same remainder.
	modulus := big.NewInt(1)
	for _, m := range monkeys {
		modulus.Mul(modulus, m.Test.Divisor)
	}
	t := &Troop{
		monkeys: monkeys,
		mode:    mode,
		modulus: modulus,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Modulus is the product of every monkey's divisor.
func (t *Troop) Modulus() *big.Int { return new(big.Int).Set(t.modulus) }

func (t *Troop) relieve(v *big.Int) {
	if t.mode == Reducing {
		v.Mod(v, t.modulus)
		return
	}
	v.Quo(v, three)
}

// Round lets every monkey take its turn in index order. Items thrown to a
// monkey later in the order are inspected again within the same round.
func (t *Troop) Round() error {
	for i, m := range t.monkeys {
		items := m.inspect()
		for _, item := range items {
			t.relieve(item)
			to := m.Test.Target(item)
			if to < 0 || to >= len(t.monkeys) {
				return &TargetError{From: i, To: to}
			}
			t.monkeys[to].Items = append(t.monkeys[to].Items, item)
		}
		m.Items = nil
		m.Inspected += uint64(len(items))
	}
	t.rounds++
	return nil
}

// Run plays n rounds, stopping at the first error.
func (t *Troop) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := t.Round(); err != nil {
			return fmt.Errorf("round %d: %w", t.rounds+1, err)
		}
		if t.rounds == 1 || t.rounds == 20 || t.rounds%1000 == 0 {
			t.logCounts()
		}
	}
	return nil
}

func (t *Troop) logCounts() {
	if ce := t.log.Check(zap.DebugLevel, "inspection counts"); ce != nil {
		counts := make([]uint64, len(t.monkeys))
		for i, m := range t.monkeys {
			counts[i] = m.Inspected
		}
		ce.Write(zap.Int("round", t.rounds), zap.Stringer("mode", t.mode), zap.Uint64s("inspected", counts))
	}
}

// MonkeyBusiness multiplies the two highest inspection counts.
func (t *Troop) MonkeyBusiness() (*big.Int, error) {
	if len(t.monkeys) < 2 {
		return nil, ErrTooFewMonkeys
	}
	counts := make([]uint64, len(t.monkeys))
	for i, m := range t.monkeys {
		counts[i] = m.Inspected
	}
	top := puzzle.TopN(counts, 2)
	a := new(big.Int).SetUint64(top[0])
	return a.Mul(a, new(big.Int).SetUint64(top[1])), nil
}
