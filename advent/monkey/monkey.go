// Package monkey simulates monkeys throwing items to each other.
//
// Each monkey holds a queue of items (worry levels). On its turn a monkey
// inspects every item in its queue: it applies its operation to the item,
// optionally divides by three ("relief"), and throws the result to one of two
// other monkeys depending on whether it is divisible by the monkey's divisor.
// A round is one turn for every monkey in index order. After some number of
// rounds, the answer ("monkey business") is the product of the two largest
// inspection counts.
package monkey

import (
	"fmt"

	"github.com/advent/aoc2022/u128"
)

// Op is the arithmetic applied by an Operation.
type Op int

const (
	Add Op = iota
	Multiply
)

func (op Op) String() string {
	switch op {
	case Add:
		return "+"
	case Multiply:
		return "*"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// An Operand is the right-hand side of an Operation: either a literal value
// or the item's own current value.
type Operand struct {
	old   bool
	value u128.Uint128
}

// Literal returns an Operand with the fixed value v.
func Literal(v uint64) Operand { return Operand{value: u128.From64(v)} }

// Literal128 is like Literal for values that may not fit in 64 bits.
func Literal128(v u128.Uint128) Operand { return Operand{value: v} }

// Old returns an Operand that refers to the item being inspected.
func Old() Operand { return Operand{old: true} }

// IsOld reports whether o refers to the item being inspected.
func (o Operand) IsOld() bool { return o.old }

// Value returns the literal value of o. It is meaningless if o.IsOld().
func (o Operand) Value() u128.Uint128 { return o.value }

func (o Operand) String() string {
	if o.old {
		return "old"
	}
	return o.value.String()
}

func (o Operand) resolve(old u128.Uint128) u128.Uint128 {
	if o.old {
		return old
	}
	return o.value
}

// An Operation computes a new worry level from an old one.
type Operation struct {
	Op      Op
	Operand Operand
}

// Apply returns (old op operand) mod modulus. Both sides are reduced first
// and the intermediate value is computed in 128 bits, so it cannot overflow.
func (o Operation) Apply(old u128.Uint128, modulus uint64) uint64 {
	a := old.Mod64(modulus)
	b := o.Operand.resolve(old).Mod64(modulus)
	switch o.Op {
	case Add:
		return u128.From64(a).Add(u128.From64(b)).Mod64(modulus)
	case Multiply:
		return u128.Mul64(a, b).Mod64(modulus)
	}
	panic(fmt.Sprintf("monkey: unknown op %d", int(o.Op)))
}

func (o Operation) String() string {
	return fmt.Sprintf("new = old %s %s", o.Op, o.Operand)
}

// A Monkey is one participant in the simulation.
type Monkey struct {
	Index     int
	Items     []u128.Uint128 // front of the queue first
	Operation Operation
	Divisor   uint64
	IfTrue    int
	IfFalse   int

	// Inspections counts the items this monkey has inspected.
	Inspections uint64
}

func (m Monkey) clone() Monkey {
	m.Items = append([]u128.Uint128(nil), m.Items...)
	return m
}
