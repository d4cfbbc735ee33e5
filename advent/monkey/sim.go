package monkey

import (
	"errors"
	"fmt"
	"io"
	"math/bits"
	"sort"

	"github.com/advent/aoc2022/u128"
)

// Round counts for the two ways the simulation is normally run.
const (
	ReliefRounds   = 20
	NoReliefRounds = 10000
)

// A Sim runs rounds over a fixed set of monkeys.
type Sim struct {
	monkeys []Monkey
	relief  bool
	// modulus is the product of all divisors. Reducing worry levels by it
	// keeps them bounded without changing any divisibility test.
	modulus uint64
	err     error // sticky; set when a round cannot finish
}

// New validates monkeys and returns a simulation over a copy of them. If
// relief is set, every worry level is divided by three after inspection.
func New(monkeys []Monkey, relief bool) (*Sim, error) {
	if len(monkeys) < 2 {
		return nil, fmt.Errorf("need at least 2 monkeys; got %d", len(monkeys))
	}
	s := &Sim{
		monkeys: make([]Monkey, len(monkeys)),
		relief:  relief,
		modulus: 1,
	}
	for i, m := range monkeys {
		if m.Index != i {
			return nil, fmt.Errorf("monkey %d is at position %d", m.Index, i)
		}
		if m.Divisor == 0 {
			return nil, fmt.Errorf("monkey %d: divisor must be positive", i)
		}
		for _, target := range []int{m.IfTrue, m.IfFalse} {
			if target < 0 || target >= len(monkeys) {
				return nil, fmt.Errorf("monkey %d: throw target %d out of range", i, target)
			}
		}
		if m.IfTrue == i && m.IfFalse == i {
			return nil, fmt.Errorf("monkey %d throws every item to itself", i)
		}
		if m.Operation.Op != Add && m.Operation.Op != Multiply {
			return nil, fmt.Errorf("monkey %d: unknown op %d", i, int(m.Operation.Op))
		}
		hi, lo := bits.Mul64(s.modulus, m.Divisor)
		if hi != 0 {
			return nil, errors.New("product of divisors overflows 64 bits")
		}
		s.modulus = lo
		s.monkeys[i] = m.clone()
	}
	mod := u128.From64(s.modulus)
	for i := range s.monkeys {
		items := s.monkeys[i].Items
		for j, item := range items {
			if item.Cmp(mod) >= 0 {
				items[j] = u128.From64(item.Mod64(s.modulus))
			}
		}
	}
	return s, nil
}

// Modulus returns the product of all the monkeys' divisors.
func (s *Sim) Modulus() uint64 { return s.modulus }

// Round gives every monkey one turn, in index order. A monkey inspects items
// until its queue is empty, so an item it throws to itself is inspected again
// in the same turn. Items thrown to a monkey that has already had its turn
// wait for the next round.
//
// An item that keeps coming back to the same monkey with a worry level it
// already had during that turn would be thrown around forever; Round returns
// an error instead. After an error, the Sim is unusable and every later call
// returns the same error.
func (s *Sim) Round() error {
	if s.err != nil {
		return s.err
	}
	for i := range s.monkeys {
		if err := s.turn(i); err != nil {
			s.err = err
			return err
		}
	}
	return nil
}

// A bounce is an item that monkey threw back to itself during its turn,
// along with every worry level the item has had since it first came back.
type bounce struct {
	value uint64
	seen  map[uint64]struct{}
}

func (s *Sim) turn(i int) error {
	m := &s.monkeys[i]
	items := m.Items
	m.Items = nil
	var bounced []bounce
	for len(items) > 0 || len(bounced) > 0 {
		var (
			old  u128.Uint128
			seen map[uint64]struct{}
		)
		if len(items) > 0 {
			old = items[0]
			items = items[1:]
		} else {
			old = u128.From64(bounced[0].value)
			seen = bounced[0].seen
			bounced = bounced[1:]
		}
		v := m.Operation.Apply(old, s.modulus)
		if s.relief {
			v /= 3
		}
		target := m.IfFalse
		if v%m.Divisor == 0 {
			target = m.IfTrue
		}
		m.Inspections++
		if target != i {
			s.monkeys[target].Items = append(s.monkeys[target].Items, u128.From64(v))
			continue
		}
		// Worry levels stay below the modulus, so an item that bounces
		// forever must eventually repeat one.
		if seen == nil {
			seen = make(map[uint64]struct{})
		}
		if _, ok := seen[v]; ok {
			return fmt.Errorf("monkey %d throws an item with worry level %d to itself forever", i, v)
		}
		seen[v] = struct{}{}
		bounced = append(bounced, bounce{value: v, seen: seen})
	}
	return nil
}

// Run runs n rounds, stopping at the first error.
func (s *Sim) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := s.Round(); err != nil {
			return err
		}
	}
	return nil
}

// MonkeyBusiness returns the product of the two largest inspection counts.
func (s *Sim) MonkeyBusiness() u128.Uint128 {
	counts := s.Inspections()
	sort.Slice(counts, func(i, j int) bool { return counts[i] < counts[j] })
	return u128.Mul64(counts[len(counts)-1], counts[len(counts)-2])
}

// Inspections returns each monkey's inspection count, by index.
func (s *Sim) Inspections() []uint64 {
	counts := make([]uint64, len(s.monkeys))
	for i, m := range s.monkeys {
		counts[i] = m.Inspections
	}
	return counts
}

// ItemCount returns the number of items held by all monkeys.
func (s *Sim) ItemCount() int {
	var n int
	for _, m := range s.monkeys {
		n += len(m.Items)
	}
	return n
}

// Monkeys returns a copy of the current state of every monkey.
func (s *Sim) Monkeys() []Monkey {
	monkeys := make([]Monkey, len(s.monkeys))
	for i, m := range s.monkeys {
		monkeys[i] = m.clone()
	}
	return monkeys
}

// Solve parses monkeys from r, runs the given number of rounds, and returns
// the monkey business.
func Solve(r io.Reader, relief bool, rounds int) (u128.Uint128, error) {
	monkeys, err := Parse(r)
	if err != nil {
		return u128.Uint128{}, err
	}
	s, err := New(monkeys, relief)
	if err != nil {
		return u128.Uint128{}, err
	}
	if err := s.Run(rounds); err != nil {
		return u128.Uint128{}, err
	}
	return s.MonkeyBusiness(), nil
}
