package monkey

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/advent/aoc2022/u128"
)

// Parse reads monkey descriptions from r. Each description is six lines:
//
//	Monkey 0:
//	  Starting items: 79, 98
//	  Operation: new = old * 19
//	  Test: divisible by 23
//	    If true: throw to monkey 2
//	    If false: throw to monkey 3
//
// Descriptions may be separated by blank lines. Parse only checks syntax;
// New checks that the monkeys make sense together.
func Parse(r io.Reader) ([]Monkey, error) {
	p := parser{scanner: bufio.NewScanner(r)}
	var monkeys []Monkey
	for {
		line, ok := p.next()
		if !ok {
			break
		}
		m, err := p.parseMonkey(line)
		if err != nil {
			return nil, err
		}
		monkeys = append(monkeys, m)
	}
	if err := p.scanner.Err(); err != nil {
		return nil, err
	}
	if len(monkeys) == 0 {
		return nil, errors.New("no monkeys in input")
	}
	return monkeys, nil
}

type parser struct {
	scanner *bufio.Scanner
	lineNum int
}

// next returns the next non-blank line, trimmed.
func (p *parser) next() (string, bool) {
	for p.scanner.Scan() {
		p.lineNum++
		line := strings.TrimSpace(p.scanner.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s", p.lineNum, fmt.Sprintf(format, args...))
}

// field reads the next line, which must start with prefix, and returns the
// remainder.
func (p *parser) field(prefix string) (string, error) {
	line, ok := p.next()
	if !ok {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", p.errorf("unexpected EOF; want %q", prefix)
	}
	rest, ok := strings.CutPrefix(line, prefix)
	if !ok {
		return "", p.errorf("got %q; want %q", line, prefix)
	}
	return strings.TrimSpace(rest), nil
}

func (p *parser) parseMonkey(header string) (Monkey, error) {
	var m Monkey
	s, ok := strings.CutPrefix(header, "Monkey ")
	if !ok {
		return m, p.errorf("bad monkey header %q", header)
	}
	s, ok = strings.CutSuffix(s, ":")
	if !ok {
		return m, p.errorf("bad monkey header %q", header)
	}
	var err error
	if m.Index, err = p.parseIndex(s); err != nil {
		return m, err
	}

	if s, err = p.field("Starting items:"); err != nil {
		return m, err
	}
	if s != "" {
		for _, f := range strings.Split(s, ",") {
			f = strings.TrimSpace(f)
			n, err := u128.Parse(f)
			if err != nil {
				return m, p.errorf("bad item %q", f)
			}
			m.Items = append(m.Items, n)
		}
	}

	if s, err = p.field("Operation: new = old"); err != nil {
		return m, err
	}
	if m.Operation, err = p.parseOperation(s); err != nil {
		return m, err
	}

	if s, err = p.field("Test: divisible by"); err != nil {
		return m, err
	}
	if m.Divisor, err = strconv.ParseUint(s, 10, 64); err != nil {
		return m, p.errorf("bad divisor %q", s)
	}

	if s, err = p.field("If true: throw to monkey"); err != nil {
		return m, err
	}
	if m.IfTrue, err = p.parseIndex(s); err != nil {
		return m, err
	}
	if s, err = p.field("If false: throw to monkey"); err != nil {
		return m, err
	}
	if m.IfFalse, err = p.parseIndex(s); err != nil {
		return m, err
	}
	return m, nil
}

func (p *parser) parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, p.errorf("bad monkey index %q", s)
	}
	return n, nil
}

func (p *parser) parseOperation(s string) (Operation, error) {
	var o Operation
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return o, p.errorf("bad operation %q", s)
	}
	switch parts[0] {
	case "+":
		o.Op = Add
	case "*":
		o.Op = Multiply
	default:
		return o, p.errorf("unknown operator %q", parts[0])
	}
	if parts[1] == "old" {
		o.Operand = Old()
		return o, nil
	}
	n, err := u128.Parse(parts[1])
	if err != nil {
		return o, p.errorf("bad operand %q", parts[1])
	}
	o.Operand = Literal128(n)
	return o, nil
}
