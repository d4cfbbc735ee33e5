package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/advent/aoc2022/advent/monkey"
	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
)

func init() {
	register("11a", day11a.main)
	register("11b", day11b.main)
}

var (
	day11a = monkeyDay{name: "11a", relief: true, rounds: monkey.ReliefRounds}
	day11b = monkeyDay{name: "11b", relief: false, rounds: monkey.NoReliefRounds}
)

type monkeyDay struct {
	name   string
	relief bool
	rounds int // default
}

func (d monkeyDay) main(args []string) error {
	return d.run(args, os.Stdin, os.Stdout, os.Stderr)
}

func (d monkeyDay) run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet(d.name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	rounds := fs.Int("rounds", d.rounds, "number of rounds to run")
	verbose := fs.Bool("v", false, "print the parsed monkeys and inspection counts to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *rounds < 0 {
		return errors.New("-rounds must be non-negative")
	}

	r := stdin
	switch fs.NArg() {
	case 0:
	case 1:
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	default:
		return errors.New("need at most 1 arg (input file)")
	}

	monkeys, err := monkey.Parse(r)
	if err != nil {
		return err
	}
	if *verbose {
		pretty.Fprintf(stderr, "%# v\n", monkeys)
	}
	sim, err := monkey.New(monkeys, d.relief)
	if err != nil {
		return err
	}
	if err := sim.Run(*rounds); err != nil {
		return err
	}
	business := sim.MonkeyBusiness()
	if *verbose {
		for i, n := range sim.Inspections() {
			fmt.Fprintf(stderr, "Monkey %d inspected items %s times.\n", i, commaUint64(n))
		}
		fmt.Fprintf(stderr, "Monkey business after %s rounds: %s\n",
			humanize.Comma(int64(*rounds)), humanize.BigComma(business.Big()))
	}
	_, err = fmt.Fprintln(stdout, business)
	return err
}

// commaUint64 is humanize.Comma for the full uint64 range.
func commaUint64(n uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(n))
}
