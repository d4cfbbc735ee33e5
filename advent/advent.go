package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/felixge/fgprof"
)

func main() {
	log.SetFlags(0)
	profile := flag.String("fgprof", "", "write a wall-clock profile of the solution to `file`")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	name := flag.Arg(0)
	fn, ok := solutions[name]
	if !ok {
		log.Fatalf("unknown solution %q", name)
	}
	stop := func() error { return nil }
	if *profile != "" {
		var err error
		stop, err = startProfile(*profile)
		if err != nil {
			log.Fatal(err)
		}
	}
	err := fn(flag.Args()[1:])
	if err := stop(); err != nil {
		log.Println("Error writing profile:", err)
	}
	if err != nil {
		log.Fatalf("%s: %s", name, err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-fgprof file] [solution] [args...]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range solutionNames() {
		fmt.Fprintln(os.Stderr, name)
	}
}

// startProfile begins an fgprof profile written to path in pprof format.
// The returned func stops the profile and closes the file.
func startProfile(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	stop := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stop(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}

var solutions = make(map[string]func([]string) error)

func register(name string, fn func([]string) error) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	splitName(name) // panics on names without a day number
	solutions[name] = fn
}

func solutionNames() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

// nameLess orders solution names by day number, then by suffix,
// so that "9" < "10" < "11a" < "11b".
func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
