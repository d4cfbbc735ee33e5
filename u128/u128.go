// Package u128 implements a 128-bit unsigned integer type.
//
// It covers the handful of operations needed to multiply two 64-bit values
// without overflow and reduce the result, which is what modular simulations
// mostly need. Values are immutable; every method returns a new Uint128.
package u128

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
)

// Uint128 represents a 128-bit unsigned integer.
type Uint128 struct {
	hi uint64
	lo uint64
}

// From64 returns n as a Uint128.
func From64(n uint64) Uint128 {
	return Uint128{lo: n}
}

// Mul64 computes the full product a * b.
func Mul64(a, b uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	return Uint128{hi: hi, lo: lo}
}

// Add computes i + j, wrapping on overflow.
func (i Uint128) Add(j Uint128) Uint128 {
	lo, carry := bits.Add64(i.lo, j.lo, 0)
	hi, _ := bits.Add64(i.hi, j.hi, carry)
	return Uint128{hi: hi, lo: lo}
}

// DivMod64 computes i / m and i % m. It panics if m is zero.
func (i Uint128) DivMod64(m uint64) (Uint128, uint64) {
	if m == 0 {
		panic("u128: division by zero")
	}
	// Dividing the high word first keeps the second step's high input below
	// m, which is what bits.Div64 requires.
	qhi, r := bits.Div64(0, i.hi, m)
	qlo, r := bits.Div64(r, i.lo, m)
	return Uint128{hi: qhi, lo: qlo}, r
}

// Mod64 computes i % m. It panics if m is zero.
func (i Uint128) Mod64(m uint64) uint64 {
	if m == 0 {
		panic("u128: division by zero")
	}
	_, r := bits.Div64(i.hi%m, i.lo, m)
	return r
}

// Cmp returns -1, 0, or +1 depending on whether i is less than, equal to,
// or greater than j.
func (i Uint128) Cmp(j Uint128) int {
	switch {
	case i.hi < j.hi:
		return -1
	case i.hi > j.hi:
		return 1
	case i.lo < j.lo:
		return -1
	case i.lo > j.lo:
		return 1
	}
	return 0
}

// IsZero reports whether i is 0.
func (i Uint128) IsZero() bool { return i.hi == 0 && i.lo == 0 }

// Big returns i as a big.Int.
func (i Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(i.hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(i.lo))
}

func (i Uint128) String() string {
	if i.hi == 0 {
		return fmt.Sprint(i.lo)
	}
	var buf [40]byte
	n := len(buf)
	for !i.IsZero() {
		var r uint64
		i, r = i.DivMod64(10)
		n--
		buf[n] = byte('0' + r)
	}
	return string(buf[n:])
}

// Parse parses a decimal string with no sign or separators.
func Parse(s string) (Uint128, error) {
	var i Uint128
	if s == "" {
		return i, errors.New("u128: empty number")
	}
	for j := 0; j < len(s); j++ {
		c := s[j]
		if c < '0' || c > '9' {
			return Uint128{}, fmt.Errorf("u128: invalid digit %q in %q", c, s)
		}
		hi, lo := bits.Mul64(i.lo, 10)
		hi2, carry := bits.Mul64(i.hi, 10)
		if carry != 0 {
			return Uint128{}, fmt.Errorf("u128: %q overflows 128 bits", s)
		}
		hi, c1 := bits.Add64(hi, hi2, 0)
		if c1 != 0 {
			return Uint128{}, fmt.Errorf("u128: %q overflows 128 bits", s)
		}
		lo, c2 := bits.Add64(lo, uint64(c-'0'), 0)
		hi, c3 := bits.Add64(hi, 0, c2)
		if c3 != 0 {
			return Uint128{}, fmt.Errorf("u128: %q overflows 128 bits", s)
		}
		i = Uint128{hi: hi, lo: lo}
	}
	return i, nil
}
