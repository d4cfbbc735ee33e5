package u128

import (
	"math"
	"math/big"
	"testing"
)

var maxUint128 = Uint128{hi: math.MaxUint64, lo: math.MaxUint64}

func TestMul64(t *testing.T) {
	for _, tt := range []struct {
		a, b uint64
	}{
		{0, 0},
		{1, math.MaxUint64},
		{math.MaxUint64, math.MaxUint64},
		{96577, 96577},
		{1 << 32, 1 << 32},
		{123456789123, 987654321987},
	} {
		got := Mul64(tt.a, tt.b).Big()
		want := new(big.Int).Mul(new(big.Int).SetUint64(tt.a), new(big.Int).SetUint64(tt.b))
		if got.Cmp(want) != 0 {
			t.Errorf("Mul64(%d, %d): got %s; want %s", tt.a, tt.b, got, want)
		}
	}
}

func TestDivMod64(t *testing.T) {
	for _, tt := range []struct {
		n Uint128
		m uint64
	}{
		{From64(0), 3},
		{From64(100), 3},
		{Mul64(math.MaxUint64, math.MaxUint64), 9699690},
		{Mul64(math.MaxUint64, 12345), math.MaxUint64},
		{maxUint128, 2},
		{maxUint128, 1},
	} {
		q, r := tt.n.DivMod64(tt.m)
		var wantQ, wantR big.Int
		wantQ.DivMod(tt.n.Big(), new(big.Int).SetUint64(tt.m), &wantR)
		if q.Big().Cmp(&wantQ) != 0 || r != wantR.Uint64() {
			t.Errorf("%s.DivMod64(%d): got (%s, %d); want (%s, %s)", tt.n, tt.m, q, r, &wantQ, &wantR)
		}
		if got := tt.n.Mod64(tt.m); got != r {
			t.Errorf("%s.Mod64(%d): got %d; want %d", tt.n, tt.m, got, r)
		}
	}
}

func TestDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	From64(1).Mod64(0)
}

func TestAdd(t *testing.T) {
	got := From64(math.MaxUint64).Add(From64(1))
	if want := (Uint128{hi: 1}); got != want {
		t.Errorf("got %#v; want %#v", got, want)
	}
	if !From64(0).IsZero() || (Uint128{hi: 1}).IsZero() {
		t.Error("IsZero is wrong")
	}
	if got := maxUint128.Add(From64(1)); !got.IsZero() {
		t.Errorf("max+1: got %s; want 0", got)
	}
}

func TestCmp(t *testing.T) {
	for _, tt := range []struct {
		i, j Uint128
		want int
	}{
		{From64(1), From64(2), -1},
		{From64(2), From64(1), 1},
		{maxUint128, maxUint128, 0},
		{Uint128{hi: 1}, From64(math.MaxUint64), 1},
		{From64(math.MaxUint64), Uint128{hi: 1}, -1},
	} {
		if got := tt.i.Cmp(tt.j); got != tt.want {
			t.Errorf("%s.Cmp(%s): got %d; want %d", tt.i, tt.j, got, tt.want)
		}
	}
}

func TestStringParse(t *testing.T) {
	for _, s := range []string{
		"0",
		"10605",
		"2713310158",
		"18446744073709551615",
		"18446744073709551616",
		"340282366920938463463374607431768211455",
	} {
		n, err := Parse(s)
		if err != nil {
			t.Errorf("Parse(%q): %s", s, err)
			continue
		}
		if got := n.String(); got != s {
			t.Errorf("Parse(%q).String(): got %q", s, got)
		}
		if got := n.Big().String(); got != s {
			t.Errorf("Parse(%q).Big(): got %s", s, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"-1",
		"12a",
		"1 2",
		"340282366920938463463374607431768211456",
		"1000000000000000000000000000000000000000",
	} {
		if n, err := Parse(s); err == nil {
			t.Errorf("Parse(%q): got %s; want error", s, n)
		}
	}
}
