// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bits_test

import (
	"math/rand"
	"testing"

	"github.com/spalmer/comb/bits"
)

func TestFromBstr_roundTrip(t *testing.T) {
	td := []string{"0", "1", "1101", "00000000", "10110100111"}
	for _, s := range td {
		if got := bits.FromBstr(s).String(); got != s {
			t.Errorf("FromBstr(%q).String() = %q", s, got)
		}
	}
}

func TestFromUint64(t *testing.T) {
	td := []struct {
		w    int
		v    uint64
		bstr string
	}{
		{1, 0, "0"},
		{1, 1, "1"},
		{4, 13, "1101"},
		{8, 0xa5, "10100101"},
		{70, 3, "0000000000000000000000000000000000000000000000000000000000000000000011"},
	}
	for _, d := range td {
		x := bits.FromUint64(d.w, d.v)
		if x.Width() != d.w {
			t.Errorf("width = %d, want %d", x.Width(), d.w)
		}
		if x.String() != d.bstr {
			t.Errorf("FromUint64(%d, %d) = %s, want %s", d.w, d.v, x, d.bstr)
		}
		if x.Uint64() != d.v {
			t.Errorf("Uint64() = %d, want %d", x.Uint64(), d.v)
		}
	}
}

func TestGates(t *testing.T) {
	c := bits.New()
	a := c.Const("1100")
	b := c.Const("1010")
	td := []struct {
		name string
		got  bits.Bits
		want string
	}{
		{"and", c.And(a, b), "1000"},
		{"or", c.Or(a, b), "1110"},
		{"xor", c.Xor(a, b), "0110"},
		{"not", c.Not(a), "0011"},
		{"concat", c.Concat(a, b), "11001010"},
		{"select", c.Select(c.Concat(a, b), 5, 2), "0010"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			if d.got.String() != d.want {
				t.Errorf("got %s, want %s", d.got, d.want)
			}
		})
	}
}

// TestArith_model checks the word-level arithmetic against native
// integers at widths around the word boundary.
func TestArith_model(t *testing.T) {
	c := bits.New()
	rng := rand.New(rand.NewSource(7))
	for _, w := range []int{1, 3, 8, 31, 63, 64} {
		mask := ^uint64(0)
		if w < 64 {
			mask = 1<<uint(w) - 1
		}
		for i := 0; i < 200; i++ {
			va, vb := rng.Uint64()&mask, rng.Uint64()&mask
			a, b := bits.FromUint64(w, va), bits.FromUint64(w, vb)
			if got, want := c.Add(a, b).Uint64(), (va+vb)&mask; got != want {
				t.Fatalf("w=%d: %d + %d = %d, want %d", w, va, vb, got, want)
			}
			if got, want := c.Sub(a, b).Uint64(), (va-vb)&mask; got != want {
				t.Fatalf("w=%d: %d - %d = %d, want %d", w, va, vb, got, want)
			}
			lt := c.Lt(a, b).Uint64() == 1
			if lt != (va < vb) {
				t.Fatalf("w=%d: %d < %d = %v", w, va, vb, lt)
			}
			eq := c.Eq(a, b).Uint64() == 1
			if eq != (va == vb) {
				t.Fatalf("w=%d: %d == %d = %v", w, va, vb, eq)
			}
		}
	}
}

func TestMul_model(t *testing.T) {
	c := bits.New()
	rng := rand.New(rand.NewSource(11))
	for _, w := range []int{1, 4, 16, 32} {
		mask := uint64(1)<<uint(w) - 1
		for i := 0; i < 200; i++ {
			va, vb := rng.Uint64()&mask, rng.Uint64()&mask
			a, b := bits.FromUint64(w, va), bits.FromUint64(w, vb)
			p := c.Mulu(a, b)
			if p.Width() != 2*w {
				t.Fatalf("w=%d: product width %d", w, p.Width())
			}
			if got := p.Uint64(); got != va*vb {
				t.Fatalf("w=%d: %d * %d = %d, want %d", w, va, vb, got, va*vb)
			}
		}
	}
}

func TestMuls_model(t *testing.T) {
	c := bits.New()
	for _, d := range []struct {
		w      int
		va, vb int64
	}{
		{4, -3, 3}, {4, -3, -3}, {4, 7, -8}, {8, -128, 127}, {8, -1, -1},
	} {
		a := c.ConstInt(d.w, d.va)
		b := c.ConstInt(d.w, d.vb)
		p := c.Muls(a, b)
		if got := c.ToSInt64(p); got != d.va*d.vb {
			t.Errorf("w=%d: %d * %d = %d, want %d", d.w, d.va, d.vb, got, d.va*d.vb)
		}
	}
}

func TestMux_clamps(t *testing.T) {
	c := bits.New()
	xs := []bits.Bits{c.Const("00"), c.Const("01"), c.Const("10")}
	if got := c.Mux(c.Const("11"), xs).String(); got != "10" {
		t.Errorf("mux past end = %s, want last input", got)
	}
	if got := c.Mux(c.Const("01"), xs).String(); got != "01" {
		t.Errorf("mux = %s, want 01", got)
	}
}

func TestWideValues(t *testing.T) {
	c := bits.New()
	a := c.Repeat(c.Const("10011"), 20) // 100 bits
	if c.Width(a) != 100 {
		t.Fatalf("width %d", c.Width(a))
	}
	if got := c.Popcount(a).Uint64(); got != 60 {
		t.Errorf("popcount = %d, want 60", got)
	}
	sum := c.Add(a, a)
	if got, want := sum.String(), c.Sll(a, 1).String(); got != want {
		t.Errorf("a+a = %s, want %s", got, want)
	}
}
