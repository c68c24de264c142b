// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package comb_test

import (
	"math/rand"
	"testing"

	"github.com/spalmer/comb"
	"github.com/spalmer/comb/bits"
)

// The adder wraps: 1101 + 0011 = 0000 at 4 bits, 10000 once widened.
func TestAdd_modular(t *testing.T) {
	c := bits.New()
	a, b := c.Const("1101"), c.Const("0011")
	if got := c.ToBstr(c.Add(a, b)); got != "0000" {
		t.Errorf("4-bit sum = %s", got)
	}
	wide := c.Add(c.Uresize(a, 5), c.Uresize(b, 5))
	if got := c.ToBstr(wide); got != "10000" {
		t.Errorf("5-bit sum = %s", got)
	}
	mustPanic(t, comb.ErrWidthMismatch, func() { c.Add(a, c.Const("001")) })
}

func TestIntVariants(t *testing.T) {
	c := bits.New()
	x := c.Const("8'd200")
	td := []struct {
		name string
		got  bits.Bits
		want uint64
	}{
		{"add_int", c.AddInt(x, 30), 230},
		{"add_int wrap", c.AddInt(x, 56), 0},
		{"sub_int", c.SubInt(x, 1), 199},
		{"and_int", c.AndInt(x, 0xf0), 192},
		{"or_int", c.OrInt(x, 0x0f), 207},
		{"xor_int", c.XorInt(x, 0xff), 55},
		{"eq_int true", c.EqInt(x, 200), 1},
		{"eq_int false", c.EqInt(x, 201), 0},
		{"lt_int", c.LtInt(x, 201), 1},
		{"ge_int", c.GeInt(x, 200), 1},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			if got := c.ToUint64(d.got); got != d.want {
				t.Errorf("got %d, want %d", got, d.want)
			}
		})
	}
}

func TestRelational(t *testing.T) {
	c := bits.New()
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		w := 1 + rng.Intn(12)
		va := rng.Int63n(1 << uint(w))
		vb := rng.Int63n(1 << uint(w))
		a, b := c.ConstInt(w, va), c.ConstInt(w, vb)
		checks := []struct {
			name string
			got  bits.Bits
			want bool
		}{
			{"eq", c.Eq(a, b), va == vb},
			{"ne", c.Ne(a, b), va != vb},
			{"lt", c.Lt(a, b), va < vb},
			{"gt", c.Gt(a, b), va > vb},
			{"le", c.Le(a, b), va <= vb},
			{"ge", c.Ge(a, b), va >= vb},
		}
		for _, k := range checks {
			if (c.ToUint64(k.got) == 1) != k.want {
				t.Fatalf("%s(%d, %d) at width %d", k.name, va, vb, w)
			}
		}
	}
}

// Signed comparison agrees with the sign-bit-flipped unsigned
// comparison, and with integer order.
func TestSignedRelational(t *testing.T) {
	c := bits.New()
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 500; i++ {
		w := 1 + rng.Intn(10)
		half := int64(1) << uint(w-1)
		va := rng.Int63n(2*half) - half
		vb := rng.Int63n(2*half) - half
		a, b := c.ConstInt(w, va), c.ConstInt(w, vb)
		if got := c.ToUint64(c.Lts(a, b)) == 1; got != (va < vb) {
			t.Fatalf("lts(%d, %d) = %v at width %d", va, vb, got, w)
		}
		if got := c.ToUint64(c.Ges(a, b)) == 1; got != (va >= vb) {
			t.Fatalf("ges(%d, %d) = %v at width %d", va, vb, got, w)
		}
		// flip-the-sign-bit: signed order is unsigned order with the
		// MSB inverted
		mask := c.Vdd()
		if w > 1 {
			mask = c.Concat(c.Vdd(), c.Zero(w-1))
		}
		flipped := c.Lt(c.Xor(a, mask), c.Xor(b, mask))
		if !c.Same(flipped, c.Lts(a, b)) {
			t.Fatalf("lts(%d, %d) disagrees with flipped unsigned compare", va, vb)
		}
	}
}

func TestShifts(t *testing.T) {
	c := bits.New()
	x := c.Const("1001")
	td := []struct {
		name string
		got  bits.Bits
		want string
	}{
		{"sll0", c.Sll(x, 0), "1001"},
		{"sll1", c.Sll(x, 1), "0010"},
		{"sll4", c.Sll(x, 4), "0000"},
		{"srl1", c.Srl(x, 1), "0100"},
		{"srl4", c.Srl(x, 4), "0000"},
		{"sra1", c.Sra(x, 1), "1100"},
		{"sra3", c.Sra(x, 3), "1111"},
		{"sra9", c.Sra(x, 9), "1111"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			if got := c.ToBstr(d.got); got != d.want {
				t.Errorf("got %s, want %s", got, d.want)
			}
		})
	}
	if !c.Same(c.Sll(x, 0), x) {
		t.Error("sll by 0 should be the identity")
	}
	mustPanic(t, comb.ErrOutOfRange, func() { c.Sll(x, -1) })
}

func TestVariableShifts(t *testing.T) {
	c := bits.New()
	x := c.ConstUint64(8, 0xb5)
	for d := uint64(0); d < 16; d++ {
		dist := c.ConstUint64(4, d)
		sll := c.ToBstr(c.SllV(x, dist))
		if want := c.ToBstr(c.Sll(x, int(d))); sll != want {
			t.Fatalf("sllv by %d = %s, want %s", d, sll, want)
		}
		srl := c.ToBstr(c.SrlV(x, dist))
		if want := c.ToBstr(c.Srl(x, int(d))); srl != want {
			t.Fatalf("srlv by %d = %s, want %s", d, srl, want)
		}
		sra := c.ToBstr(c.SraV(x, dist))
		if want := c.ToBstr(c.Sra(x, int(d))); sra != want {
			t.Fatalf("srav by %d = %s, want %s", d, sra, want)
		}
	}
}

func TestLogicalReduce(t *testing.T) {
	c := bits.New()
	td := []struct {
		x    string
		any  uint64
		all  uint64
		par  uint64
	}{
		{"0000", 0, 0, 0},
		{"0010", 1, 0, 1},
		{"1111", 1, 1, 0},
		{"1011", 1, 0, 1},
	}
	for _, d := range td {
		x := c.Const(d.x)
		if got := c.ToUint64(c.Any(x)); got != d.any {
			t.Errorf("any(%s) = %d", d.x, got)
		}
		if got := c.ToUint64(c.AllOnes(x)); got != d.all {
			t.Errorf("all_ones(%s) = %d", d.x, got)
		}
		if got := c.ToUint64(c.ReduceXor(x)); got != d.par {
			t.Errorf("reduce_xor(%s) = %d", d.x, got)
		}
	}
	a, b := c.Const("0100"), c.Const("0000")
	if c.ToUint64(c.Land(a, b)) != 0 || c.ToUint64(c.Lor(a, b)) != 1 {
		t.Error("land/lor should reduce to booleans first")
	}
}

func TestNegateModCounter(t *testing.T) {
	c := bits.New()
	if got := c.ToBstr(c.Negate(c.Const("0011"))); got != "1101" {
		t.Errorf("negate = %s", got)
	}
	// power-of-two period: plain increment
	x := c.Const("3'd7")
	if got := c.ToUint64(c.ModCounter(7, x)); got != 0 {
		t.Errorf("mod_counter pow2 wrap = %d", got)
	}
	// otherwise a compare against max
	if got := c.ToUint64(c.ModCounter(5, c.Const("3'd5"))); got != 0 {
		t.Errorf("mod_counter wrap = %d", got)
	}
	if got := c.ToUint64(c.ModCounter(5, c.Const("3'd3"))); got != 4 {
		t.Errorf("mod_counter step = %d", got)
	}
}
